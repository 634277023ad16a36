package demo

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/builder"
	"github.com/Mexanobar/RuC/internal/irgen"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/types"
)

var sp source.Span

// buildHello builds:
//
//	int main() {
//	    int x = 2 + 3;
//	    float f = 1;
//	    printf("x=%i f=%f\n", x, f);
//	    return 0;
//	}
//
// exercising constant folding on the `+` initializer and an int->float
// implicit conversion on f's initializer.
func buildHello(b *builder.Builder) irgen.Program {
	b.EnterFunction(types.IntID, true)

	xInit := b.Binary("+", b.LiteralInt(2, sp), b.LiteralInt(3, sp), sp)
	xDecl, _ := b.VariableDecl("x", types.IntID, xInit, true, sp)

	fDecl, _ := b.VariableDecl("f", types.FloatID, b.LiteralInt(1, sp), true, sp)

	xRef := b.Identifier("x", sp)
	fRef := b.Identifier("f", sp)
	fmtArg := b.LiteralString("x=%i f=%f\n", sp)
	printCall := b.Printf([]ast.Ref{fmtArg, xRef, fRef}, sp)
	printStmt := b.Store.NewExprStmt(printCall, sp)

	retStmt := b.Return(b.LiteralInt(0, sp), "main", sp)

	body := b.Compound([]ast.Ref{
		b.DeclarationStatement([]ast.Ref{xDecl}, sp),
		b.DeclarationStatement([]ast.Ref{fDecl}, sp),
		printStmt,
		retStmt,
	}, sp)

	fnType := b.Types.FunctionOf(types.IntID, nil)
	mainDecl, _ := b.FunctionDecl("main", fnType, nil, body, sp)

	return irgen.Program{Functions: []ast.Ref{mainDecl}}
}

// buildDynArray builds:
//
//	void fillArray(int n) {
//	    int a[n];
//	    a[0] = 1;
//	    a[n - 1] = 2;
//	}
//
//	int main() {
//	    fillArray(5);
//	    return 0;
//	}
//
// exercising the dynamic-array alloca/stacksave path (§4.2.5): the
// dimension `n` is not a compile-time constant, so the array is sized at
// runtime and the enclosing function must stacksave/stackrestore around
// it.
func buildDynArray(b *builder.Builder) irgen.Program {
	b.EnterFunction(types.VoidID, false)

	nParamDecl, _ := b.ParamDecl("n", types.IntID, sp)
	nRef := func() ast.Ref { return b.Identifier("n", sp) }

	arrDecl, _ := b.ArrayDecl("a", types.IntID, []ast.Ref{nRef()}, ast.Broken, true, sp)

	aRef := func() ast.Ref { return b.Identifier("a", sp) }
	firstElem := b.Subscript(aRef(), b.LiteralInt(0, sp), sp)
	firstAssign := b.Assignment(firstElem, b.LiteralInt(1, sp), sp)

	lastIndex := b.Binary("-", nRef(), b.LiteralInt(1, sp), sp)
	lastElem := b.Subscript(aRef(), lastIndex, sp)
	lastAssign := b.Assignment(lastElem, b.LiteralInt(2, sp), sp)

	body := b.Compound([]ast.Ref{
		b.DeclarationStatement([]ast.Ref{arrDecl}, sp),
		b.Store.NewExprStmt(firstAssign, sp),
		b.Store.NewExprStmt(lastAssign, sp),
	}, sp)

	fnType := b.Types.FunctionOf(types.VoidID, []types.ID{types.IntID})
	fillArrayDecl, _ := b.FunctionDecl("fillArray", fnType, []ast.Ref{nParamDecl}, body, sp)

	b.EnterFunction(types.IntID, true)
	callee := b.Identifier("fillArray", sp)
	call := b.Call(callee, []ast.Ref{b.LiteralInt(5, sp)}, sp)
	callStmt := b.Store.NewExprStmt(call, sp)
	retStmt := b.Return(b.LiteralInt(0, sp), "main", sp)

	mainBody := b.Compound([]ast.Ref{callStmt, retStmt}, sp)
	mainType := b.Types.FunctionOf(types.IntID, nil)
	mainDecl, _ := b.FunctionDecl("main", mainType, nil, mainBody, sp)

	return irgen.Program{Functions: []ast.Ref{fillArrayDecl, mainDecl}}
}

// buildTernary builds:
//
//	int main() {
//	    int x = 1;
//	    float r = x ? 10 : 2.5;
//	    printf("%f\n", r);
//	    return 0;
//	}
//
// exercising ternary arm unification: the int literal 10 is promoted to
// float alongside 2.5, same as the usual arithmetic conversions a binary
// `+` would apply.
func buildTernary(b *builder.Builder) irgen.Program {
	b.EnterFunction(types.IntID, true)

	xDecl, _ := b.VariableDecl("x", types.IntID, b.LiteralInt(1, sp), true, sp)
	xRef := b.Identifier("x", sp)

	ternary := b.Ternary(xRef, b.LiteralInt(10, sp), b.LiteralFloat(2.5, sp), sp)
	rDecl, _ := b.VariableDecl("r", types.FloatID, ternary, true, sp)

	rRef := b.Identifier("r", sp)
	printCall := b.Printf([]ast.Ref{b.LiteralString("%f\n", sp), rRef}, sp)
	printStmt := b.Store.NewExprStmt(printCall, sp)

	retStmt := b.Return(b.LiteralInt(0, sp), "main", sp)

	body := b.Compound([]ast.Ref{
		b.DeclarationStatement([]ast.Ref{xDecl}, sp),
		b.DeclarationStatement([]ast.Ref{rDecl}, sp),
		printStmt,
		retStmt,
	}, sp)

	fnType := b.Types.FunctionOf(types.IntID, nil)
	mainDecl, _ := b.FunctionDecl("main", fnType, nil, body, sp)

	return irgen.Program{Functions: []ast.Ref{mainDecl}}
}

// buildArrayPrint builds:
//
//	int main() {
//	    int a[3] = { 1, 2, 3 };
//	    print(a);
//	    return 0;
//	}
//
// exercising the composite-print desugaring of §4.1.6: a[3] is an array,
// so `print(a)` expands into a synthesized loop nest instead of one
// printf call.
func buildArrayPrint(b *builder.Builder) irgen.Program {
	b.EnterFunction(types.IntID, true)

	init := b.Initializer([]ast.Ref{
		b.LiteralInt(1, sp),
		b.LiteralInt(2, sp),
		b.LiteralInt(3, sp),
	}, source.Position{}, source.Position{})

	arrDecl, _ := b.ArrayDecl("a", types.IntID, []ast.Ref{b.LiteralInt(3, sp)}, init, true, sp)

	aRef := b.Identifier("a", sp)
	printExpr := b.Print([]ast.Ref{aRef}, sp)
	printStmt := b.Store.NewExprStmt(printExpr, sp)

	retStmt := b.Return(b.LiteralInt(0, sp), "main", sp)

	body := b.Compound([]ast.Ref{
		b.DeclarationStatement([]ast.Ref{arrDecl}, sp),
		printStmt,
		retStmt,
	}, sp)

	fnType := b.Types.FunctionOf(types.IntID, nil)
	mainDecl, _ := b.FunctionDecl("main", fnType, nil, body, sp)

	return irgen.Program{Functions: []ast.Ref{mainDecl}}
}
