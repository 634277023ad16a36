package builder

import (
	"testing"

	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/symtab"
	"github.com/Mexanobar/RuC/internal/types"
)

func newFixture() (*Builder, *diag.Bag) {
	store := ast.NewStore()
	tbl := types.NewTable()
	repr := symtab.NewReprTable()
	idents := symtab.NewIdentTable(repr)
	strs := symtab.NewStringPool()
	bag := diag.NewBag()
	return New(store, tbl, idents, strs, bag), bag
}

var sp source.Span

func TestVariableDeclCoercesIntInitToFloat(t *testing.T) {
	b, bag := newFixture()
	decl, id := b.VariableDecl("f", types.FloatID, b.LiteralInt(1, sp), true, sp)
	if decl.IsBroken() {
		t.Fatalf("VariableDecl broken, diagnostics: %v", bag.All())
	}
	init := b.Store.VariableDeclInit(decl)
	if b.Store.Node(init).Type != types.FloatID {
		t.Fatalf("initializer not coerced to float: %v", b.Store.Node(init).Type)
	}
	if b.Idents.Get(id).Type != types.FloatID {
		t.Fatalf("declared identifier type = %v, want float", b.Idents.Get(id).Type)
	}
}

func TestArrayDeclRejectsNonIntegerDimension(t *testing.T) {
	b, _ := newFixture()
	decl, _ := b.ArrayDecl("a", types.IntID, []ast.Ref{b.LiteralFloat(1.5, sp)}, ast.Broken, true, sp)
	if !decl.IsBroken() {
		t.Fatalf("expected broken array decl for a non-integer dimension")
	}
}

func TestSubscriptRequiresArrayBase(t *testing.T) {
	b, _ := newFixture()
	scalar := b.LiteralInt(1, sp)
	if got := b.Subscript(scalar, b.LiteralInt(0, sp), sp); !got.IsBroken() {
		t.Fatalf("Subscript on a scalar base should be broken")
	}
}

func TestSubscriptInheritsLvalueFromArrayIdentifier(t *testing.T) {
	b, bag := newFixture()
	_, id := b.ArrayDecl("a", types.IntID, []ast.Ref{b.LiteralInt(3, sp)}, ast.Broken, true, sp)
	arrRef := b.Store.NewIdentifier(id, b.Idents.Get(id).Type, ast.LValue, sp)

	sub := b.Subscript(arrRef, b.LiteralInt(0, sp), sp)
	if sub.IsBroken() {
		t.Fatalf("Subscript broken, diagnostics: %v", bag.All())
	}
	n := b.Store.Node(sub)
	if n.Category != ast.LValue {
		t.Fatalf("subscript of an lvalue array must be an lvalue")
	}
	if n.Type != types.IntID {
		t.Fatalf("subscript type = %v, want int", n.Type)
	}
}

func TestMemberRejectsNonStruct(t *testing.T) {
	b, _ := newFixture()
	if got := b.Member(b.LiteralInt(1, sp), "x", false, sp); !got.IsBroken() {
		t.Fatalf("Member on a scalar base should be broken")
	}
}

func TestMemberResolvesFieldType(t *testing.T) {
	b, bag := newFixture()
	structType := b.Types.StructOf([]types.Field{{Name: "x", Type: types.IntID}, {Name: "y", Type: types.FloatID}})
	decl, id := b.VariableDecl("p", structType, ast.Broken, true, sp)
	if decl.IsBroken() {
		t.Fatalf("VariableDecl broken, diagnostics: %v", bag.All())
	}
	baseRef := b.Store.NewIdentifier(id, structType, ast.LValue, sp)

	member := b.Member(baseRef, "y", false, sp)
	if member.IsBroken() {
		t.Fatalf("Member broken, diagnostics: %v", bag.All())
	}
	if got := b.Store.Node(member).Type; got != types.FloatID {
		t.Fatalf("member type = %v, want float", got)
	}
}

func TestMemberReportsNoSuchMember(t *testing.T) {
	b, bag := newFixture()
	structType := b.Types.StructOf([]types.Field{{Name: "x", Type: types.IntID}})
	decl, id := b.VariableDecl("p", structType, ast.Broken, true, sp)
	if decl.IsBroken() {
		t.Fatalf("VariableDecl broken, diagnostics: %v", bag.All())
	}
	baseRef := b.Store.NewIdentifier(id, structType, ast.LValue, sp)

	if got := b.Member(baseRef, "missing", false, sp); !got.IsBroken() {
		t.Fatalf("Member on an absent field should be broken")
	}
	if bag.ErrorCount() == 0 {
		t.Fatalf("expected a diagnostic for the missing field")
	}
}

func TestTernaryUnifiesArithmeticArms(t *testing.T) {
	b, bag := newFixture()
	cond := b.LiteralBool(true, sp)
	ternary := b.Ternary(cond, b.LiteralInt(10, sp), b.LiteralFloat(2.5, sp), sp)
	if ternary.IsBroken() {
		t.Fatalf("Ternary broken, diagnostics: %v", bag.All())
	}
	if got := b.Store.Node(ternary).Type; got != types.FloatID {
		t.Fatalf("ternary result type = %v, want float (usual arithmetic conversions)", got)
	}
}

func TestTernaryRejectsIncompatibleArms(t *testing.T) {
	b, _ := newFixture()
	cond := b.LiteralBool(true, sp)
	structType := b.Types.StructOf([]types.Field{{Name: "x", Type: types.IntID}})
	_, id := b.VariableDecl("p", structType, ast.Broken, true, sp)
	structRef := b.Store.NewIdentifier(id, structType, ast.LValue, sp)

	if got := b.Ternary(cond, b.LiteralInt(1, sp), structRef, sp); !got.IsBroken() {
		t.Fatalf("Ternary between int and struct should be broken")
	}
}

func TestTernaryRequiresScalarCondition(t *testing.T) {
	b, _ := newFixture()
	structType := b.Types.StructOf([]types.Field{{Name: "x", Type: types.IntID}})
	_, id := b.VariableDecl("p", structType, ast.Broken, true, sp)
	structRef := b.Store.NewIdentifier(id, structType, ast.LValue, sp)

	if got := b.Ternary(structRef, b.LiteralInt(1, sp), b.LiteralInt(2, sp), sp); !got.IsBroken() {
		t.Fatalf("Ternary with a non-scalar condition should be broken")
	}
}

func TestPrintOfArrayDesugarsToInlineCompound(t *testing.T) {
	b, bag := newFixture()
	_, id := b.ArrayDecl("a", types.IntID, []ast.Ref{b.LiteralInt(3, sp)}, ast.Broken, true, sp)
	arrRef := b.Store.NewIdentifier(id, b.Idents.Get(id).Type, ast.LValue, sp)

	printExpr := b.Print([]ast.Ref{arrRef}, sp)
	if printExpr.IsBroken() {
		t.Fatalf("Print broken, diagnostics: %v", bag.All())
	}
	if b.Store.Node(printExpr).Tag != ast.ExprInlineCompound {
		t.Fatalf("print(array) should desugar to an inline-compound expression, got %v", b.Store.Node(printExpr).Tag)
	}
}

func TestCallRejectsArgumentCountMismatch(t *testing.T) {
	b, _ := newFixture()
	fnType := b.Types.FunctionOf(types.VoidID, []types.ID{types.IntID})
	body := b.Store.NewCompound(nil, sp)
	_, _ = b.FunctionDecl("f", fnType, nil, body, sp)

	callee := b.Identifier("f", sp)
	if got := b.Call(callee, nil, sp); !got.IsBroken() {
		t.Fatalf("calling a one-parameter function with zero arguments should be broken")
	}
}
