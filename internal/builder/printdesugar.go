package builder

import (
	"strings"

	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/types"
)

// Print implements the print builtin of §4.1.5/§4.1.6: scalar arguments
// accumulate into a synthesized printf call; a composite argument (array
// or struct) flushes the accumulated run and expands into a loop nest
// via desugarComposite. The result is a single printf call when no
// composite ever appeared, otherwise an inline-compound expression
// sequencing every synthesized statement.
func (b *Builder) Print(args []ast.Ref, span source.Span) ast.Ref {
	return b.printLike(args, false, span)
}

// Printid is Print, but every argument must be a direct identifier; the
// synthesized format prepends "name = " before each value (§4.1.5).
func (b *Builder) Printid(args []ast.Ref, span source.Span) ast.Ref {
	return b.printLike(args, true, span)
}

// Getid implements the getid builtin: every argument must be an
// identifier; the result is a plain void call to the runtime getid
// (§4.1.5).
func (b *Builder) Getid(args []ast.Ref, span source.Span) ast.Ref {
	for _, a := range args {
		if a.IsBroken() {
			return ast.Broken
		}
		if _, ok := b.identRef(a); !ok {
			return b.report(diag.ExpectedIdentifierInGetid, span)
		}
	}
	callee := b.syntheticCallee("getid", span)
	return b.Store.NewCall(callee, args, types.VoidID, span)
}

func (b *Builder) printLike(args []ast.Ref, identOnly bool, span source.Span) ast.Ref {
	var stmts []ast.Ref
	var fmtBuf strings.Builder
	var runArgs []ast.Ref
	hasComposite := false

	flush := func() {
		if fmtBuf.Len() == 0 {
			return
		}
		fmtArg := b.LiteralString(fmtBuf.String(), span)
		full := append([]ast.Ref{fmtArg}, runArgs...)
		call := b.Printf(full, span)
		stmts = append(stmts, b.Store.NewExprStmt(call, span))
		fmtBuf.Reset()
		runArgs = nil
	}

	for _, arg := range args {
		if arg.IsBroken() {
			return ast.Broken
		}
		var prefix string
		if identOnly {
			id, ok := b.identRef(arg)
			if !ok {
				return b.report(diag.ExpectedIdentifierInPrintid, span)
			}
			prefix = b.Idents.Name(id) + " = "
		}

		t := b.Store.Node(arg).Type
		if b.Types.IsPointer(t) {
			return b.report(diag.PointerInPrint, span)
		}

		if b.Types.IsArray(t) || b.Types.IsStruct(t) {
			hasComposite = true
			flush()
			if prefix != "" {
				stmts = append(stmts, b.literalPrintStmt(prefix, span))
			}
			composite, ok := b.desugarComposite(arg, t, span)
			if !ok {
				return ast.Broken
			}
			stmts = append(stmts, composite...)
			continue
		}

		fmtBuf.WriteString(prefix)
		fmtBuf.WriteByte('%')
		fmtBuf.WriteString(b.specifierLetterForType(t))
		fmtBuf.WriteByte(' ')
		runArgs = append(runArgs, arg)
	}
	flush()

	if !hasComposite {
		if len(stmts) == 0 {
			return b.Printf([]ast.Ref{b.LiteralString("", span)}, span)
		}
		return b.Store.ExprStmtExpr(stmts[len(stmts)-1])
	}
	return b.Store.NewInlineCompound(stmts, types.VoidID, span)
}

// desugarComposite implements create_array_nodes / create_struct_nodes
// (§4.1.6): it saves arg into a fresh synthetic local to avoid
// re-evaluating a side-effecting subexpression, then expands the
// composite into a loop/field-walk nest over that local.
func (b *Builder) desugarComposite(arg ast.Ref, t types.ID, span source.Span) ([]ast.Ref, bool) {
	savedID := b.declareSyntheticLocal(t)
	savedRef := func(cat ast.Category) ast.Ref {
		return b.Store.NewIdentifier(savedID, t, cat, span)
	}
	assignExpr := b.Store.NewBinary("=", savedRef(ast.LValue), arg, t, span)
	stmts := []ast.Ref{b.Store.NewExprStmt(assignExpr, span)}

	if !b.Types.IsArray(t) && !b.Types.IsStruct(t) {
		return nil, false
	}
	stmts = append(stmts, b.desugarCompositeValue(savedRef, t, 0, span)...)
	return stmts, true
}

// desugarCompositeValue dispatches a value (identified by a builder
// closure so every use site gets a freshly-allocated reference, since
// every AST node has exactly one parent) to its array/struct/scalar
// printing expansion.
func (b *Builder) desugarCompositeValue(value func(ast.Category) ast.Ref, t types.ID, depth int, span source.Span) []ast.Ref {
	switch {
	case b.Types.IsArray(t):
		return b.arrayPrintStmts(value, t, depth, span)
	case b.Types.IsStruct(t):
		return b.structPrintStmts(value, t, depth, span)
	default:
		return []ast.Ref{b.scalarPrintStmt(value, t, span)}
	}
}

func (b *Builder) scalarPrintStmt(value func(ast.Category) ast.Ref, t types.ID, span source.Span) ast.Ref {
	format := "%" + b.specifierLetterForType(t)
	return b.printfCallStmt(format, []ast.Ref{value(ast.RValue)}, span)
}

// arrayPrintStmts synthesizes the for-loop nest of §4.1.6: a fresh
// integer induction variable running 0 <= i < upb(value), printing
// "{", each element (recursing one rank down), ", " between elements,
// and a trailing "}" (delimiter grammar per SPEC_FULL.md §13).
func (b *Builder) arrayPrintStmts(value func(ast.Category) ast.Ref, arrType types.ID, depth int, span source.Span) []ast.Ref {
	elemType := b.Types.ElemType(arrType)
	iID := b.declareSyntheticLocal(types.IntID)
	mkI := func(cat ast.Category) ast.Ref { return b.Store.NewIdentifier(iID, types.IntID, cat, span) }

	initStmt := b.Store.NewExprStmt(
		b.Store.NewBinary("=", mkI(ast.LValue), b.Store.NewLiteralInt(0, types.IntID, span), types.IntID, span), span)
	condExpr := b.Store.NewBinary("<", mkI(ast.RValue),
		b.Store.NewUnary("upb", value(ast.LValue), types.IntID, ast.RValue, span), types.BoolID, span)
	stepExpr := b.Store.NewBinary("=", mkI(ast.LValue),
		b.Store.NewBinary("+", mkI(ast.RValue), b.Store.NewLiteralInt(1, types.IntID, span), types.IntID, span),
		types.IntID, span)

	elemBuilder := func(cat ast.Category) ast.Ref {
		return b.Store.NewSubscript(value(ast.LValue), mkI(ast.RValue), elemType, cat, span)
	}
	body := b.desugarCompositeValue(elemBuilder, elemType, depth+1, span)

	lastCond := b.Store.NewBinary("==", mkI(ast.RValue),
		b.Store.NewBinary("-", b.Store.NewUnary("upb", value(ast.LValue), types.IntID, ast.RValue, span),
			b.Store.NewLiteralInt(1, types.IntID, span), types.IntID, span),
		types.BoolID, span)
	sepIf := b.Store.NewIf(lastCond, b.Store.NewNullStatement(span), b.literalPrintStmt(", ", span), span)
	body = append(body, sepIf)

	forStmt := b.Store.NewFor(initStmt, condExpr, stepExpr, b.Store.NewCompound(body, span), span)
	return []ast.Ref{b.literalPrintStmt("{", span), forStmt, b.literalPrintStmt("}", span)}
}

// structPrintStmts synthesizes the field walk of §4.1.6/§13: "\n{ struct"
// then, per field, "\n    .<name> = " followed by the value (recursing if
// composite), followed by "}," or "}" for the last field. Indentation is
// 4 spaces per nesting level (tab_deep in the distillation source).
func (b *Builder) structPrintStmts(value func(ast.Category) ast.Ref, structType types.ID, depth int, span source.Span) []ast.Ref {
	indent := strings.Repeat("    ", depth+1)
	stmts := []ast.Ref{b.literalPrintStmt("\n"+indent+"{ struct", span)}

	fields := b.Types.Fields(structType)
	for idx, f := range fields {
		stmts = append(stmts, b.literalPrintStmt("\n"+indent+"    ."+f.Name+" = ", span))
		fieldBuilder := func(cat ast.Category) ast.Ref {
			return b.Store.NewMember(value(ast.LValue), idx, f.Type, cat, span)
		}
		stmts = append(stmts, b.desugarCompositeValue(fieldBuilder, f.Type, depth+1, span)...)
		sep := "},"
		if idx == len(fields)-1 {
			sep = "}"
		}
		stmts = append(stmts, b.literalPrintStmt(sep, span))
	}
	return stmts
}

// literalPrintStmt synthesizes an ExprStmt wrapping a zero-argument
// printf call of a fixed literal string (the brace/separator/indent
// punctuation of the composite-print desugaring).
func (b *Builder) literalPrintStmt(text string, span source.Span) ast.Ref {
	return b.printfCallStmt(text, nil, span)
}

// printfCallStmt synthesizes an ExprStmt wrapping `printf(format, args...)`.
func (b *Builder) printfCallStmt(format string, args []ast.Ref, span source.Span) ast.Ref {
	fmtArg := b.LiteralString(format, span)
	full := append([]ast.Ref{fmtArg}, args...)
	call := b.Printf(full, span)
	return b.Store.NewExprStmt(call, span)
}

// specifierLetterForType picks the printf specifier letter a scalar
// type's value should be synthesized with (§4.1.5).
func (b *Builder) specifierLetterForType(t types.ID) string {
	switch {
	case t == b.Types.StringType():
		return "s"
	case b.Types.Kind(t) == types.Char:
		return "c"
	case b.Types.IsFloating(t):
		return "f"
	default:
		return "i"
	}
}
