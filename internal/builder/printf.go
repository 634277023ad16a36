package builder

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/types"
)

const maxPrintfPlaceholders = 20

// Printf implements the printf builtin of §4.1.5: the first argument
// must be a string literal; its content is scanned for %-escapes, the
// placeholder count must equal argc-1, and each subsequent argument is
// checked against its specifier's expected type. Result type is int.
func (b *Builder) Printf(args []ast.Ref, span source.Span) ast.Ref {
	if len(args) == 0 {
		return b.report(diag.PrintfFstNotString, span)
	}
	fmtArg := args[0]
	fmtNode := b.Store.Node(fmtArg)
	if fmtNode.Tag != ast.ExprLiteralString {
		return b.report(diag.PrintfFstNotString, span)
	}

	specs, ok := b.scanFormatSpecifiers(b.Strs.Value(b.Store.LiteralString(fmtArg)), span)
	if !ok {
		return ast.Broken
	}
	if len(specs) > maxPrintfPlaceholders {
		return b.report(diag.TooManyPrintfArgs, span)
	}

	rest := args[1:]
	if len(specs) != len(rest) {
		return b.report(diag.WrongPrintfArgumentAmount, span, len(specs), len(rest))
	}

	for i, spec := range specs {
		expected := b.specifierExpectedType(spec)
		checked := b.CheckAssignmentOperands(expected, rest[i], span)
		if checked.IsBroken() {
			return ast.Broken
		}
		rest[i] = checked
	}

	callee := b.syntheticCallee("printf", span)
	return b.Store.NewCall(callee, args, types.IntID, span)
}

func (b *Builder) specifierExpectedType(k specifierKind) types.ID {
	switch k {
	case specInt:
		return types.IntID
	case specChar:
		return types.CharID
	case specFloat:
		return types.FloatID
	default:
		return b.Types.StringType()
	}
}

// scanFormatSpecifiers walks a printf format string collecting the
// ordered specifier list, reporting expected_format_specifier for a
// trailing '%' and unknown_format_specifier for an unrecognized letter.
// "%%" is consumed as a literal percent and produces no specifier.
func (b *Builder) scanFormatSpecifiers(format string, span source.Span) ([]specifierKind, bool) {
	var specs []specifierKind
	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' {
			continue
		}
		if i+1 >= len(runes) {
			b.Sink.Emit(diag.New(diag.ExpectedFormatSpecifier, span))
			return nil, false
		}
		next := runes[i+1]
		i++
		if next == '%' {
			continue
		}
		kind, ok := specifierFor(next)
		if !ok {
			b.Sink.Emit(diag.New(diag.UnknownFormatSpecifier, span, next))
			return nil, false
		}
		specs = append(specs, kind)
	}
	return specs, true
}

// syntheticCallee builds an identifier node referring to a
// handwritten/runtime function name without going through normal
// declaration lookup; the emitter resolves these by name.
func (b *Builder) syntheticCallee(name string, span source.Span) ast.Ref {
	id, ok := b.Idents.Repr().GetReference(name)
	if !ok {
		id = b.Idents.Declare(name, types.InvalidID, 0)
	}
	return b.Store.NewIdentifier(id, b.Idents.Get(id).Type, ast.RValue, span)
}
