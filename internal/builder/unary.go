package builder

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/types"
)

// IncDec builds pre/post increment or decrement (op is one of "++pre",
// "--pre", "++post", "--post"). The operand must be an arithmetic
// lvalue; the result is an rvalue of the same type (§4.1.3).
func (b *Builder) IncDec(op string, operand ast.Ref, span source.Span) ast.Ref {
	if operand.IsBroken() {
		return ast.Broken
	}
	n := b.Store.Node(operand)
	if n.Category != ast.LValue || !b.Types.IsArithmetic(n.Type) {
		return b.report(diag.IncrementOperandNotScalar, span)
	}
	return b.Store.NewUnary(op, operand, n.Type, ast.RValue, source.Join(n.Span, span))
}

// AddressOf builds `&operand`. The operand must be an lvalue; the
// result type is pointer(operand-type).
func (b *Builder) AddressOf(operand ast.Ref, span source.Span) ast.Ref {
	if operand.IsBroken() {
		return ast.Broken
	}
	n := b.Store.Node(operand)
	if n.Category != ast.LValue {
		return b.report(diag.AddrofOperandNotLvalue, span)
	}
	return b.Store.NewUnary("&", operand, b.Types.PointerTo(n.Type), ast.RValue, source.Join(n.Span, span))
}

// Indirection builds `*operand`. The operand type must be a pointer;
// the result is an lvalue of the element type.
func (b *Builder) Indirection(operand ast.Ref, span source.Span) ast.Ref {
	if operand.IsBroken() {
		return ast.Broken
	}
	n := b.Store.Node(operand)
	if !b.Types.IsPointer(n.Type) {
		return b.report(diag.IndirectionOperandNotPointer, span, b.Types.String(n.Type))
	}
	elem := b.Types.ElemType(n.Type)
	return b.Store.NewUnary("*", operand, elem, ast.LValue, source.Join(n.Span, span))
}

// Upb builds the array-rank query `upb(operand)`. The operand must be an
// array; the result is int.
func (b *Builder) Upb(operand ast.Ref, span source.Span) ast.Ref {
	if operand.IsBroken() {
		return ast.Broken
	}
	n := b.Store.Node(operand)
	if !b.Types.IsArray(n.Type) {
		return b.report(diag.UpbOperandNotArray, span)
	}
	return b.Store.NewUnary("upb", operand, types.IntID, ast.RValue, source.Join(n.Span, span))
}

// Abs, ArithMinus, BitNot, LogicalNot share the shape of §4.1.3's
// remaining unary operators: validate the operand class, then fold a
// literal operand immediately.

func (b *Builder) Abs(operand ast.Ref, span source.Span) ast.Ref {
	return b.foldableArithmeticUnary("abs", operand, span, absInt, absFloat)
}

func (b *Builder) ArithMinus(operand ast.Ref, span source.Span) ast.Ref {
	return b.foldableArithmeticUnary("-", operand, span, func(v int64) int64 { return -v }, func(v float64) float64 { return -v })
}

func absInt(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (b *Builder) foldableArithmeticUnary(op string, operand ast.Ref, span source.Span, foldInt func(int64) int64, foldFloat func(float64) float64) ast.Ref {
	if operand.IsBroken() {
		return ast.Broken
	}
	n := b.Store.Node(operand)
	if !b.Types.IsArithmetic(n.Type) {
		return b.report(diag.UnaryOperandNotArithmetic, span, b.Types.String(n.Type))
	}

	if b.Store.IsLiteral(operand) {
		result := n.Type
		full := source.Join(n.Span, span)
		if b.Types.IsFloating(n.Type) {
			v := foldFloat(b.Store.LiteralFloat(operand))
			b.Store.Remove(operand)
			return b.Store.NewLiteralFloat(v, result, full)
		}
		v := foldInt(b.Store.LiteralInt(operand))
		b.Store.Remove(operand)
		return b.Store.NewLiteralInt(v, result, full)
	}

	return b.Store.NewUnary(op, operand, n.Type, ast.RValue, source.Join(n.Span, span))
}

func (b *Builder) BitNot(operand ast.Ref, span source.Span) ast.Ref {
	if operand.IsBroken() {
		return ast.Broken
	}
	n := b.Store.Node(operand)
	if !b.Types.IsInteger(n.Type) {
		return b.report(diag.UnnotOperandNotInteger, span)
	}
	full := source.Join(n.Span, span)
	if b.Store.IsLiteral(operand) {
		v := ^b.Store.LiteralInt(operand)
		b.Store.Remove(operand)
		return b.Store.NewLiteralInt(v, types.IntID, full)
	}
	return b.Store.NewUnary("~", operand, types.IntID, ast.RValue, full)
}

func (b *Builder) LogicalNot(operand ast.Ref, span source.Span) ast.Ref {
	if operand.IsBroken() {
		return ast.Broken
	}
	n := b.Store.Node(operand)
	if !b.Types.IsScalar(n.Type) {
		return b.report(diag.LognotOperandNotScalar, span)
	}
	full := source.Join(n.Span, span)
	if b.Store.IsLiteral(operand) && n.Tag != ast.ExprLiteralString {
		var v bool
		if n.Tag == ast.ExprLiteralFloat {
			v = b.Store.LiteralFloat(operand) == 0
		} else {
			v = b.Store.LiteralInt(operand) == 0
		}
		b.Store.Remove(operand)
		return b.Store.NewLiteralBool(v, types.BoolID, full)
	}
	return b.Store.NewUnary("!", operand, types.BoolID, ast.RValue, full)
}
