package builder

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/types"
)

// Cast implements build_cast (§4.1.2): a no-op on equal types, an
// in-place literal rewrite for int->float on a literal operand, and a
// real cast node otherwise.
func (b *Builder) Cast(target types.ID, expr ast.Ref, span source.Span) ast.Ref {
	if expr.IsBroken() {
		return ast.Broken
	}
	n := b.Store.Node(expr)
	if b.Types.Equal(n.Type, target) {
		return expr
	}

	if target == types.FloatID && n.Type == types.IntID && b.Store.IsLiteral(expr) && n.Tag == ast.ExprLiteralInt {
		v := float64(b.Store.LiteralInt(expr))
		b.Store.Set(expr, ast.Node{Tag: ast.ExprLiteralFloat, Type: types.FloatID, Category: ast.RValue, FloatVal: v, Span: n.Span, Parent: n.Parent})
		return expr
	}

	return b.Store.NewCast(target, expr, source.Join(n.Span, span))
}

// usualArithmeticConversions implements §4.1.2: if either side is
// floating, both sides are cast to float and the result type is float;
// otherwise the result type is int (the only other arithmetic kind the
// binary operators accept).
func (b *Builder) usualArithmeticConversions(lhs, rhs ast.Ref, span source.Span) (ast.Ref, ast.Ref, types.ID) {
	lt := b.Store.Node(lhs).Type
	rt := b.Store.Node(rhs).Type

	if b.Types.IsFloating(lt) || b.Types.IsFloating(rt) {
		return b.Cast(types.FloatID, lhs, span), b.Cast(types.FloatID, rhs, span), types.FloatID
	}
	return lhs, rhs, types.IntID
}
