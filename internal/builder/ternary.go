package builder

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
)

// Ternary implements build_ternary (§4.1.2): the condition must be
// scalar, and the two arms unify under the same usual arithmetic
// conversions a binary arithmetic operator applies, so `cond ? 1 : 2.5`
// settles on float the same way `1 + 2.5` would.
func (b *Builder) Ternary(cond, lhs, rhs ast.Ref, span source.Span) ast.Ref {
	if !b.requireScalarCondition(cond, span) || lhs.IsBroken() || rhs.IsBroken() {
		return ast.Broken
	}

	lt := b.Store.Node(lhs).Type
	rt := b.Store.Node(rhs).Type
	if b.Types.Equal(lt, rt) {
		return b.Store.NewTernary(cond, lhs, rhs, lt, span)
	}
	if b.Types.IsArithmetic(lt) && b.Types.IsArithmetic(rt) {
		convLHS, convRHS, result := b.usualArithmeticConversions(lhs, rhs, span)
		return b.Store.NewTernary(cond, convLHS, convRHS, result, span)
	}

	return b.report(diag.IncompatibleCondOperands, span, b.Types.String(lt), b.Types.String(rt))
}
