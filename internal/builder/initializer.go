package builder

import (
	"github.com/Mexanobar/RuC/internal/ast"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/source"
)

// Initializer implements build_initializer (§4.1.8): requires at least
// one element and returns an untyped initializer-list node, whose type
// is stamped later by CheckAssignmentOperands against the declaration's
// target type.
func (b *Builder) Initializer(elems []ast.Ref, lLoc, rLoc source.Position) ast.Ref {
	if len(elems) == 0 {
		return b.report(diag.EmptyInit, source.Span{Begin: lLoc, End: rLoc})
	}
	for _, e := range elems {
		if e.IsBroken() {
			return ast.Broken
		}
	}
	return b.Store.NewInitializer(elems, source.Span{Begin: lLoc, End: rLoc})
}
