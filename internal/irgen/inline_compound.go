package irgen

import "github.com/Mexanobar/RuC/internal/ast"

// lowerInlineCompound executes the statement sequence a composite
// print/printid call desugared into (§4.1.6) and answers void, the
// inline compound's own type.
func (s *State) lowerInlineCompound(r ast.Ref) Answer {
	for _, st := range s.Store.InlineCompoundStatements(r) {
		s.LowerStmt(st)
	}
	return Answer{Kind: AnswerNone, Type: s.Store.Node(r).Type}
}
