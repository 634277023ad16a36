package irgen

import "github.com/Mexanobar/RuC/internal/ast"

// lowerTernary freshly allocates label_then/label_else/label_end, lowers
// the condition via checkTypeAndBranch, lowers each arm under its own
// label, and merges with a phi of the two arm values (§4.2.2). Nested
// ternaries (and any other block-producing arm, e.g. a short-circuiting
// &&/||) collapse via labelTernaryEnd so the phi's incoming blocks name
// the block that actually produced the arm's value rather than the
// label the arm was entered under.
func (s *State) lowerTernary(r ast.Ref) Answer {
	cond := s.Store.TernaryCond(r)
	thenExpr := s.Store.TernaryLHS(r)
	elseExpr := s.Store.TernaryRHS(r)
	typ := s.Store.Node(r).Type

	thenLbl := s.newLabel()
	elseLbl := s.newLabel()
	end := s.newLabel()

	savedTrue, savedFalse := s.labelTrue, s.labelFalse
	s.labelTrue, s.labelFalse = thenLbl, elseLbl
	s.checkTypeAndBranch(s.LowerExpr(cond, LocFree))
	s.labelTrue, s.labelFalse = savedTrue, savedFalse

	s.placeLabel(thenLbl)
	thenAns := s.zextIfLogic(s.LowerExpr(thenExpr, LocFree))
	thenVal := s.operandString(thenAns, typ)
	thenProducer := s.labelTernaryEnd
	s.emit("  br label %%lbl%d", end)

	s.placeLabel(elseLbl)
	elseAns := s.zextIfLogic(s.LowerExpr(elseExpr, LocFree))
	elseVal := s.operandString(elseAns, typ)
	elseProducer := s.labelTernaryEnd
	s.emit("  br label %%lbl%d", end)

	s.placeLabel(end)
	reg := s.newReg()
	s.emit("  %%%d = phi %s [ %s, %%lbl%d ], [ %s, %%lbl%d ]", reg, s.llvmType(typ), thenVal, thenProducer, elseVal, elseProducer)
	return Answer{Kind: AnswerReg, Reg: reg, Type: typ}
}
