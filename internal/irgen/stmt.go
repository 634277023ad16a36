package irgen

import "github.com/Mexanobar/RuC/internal/ast"

// LowerStmt dispatches one statement node to its lowering rule (§4.2.3).
func (s *State) LowerStmt(r ast.Ref) {
	n := s.Store.Node(r)
	switch n.Tag {
	case ast.StmtIf:
		s.lowerIf(r)
	case ast.StmtWhile, ast.StmtDo:
		s.lowerLoop(r)
	case ast.StmtFor:
		s.lowerFor(r)
	case ast.StmtSwitch:
		s.lowerSwitch(r)
	case ast.StmtCompound:
		s.lowerCompound(r)
	case ast.StmtNull:
	case ast.StmtBreak:
		s.emit("  br label %%lbl%d", s.labelBreak)
	case ast.StmtContinue:
		s.emit("  br label %%lbl%d", s.labelContinue)
	case ast.StmtReturn:
		s.lowerReturn(r)
	case ast.StmtDeclaration:
		for _, d := range s.Store.DeclarationStatementDecls(r) {
			s.lowerDecl(d, false)
		}
	case ast.StmtLabeled:
		s.emit("lbl_u%d:", s.Store.LabeledNumber(r))
		s.LowerStmt(s.Store.LabeledStmt(r))
	case ast.StmtGoto:
		s.emit("  br label %%lbl_u%d", s.Store.GotoNumber(r))
	case ast.StmtExpr:
		s.LowerExpr(s.Store.ExprStmtExpr(r), LocFree)
	default:
	}
}

// lowerIf lowers the condition via checkTypeAndBranch into freshly
// allocated then/else/end labels, omitting the else branch when absent
// (§4.2.3).
func (s *State) lowerIf(r ast.Ref) {
	cond := s.Store.IfCond(r)
	thenStmt := s.Store.IfThen(r)
	elseStmt := s.Store.IfElse(r)

	thenLbl := s.newLabel()
	end := s.newLabel()
	elseLbl := end
	if !elseStmt.IsBroken() {
		elseLbl = s.newLabel()
	}

	savedTrue, savedFalse := s.labelTrue, s.labelFalse
	s.labelTrue, s.labelFalse = thenLbl, elseLbl
	s.checkTypeAndBranch(s.LowerExpr(cond, LocFree))
	s.labelTrue, s.labelFalse = savedTrue, savedFalse

	s.placeLabel(thenLbl)
	s.LowerStmt(thenStmt)
	s.emit("  br label %%lbl%d", end)

	if !elseStmt.IsBroken() {
		s.placeLabel(elseLbl)
		s.LowerStmt(elseStmt)
		s.emit("  br label %%lbl%d", end)
	}

	s.placeLabel(end)
}

// lowerLoop handles while/do-while: while tests before the body, do
// tests after, both sharing the break/continue label save-restore
// discipline (§4.2.3).
func (s *State) lowerLoop(r ast.Ref) {
	n := s.Store.Node(r)
	cond := s.Store.LoopCond(r)
	body := s.Store.LoopBody(r)

	test := s.newLabel()
	bodyLbl := s.newLabel()
	end := s.newLabel()

	savedBreak, savedContinue := s.labelBreak, s.labelContinue
	s.labelBreak, s.labelContinue = end, test

	if n.Tag == ast.StmtWhile {
		s.emit("  br label %%lbl%d", test)
		s.placeLabel(test)
		savedTrue, savedFalse := s.labelTrue, s.labelFalse
		s.labelTrue, s.labelFalse = bodyLbl, end
		s.checkTypeAndBranch(s.LowerExpr(cond, LocFree))
		s.labelTrue, s.labelFalse = savedTrue, savedFalse
		s.placeLabel(bodyLbl)
		s.LowerStmt(body)
		s.emit("  br label %%lbl%d", test)
	} else {
		s.emit("  br label %%lbl%d", bodyLbl)
		s.placeLabel(bodyLbl)
		s.LowerStmt(body)
		s.emit("  br label %%lbl%d", test)
		s.placeLabel(test)
		savedTrue, savedFalse := s.labelTrue, s.labelFalse
		s.labelTrue, s.labelFalse = bodyLbl, end
		s.checkTypeAndBranch(s.LowerExpr(cond, LocFree))
		s.labelTrue, s.labelFalse = savedTrue, savedFalse
	}

	s.labelBreak, s.labelContinue = savedBreak, savedContinue
	s.placeLabel(end)
}

// lowerFor lowers init once, then behaves like a while loop whose
// continue target runs step before re-testing cond (§4.2.3). A missing
// cond is always-true.
func (s *State) lowerFor(r ast.Ref) {
	init := s.Store.ForInit(r)
	cond := s.Store.ForCond(r)
	step := s.Store.ForStep(r)
	body := s.Store.ForBody(r)

	if !init.IsBroken() {
		s.LowerStmtOrExpr(init)
	}

	test := s.newLabel()
	bodyLbl := s.newLabel()
	stepLbl := s.newLabel()
	end := s.newLabel()

	savedBreak, savedContinue := s.labelBreak, s.labelContinue
	s.labelBreak, s.labelContinue = end, stepLbl

	s.emit("  br label %%lbl%d", test)
	s.placeLabel(test)
	if cond.IsBroken() {
		s.emit("  br label %%lbl%d", bodyLbl)
	} else {
		savedTrue, savedFalse := s.labelTrue, s.labelFalse
		s.labelTrue, s.labelFalse = bodyLbl, end
		s.checkTypeAndBranch(s.LowerExpr(cond, LocFree))
		s.labelTrue, s.labelFalse = savedTrue, savedFalse
	}

	s.placeLabel(bodyLbl)
	s.LowerStmt(body)
	s.emit("  br label %%lbl%d", stepLbl)

	s.placeLabel(stepLbl)
	if !step.IsBroken() {
		s.LowerStmtOrExpr(step)
	}
	s.emit("  br label %%lbl%d", test)

	s.labelBreak, s.labelContinue = savedBreak, savedContinue
	s.placeLabel(end)
}

// LowerStmtOrExpr lowers a for-loop init/step slot, which holds either a
// declaration or expression statement or a bare expression.
func (s *State) LowerStmtOrExpr(r ast.Ref) {
	n := s.Store.Node(r)
	if n.Tag == ast.StmtDeclaration || n.Tag == ast.StmtExpr {
		s.LowerStmt(r)
		return
	}
	s.LowerExpr(r, LocFree)
}

// lowerSwitch lowers the selector once, then walks the body compound's
// top-level case/default children building a chain of integer
// comparisons (this dialect has no fallthrough-free jump table
// requirement, so a linear chain matches the builder's Case/Default
// shape without needing switch's own address-computed-goto machinery).
func (s *State) lowerSwitch(r ast.Ref) {
	selector := s.Store.SwitchSelector(r)
	body := s.Store.SwitchBody(r)
	selAns := s.zextIfLogic(s.LowerExpr(selector, LocFree))

	end := s.newLabel()
	savedBreak := s.labelBreak
	s.labelBreak = end

	stmts := s.Store.CompoundStatements(body)
	var defaultBody ast.Ref = ast.Broken
	type arm struct {
		label int64
		body  ast.Ref
	}
	var arms []arm
	for _, st := range stmts {
		sn := s.Store.Node(st)
		switch sn.Tag {
		case ast.StmtCase:
			arms = append(arms, arm{s.Store.LiteralInt(s.Store.CaseLabel(st)), s.Store.CaseBody(st)})
		case ast.StmtDefault:
			defaultBody = s.Store.DefaultBody(st)
		}
	}

	next := make([]int, len(arms))
	for i := range arms {
		next[i] = s.newLabel()
	}
	fallthroughDefault := end
	if !defaultBody.IsBroken() {
		fallthroughDefault = s.newLabel()
	}

	for i, a := range arms {
		target := fallthroughDefault
		if i+1 < len(next) {
			target = next[i+1]
		}
		cmp := s.newReg()
		s.emit("  %%%d = icmp eq i32 %s, %d", cmp, s.operandString(selAns, selAns.Type), a.label)
		caseLbl := s.newLabel()
		s.emit("  br i1 %%%d, label %%lbl%d, label %%lbl%d", cmp, caseLbl, target)
		s.placeLabel(caseLbl)
		s.LowerStmt(a.body)
		if i+1 < len(arms) {
			s.emit("  br label %%lbl%d", next[i+1])
			s.placeLabel(next[i+1])
		}
	}
	if !defaultBody.IsBroken() {
		if len(arms) == 0 {
			s.emit("  br label %%lbl%d", fallthroughDefault)
		}
		s.placeLabel(fallthroughDefault)
		s.LowerStmt(defaultBody)
	}
	s.emit("  br label %%lbl%d", end)

	s.labelBreak = savedBreak
	s.placeLabel(end)
}

// lowerCompound emits a stack ticket around the block when it declares a
// dynamic array, restoring it on exit (§5): the stack-save/stackrestore
// pair brackets the alloca region so nested blocks don't leak stack
// space across loop iterations.
func (s *State) lowerCompound(r ast.Ref) {
	depth := len(s.stackTickets)

	for _, st := range s.Store.CompoundStatements(r) {
		s.LowerStmt(st)
	}

	s.popStackTicketsTo(depth)
}

// lowerReturn restores every open stack ticket in the current function
// before transferring control, walking the full chain rather than only
// the function-wide slot (§9 open question 3). Inside main, the
// user-provided return expression is suppressed entirely and `ret i32 0`
// is emitted instead (§4.2.3: "main is treated specially").
func (s *State) lowerReturn(r ast.Ref) {
	for i := len(s.stackTickets) - 1; i >= 0; i-- {
		reg := s.stackTickets[i]
		s.emit("  call void @llvm.stackrestore(i8* %%stacksave.%d)", reg)
	}

	if s.inMain {
		s.emit("  ret i32 0")
		s.terminated = true
		return
	}

	expr := s.Store.ReturnExpr(r)
	if expr.IsBroken() {
		s.emit("  ret void")
		s.terminated = true
		return
	}
	ans := s.zextIfLogic(s.LowerExpr(expr, LocFree))
	typ := s.Store.Node(expr).Type
	s.emit("  ret %s %s", s.llvmType(typ), s.operandString(ans, typ))
	s.terminated = true
}
