package ast

import "github.com/Mexanobar/RuC/internal/source"

// Statement constructors (§4.1.7). None of these validate; internal/builder
// checks scalar/integer conditions and brokenness before calling them.

func (s *Store) NewIf(cond, thenStmt, elseStmt Ref, span source.Span) Ref {
	r := s.New(StmtIf, span)
	s.Set(r, Node{Tag: StmtIf, Span: span})
	s.AddChild(r, cond)
	s.AddChild(r, thenStmt)
	if !elseStmt.IsBroken() {
		s.AddChild(r, elseStmt)
	}
	return r
}

func (s *Store) IfCond(r Ref) Ref { return s.firstChild(r) }
func (s *Store) IfThen(r Ref) Ref { return s.secondChild(r) }
func (s *Store) IfElse(r Ref) Ref {
	c := s.Children(r)
	if len(c) < 3 {
		return Broken
	}
	return c[2]
}

func (s *Store) NewWhile(cond, body Ref, span source.Span) Ref {
	r := s.New(StmtWhile, span)
	s.Set(r, Node{Tag: StmtWhile, Span: span})
	s.AddChild(r, cond)
	s.AddChild(r, body)
	return r
}

func (s *Store) NewDo(body, cond Ref, span source.Span) Ref {
	r := s.New(StmtDo, span)
	s.Set(r, Node{Tag: StmtDo, Span: span})
	s.AddChild(r, body)
	s.AddChild(r, cond)
	return r
}

// LoopCond / LoopBody read back either a While (cond, body) or a Do
// (body, cond) node using its tag to pick the right child order.
func (s *Store) LoopCond(r Ref) Ref {
	if s.Node(r).Tag == StmtDo {
		return s.secondChild(r)
	}
	return s.firstChild(r)
}

func (s *Store) LoopBody(r Ref) Ref {
	if s.Node(r).Tag == StmtDo {
		return s.firstChild(r)
	}
	return s.secondChild(r)
}

// NewFor constructs a for statement. init/step may be Broken if omitted.
func (s *Store) NewFor(init, cond, step, body Ref, span source.Span) Ref {
	r := s.New(StmtFor, span)
	s.Set(r, Node{Tag: StmtFor, Span: span})
	s.AddChild(r, init)
	s.AddChild(r, cond)
	s.AddChild(r, step)
	s.AddChild(r, body)
	return r
}

func (s *Store) ForInit(r Ref) Ref { return s.firstChild(r) }
func (s *Store) ForCond(r Ref) Ref { return s.secondChild(r) }
func (s *Store) ForStep(r Ref) Ref { return s.thirdChild(r) }
func (s *Store) ForBody(r Ref) Ref {
	c := s.Children(r)
	if len(c) < 4 {
		return Broken
	}
	return c[3]
}

func (s *Store) NewSwitch(selector, body Ref, span source.Span) Ref {
	r := s.New(StmtSwitch, span)
	s.Set(r, Node{Tag: StmtSwitch, Span: span})
	s.AddChild(r, selector)
	s.AddChild(r, body)
	return r
}

func (s *Store) SwitchSelector(r Ref) Ref { return s.firstChild(r) }
func (s *Store) SwitchBody(r Ref) Ref     { return s.secondChild(r) }

func (s *Store) NewCase(label, body Ref, span source.Span) Ref {
	r := s.New(StmtCase, span)
	s.Set(r, Node{Tag: StmtCase, Span: span})
	s.AddChild(r, label)
	s.AddChild(r, body)
	return r
}

func (s *Store) CaseLabel(r Ref) Ref { return s.firstChild(r) }
func (s *Store) CaseBody(r Ref) Ref  { return s.secondChild(r) }

func (s *Store) NewDefault(body Ref, span source.Span) Ref {
	r := s.New(StmtDefault, span)
	s.Set(r, Node{Tag: StmtDefault, Span: span})
	s.AddChild(r, body)
	return r
}

func (s *Store) DefaultBody(r Ref) Ref { return s.firstChild(r) }

// NewCompound constructs a braced statement sequence. If any child is
// Broken, the compound itself is broken (§4.1.7).
func (s *Store) NewCompound(stmts []Ref, span source.Span) Ref {
	for _, st := range stmts {
		if st.IsBroken() {
			return Broken
		}
	}
	r := s.New(StmtCompound, span)
	s.Set(r, Node{Tag: StmtCompound, Span: span})
	for _, st := range stmts {
		s.AddChild(r, st)
	}
	return r
}

func (s *Store) CompoundStatements(r Ref) []Ref { return s.Children(r) }

func (s *Store) NewNullStatement(span source.Span) Ref {
	r := s.New(StmtNull, span)
	s.Set(r, Node{Tag: StmtNull, Span: span})
	return r
}

func (s *Store) NewBreak(span source.Span) Ref {
	r := s.New(StmtBreak, span)
	s.Set(r, Node{Tag: StmtBreak, Span: span})
	return r
}

func (s *Store) NewContinue(span source.Span) Ref {
	r := s.New(StmtContinue, span)
	s.Set(r, Node{Tag: StmtContinue, Span: span})
	return r
}

// NewReturn constructs a return statement; expr may be Broken for a bare
// `return;`.
func (s *Store) NewReturn(expr Ref, span source.Span) Ref {
	r := s.New(StmtReturn, span)
	s.Set(r, Node{Tag: StmtReturn, Span: span})
	if !expr.IsBroken() {
		s.AddChild(r, expr)
	}
	return r
}

func (s *Store) ReturnExpr(r Ref) Ref {
	c := s.Children(r)
	if len(c) == 0 {
		return Broken
	}
	return c[0]
}

// NewDeclarationStatement wraps one or more declarations appearing in
// statement position.
func (s *Store) NewDeclarationStatement(decls []Ref, span source.Span) Ref {
	r := s.New(StmtDeclaration, span)
	s.Set(r, Node{Tag: StmtDeclaration, Span: span})
	for _, d := range decls {
		s.AddChild(r, d)
	}
	return r
}

func (s *Store) DeclarationStatementDecls(r Ref) []Ref { return s.Children(r) }

// NewLabeled attaches a user label (a negative label number, to avoid
// collision with emitter-generated labels) to substmt.
func (s *Store) NewLabeled(labelNumber int64, substmt Ref, span source.Span) Ref {
	r := s.New(StmtLabeled, span)
	s.Set(r, Node{Tag: StmtLabeled, IntVal: -labelNumber - 1, Span: span})
	s.AddChild(r, substmt)
	return r
}

func (s *Store) LabeledNumber(r Ref) int64 { return -(s.Node(r).IntVal + 1) }
func (s *Store) LabeledStmt(r Ref) Ref     { return s.firstChild(r) }

func (s *Store) NewGoto(labelNumber int64, span source.Span) Ref {
	r := s.New(StmtGoto, span)
	s.Set(r, Node{Tag: StmtGoto, IntVal: -labelNumber - 1, Span: span})
	return r
}

func (s *Store) GotoNumber(r Ref) int64 { return -(s.Node(r).IntVal + 1) }

// NewExprStmt wraps a bare expression used in statement position, the
// form print/printid desugaring needs to sequence synthesized printf
// calls and assignments inside a compound (§4.1.6).
func (s *Store) NewExprStmt(expr Ref, span source.Span) Ref {
	r := s.New(StmtExpr, span)
	s.Set(r, Node{Tag: StmtExpr, Span: span})
	s.AddChild(r, expr)
	return r
}

func (s *Store) ExprStmtExpr(r Ref) Ref { return s.firstChild(r) }
