package ast

import (
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/symtab"
	"github.com/Mexanobar/RuC/internal/types"
)

// This file is the "thin typed wrapper" layer of spec.md §2: one
// constructor and one accessor set per expression class, stamping the
// class tag and argument layout without performing any type-checking.
// internal/builder is the only caller; it validates operands first and
// then asks for the wrapper that matches what it decided.

// NewIdentifier creates an identifier expression node. cat is LValue
// unless the identifier names an enum field (callers resolve that before
// calling this).
func (s *Store) NewIdentifier(ident symtab.IdentID, typ types.ID, cat Category, span source.Span) Ref {
	r := s.New(ExprIdentifier, span)
	s.Set(r, Node{Tag: ExprIdentifier, Type: typ, Category: cat, Ident: ident, Span: span})
	return r
}

// IdentifierIdent returns the identifier id carried by an identifier
// expression node.
func (s *Store) IdentifierIdent(r Ref) symtab.IdentID {
	return s.Node(r).Ident
}

// NewLiteralNull / Bool / Char / Int / Float / String construct literal
// rvalue nodes (§4.1.1).
func (s *Store) NewLiteralNull(typ types.ID, span source.Span) Ref {
	r := s.New(ExprLiteralNull, span)
	s.Set(r, Node{Tag: ExprLiteralNull, Type: typ, Category: RValue, Span: span})
	return r
}

func (s *Store) NewLiteralBool(value bool, typ types.ID, span source.Span) Ref {
	r := s.New(ExprLiteralBool, span)
	v := int64(0)
	if value {
		v = 1
	}
	s.Set(r, Node{Tag: ExprLiteralBool, Type: typ, Category: RValue, IntVal: v, Span: span})
	return r
}

func (s *Store) NewLiteralChar(value rune, typ types.ID, span source.Span) Ref {
	r := s.New(ExprLiteralChar, span)
	s.Set(r, Node{Tag: ExprLiteralChar, Type: typ, Category: RValue, IntVal: int64(value), Span: span})
	return r
}

func (s *Store) NewLiteralInt(value int64, typ types.ID, span source.Span) Ref {
	r := s.New(ExprLiteralInt, span)
	s.Set(r, Node{Tag: ExprLiteralInt, Type: typ, Category: RValue, IntVal: value, Span: span})
	return r
}

func (s *Store) NewLiteralFloat(value float64, typ types.ID, span source.Span) Ref {
	r := s.New(ExprLiteralFloat, span)
	s.Set(r, Node{Tag: ExprLiteralFloat, Type: typ, Category: RValue, FloatVal: value, Span: span})
	return r
}

func (s *Store) NewLiteralString(value symtab.StringID, typ types.ID, span source.Span) Ref {
	r := s.New(ExprLiteralString, span)
	s.Set(r, Node{Tag: ExprLiteralString, Type: typ, Category: RValue, Str: value, Span: span})
	return r
}

// LiteralInt / LiteralFloat / LiteralBool / LiteralChar / LiteralString
// read a literal node's payload back.
func (s *Store) LiteralInt(r Ref) int64       { return s.Node(r).IntVal }
func (s *Store) LiteralFloat(r Ref) float64   { return s.Node(r).FloatVal }
func (s *Store) LiteralBool(r Ref) bool       { return s.Node(r).IntVal != 0 }
func (s *Store) LiteralChar(r Ref) rune       { return rune(s.Node(r).IntVal) }
func (s *Store) LiteralString(r Ref) symtab.StringID {
	return s.Node(r).Str
}

// IsLiteral reports whether r is any literal expression tag, the
// predicate constant folding uses to decide when both operands are
// foldable.
func (s *Store) IsLiteral(r Ref) bool {
	switch s.Node(r).Tag {
	case ExprLiteralNull, ExprLiteralBool, ExprLiteralChar, ExprLiteralInt, ExprLiteralFloat, ExprLiteralString:
		return true
	default:
		return false
	}
}

// NewSubscript constructs a subscript expression (base[index]).
func (s *Store) NewSubscript(base, index Ref, typ types.ID, cat Category, span source.Span) Ref {
	r := s.New(ExprSubscript, span)
	s.Set(r, Node{Tag: ExprSubscript, Type: typ, Category: cat, Span: span})
	s.AddChild(r, base)
	s.AddChild(r, index)
	return r
}

// NewCall constructs a call expression: callee followed by each
// argument, in child order.
func (s *Store) NewCall(callee Ref, args []Ref, typ types.ID, span source.Span) Ref {
	r := s.New(ExprCall, span)
	s.Set(r, Node{Tag: ExprCall, Type: typ, Category: RValue, Span: span})
	s.AddChild(r, callee)
	for _, a := range args {
		s.AddChild(r, a)
	}
	return r
}

// CallCallee and CallArgs split a call node's children back out.
func (s *Store) CallCallee(r Ref) Ref {
	c := s.Children(r)
	if len(c) == 0 {
		return Broken
	}
	return c[0]
}

func (s *Store) CallArgs(r Ref) []Ref {
	c := s.Children(r)
	if len(c) <= 1 {
		return nil
	}
	return c[1:]
}

// NewMember constructs a member access (base.name or base->name,
// depending on whether base is a struct lvalue or a pointer-to-struct).
// fieldIndex is the struct's field index, used directly by the emitter's
// GEP.
func (s *Store) NewMember(base Ref, fieldIndex int, typ types.ID, cat Category, span source.Span) Ref {
	r := s.New(ExprMember, span)
	s.Set(r, Node{Tag: ExprMember, Type: typ, Category: cat, IntVal: int64(fieldIndex), Span: span})
	s.AddChild(r, base)
	return r
}

func (s *Store) MemberBase(r Ref) Ref        { return s.firstChild(r) }
func (s *Store) MemberFieldIndex(r Ref) int  { return int(s.Node(r).IntVal) }

// NewCast constructs a cast expression. build_cast (internal/builder)
// handles the no-op and literal-rewrite special cases before ever
// calling this; by the time this is called a real cast node is wanted.
func (s *Store) NewCast(target types.ID, expr Ref, span source.Span) Ref {
	r := s.New(ExprCast, span)
	s.Set(r, Node{Tag: ExprCast, Type: target, Category: RValue, Span: span})
	s.AddChild(r, expr)
	return r
}

func (s *Store) CastOperand(r Ref) Ref { return s.firstChild(r) }

// NewUnary constructs a unary expression with a given operator spelling
// (e.g. "++pre", "++post", "&", "*", "abs", "-", "~", "!", "upb").
func (s *Store) NewUnary(op string, operand Ref, typ types.ID, cat Category, span source.Span) Ref {
	r := s.New(ExprUnary, span)
	s.Set(r, Node{Tag: ExprUnary, Type: typ, Category: cat, Op: op, Span: span})
	s.AddChild(r, operand)
	return r
}

func (s *Store) UnaryOp(r Ref) string  { return s.Node(r).Op }
func (s *Store) UnaryOperand(r Ref) Ref { return s.firstChild(r) }

// NewBinary constructs a binary expression.
func (s *Store) NewBinary(op string, lhs, rhs Ref, typ types.ID, span source.Span) Ref {
	r := s.New(ExprBinary, span)
	s.Set(r, Node{Tag: ExprBinary, Type: typ, Category: RValue, Op: op, Span: span})
	s.AddChild(r, lhs)
	s.AddChild(r, rhs)
	return r
}

func (s *Store) BinaryOp(r Ref) string { return s.Node(r).Op }
func (s *Store) BinaryLHS(r Ref) Ref   { return s.firstChild(r) }
func (s *Store) BinaryRHS(r Ref) Ref   { return s.secondChild(r) }

// NewTernary constructs a ternary (cond ? lhs : rhs) expression.
func (s *Store) NewTernary(cond, lhs, rhs Ref, typ types.ID, span source.Span) Ref {
	r := s.New(ExprTernary, span)
	s.Set(r, Node{Tag: ExprTernary, Type: typ, Category: RValue, Span: span})
	s.AddChild(r, cond)
	s.AddChild(r, lhs)
	s.AddChild(r, rhs)
	return r
}

func (s *Store) TernaryCond(r Ref) Ref { return s.firstChild(r) }
func (s *Store) TernaryLHS(r Ref) Ref  { return s.secondChild(r) }
func (s *Store) TernaryRHS(r Ref) Ref  { return s.thirdChild(r) }

// NewInitializer constructs an initializer-list expression; its type is
// stamped later, during check_assignment_operands (§4.1.8).
func (s *Store) NewInitializer(elems []Ref, span source.Span) Ref {
	r := s.New(ExprInitializer, span)
	s.Set(r, Node{Tag: ExprInitializer, Category: RValue, Span: span})
	for _, e := range elems {
		s.AddChild(r, e)
	}
	return r
}

func (s *Store) InitializerElems(r Ref) []Ref { return s.Children(r) }

// NewInlineCompound constructs the synthetic void-typed expression used
// to sequence the statements a composite print desugars into (§4.1.6).
func (s *Store) NewInlineCompound(stmts []Ref, voidType types.ID, span source.Span) Ref {
	r := s.New(ExprInlineCompound, span)
	s.Set(r, Node{Tag: ExprInlineCompound, Type: voidType, Category: RValue, Span: span})
	for _, st := range stmts {
		s.AddChild(r, st)
	}
	return r
}

func (s *Store) InlineCompoundStatements(r Ref) []Ref { return s.Children(r) }

func (s *Store) firstChild(r Ref) Ref {
	c := s.Children(r)
	if len(c) == 0 {
		return Broken
	}
	return c[0]
}

func (s *Store) secondChild(r Ref) Ref {
	c := s.Children(r)
	if len(c) < 2 {
		return Broken
	}
	return c[1]
}

func (s *Store) thirdChild(r Ref) Ref {
	c := s.Children(r)
	if len(c) < 3 {
		return Broken
	}
	return c[2]
}
