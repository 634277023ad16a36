package ast

import (
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/symtab"
	"github.com/Mexanobar/RuC/internal/types"
)

// NewVariableDecl constructs a scalar/struct variable declaration. init
// may be Broken if there is no initializer.
func (s *Store) NewVariableDecl(ident symtab.IdentID, typ types.ID, init Ref, span source.Span) Ref {
	r := s.New(DeclVariable, span)
	s.Set(r, Node{Tag: DeclVariable, Type: typ, Ident: ident, Span: span})
	if !init.IsBroken() {
		s.AddChild(r, init)
	}
	return r
}

func (s *Store) VariableDeclIdent(r Ref) symtab.IdentID { return s.Node(r).Ident }
func (s *Store) VariableDeclInit(r Ref) Ref {
	c := s.Children(r)
	if len(c) == 0 {
		return Broken
	}
	return c[0]
}

// NewArrayDecl constructs an array declaration. dims holds one expression
// per dimension (each either a constant-foldable int expression or a
// runtime expression); init may be Broken.
func (s *Store) NewArrayDecl(ident symtab.IdentID, typ types.ID, dims []Ref, init Ref, span source.Span) Ref {
	r := s.New(DeclArray, span)
	s.Set(r, Node{Tag: DeclArray, Type: typ, Ident: ident, IntVal: int64(len(dims)), Span: span})
	for _, d := range dims {
		s.AddChild(r, d)
	}
	if !init.IsBroken() {
		s.AddChild(r, init)
	}
	return r
}

func (s *Store) ArrayDeclIdent(r Ref) symtab.IdentID { return s.Node(r).Ident }

func (s *Store) ArrayDeclDims(r Ref) []Ref {
	n := s.Node(r)
	dimCount := int(n.IntVal)
	c := s.Children(r)
	if dimCount > len(c) {
		dimCount = len(c)
	}
	return c[:dimCount]
}

func (s *Store) ArrayDeclInit(r Ref) Ref {
	n := s.Node(r)
	dimCount := int(n.IntVal)
	c := s.Children(r)
	if len(c) <= dimCount {
		return Broken
	}
	return c[dimCount]
}

// NewParamDecl constructs a function parameter declaration.
func (s *Store) NewParamDecl(ident symtab.IdentID, typ types.ID, span source.Span) Ref {
	r := s.New(DeclParam, span)
	s.Set(r, Node{Tag: DeclParam, Type: typ, Ident: ident, Span: span})
	return r
}

func (s *Store) ParamDeclIdent(r Ref) symtab.IdentID { return s.Node(r).Ident }

// NewFunctionDecl constructs a function definition: params followed by
// the body compound statement.
func (s *Store) NewFunctionDecl(ident symtab.IdentID, typ types.ID, params []Ref, body Ref, span source.Span) Ref {
	r := s.New(DeclFunction, span)
	s.Set(r, Node{Tag: DeclFunction, Type: typ, Ident: ident, IntVal: int64(len(params)), Span: span})
	for _, p := range params {
		s.AddChild(r, p)
	}
	s.AddChild(r, body)
	return r
}

func (s *Store) FunctionDeclIdent(r Ref) symtab.IdentID { return s.Node(r).Ident }

func (s *Store) FunctionDeclParams(r Ref) []Ref {
	n := s.Node(r)
	count := int(n.IntVal)
	c := s.Children(r)
	if count > len(c) {
		count = len(c)
	}
	return c[:count]
}

func (s *Store) FunctionDeclBody(r Ref) Ref {
	n := s.Node(r)
	count := int(n.IntVal)
	c := s.Children(r)
	if len(c) <= count {
		return Broken
	}
	return c[count]
}
