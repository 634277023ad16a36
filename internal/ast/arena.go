// Package ast implements the append-only AST node arena of spec.md §3 and
// the thin per-class expression/statement/declaration constructors of
// §4.1, reshaped from the teacher's one-struct-per-node-kind model into a
// single tagged, index-addressed arena as spec.md and
// original_source/libs/compiler/builder.c's `node`/`node_vector` require.
package ast

import (
	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/symtab"
	"github.com/Mexanobar/RuC/internal/types"
)

// Tag classifies a node's syntactic form.
type Tag int

const (
	Invalid Tag = iota

	// Expressions
	ExprIdentifier
	ExprLiteralNull
	ExprLiteralBool
	ExprLiteralChar
	ExprLiteralInt
	ExprLiteralFloat
	ExprLiteralString
	ExprSubscript
	ExprCall
	ExprMember
	ExprCast
	ExprUnary
	ExprBinary
	ExprTernary
	ExprInitializer
	ExprInlineCompound

	// Statements
	StmtIf
	StmtWhile
	StmtDo
	StmtFor
	StmtSwitch
	StmtCase
	StmtDefault
	StmtCompound
	StmtNull
	StmtBreak
	StmtContinue
	StmtReturn
	StmtDeclaration
	StmtLabeled
	StmtGoto
	StmtExpr

	// Declarations
	DeclVariable
	DeclArray
	DeclFunction
	DeclParam
)

// Category classifies an expression node as an lvalue or rvalue (§3).
type Category int

const (
	RValue Category = iota
	LValue
)

// Ref is an index into a Store's node arena. The negative Ref Broken is
// the reserved sentinel: "already reported, don't cascade" (§3, §7).
type Ref int

// Broken is returned by every builder entry point that detects an error
// which has already been diagnosed.
const Broken Ref = -1

// IsBroken reports whether r is the broken sentinel.
func (r Ref) IsBroken() bool { return r < 0 }

// Node is one arena record. It carries a class tag, a resolved type and
// lvalue/rvalue category (valid for expressions only), an operator or
// opcode string where relevant, integer/double/identifier/string
// payloads, an ordered child list, parent backlink, and source span.
type Node struct {
	Tag      Tag
	Type     types.ID
	Category Category

	Op string // operator spelling: "+", "++pre", "--post", "upb", etc.

	IntVal   int64
	FloatVal float64
	Ident    symtab.IdentID
	Str      symtab.StringID

	Children []Ref
	Parent   Ref

	Span source.Span

	removed bool
}

// Store is the append-only node arena. Node removal is logical: Remove
// tombstones a node rather than freeing its slot, so that any Ref taken
// before removal remains a valid (but dead) index.
type Store struct {
	nodes []Node
}

// NewStore creates an empty arena.
func NewStore() *Store {
	return &Store{}
}

// New allocates a fresh node with the given tag and span and returns its
// Ref.
func (s *Store) New(tag Tag, span source.Span) Ref {
	s.nodes = append(s.nodes, Node{Tag: tag, Span: span, Parent: Broken})
	return Ref(len(s.nodes) - 1)
}

// Node returns a copy of the node record for ref. Mutate via the Store
// setters below, not the returned copy.
func (s *Store) Node(ref Ref) Node {
	if ref.IsBroken() || int(ref) >= len(s.nodes) {
		return Node{Tag: Invalid, Parent: Broken}
	}
	return s.nodes[ref]
}

// Set replaces the node record at ref wholesale. Used by constructors
// after New to stamp type/category/payload fields.
func (s *Store) Set(ref Ref, n Node) {
	if ref.IsBroken() || int(ref) >= len(s.nodes) {
		return
	}
	n.Parent = s.nodes[ref].Parent
	s.nodes[ref] = n
}

// SetType stamps an expression node's resolved type and category.
func (s *Store) SetType(ref Ref, typ types.ID, cat Category) {
	if ref.IsBroken() || int(ref) >= len(s.nodes) {
		return
	}
	s.nodes[ref].Type = typ
	s.nodes[ref].Category = cat
}

// IsRemoved reports whether ref has been tombstoned.
func (s *Store) IsRemoved(ref Ref) bool {
	if ref.IsBroken() || int(ref) >= len(s.nodes) {
		return true
	}
	return s.nodes[ref].removed
}

// AddChild appends child to parent's child list and sets child's parent
// backlink. This is node_add_child.
func (s *Store) AddChild(parent, child Ref) {
	if parent.IsBroken() || child.IsBroken() {
		return
	}
	s.nodes[parent].Children = append(s.nodes[parent].Children, child)
	s.nodes[child].Parent = parent
}

// Insert replaces the child at index i of parent's child list with
// replacement, in place, preserving parent's position in its own parent.
// This is node_insert.
func (s *Store) Insert(parent Ref, i int, replacement Ref) {
	if parent.IsBroken() || i < 0 || i >= len(s.nodes[parent].Children) {
		return
	}
	s.nodes[parent].Children[i] = replacement
	if !replacement.IsBroken() {
		s.nodes[replacement].Parent = parent
	}
}

// Swap exchanges the i-th and j-th children of parent. This is node_swap.
func (s *Store) Swap(parent Ref, i, j int) {
	children := s.nodes[parent].Children
	if i < 0 || j < 0 || i >= len(children) || j >= len(children) {
		return
	}
	children[i], children[j] = children[j], children[i]
}

// Remove logically deletes ref: it is tombstoned and detached from its
// parent's child list, but its slot (and any Ref value pointing at it)
// stays valid. This is node_remove, used by constant folding to discard
// operand subtrees after replacing them with a literal.
func (s *Store) Remove(ref Ref) {
	if ref.IsBroken() || int(ref) >= len(s.nodes) {
		return
	}
	n := &s.nodes[ref]
	n.removed = true
	if !n.Parent.IsBroken() {
		parent := &s.nodes[n.Parent]
		for i, c := range parent.Children {
			if c == ref {
				parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
				break
			}
		}
	}
	for _, c := range n.Children {
		s.Remove(c)
	}
	n.Children = nil
}

// Copy duplicates ref's node (including a shallow copy of its child
// list, which continues to reference the same child Refs) into a fresh
// arena slot, detached from any parent. This is node_copy.
func (s *Store) Copy(ref Ref) Ref {
	if ref.IsBroken() {
		return Broken
	}
	n := s.nodes[ref]
	n.Parent = Broken
	n.Children = append([]Ref(nil), n.Children...)
	s.nodes = append(s.nodes, n)
	return Ref(len(s.nodes) - 1)
}

// Children returns the live child list of ref.
func (s *Store) Children(ref Ref) []Ref {
	return s.Node(ref).Children
}

// Len reports the number of slots ever allocated (including tombstoned
// ones).
func (s *Store) Len() int {
	return len(s.nodes)
}
