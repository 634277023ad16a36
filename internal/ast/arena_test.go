package ast

import (
	"testing"

	"github.com/Mexanobar/RuC/internal/source"
	"github.com/Mexanobar/RuC/internal/types"
)

func TestAddChildSetsParent(t *testing.T) {
	s := NewStore()
	lit := s.NewLiteralInt(5, types.IntID, source.Span{})
	neg := s.NewUnary("-", lit, types.IntID, RValue, source.Span{})

	if s.Node(lit).Parent != neg {
		t.Fatalf("child's Parent should point back at the unary node")
	}
	if got := s.Children(neg); len(got) != 1 || got[0] != lit {
		t.Fatalf("Children(neg) = %v, want [%v]", got, lit)
	}
}

func TestRemoveTombstonesAndDetaches(t *testing.T) {
	s := NewStore()
	a := s.NewLiteralInt(2, types.IntID, source.Span{})
	b := s.NewLiteralInt(3, types.IntID, source.Span{})
	add := s.NewBinary("+", a, b, types.IntID, source.Span{})

	folded := s.NewLiteralInt(5, types.IntID, source.Span{})
	s.Remove(a)
	s.Remove(b)

	if !s.IsRemoved(a) || !s.IsRemoved(b) {
		t.Fatalf("removed operands should be tombstoned")
	}
	if len(s.Children(add)) != 0 {
		t.Fatalf("removed children should be detached from their parent")
	}
	_ = folded
}

func TestInsertReplacesChildPreservingParentLink(t *testing.T) {
	s := NewStore()
	a := s.NewLiteralInt(1, types.IntID, source.Span{})
	b := s.NewLiteralInt(2, types.IntID, source.Span{})
	bin := s.NewBinary("+", a, b, types.IntID, source.Span{})

	replacement := s.NewLiteralInt(99, types.IntID, source.Span{})
	s.Insert(bin, 0, replacement)

	if s.BinaryLHS(bin) != replacement {
		t.Fatalf("Insert should replace child 0")
	}
	if s.Node(replacement).Parent != bin {
		t.Fatalf("Insert should set the replacement's parent")
	}
}

func TestSwapExchangesChildren(t *testing.T) {
	s := NewStore()
	a := s.NewLiteralInt(1, types.IntID, source.Span{})
	b := s.NewLiteralInt(2, types.IntID, source.Span{})
	bin := s.NewBinary("+", a, b, types.IntID, source.Span{})

	s.Swap(bin, 0, 1)
	if s.BinaryLHS(bin) != b || s.BinaryRHS(bin) != a {
		t.Fatalf("Swap should exchange the two children")
	}
}

func TestCopyDetachesFromParent(t *testing.T) {
	s := NewStore()
	a := s.NewLiteralInt(7, types.IntID, source.Span{})
	neg := s.NewUnary("-", a, types.IntID, RValue, source.Span{})

	dup := s.Copy(neg)
	if dup == neg {
		t.Fatalf("Copy should allocate a fresh slot")
	}
	if s.Node(dup).Parent != Broken {
		t.Fatalf("a copied node should start detached")
	}
	if s.UnaryOperand(dup) != a {
		t.Fatalf("Copy should preserve the child list (shallow)")
	}
}

func TestBrokenSentinel(t *testing.T) {
	if !Broken.IsBroken() {
		t.Fatalf("Broken.IsBroken() should be true")
	}
	s := NewStore()
	if got := s.IfElse(s.NewIf(Broken, Broken, Broken, source.Span{})); !got.IsBroken() {
		t.Fatalf("an omitted else-branch should read back as Broken")
	}
}
