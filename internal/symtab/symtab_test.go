package symtab

import (
	"testing"

	"github.com/Mexanobar/RuC/internal/types"
)

func TestReprInternAndBind(t *testing.T) {
	repr := NewReprTable()
	idents := NewIdentTable(repr)

	if _, ok := repr.GetReference("x"); ok {
		t.Fatalf("x should be unbound before any declaration")
	}

	id := idents.Declare("x", types.IntID, 0)
	got, ok := repr.GetReference("x")
	if !ok || got != id {
		t.Fatalf("GetReference(x) = (%d, %v), want (%d, true)", got, ok, id)
	}
}

func TestShadowingRebindsCurrentReference(t *testing.T) {
	repr := NewReprTable()
	idents := NewIdentTable(repr)

	outer := idents.Declare("x", types.IntID, 0)
	inner := idents.Declare("x", types.FloatID, FlagLocal)

	got, _ := repr.GetReference("x")
	if got != inner {
		t.Fatalf("inner declaration should shadow outer: got %d, want %d (outer was %d)", got, inner, outer)
	}
}

func TestEnumFieldDisplacementStoresValue(t *testing.T) {
	repr := NewReprTable()
	idents := NewIdentTable(repr)
	tbl := types.NewTable()
	enum := tbl.DeclareEnum("Color")
	ef := tbl.EnumFieldOf(enum)

	id := idents.DeclareEnumField("Red", ef, 0)
	rec := idents.Get(id)
	if !rec.IsEnumField() {
		t.Fatalf("Red should be flagged as an enum field")
	}
	if rec.Displacement != 0 {
		t.Fatalf("Displacement = %d, want 0", rec.Displacement)
	}
}

func TestStringPoolDeduplicates(t *testing.T) {
	pool := NewStringPool()
	a := pool.Intern("hello")
	b := pool.Intern("hello")
	if a != b {
		t.Fatalf("identical string literals should share one pool entry")
	}
	if pool.Len(a) != len("hello") {
		t.Fatalf("Len = %d, want %d", pool.Len(a), len("hello"))
	}
}

func TestSortedNamesIsNaturalOrder(t *testing.T) {
	repr := NewReprTable()
	idents := NewIdentTable(repr)
	idents.Declare("_temporal_identifier_10_", types.IntID, 0)
	idents.Declare("_temporal_identifier_2_", types.IntID, 0)

	names := idents.SortedNames()
	if len(names) != 2 || names[0] != "_temporal_identifier_2_" || names[1] != "_temporal_identifier_10_" {
		t.Fatalf("SortedNames = %v, want natural order [..._2_, ..._10_]", names)
	}
}
