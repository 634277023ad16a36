package types

import "testing"

func TestStructuralDeduplication(t *testing.T) {
	tbl := NewTable()

	p1 := tbl.PointerTo(IntID)
	p2 := tbl.PointerTo(IntID)
	if p1 != p2 {
		t.Fatalf("pointer(int) should dedupe: got %d and %d", p1, p2)
	}

	a1 := tbl.ArrayOf(p1)
	a2 := tbl.ArrayOf(tbl.PointerTo(IntID))
	if a1 != a2 {
		t.Fatalf("array(pointer(int)) should dedupe: got %d and %d", a1, a2)
	}

	s1 := tbl.StructOf([]Field{{Name: "x", Type: IntID}, {Name: "y", Type: FloatID}})
	s2 := tbl.StructOf([]Field{{Name: "x", Type: IntID}, {Name: "y", Type: FloatID}})
	if s1 != s2 {
		t.Fatalf("identical struct shapes should dedupe: got %d and %d", s1, s2)
	}

	s3 := tbl.StructOf([]Field{{Name: "y", Type: FloatID}, {Name: "x", Type: IntID}})
	if s1 == s3 {
		t.Fatalf("struct field order is part of the structural key, must not dedupe")
	}
}

func TestEnumIsNominal(t *testing.T) {
	tbl := NewTable()
	e1 := tbl.DeclareEnum("Color")
	e2 := tbl.DeclareEnum("Color")
	if e1 == e2 {
		t.Fatalf("two enum declarations must never unify, even with the same name")
	}
}

func TestStringIsPointerToChar(t *testing.T) {
	tbl := NewTable()
	if tbl.StringType() != tbl.PointerTo(CharID) {
		t.Fatalf("string must be an alias for pointer(char)")
	}
}

func TestPredicates(t *testing.T) {
	tbl := NewTable()
	enum := tbl.DeclareEnum("E")
	ef := tbl.EnumFieldOf(enum)

	cases := []struct {
		id    ID
		arith bool
		scal  bool
		integ bool
	}{
		{IntID, true, true, true},
		{FloatID, true, true, false},
		{CharID, true, true, true},
		{BoolID, true, true, true},
		{ef, true, true, true},
		{tbl.PointerTo(IntID), false, true, false},
		{NullPointerID, false, true, false},
		{tbl.ArrayOf(IntID), false, false, false},
	}
	for _, c := range cases {
		if got := tbl.IsArithmetic(c.id); got != c.arith {
			t.Errorf("IsArithmetic(%v) = %v, want %v", tbl.String(c.id), got, c.arith)
		}
		if got := tbl.IsScalar(c.id); got != c.scal {
			t.Errorf("IsScalar(%v) = %v, want %v", tbl.String(c.id), got, c.scal)
		}
		if got := tbl.IsInteger(c.id); got != c.integ {
			t.Errorf("IsInteger(%v) = %v, want %v", tbl.String(c.id), got, c.integ)
		}
	}
}

func TestStructFieldLookup(t *testing.T) {
	tbl := NewTable()
	st := tbl.StructOf([]Field{{Name: "x", Type: IntID}, {Name: "y", Type: FloatID}})
	idx, ok := tbl.FieldIndex(st, "y")
	if !ok || idx != 1 {
		t.Fatalf("FieldIndex(y) = (%d, %v), want (1, true)", idx, ok)
	}
	if _, ok := tbl.FieldIndex(st, "z"); ok {
		t.Fatalf("FieldIndex(z) should not be found")
	}
}
