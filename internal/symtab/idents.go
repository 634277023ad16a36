package symtab

import "github.com/Mexanobar/RuC/internal/types"

// IdentID indexes into the IdentTable. Enum fields are identifiers whose
// Type is enum-field(T) and whose Displacement stores the field's integer
// value (§3).
type IdentID int

// NoIdent is the sentinel for "no identifier".
const NoIdent IdentID = -1

// Flags distinguishes a few cross-cutting identifier properties that the
// builder and emitter both need to consult.
type Flags uint8

const (
	FlagLocal Flags = 1 << iota
	FlagEnumField
	FlagConstant
)

// Ident is one identifier-table record: its interned spelling, resolved
// type, stack/global displacement, and flags.
type Ident struct {
	Repr         ReprID
	Type         types.ID
	Displacement int // for EnumField, the field's integer value
	Flags        Flags
}

// IsLocal reports whether this identifier is function-scope.
func (id Ident) IsLocal() bool { return id.Flags&FlagLocal != 0 }

// IsEnumField reports whether this identifier names an enum constant.
func (id Ident) IsEnumField() bool { return id.Flags&FlagEnumField != 0 }

// IdentTable is the append-only table of declared identifiers. Unlike the
// AST arena, identifiers are never removed (§3: "the builder is
// single-pass").
type IdentTable struct {
	repr    *ReprTable
	records []Ident
}

// NewIdentTable creates an identifier table backed by repr.
func NewIdentTable(repr *ReprTable) *IdentTable {
	return &IdentTable{repr: repr}
}

// Declare adds a new identifier named name with the given type/flags,
// binds it as the current reference for that name, and returns its id.
func (t *IdentTable) Declare(name string, typ types.ID, flags Flags) IdentID {
	repr := t.repr.Intern(name)
	id := IdentID(len(t.records))
	t.records = append(t.records, Ident{Repr: repr, Type: typ, Flags: flags})
	t.repr.Bind(repr, id)
	return id
}

// DeclareEnumField adds an enum-field identifier whose displacement holds
// its integer value.
func (t *IdentTable) DeclareEnumField(name string, enumFieldType types.ID, value int) IdentID {
	repr := t.repr.Intern(name)
	id := IdentID(len(t.records))
	t.records = append(t.records, Ident{
		Repr:         repr,
		Type:         enumFieldType,
		Displacement: value,
		Flags:        FlagEnumField,
	})
	t.repr.Bind(repr, id)
	return id
}

// Get returns the record for id.
func (t *IdentTable) Get(id IdentID) Ident {
	if id < 0 || int(id) >= len(t.records) {
		return Ident{}
	}
	return t.records[id]
}

// SetType updates an identifier's resolved type (used when a forward
// declaration is completed).
func (t *IdentTable) SetType(id IdentID, typ types.ID) {
	if id < 0 || int(id) >= len(t.records) {
		return
	}
	t.records[id].Type = typ
}

// Name returns the spelling of id.
func (t *IdentTable) Name(id IdentID) string {
	return t.repr.Spelling(t.Get(id).Repr)
}

// Repr returns the backing representation table, for lookups that need
// to resolve a spelling to an identifier without declaring it.
func (t *IdentTable) Repr() *ReprTable {
	return t.repr
}

// Len reports how many identifiers have been declared. This feeds the
// `_temporal_identifier_<n>_` naming scheme (§4.1.6).
func (t *IdentTable) Len() int {
	return len(t.records)
}

// SortedNames returns every declared identifier's spelling in natural
// (human) order, for deterministic debug listings such as
// `rucc dump-symbols`.
func (t *IdentTable) SortedNames() []string {
	names := make([]string, 0, len(t.records))
	seen := make(map[string]bool, len(t.records))
	for _, rec := range t.records {
		n := t.repr.Spelling(rec.Repr)
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sortNatural(names)
	return names
}
