// Package types implements the closed type lattice of the RuC semantic
// core: a fixed set of scalar kinds plus structurally-deduplicated
// pointer/array/struct/function composites.
package types

import (
	"fmt"
	"strings"
)

// Kind tags a type's class.
type Kind int

const (
	Invalid Kind = iota
	Void
	NullPointer
	Bool
	Char
	Int
	Float
	Enum
	EnumField
	File
	Vararg
	Pointer
	Array
	Struct
	Function
)

func (k Kind) String() string {
	switch k {
	case Void:
		return "void"
	case NullPointer:
		return "null-pointer"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Int:
		return "int"
	case Float:
		return "float"
	case Enum:
		return "enum"
	case EnumField:
		return "enum-field"
	case File:
		return "file"
	case Vararg:
		return "vararg"
	case Pointer:
		return "pointer"
	case Array:
		return "array"
	case Struct:
		return "struct"
	case Function:
		return "function"
	default:
		return "invalid"
	}
}

// ID identifies a type uniquely within a Table. Primitive kinds occupy a
// fixed, stable prefix; composite kinds are allocated on first structural
// use.
type ID int

const (
	InvalidID ID = iota
	VoidID
	NullPointerID
	BoolID
	CharID
	IntID
	FloatID
	FileID
	VarargID
	firstDynamicID // composite/enum ids start here
)

// Field is one member of a struct type: a name (interned elsewhere, kept
// here as a plain string to keep this package free of a symtab
// dependency) and its type.
type Field struct {
	Name string
	Type ID
}

// entry is the structural payload for a composite or enum-field type.
type entry struct {
	kind     Kind
	elem     ID      // Pointer, Array: element type; EnumField: owning enum
	fields   []Field // Struct
	ret      ID      // Function: return type
	params   []ID    // Function: parameter types
	enumName string  // Enum: a display name, for diagnostics only
}

// Table is the per-compilation type registry. It owns every type id and
// deduplicates composite types by structural key, mirroring the registry
// pattern (Register/Lookup over a keyed map) used throughout the
// teacher's runtime type system.
type Table struct {
	entries []entry       // indexed by ID - firstDynamicID
	byKey   map[string]ID // structural key -> id
	nextID  ID
}

// NewTable creates a Table with the fixed primitive ids pre-populated.
func NewTable() *Table {
	t := &Table{
		byKey:  make(map[string]ID),
		nextID: firstDynamicID,
	}
	return t
}

func (t *Table) alloc(k Kind, e entry) ID {
	id := t.nextID
	t.nextID++
	e.kind = k
	t.entries = append(t.entries, e)
	return id
}

func (t *Table) get(id ID) entry {
	if id < firstDynamicID {
		return entry{kind: primitiveKind(id)}
	}
	idx := int(id - firstDynamicID)
	if idx < 0 || idx >= len(t.entries) {
		return entry{}
	}
	return t.entries[idx]
}

func primitiveKind(id ID) Kind {
	switch id {
	case VoidID:
		return Void
	case NullPointerID:
		return NullPointer
	case BoolID:
		return Bool
	case CharID:
		return Char
	case IntID:
		return Int
	case FloatID:
		return Float
	case FileID:
		return File
	case VarargID:
		return Vararg
	default:
		return Invalid
	}
}

// Kind returns the class tag of id.
func (t *Table) Kind(id ID) Kind {
	return t.get(id).kind
}

// NextID returns one past the highest type id ever allocated, so callers
// can range over every composite/enum type a Table has produced (used by
// the emitter's struct-type-definition pass, §6).
func (t *Table) NextID() ID {
	return t.nextID
}

// FirstDynamicID returns the first id a composite or enum type can
// occupy; every id below it is one of the fixed primitive kinds.
func (t *Table) FirstDynamicID() ID {
	return firstDynamicID
}

// PointerTo returns the (deduplicated) type id for pointer(elem).
func (t *Table) PointerTo(elem ID) ID {
	key := fmt.Sprintf("p(%d)", elem)
	if id, ok := t.byKey[key]; ok {
		return id
	}
	id := t.alloc(Pointer, entry{elem: elem})
	t.byKey[key] = id
	return id
}

// ArrayOf returns the (deduplicated) type id for array(elem). Rank is
// tracked by nesting ArrayOf calls, per §3.
func (t *Table) ArrayOf(elem ID) ID {
	key := fmt.Sprintf("a(%d)", elem)
	if id, ok := t.byKey[key]; ok {
		return id
	}
	id := t.alloc(Array, entry{elem: elem})
	t.byKey[key] = id
	return id
}

// StructOf returns the (deduplicated) type id for a struct with the given
// ordered fields. Field order is part of the structural key: two structs
// with the same fields in different order are distinct types.
func (t *Table) StructOf(fields []Field) ID {
	var sb strings.Builder
	sb.WriteString("s(")
	for _, f := range fields {
		fmt.Fprintf(&sb, "%s:%d,", f.Name, f.Type)
	}
	sb.WriteByte(')')
	key := sb.String()
	if id, ok := t.byKey[key]; ok {
		return id
	}
	cp := make([]Field, len(fields))
	copy(cp, fields)
	id := t.alloc(Struct, entry{fields: cp})
	t.byKey[key] = id
	return id
}

// FunctionOf returns the (deduplicated) type id for function(ret, params...).
func (t *Table) FunctionOf(ret ID, params []ID) ID {
	var sb strings.Builder
	fmt.Fprintf(&sb, "f(%d;", ret)
	for _, p := range params {
		fmt.Fprintf(&sb, "%d,", p)
	}
	sb.WriteByte(')')
	key := sb.String()
	if id, ok := t.byKey[key]; ok {
		return id
	}
	cp := make([]ID, len(params))
	copy(cp, params)
	id := t.alloc(Function, entry{ret: ret, params: cp})
	t.byKey[key] = id
	return id
}

// DeclareEnum allocates a fresh enum type (enums are nominal, not
// structural: two `enum` declarations never unify even with identical
// fields).
func (t *Table) DeclareEnum(name string) ID {
	return t.alloc(Enum, entry{enumName: name})
}

// EnumFieldOf returns the enum-field(enum) type for the given enum id.
func (t *Table) EnumFieldOf(enum ID) ID {
	key := fmt.Sprintf("ef(%d)", enum)
	if id, ok := t.byKey[key]; ok {
		return id
	}
	id := t.alloc(EnumField, entry{elem: enum})
	t.byKey[key] = id
	return id
}

// StringType is pointer(char), per §3 ("string is pointer(char), an alias").
func (t *Table) StringType() ID {
	return t.PointerTo(CharID)
}

// ElemType returns the element type of a Pointer or Array type, or
// InvalidID if id is neither.
func (t *Table) ElemType(id ID) ID {
	e := t.get(id)
	if e.kind != Pointer && e.kind != Array {
		return InvalidID
	}
	return e.elem
}

// EnumOf returns the owning enum of an EnumField type, or InvalidID.
func (t *Table) EnumOf(id ID) ID {
	e := t.get(id)
	if e.kind != EnumField {
		return InvalidID
	}
	return e.elem
}

// Fields returns a struct type's ordered field list, or nil if id is not
// a Struct.
func (t *Table) Fields(id ID) []Field {
	e := t.get(id)
	if e.kind != Struct {
		return nil
	}
	return e.fields
}

// FieldIndex returns the index of name within a struct's fields, and
// whether it was found.
func (t *Table) FieldIndex(id ID, name string) (int, bool) {
	for i, f := range t.Fields(id) {
		if f.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Return and Params expose a Function type's signature.
func (t *Table) Return(id ID) ID {
	return t.get(id).ret
}

func (t *Table) Params(id ID) []ID {
	return t.get(id).params
}

// ---- predicates (§3) ----

// IsInteger reports whether id is an integer-like type: int, char, bool,
// enum, enum-field. (bool/char participate in integer arithmetic in this
// language's C-dialect semantics.)
func (t *Table) IsInteger(id ID) bool {
	switch t.Kind(id) {
	case Int, Char, Bool, Enum, EnumField:
		return true
	default:
		return false
	}
}

// IsFloating reports whether id is the float type.
func (t *Table) IsFloating(id ID) bool {
	return t.Kind(id) == Float
}

// IsArithmetic reports whether id is integer-like or floating.
func (t *Table) IsArithmetic(id ID) bool {
	return t.IsInteger(id) || t.IsFloating(id)
}

// IsPointer reports whether id is a pointer type.
func (t *Table) IsPointer(id ID) bool {
	return t.Kind(id) == Pointer
}

// IsScalar reports whether id is arithmetic, pointer, or null-pointer.
func (t *Table) IsScalar(id ID) bool {
	return t.IsArithmetic(id) || t.IsPointer(id) || t.Kind(id) == NullPointer
}

// IsArray reports whether id is an array type.
func (t *Table) IsArray(id ID) bool {
	return t.Kind(id) == Array
}

// IsStruct reports whether id is a struct type.
func (t *Table) IsStruct(id ID) bool {
	return t.Kind(id) == Struct
}

// IsVoid reports whether id is void.
func (t *Table) IsVoid(id ID) bool {
	return t.Kind(id) == Void
}

// Equal reports whether two ids name the same type. Because composite
// types are structurally deduplicated, equality is just id equality.
func (t *Table) Equal(a, b ID) bool {
	return a == b
}

// String renders a type for diagnostics.
func (t *Table) String(id ID) string {
	e := t.get(id)
	switch e.kind {
	case Pointer:
		if id == t.StringType() {
			return "string"
		}
		return "pointer(" + t.String(e.elem) + ")"
	case Array:
		return "array(" + t.String(e.elem) + ")"
	case Struct:
		var sb strings.Builder
		sb.WriteString("struct{")
		for i, f := range e.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
		}
		sb.WriteString("}")
		return sb.String()
	case Function:
		var sb strings.Builder
		sb.WriteString(t.String(e.ret))
		sb.WriteString("(")
		for i, p := range e.params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(t.String(p))
		}
		sb.WriteString(")")
		return sb.String()
	case Enum:
		if e.enumName != "" {
			return "enum " + e.enumName
		}
		return "enum"
	case EnumField:
		return "enum-field(" + t.String(e.elem) + ")"
	default:
		return e.kind.String()
	}
}
