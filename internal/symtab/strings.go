package symtab

// StringID indexes a literal into the StringPool.
type StringID int

// StringPool stores each distinct string-literal value once; a literal
// expression node references a pool index rather than carrying its own
// copy (§3).
type StringPool struct {
	values []string
	index  map[string]StringID
}

// NewStringPool creates an empty string pool.
func NewStringPool() *StringPool {
	return &StringPool{index: make(map[string]StringID)}
}

// Intern returns the id for value, allocating a new pool entry only if
// value has not been seen before.
func (p *StringPool) Intern(value string) StringID {
	if id, ok := p.index[value]; ok {
		return id
	}
	id := StringID(len(p.values))
	p.values = append(p.values, value)
	p.index[value] = id
	return id
}

// Value returns the literal text for id.
func (p *StringPool) Value(id StringID) string {
	if id < 0 || int(id) >= len(p.values) {
		return ""
	}
	return p.values[id]
}

// Len returns the number of byte, excluding the terminating null, of the
// pool entry's text (§3: "retain byte length excluding the terminating
// null").
func (p *StringPool) Len(id StringID) int {
	return len(p.Value(id))
}

// All returns every interned string in insertion order, the order in
// which `@.str.<N>` globals are emitted.
func (p *StringPool) All() []string {
	return p.values
}
