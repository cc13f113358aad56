// internal/tags/tags.go
package tags

import "github.com/NathanMoore4472/modscan-tool/internal/decode"

// Key addresses one taggable slot: a whole register or one bit of it.
type Key struct {
	Address uint16
	Bit     int // decode.WholeRegister for a whole-register tag
}

// Table holds two tag sources: an imported set (project file) and a
// user-override set. Overrides win on lookup and survive re-imports;
// the imported set is replaced wholesale and never mutated in place.
type Table struct {
	imported  map[Key]string
	overrides map[Key]string
}

func NewTable() *Table {
	return &Table{
		imported:  map[Key]string{},
		overrides: map[Key]string{},
	}
}

// Import replaces the imported tag set. The map is copied; the caller
// keeps ownership of its argument.
func (t *Table) Import(m map[Key]string) {
	imported := make(map[Key]string, len(m))
	for k, v := range m {
		imported[k] = v
	}
	t.imported = imported
}

// SetOverride records a user-entered tag name. An empty name removes
// the override, falling back to the imported set.
func (t *Table) SetOverride(k Key, name string) {
	if name == "" {
		delete(t.overrides, k)
		return
	}
	t.overrides[k] = name
}

// Tag resolves a name by exact key match, overrides first.
// Implements decode.TagSource.
func (t *Table) Tag(addr uint16, bit int) (string, bool) {
	k := Key{Address: addr, Bit: bit}
	if name, ok := t.overrides[k]; ok {
		return name, true
	}
	name, ok := t.imported[k]
	return name, ok
}

// Len reports the number of resolvable keys.
func (t *Table) Len() int {
	n := len(t.imported)
	for k := range t.overrides {
		if _, dup := t.imported[k]; !dup {
			n++
		}
	}
	return n
}

// Overrides returns a copy of the user-override set, for persistence.
func (t *Table) Overrides() map[Key]string {
	out := make(map[Key]string, len(t.overrides))
	for k, v := range t.overrides {
		out[k] = v
	}
	return out
}

var _ decode.TagSource = (*Table)(nil)
