// internal/decode/bits.go
package decode

// BitView is one of the 16 per-bit views of a register.
type BitView struct {
	Index   int  // protocol bit index, 0 = least-significant
	Display int  // label under the addressing mode; cosmetic only
	Value   bool // (word >> Index) & 1
	Tag     string
}

// ExpandBits produces all 16 bit views of a register word.
// The display index is a label-only renumbering (b+1 under 1-based
// addressing); bit 0 is always the LSB regardless of mode.
// No filtering: untagged bits are produced like any other.
func ExpandBits(word uint16, zeroBased bool, lookup func(bit int) string) [16]BitView {
	var out [16]BitView
	for b := 0; b < 16; b++ {
		v := BitView{
			Index:   b,
			Display: b,
			Value:   word>>b&1 == 1,
		}
		if !zeroBased {
			v.Display = b + 1
		}
		if lookup != nil {
			v.Tag = lookup(b)
		}
		out[b] = v
	}
	return out
}
