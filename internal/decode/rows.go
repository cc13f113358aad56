// internal/decode/rows.go
package decode

// Row is the fully decoded, decorated view of one scanned element.
// Fixed shape: optional 32-bit views carry their own availability
// flags instead of being omitted, so "missing" can never read as 0.
type Row struct {
	Protocol uint16 // wire address
	Address  int    // display address
	Tag      string

	// Err renders the whole row as an error indicator.
	// All other value fields are zero and must not be shown.
	Err error

	// Bit-type element (coil / discrete input).
	IsBit    bool
	BitValue bool

	// Register element.
	Word  Word
	Dword Dword
	Bits  [16]BitView
}

// BuildRows runs one full decode pass: one Row per reading, in input
// order. Pure function of its arguments; the result is a snapshot
// the caller may hand to any presentation layer.
//
// start is the protocol address of readings[0]. tags may be nil.
// One errored element never aborts decoding of its siblings.
func BuildRows(readings []Reading, start uint16, opts Options, tags TagSource) []Row {
	rows := make([]Row, 0, len(readings))

	for i, r := range readings {
		proto := start + uint16(i)
		row := Row{
			Protocol: proto,
			Address:  ToDisplay(int(proto), opts.ZeroBasedAddressing),
		}

		if r.Err != nil {
			row.Err = r.Err
			rows = append(rows, row)
			continue
		}

		row.Tag = lookupTag(tags, proto, WholeRegister)

		if r.IsBit {
			row.IsBit = true
			row.BitValue = r.Bit
			rows = append(rows, row)
			continue
		}

		row.Word = DecodeWord(r.Value, opts.ReverseByteOrder)

		var second *Reading
		if i+1 < len(readings) {
			second = &readings[i+1]
		}
		row.Dword = DecodeDword(r.Value, second, opts.ReverseByteOrder, opts.ReverseWordOrder)

		row.Bits = ExpandBits(row.Word.Unsigned, opts.ZeroBasedAddressing, func(bit int) string {
			return lookupTag(tags, proto, bit)
		})

		rows = append(rows, row)
	}

	return rows
}

func lookupTag(tags TagSource, addr uint16, bit int) string {
	if tags == nil {
		return ""
	}
	name, ok := tags.Tag(addr, bit)
	if !ok {
		return ""
	}
	return name
}
