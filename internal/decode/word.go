// internal/decode/word.go
package decode

import "fmt"

// Word is the multi-format view of one 16-bit register.
type Word struct {
	Hex      string // fixed 4 digits, uppercase, 0x-prefixed
	Binary   string // fixed 16 characters, MSB first
	Unsigned uint16
	Signed   int16
	ASCII    string // printable bytes only; "." when neither byte is printable
}

// SwapBytes swaps the high and low byte of a register.
func SwapBytes(raw uint16) uint16 {
	return (raw&0xFF)<<8 | raw>>8
}

// DecodeWord derives every per-register view from one raw value.
// Total function: no error conditions over any uint16 input.
func DecodeWord(raw uint16, reverseByte bool) Word {
	if reverseByte {
		raw = SwapBytes(raw)
	}

	w := Word{
		Hex:      fmt.Sprintf("0x%04X", raw),
		Binary:   fmt.Sprintf("%016b", raw),
		Unsigned: raw,
		Signed:   int16(raw),
	}

	// Best-effort 2-character ASCII: each byte in [32,126] contributes
	// its character, anything else contributes nothing.
	hi := byte(raw >> 8)
	lo := byte(raw & 0xFF)

	var chars []byte
	if hi >= 0x20 && hi <= 0x7E {
		chars = append(chars, hi)
	}
	if lo >= 0x20 && lo <= 0x7E {
		chars = append(chars, lo)
	}
	if len(chars) == 0 {
		w.ASCII = "."
	} else {
		w.ASCII = string(chars)
	}

	return w
}
