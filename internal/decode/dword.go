// internal/decode/dword.go
package decode

import "math"

// Dword is the 32-bit view spanning two adjacent registers.
// OK=false means the paired register is missing or errored; the
// numeric fields are then meaningless and MUST NOT be read as zero.
type Dword struct {
	OK       bool
	Unsigned uint32
	Signed   int32
	Float    float32
	FloatOK  bool
}

// DecodeDword combines a register with its right-hand neighbor into
// 32-bit views. second is nil at the end of the sequence.
//
// Byte order is applied to each register independently before
// combining. Word order decides which register is the high half.
func DecodeDword(first uint16, second *Reading, reverseByte, reverseWord bool) Dword {
	if second == nil || second.Err != nil || second.IsBit {
		return Dword{}
	}

	next := second.Value
	if reverseByte {
		first = SwapBytes(first)
		next = SwapBytes(next)
	}

	var combined uint32
	if reverseWord {
		combined = uint32(next)<<16 | uint32(first)
	} else {
		combined = uint32(first)<<16 | uint32(next)
	}

	return Dword{
		OK:       true,
		Unsigned: combined,
		Signed:   int32(combined),
		Float:    math.Float32frombits(combined),
		FloatOK:  true,
	}
}
