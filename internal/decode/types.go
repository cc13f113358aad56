// internal/decode/types.go
package decode

// Reading is one polled value as delivered by the transport:
// a 16-bit register, a single bit (coil / discrete input), or
// a per-element read error.
type Reading struct {
	Value uint16
	Bit   bool
	IsBit bool
	Err   error // non-nil marks this element as a failed read
}

// RegisterReading wraps a raw 16-bit register value.
func RegisterReading(v uint16) Reading {
	return Reading{Value: v}
}

// BitReading wraps a coil / discrete input value.
func BitReading(b bool) Reading {
	return Reading{Bit: b, IsBit: true}
}

// ErrorReading marks one element of a scan as failed.
func ErrorReading(err error) Reading {
	return Reading{Err: err}
}

// Options is the per-cycle decode configuration.
// It is an explicit immutable value: one Options applies to every
// element of a batch, never read from ambient state.
type Options struct {
	ReverseByteOrder    bool
	ReverseWordOrder    bool
	ZeroBasedAddressing bool
}

// TagSource resolves display names for registers and bits.
// bit = WholeRegister asks for the whole-register name.
type TagSource interface {
	Tag(addr uint16, bit int) (string, bool)
}

// WholeRegister is the bit argument for a whole-register tag lookup.
const WholeRegister = -1
