// internal/config/normalize.go
package config

import (
	"time"

	"github.com/NathanMoore4472/modscan-tool/internal/decode"
)

// Defaults applied by Normalize.
const (
	DefaultPort       = 502
	DefaultTimeoutMs  = 2000
	DefaultIntervalMs = 1000
	MinIntervalMs     = 100
)

// Normalize fills defaults and clamps values.
// It is allowed to mutate the profile.
// It MUST be called only after Validate().
func Normalize(p *Profile) {
	if p == nil {
		return
	}

	if p.Connection.Port == 0 {
		p.Connection.Port = DefaultPort
	}
	if p.Connection.TimeoutMs == 0 {
		p.Connection.TimeoutMs = DefaultTimeoutMs
	}

	if p.Poll.IntervalMs == 0 {
		p.Poll.IntervalMs = DefaultIntervalMs
	}
	if p.Poll.IntervalMs < MinIntervalMs {
		p.Poll.IntervalMs = MinIntervalMs
	}
}

// ---- derived views ----

// DecodeOptions converts the profile's option toggles into the
// decoder's explicit value form.
func (p *Profile) DecodeOptions() decode.Options {
	return decode.Options{
		ReverseByteOrder:    p.Options.ReverseByteOrder,
		ReverseWordOrder:    p.Options.ReverseWordOrder,
		ZeroBasedAddressing: p.Options.ZeroBasedAddressing,
	}
}

// ProtocolStart translates the stored display start address to the
// wire address.
func (p *Profile) ProtocolStart() uint16 {
	return uint16(decode.ToProtocol(p.Read.Start, p.Options.ZeroBasedAddressing))
}

// FC maps the read kind to its Modbus function code.
func (p *Profile) FC() uint8 {
	switch p.Read.Kind {
	case KindCoils:
		return 1
	case KindDiscrete:
		return 2
	case KindHolding:
		return 3
	case KindInput:
		return 4
	}
	return 0
}

// Timeout returns the connection timeout as a duration.
func (p *Profile) Timeout() time.Duration {
	return time.Duration(p.Connection.TimeoutMs) * time.Millisecond
}

// Interval returns the poll interval as a duration.
func (p *Profile) Interval() time.Duration {
	return time.Duration(p.Poll.IntervalMs) * time.Millisecond
}
