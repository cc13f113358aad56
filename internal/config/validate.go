// internal/config/validate.go
package config

import (
	"fmt"
)

// Per-request quantity limits from the Modbus spec: 125 registers
// for FC 3/4, 2000 bits for FC 1/2.
const (
	MaxRegisterCount = 125
	MaxBitCount      = 2000
)

// Validate checks profile correctness.
// It performs declarative validation only.
// It MUST NOT mutate the profile.
func Validate(p *Profile) error {
	// ------------------------------------------------------------
	// CONNECTION
	// ------------------------------------------------------------

	if p.Connection.Host == "" {
		return fmt.Errorf("connection: host is required")
	}
	if p.Connection.Port != 0 && (p.Connection.Port < 1 || p.Connection.Port > 65535) {
		return fmt.Errorf("connection: port must be between 1 and 65535")
	}
	if p.Connection.UnitID < 0 || p.Connection.UnitID > 255 {
		return fmt.Errorf("connection: unit_id must be between 0 and 255")
	}
	if p.Connection.TimeoutMs < 0 {
		return fmt.Errorf("connection: timeout_ms must not be negative")
	}

	// ------------------------------------------------------------
	// READ GEOMETRY
	// ------------------------------------------------------------

	isBit := false
	switch p.Read.Kind {
	case KindHolding, KindInput:
	case KindCoils, KindDiscrete:
		isBit = true
	default:
		return fmt.Errorf("read: unknown kind %q", p.Read.Kind)
	}

	// Start bounds depend on the addressing mode: the profile stores
	// the user-facing display address.
	if p.Options.ZeroBasedAddressing {
		if p.Read.Start < 0 || p.Read.Start > 65535 {
			return fmt.Errorf("read: start must be between 0 and 65535 (0-based)")
		}
	} else {
		if p.Read.Start < 1 || p.Read.Start > 65536 {
			return fmt.Errorf("read: start must be between 1 and 65536 (1-based)")
		}
	}

	maxCount := MaxRegisterCount
	if isBit {
		maxCount = MaxBitCount
	}
	if p.Read.Count < 1 || p.Read.Count > maxCount {
		return fmt.Errorf("read: count must be between 1 and %d for kind %q", maxCount, p.Read.Kind)
	}

	limit := 65536
	if !p.Options.ZeroBasedAddressing {
		limit = 65537
	}
	if p.Read.Start+p.Read.Count > limit {
		return fmt.Errorf("read: range exceeds maximum address")
	}

	// ------------------------------------------------------------
	// POLL
	// ------------------------------------------------------------

	if p.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must not be negative")
	}

	return nil
}
