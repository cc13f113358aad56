// internal/decode/address_test.go
package decode

import "testing"

// Round-trip law: toProtocol(toDisplay(x, m), m) == x for every
// protocol address and both addressing modes.
func TestAddressRoundTrip(t *testing.T) {
	for _, zeroBased := range []bool{true, false} {
		for x := 0; x <= 65535; x++ {
			if got := ToProtocol(ToDisplay(x, zeroBased), zeroBased); got != x {
				t.Fatalf("zeroBased=%v x=%d: round trip gave %d", zeroBased, x, got)
			}
		}
	}
}

func TestAddressKnownValues(t *testing.T) {
	// 1-based display shifts by one in both directions.
	if got := ToDisplay(0, false); got != 1 {
		t.Errorf("ToDisplay(0, 1-based) = %d, want 1", got)
	}
	if got := ToProtocol(100, false); got != 99 {
		t.Errorf("ToProtocol(100, 1-based) = %d, want 99", got)
	}

	// 0-based mode is the identity.
	if got := ToDisplay(42, true); got != 42 {
		t.Errorf("ToDisplay(42, 0-based) = %d", got)
	}
	if got := ToProtocol(42, true); got != 42 {
		t.Errorf("ToProtocol(42, 0-based) = %d", got)
	}
}
