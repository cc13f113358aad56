// internal/decode/rows_test.go
package decode

import (
	"errors"
	"testing"
)

type mapTags map[[2]int]string

func (m mapTags) Tag(addr uint16, bit int) (string, bool) {
	name, ok := m[[2]int{int(addr), bit}]
	return name, ok
}

func TestBuildRows_RegisterRows(t *testing.T) {
	readings := []Reading{
		RegisterReading(0x1234),
		RegisterReading(0x03E8),
	}

	rows := BuildRows(readings, 100, Options{ZeroBasedAddressing: true}, nil)
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}

	r := rows[0]
	if r.Protocol != 100 || r.Address != 100 {
		t.Errorf("addresses: protocol=%d display=%d", r.Protocol, r.Address)
	}
	if r.Word.Unsigned != 0x1234 {
		t.Errorf("word: got %d", r.Word.Unsigned)
	}
	if !r.Dword.OK || r.Dword.Unsigned != 0x123403E8 {
		t.Errorf("dword: %+v", r.Dword)
	}

	// Last register has no right-hand neighbor.
	if rows[1].Dword.OK {
		t.Errorf("last row dword should be unavailable")
	}
}

// One bad register must not blank the table: siblings decode fully,
// and the register to its left loses only its 32-bit views.
func TestBuildRows_PartialFailure(t *testing.T) {
	readErr := errors.New("gateway target failed to respond")
	readings := []Reading{
		RegisterReading(0xBEEF),
		ErrorReading(readErr),
		RegisterReading(0x0001),
	}

	rows := BuildRows(readings, 0, Options{ZeroBasedAddressing: true}, nil)

	if rows[0].Err != nil {
		t.Fatalf("first row errored: %v", rows[0].Err)
	}
	if rows[0].Word.Unsigned != 0xBEEF {
		t.Errorf("first row word fields not computed: %+v", rows[0].Word)
	}
	if rows[0].Dword.OK || rows[0].Dword.FloatOK {
		t.Errorf("first row dword should be unavailable, got %+v", rows[0].Dword)
	}

	if !errors.Is(rows[1].Err, readErr) {
		t.Errorf("second row should carry the read error")
	}

	if rows[2].Err != nil || rows[2].Word.Unsigned != 1 {
		t.Errorf("third row should decode normally: %+v", rows[2])
	}
}

func TestBuildRows_BitType(t *testing.T) {
	readings := []Reading{BitReading(true), BitReading(false)}

	rows := BuildRows(readings, 10, Options{ZeroBasedAddressing: true}, nil)

	if !rows[0].IsBit || !rows[0].BitValue {
		t.Errorf("row 0: %+v", rows[0])
	}
	if !rows[1].IsBit || rows[1].BitValue {
		t.Errorf("row 1: %+v", rows[1])
	}
	if rows[0].Dword.OK {
		t.Errorf("bit rows have no 32-bit view")
	}
}

func TestBuildRows_OneBasedDisplay(t *testing.T) {
	rows := BuildRows([]Reading{RegisterReading(1)}, 0, Options{}, nil)
	if rows[0].Address != 1 {
		t.Errorf("display address: got %d, want 1", rows[0].Address)
	}
	if rows[0].Protocol != 0 {
		t.Errorf("protocol address changed: %d", rows[0].Protocol)
	}
	if rows[0].Bits[0].Display != 1 {
		t.Errorf("bit 0 label: got %d, want 1", rows[0].Bits[0].Display)
	}
}

func TestBuildRows_TagOverlay(t *testing.T) {
	tags := mapTags{
		{5, WholeRegister}: "Flow Rate",
		{5, 2}:             "Alarm",
	}

	withTags := BuildRows([]Reading{RegisterReading(0xCAFE)}, 5, Options{ZeroBasedAddressing: true}, tags)
	without := BuildRows([]Reading{RegisterReading(0xCAFE)}, 5, Options{ZeroBasedAddressing: true}, nil)

	if withTags[0].Tag != "Flow Rate" {
		t.Errorf("register tag: got %q", withTags[0].Tag)
	}
	if withTags[0].Bits[2].Tag != "Alarm" {
		t.Errorf("bit tag: got %q", withTags[0].Bits[2].Tag)
	}

	// Overlay only attaches labels: every numeric field is identical.
	if withTags[0].Word != without[0].Word || withTags[0].Dword != without[0].Dword {
		t.Errorf("tag overlay altered decoded values")
	}
}

func TestBuildRows_ReverseByteExpandsSwappedWord(t *testing.T) {
	rows := BuildRows([]Reading{RegisterReading(0x0180)}, 0, Options{
		ReverseByteOrder:    true,
		ZeroBasedAddressing: true,
	}, nil)

	// 0x0180 swapped is 0x8001: bits 0 and 15 set.
	if !rows[0].Bits[0].Value || !rows[0].Bits[15].Value {
		t.Errorf("bits expanded from unswapped word: %+v", rows[0].Bits)
	}
	if rows[0].Bits[7].Value || rows[0].Bits[8].Value {
		t.Errorf("unexpected bits set")
	}
}
