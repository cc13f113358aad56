// internal/opf/opf_test.go
package opf

import (
	"bytes"
	"testing"

	"github.com/NathanMoore4472/modscan-tool/internal/decode"
	"github.com/NathanMoore4472/modscan-tool/internal/tags"
)

// blob builds a fake binary image: the strings joined by NUL runs, as
// the real format intersperses printable runs with binary structure.
func blob(strs ...string) []byte {
	var b bytes.Buffer
	b.Write([]byte{0x01, 0x00, 0xFE})
	for _, s := range strs {
		b.WriteString(s)
		b.Write([]byte{0x00, 0x00, 0x07})
	}
	return b.Bytes()
}

func TestExtractStrings(t *testing.T) {
	data := blob("Channel1", "abc", "Device <10.0.0.5>.2")

	strs := extractStrings(data, 4)

	// "abc" is below the minimum length and must be dropped.
	want := []string{"Channel1", "Device <10.0.0.5>.2"}
	if len(strs) != len(want) {
		t.Fatalf("got %v", strs)
	}
	for i := range want {
		if strs[i] != want[i] {
			t.Errorf("string %d: %q, want %q", i, strs[i], want[i])
		}
	}
}

func TestParse_ConnectionInfo(t *testing.T) {
	p, err := Parse(blob(
		"Modbus TCP Channel",
		"<192.168.1.50>.3",
		"<999.1.1.1>.9", // invalid octet, must be rejected
	))
	if err != nil {
		t.Fatal(err)
	}

	if p.IP != "192.168.1.50" {
		t.Errorf("ip: got %q", p.IP)
	}
	if p.UnitID != 3 {
		t.Errorf("unit id: got %d", p.UnitID)
	}
	if p.Port != 502 {
		t.Errorf("port: got %d", p.Port)
	}
	if len(p.IPs) != 1 {
		t.Errorf("invalid IP accepted: %v", p.IPs)
	}
}

func TestParse_RegistersAndRange(t *testing.T) {
	p, err := Parse(blob("40010", "40001.3", "40005", "40010"))
	if err != nil {
		t.Fatal(err)
	}

	if len(p.Registers) != 3 {
		t.Fatalf("registers: %v", p.Registers)
	}
	if p.Registers[0].Address != 1 || p.Registers[0].Bit != 3 {
		t.Errorf("first register: %+v", p.Registers[0])
	}
	if p.MinAddress != 1 || p.MaxAddress != 10 {
		t.Errorf("range: %d-%d", p.MinAddress, p.MaxAddress)
	}
	if p.ScanCount != 10 {
		t.Errorf("scan count: got %d", p.ScanCount)
	}
}

func TestParse_TagMappings(t *testing.T) {
	p, err := Parse(blob(
		"Pump_Status",
		"40001.2",
		"Flow_Rate",
		"Line 3 flow meter", // description between name and address
		"40005",
		"Rack 1 - Slot 2 - 3", // skip pattern, not a tag name
		"40006",
	))
	if err != nil {
		t.Fatal(err)
	}

	if len(p.Tags) < 2 {
		t.Fatalf("tags: %+v", p.Tags)
	}

	if p.Tags[0].Name != "Pump_Status" || p.Tags[0].Address != 1 || p.Tags[0].Bit != 2 {
		t.Errorf("tag 0: %+v", p.Tags[0])
	}

	var flow *Tag
	for i := range p.Tags {
		if p.Tags[i].Name == "Flow_Rate" {
			flow = &p.Tags[i]
		}
		if p.Tags[i].Name == "Rack 1 - Slot 2 - 3" {
			t.Errorf("skip pattern leaked into tags")
		}
	}
	if flow == nil {
		t.Fatal("Flow_Rate not recovered")
	}
	if flow.Address != 5 || flow.Bit != decode.WholeRegister {
		t.Errorf("Flow_Rate: %+v", flow)
	}
	if flow.Description != "Line 3 flow meter" {
		t.Errorf("description: %q", flow.Description)
	}
}

func TestProject_TagMap(t *testing.T) {
	p, err := Parse(blob("Motor_Run", "40003.0"))
	if err != nil {
		t.Fatal(err)
	}

	m := p.TagMap()
	if m[tags.Key{Address: 3, Bit: 0}] != "Motor_Run" {
		t.Errorf("tag map: %v", m)
	}
}

func TestParse_Empty(t *testing.T) {
	p, err := Parse([]byte{0x00, 0x01, 0x02})
	if err != nil {
		t.Fatal(err)
	}
	if p.ScanCount != 0 || p.IP != "" || p.UnitID != 1 {
		t.Errorf("empty project defaults: %+v", p)
	}
}
