// internal/opf/opf.go
//
// Heuristic reader for KEPServerEX .opf project files. The format is
// an undocumented binary container; everything here works off the
// printable ASCII strings embedded in it: angle-bracketed IPs,
// <ip>.unitID suffixes, 4xxxx Modbus holding-register references and
// positional tag-name/description/address runs.
package opf

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/NathanMoore4472/modscan-tool/internal/decode"
	"github.com/NathanMoore4472/modscan-tool/internal/tags"
)

// DefaultPort is assumed for every imported device; the project
// format does not store the TCP port anywhere we can find it.
const DefaultPort = 502

// Register is one 4xxxx reference found in the project.
type Register struct {
	Address uint16 // digits after the leading 4
	Bit     int    // decode.WholeRegister when no .bit suffix
}

// Tag is one recovered tag mapping.
type Tag struct {
	Name        string
	Description string
	Address     uint16
	Bit         int // decode.WholeRegister when no .bit suffix
}

// Project is everything recovered from one .opf file.
type Project struct {
	IPs     []string
	UnitIDs []int

	// First-found convenience values, matching how the project is
	// usually authored (one channel, one device).
	IP     string
	UnitID int
	Port   int

	Registers  []Register // unique addresses, sorted
	MinAddress uint16
	MaxAddress uint16
	ScanCount  int // max - min + 1, covering the whole range

	Tags []Tag
}

var (
	ipPattern     = regexp.MustCompile(`<(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})>`)
	unitIDPattern = regexp.MustCompile(`<\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}>\.(\d+)`)

	// 4xxxx holding-register reference, optionally with a .bit suffix.
	registerPattern      = regexp.MustCompile(`4(\d{4})(?:\.(\d+))?`)
	registerExactPattern = regexp.MustCompile(`^4(\d{4})(?:\.(\d+))?$`)

	// Candidate tag names: word-ish strings longer than 3 characters.
	tagNamePattern = regexp.MustCompile(`^[\d_\-a-zA-Z][\w\s\-]*$`)

	skipPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^Rack \d+ - Slot \d+ - \d+$`),
		regexp.MustCompile(`^\*\.txt$`),
		regexp.MustCompile(`^V\d+\.\d+`),
	}
)

// ParseFile loads and scrapes one .opf file.
func ParseFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opf: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse scrapes an in-memory project image.
func Parse(data []byte) (*Project, error) {
	strings := extractStrings(data, 4)

	p := &Project{
		Port:   DefaultPort,
		UnitID: 1,
	}

	p.IPs = findIPs(strings)
	p.UnitIDs = findUnitIDs(strings)
	p.Registers = findRegisters(strings)
	p.Tags = findTags(strings)

	if len(p.IPs) > 0 {
		p.IP = p.IPs[0]
	}
	if len(p.UnitIDs) > 0 {
		p.UnitID = p.UnitIDs[0]
	}

	if len(p.Registers) > 0 {
		p.MinAddress = p.Registers[0].Address
		p.MaxAddress = p.Registers[len(p.Registers)-1].Address
		p.ScanCount = int(p.MaxAddress) - int(p.MinAddress) + 1
	}

	return p, nil
}

// TagMap converts the recovered tags into the overlay's key→name
// form, ready for tags.Table.Import.
func (p *Project) TagMap() map[tags.Key]string {
	out := make(map[tags.Key]string, len(p.Tags))
	for _, t := range p.Tags {
		out[tags.Key{Address: t.Address, Bit: t.Bit}] = t.Name
	}
	return out
}

// extractStrings pulls runs of printable ASCII of at least minLen
// bytes out of the binary image.
func extractStrings(data []byte, minLen int) []string {
	var out []string
	start := -1

	for i, b := range data {
		if b >= 0x20 && b <= 0x7E {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= minLen {
			out = append(out, string(data[start:i]))
		}
		start = -1
	}
	if start >= 0 && len(data)-start >= minLen {
		out = append(out, string(data[start:]))
	}
	return out
}

func findIPs(strs []string) []string {
	var out []string
	for _, s := range strs {
		for _, m := range ipPattern.FindAllStringSubmatch(s, -1) {
			if validIP(m[1]) {
				out = append(out, m[1])
			}
		}
	}
	return out
}

func validIP(ip string) bool {
	for _, part := range splitDots(ip) {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

func splitDots(s string) []string {
	var parts []string
	last := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			parts = append(parts, s[last:i])
			last = i + 1
		}
	}
	return parts
}

func findUnitIDs(strs []string) []int {
	var out []int
	for _, s := range strs {
		for _, m := range unitIDPattern.FindAllStringSubmatch(s, -1) {
			if id, err := strconv.Atoi(m[1]); err == nil {
				out = append(out, id)
			}
		}
	}
	return out
}

// findRegisters collects every 4xxxx reference, deduplicated by
// address (bit suffixes ignored for the range calculation) and
// sorted ascending.
func findRegisters(strs []string) []Register {
	seen := map[uint16]Register{}

	for _, s := range strs {
		for _, m := range registerPattern.FindAllStringSubmatch(s, -1) {
			addr64, err := strconv.ParseUint(m[1], 10, 16)
			if err != nil {
				continue
			}
			addr := uint16(addr64)
			if _, dup := seen[addr]; dup {
				continue
			}

			reg := Register{Address: addr, Bit: decode.WholeRegister}
			if m[2] != "" {
				if bit, err := strconv.Atoi(m[2]); err == nil {
					reg.Bit = bit
				}
			}
			seen[addr] = reg
		}
	}

	out := make([]Register, 0, len(seen))
	for _, r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}

// findTags recovers tag mappings by position: a name-like string
// followed within the next 3 strings by an exact 4xxxx[.bit] string.
// A non-address string sitting between them is taken as the
// description.
func findTags(strs []string) []Tag {
	var out []Tag

	for i, s := range strs {
		if len(s) <= 3 || !tagNamePattern.MatchString(s) {
			continue
		}
		if matchesSkip(s) {
			continue
		}

		for j := 1; j <= 3 && i+j < len(strs); j++ {
			m := registerExactPattern.FindStringSubmatch(strs[i+j])
			if m == nil {
				continue
			}

			addr64, err := strconv.ParseUint(m[1], 10, 16)
			if err != nil {
				break
			}

			tag := Tag{
				Name:    s,
				Address: uint16(addr64),
				Bit:     decode.WholeRegister,
			}
			if m[2] != "" {
				if bit, err := strconv.Atoi(m[2]); err == nil {
					tag.Bit = bit
				}
			}
			if j == 2 && !registerExactPattern.MatchString(strs[i+1]) {
				tag.Description = strs[i+1]
			}

			out = append(out, tag)
			break
		}
	}

	return out
}

func matchesSkip(s string) bool {
	for _, p := range skipPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
