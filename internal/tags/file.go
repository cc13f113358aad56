// internal/tags/file.go
package tags

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/NathanMoore4472/modscan-tool/internal/decode"
)

// Tag file layout:
//
//	tags:
//	  - address: 100
//	    name: Flow Rate
//	  - address: 100
//	    bit: 3
//	    name: High Alarm
//
// Addresses are protocol (0-based wire) addresses. bit omitted or
// negative means the whole register.

type tagFile struct {
	Tags []tagEntry `yaml:"tags"`
}

type tagEntry struct {
	Address uint16 `yaml:"address"`
	Bit     *int   `yaml:"bit,omitempty"`
	Name    string `yaml:"name"`
}

// LoadFile reads a tag file into a key→name map.
func LoadFile(path string) (map[Key]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tf tagFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("tags: parse %s: %w", path, err)
	}

	out := make(map[Key]string, len(tf.Tags))
	for _, e := range tf.Tags {
		if e.Name == "" {
			continue
		}
		k := Key{Address: e.Address, Bit: decode.WholeRegister}
		if e.Bit != nil && *e.Bit >= 0 {
			if *e.Bit > 15 {
				return nil, fmt.Errorf("tags: address %d: bit %d out of range", e.Address, *e.Bit)
			}
			k.Bit = *e.Bit
		}
		out[k] = e.Name
	}
	return out, nil
}

// SaveFile writes a key→name map as a tag file, sorted by address
// then bit so the output is stable.
func SaveFile(path string, m map[Key]string) error {
	entries := make([]tagEntry, 0, len(m))
	for k, name := range m {
		e := tagEntry{Address: k.Address, Name: name}
		if k.Bit != decode.WholeRegister {
			bit := k.Bit
			e.Bit = &bit
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Address != entries[j].Address {
			return entries[i].Address < entries[j].Address
		}
		return bitOrder(entries[i].Bit) < bitOrder(entries[j].Bit)
	})

	data, err := yaml.Marshal(tagFile{Tags: entries})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func bitOrder(b *int) int {
	if b == nil {
		return -1
	}
	return *b
}
