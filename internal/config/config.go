// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is one saved scan setup.
type Profile struct {
	Connection ConnectionConfig `yaml:"connection"`
	Read       ReadConfig       `yaml:"read"`
	Options    OptionsConfig    `yaml:"options"`
	Poll       PollConfig       `yaml:"poll"`
}

// ---- CONNECTION ----

type ConnectionConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	UnitID    int    `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- READ GEOMETRY ----

// Kind names mirror the four readable Modbus areas.
const (
	KindHolding  = "holding"
	KindInput    = "input"
	KindCoils    = "coils"
	KindDiscrete = "discrete"
)

type ReadConfig struct {
	Kind string `yaml:"kind"`
	// Start is a display address: interpreted under the configured
	// addressing mode and converted to a protocol address by Normalize.
	Start int `yaml:"start"`
	Count int `yaml:"count"`
}

// ---- DECODE OPTIONS ----

type OptionsConfig struct {
	ReverseByteOrder    bool `yaml:"reverse_byte_order"`
	ReverseWordOrder    bool `yaml:"reverse_word_order"`
	ZeroBasedAddressing bool `yaml:"zero_based_addressing"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int  `yaml:"interval_ms"`
	Individual bool `yaml:"read_individually"`
}

// Load reads a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &p, nil
}

// Save writes a profile as YAML.
func Save(path string, p *Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
