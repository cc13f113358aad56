package main

import (
	"github.com/spf13/cobra"

	"github.com/NathanMoore4472/modscan-tool/internal/config"
	"github.com/NathanMoore4472/modscan-tool/internal/tags"
)

// addScanFlags wires the flags shared by every scanning subcommand.
// Defaults mirror the profile defaults; a --config file supplies the
// base values and explicitly set flags override it.
func addScanFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	f.String("config", "", "scan profile YAML file")

	f.String("host", "", "device IP address or hostname")
	f.Int("port", config.DefaultPort, "TCP port")
	f.Int("unit", 1, "Modbus unit ID (0-255)")
	f.Int("timeout", config.DefaultTimeoutMs, "request timeout in milliseconds")

	f.String("kind", config.KindHolding, "register kind: holding, input, coils, discrete")
	f.Int("start", 0, "start address (display addressing)")
	f.Int("count", 10, "number of registers or bits to read")

	f.Bool("reverse-bytes", false, "swap high/low byte within each register")
	f.Bool("reverse-words", false, "swap word order when combining 32-bit values")
	f.Bool("one-based", false, "use 1-based display addressing")
	f.Bool("individual", false, "read each register individually (slower, tolerates holes)")

	f.String("tags", "", "tag file to overlay names from")
	f.Bool("bits", false, "expand the 16 bit sub-rows of each register")
}

// buildProfile resolves the effective profile: config file first (if
// any), then flag overrides, then Validate and Normalize.
func buildProfile(cmd *cobra.Command) (*config.Profile, error) {
	f := cmd.Flags()

	var p *config.Profile
	if path, _ := f.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		p = loaded
	} else {
		p = &config.Profile{}
		p.Read.Kind = config.KindHolding
		p.Options.ZeroBasedAddressing = true
	}

	setStr := func(name string, dst *string) {
		v, _ := f.GetString(name)
		if f.Changed(name) || (*dst == "" && v != "") {
			*dst = v
		}
	}
	setInt := func(name string, dst *int) {
		if f.Changed(name) {
			if v, err := f.GetInt(name); err == nil {
				*dst = v
			}
		}
	}

	setStr("host", &p.Connection.Host)
	setInt("port", &p.Connection.Port)
	setInt("unit", &p.Connection.UnitID)
	setInt("timeout", &p.Connection.TimeoutMs)
	setStr("kind", &p.Read.Kind)
	setInt("start", &p.Read.Start)
	setInt("count", &p.Read.Count)

	if f.Changed("reverse-bytes") {
		p.Options.ReverseByteOrder, _ = f.GetBool("reverse-bytes")
	}
	if f.Changed("reverse-words") {
		p.Options.ReverseWordOrder, _ = f.GetBool("reverse-words")
	}
	if f.Changed("one-based") {
		oneBased, _ := f.GetBool("one-based")
		p.Options.ZeroBasedAddressing = !oneBased
	}
	if f.Changed("individual") {
		p.Poll.Individual, _ = f.GetBool("individual")
	}

	// Flag-only invocations default count when left at zero.
	if p.Read.Count == 0 {
		p.Read.Count, _ = f.GetInt("count")
	}
	if !p.Options.ZeroBasedAddressing && p.Read.Start == 0 && !f.Changed("start") {
		p.Read.Start = 1
	}

	if err := config.Validate(p); err != nil {
		return nil, err
	}
	config.Normalize(p)
	return p, nil
}

// loadTags builds the tag table for a scan: empty unless --tags names
// a file, whose entries load as the imported source.
func loadTags(cmd *cobra.Command) (*tags.Table, error) {
	tbl := tags.NewTable()

	path, _ := cmd.Flags().GetString("tags")
	if path == "" {
		return tbl, nil
	}

	m, err := tags.LoadFile(path)
	if err != nil {
		return nil, err
	}
	tbl.Import(m)
	return tbl, nil
}
