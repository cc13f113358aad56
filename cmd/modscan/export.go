package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/NathanMoore4472/modscan-tool/internal/decode"
	"github.com/NathanMoore4472/modscan-tool/internal/export"
	"github.com/NathanMoore4472/modscan-tool/internal/poller"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Read a register block once and write it as CSV",
		RunE:  runExport,
	}
	addScanFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "output file (default: timestamped name; '-' for stdout)")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	profile, err := buildProfile(cmd)
	if err != nil {
		return err
	}
	tagTable, err := loadTags(cmd)
	if err != nil {
		return err
	}

	p, closeClient, err := poller.Build(profile)
	if err != nil {
		return err
	}
	defer closeClient()

	res := p.PollOnce()
	if res.Failed() {
		return fmt.Errorf("read failed: %w", res.Err)
	}

	rows := decode.BuildRows(res.Readings, res.Start, profile.DecodeOptions(), tagTable)
	expandBits, _ := cmd.Flags().GetBool("bits")

	path, _ := cmd.Flags().GetString("output")
	if path == "-" {
		return export.WriteCSV(os.Stdout, rows, expandBits)
	}
	if path == "" {
		path = export.Filename(time.Now())
	}
	if err := writeCSVFile(path, rows, expandBits); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", path)
	return nil
}
