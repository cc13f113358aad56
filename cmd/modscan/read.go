package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NathanMoore4472/modscan-tool/internal/decode"
	"github.com/NathanMoore4472/modscan-tool/internal/export"
	"github.com/NathanMoore4472/modscan-tool/internal/poller"
	"github.com/NathanMoore4472/modscan-tool/internal/view"
)

func newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read a register block once and print the decoded table",
		RunE:  runRead,
	}
	addScanFlags(cmd)
	cmd.Flags().String("csv", "", "also write the snapshot to this CSV file")
	return cmd
}

func runRead(cmd *cobra.Command, args []string) error {
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
	fmt.Print(view.RenderTable(rows, expandBits, view.DefaultStyles()))

	if n := res.Errors(); n > 0 {
		fmt.Printf("%d of %d reads failed\n", n, len(res.Readings))
	}

	if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
		if err := writeCSVFile(csvPath, rows, expandBits); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", csvPath)
	}

	return nil
}

func writeCSVFile(path string, rows []decode.Row, expandBits bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteCSV(f, rows, expandBits)
}
