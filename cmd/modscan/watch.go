package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/NathanMoore4472/modscan-tool/internal/config"
	"github.com/NathanMoore4472/modscan-tool/internal/poller"
	"github.com/NathanMoore4472/modscan-tool/internal/view"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Continuously read a register block in a live table",
		RunE:  runWatch,
	}
	addScanFlags(cmd)
	cmd.Flags().Int("interval", 0, "polling interval in milliseconds")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	profile, err := buildProfile(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("interval") {
		ms, _ := cmd.Flags().GetInt("interval")
		if ms < config.MinIntervalMs {
			ms = config.MinIntervalMs
		}
		profile.Poll.IntervalMs = ms
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

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	out := make(chan poller.Result)
	go p.Run(ctx, out)

	expandBits, _ := cmd.Flags().GetBool("bits")
	model := view.NewWatch(out, profile.DecodeOptions(), tagTable, expandBits)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
