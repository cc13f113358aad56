package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "modscan",
		Short: "Modbus TCP register scanner",
		Long: `modscan reads Modbus TCP registers and decodes each one into
hex, binary, signed/unsigned 16- and 32-bit, IEEE-754 float and ASCII
views, with optional tag names imported from KEPServerEX projects.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newReadCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
