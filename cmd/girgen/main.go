package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"girgen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "girgen",
	Short: "C API metadata model and binding-generator front door",
	Long:  `girgen ingests API descriptions into a cross-referenced type graph, checks that every reference resolves, and dumps the finished graph for binding generation`,
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel workers for description decoding (0=auto)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
