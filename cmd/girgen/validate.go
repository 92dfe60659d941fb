package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"girgen/internal/diag"
	"girgen/internal/library"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] <file.toml|directory>",
	Short: "Ingest API descriptions and check that every type reference resolves",
	Long:  `Ingest one description file or a directory of descriptions, then sweep the whole library and report every type that was referenced but never defined`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().Bool("no-warnings", false, "drop warnings from the report")
}

func runValidate(cmd *cobra.Command, args []string) error {
	lib, bag, err := ingestPath(cmd, args[0])
	if err != nil {
		return err
	}

	bag.Merge(lib.Validate())
	bag.Sort()

	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	report := bag
	if noWarnings {
		report = diag.NewBag(bag.Len())
		for _, d := range bag.Items() {
			if d.Severity >= diag.SevError {
				report.Add(d)
			}
		}
	}

	w, err := diagWriter(cmd)
	if err != nil {
		return err
	}
	if err := w.Write(report); err != nil {
		return err
	}

	if bag.HasErrors() {
		return errors.New("library is incomplete")
	}
	if !quiet {
		defined := 0
		for i := 0; i < lib.NamespaceCount(); i++ {
			defined += lib.Namespace(library.NamespaceID(i)).DefinedCount()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d namespace(s), %d type(s) resolved\n", lib.NamespaceCount(), defined)
	}
	return nil
}
