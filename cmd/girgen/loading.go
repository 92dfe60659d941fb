package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"girgen/internal/diag"
	"girgen/internal/library"
	"girgen/internal/loader"
)

// ingestPath loads a single description file or every *.toml under a
// directory into a fresh library.
func ingestPath(cmd *cobra.Command, path string) (*library.Library, *diag.Bag, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to access %q: %w", path, err)
	}

	lib := library.New()
	bag := diag.NewBag(16)
	l := loader.New(lib, bag)

	if info.IsDir() {
		jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
		if err != nil {
			return nil, nil, err
		}
		if err := l.LoadDir(cmd.Context(), path, jobs); err != nil {
			return nil, nil, err
		}
	} else if err := l.LoadFile(path); err != nil {
		return nil, nil, err
	}
	return lib, bag, nil
}

func diagWriter(cmd *cobra.Command) (*diag.Writer, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return nil, err
	}
	mode, err := readColorMode(colorFlag)
	if err != nil {
		return nil, err
	}
	return diag.NewWriter(cmd.OutOrStdout(), shouldColorize(mode)), nil
}
