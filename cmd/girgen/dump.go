package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"girgen/internal/library"
	"girgen/internal/typelib"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] <file.toml|directory>",
	Short: "Validate descriptions and write the resolved graph as a typelib",
	Long:  `Ingest and validate API descriptions, then serialize the fully resolved type graph. With --repr, print the C representation of one type instead of writing a dump`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringP("output", "o", "", "output path for the typelib dump")
	dumpCmd.Flags().String("repr", "", "print the C representation of a (possibly qualified) type name")
}

func runDump(cmd *cobra.Command, args []string) error {
	lib, bag, err := ingestPath(cmd, args[0])
	if err != nil {
		return err
	}

	bag.Merge(lib.Validate())
	bag.Sort()

	w, err := diagWriter(cmd)
	if err != nil {
		return err
	}
	if err := w.Write(bag); err != nil {
		return err
	}
	// the dump assumes a total mapping; refuse to write a partial graph
	if bag.HasErrors() {
		return errors.New("library is incomplete")
	}

	reprName, err := cmd.Flags().GetString("repr")
	if err != nil {
		return err
	}
	if reprName != "" {
		tid, ok := findType(lib, reprName)
		if !ok {
			return fmt.Errorf("unknown type %q", reprName)
		}
		repr, err := lib.Representation(tid)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), repr)
		return nil
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output == "" {
		return errors.New("--output is required unless --repr is given")
	}
	if err := typelib.Save(lib, output); err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
	}
	return nil
}

// findType looks a possibly-qualified name up without mutating the library;
// validation has already run, so no new slots may be interned.
func findType(lib *library.Library, name string) (library.TypeID, bool) {
	nsName := library.InternalNamespaceName
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		nsName, name = name[:dot], name[dot+1:]
	}
	nsID, ok := lib.FindNamespace(nsName)
	if !ok {
		return library.TypeID{}, false
	}
	local, ok := lib.Namespace(nsID).FindType(name)
	if !ok {
		return library.TypeID{}, false
	}
	return library.TypeID{Ns: nsID, Local: local}, true
}
