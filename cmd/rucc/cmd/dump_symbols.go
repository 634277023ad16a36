package cmd

import (
	"fmt"

	"github.com/Mexanobar/RuC/internal/demo"
	"github.com/spf13/cobra"
)

var dumpSymbolsCmd = &cobra.Command{
	Use:   "dump-symbols [program]",
	Short: "List a sample program's declared identifiers in natural order",
	Args:  cobra.ExactArgs(1),
	RunE:  runDumpSymbols,
}

func init() {
	rootCmd.AddCommand(dumpSymbolsCmd)
}

func runDumpSymbols(_ *cobra.Command, args []string) error {
	unit, err := demo.Build(args[0])
	if err != nil {
		return err
	}
	for _, name := range unit.Idents.SortedNames() {
		fmt.Println(name)
	}
	return nil
}
