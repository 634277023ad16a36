package cmd

import (
	"fmt"

	"github.com/Mexanobar/RuC/internal/demo"
	"github.com/spf13/cobra"
)

var dumpASTCmd = &cobra.Command{
	Use:   "dump-ast [program]",
	Short: "Print a sample program's AST as an indented tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runDumpAST,
}

func init() {
	rootCmd.AddCommand(dumpASTCmd)
}

func runDumpAST(_ *cobra.Command, args []string) error {
	unit, err := demo.Build(args[0])
	if err != nil {
		return err
	}
	for _, fn := range unit.Program.Globals {
		fmt.Println(unit.Store.Dump(fn))
	}
	for _, fn := range unit.Program.Functions {
		fmt.Println(unit.Store.Dump(fn))
	}
	return nil
}
