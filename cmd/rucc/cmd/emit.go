package cmd

import (
	"fmt"
	"os"

	"github.com/Mexanobar/RuC/internal/demo"
	"github.com/Mexanobar/RuC/internal/diag"
	"github.com/Mexanobar/RuC/internal/irgen"
	"github.com/spf13/cobra"
)

var emitCmd = &cobra.Command{
	Use:   "emit [program]",
	Short: "Build a sample program and print its emitted IR",
	Long: fmt.Sprintf(`emit runs internal/irgen's State over one of the sample
translation units registered in internal/demo, writing the resulting
textual IR to stdout.

Available programs: %v`, demo.Names()),
	Args: cobra.ExactArgs(1),
	RunE: runEmit,
}

func init() {
	rootCmd.AddCommand(emitCmd)
}

func runEmit(cmd *cobra.Command, args []string) error {
	unit, err := demo.Build(args[0])
	if err != nil {
		return err
	}

	if unit.Diags.HasErrors() {
		sink := diag.NewTextSink(os.Stderr, nil, false)
		for _, d := range unit.Diags.All() {
			sink.Emit(d)
		}
		return fmt.Errorf("%d error(s) building %q", unit.Diags.ErrorCount(), args[0])
	}

	mipsel, _ := cmd.Flags().GetBool("mipsel")

	state := irgen.New(unit.Store, unit.Types, unit.Idents, unit.Strs, unit.Diags, os.Stdout)
	state.SetMipsel(mipsel)
	state.EmitProgram(unit.Program)
	if err := state.Flush(); err != nil {
		return err
	}
	if state.ErrorCount() > 0 {
		return fmt.Errorf("%d error(s) emitting %q", state.ErrorCount(), args[0])
	}
	return nil
}
