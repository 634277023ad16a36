package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rucc",
	Short: "RuC semantic-analysis and IR-emission driver",
	Long: `rucc drives the AST Builder and IR Emitter of a small C-dialect
compiler core over a handful of sample translation units.

There is no lexer/preprocessor/parser wired in yet; the "emit"/"dump-ast"/
"dump-symbols" subcommands all run against the self-contained programs
registered in internal/demo, built directly through the Builder API.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().Bool("mipsel", false, "target the mipsel datalayout/triple instead of x86_64")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
