// Command rucc drives the AST Builder and IR Emitter over a handful of
// self-contained sample programs (internal/demo), standing in for the
// lexer/preprocessor/parser front end that is out of scope for this
// module.
package main

import (
	"os"

	"github.com/Mexanobar/RuC/cmd/rucc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
