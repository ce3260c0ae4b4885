// Command psi is the batch and interactive front end for the interpreter:
// `psi run` evaluates a script file or inline expression, `psi repl`
// drives an interactive read-eval-print loop, and `psi version` reports
// build metadata.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information; overridden by -ldflags at release build time.
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "psi",
	Short:   "A PostScript-family stack language interpreter",
	Version: version,
	Long: `psi runs programs written in a small stack-oriented, dynamically
typed language in the PostScript family: an operand stack, a dictionary
stack for name resolution, and some sixty control-flow, arithmetic,
composite-object and other built-in operators.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "accepted; no command reads it")
	rootCmd.SetVersionTemplate(fmt.Sprintf("psi version %%s\ncommit: %s\nbuilt:  %s\n", gitCommit, buildDate))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
