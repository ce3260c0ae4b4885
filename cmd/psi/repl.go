package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/psi-lang/psi/interp"
	"github.com/spf13/cobra"
)

var (
	promptColor = color.New(color.FgCyan)
	errColor    = color.New(color.FgRed)
	bannerColor = color.New(color.FgGreen)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	bannerColor.Println("psi " + version + " -- interactive mode, Ctrl-D to exit")

	rl, err := readline.New(promptColor.Sprint("psi> "))
	if err != nil {
		return err
	}
	defer rl.Close()

	ip := interp.New(interp.WithOutput(os.Stdout))

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			fmt.Println()
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		if err := evalLine(ip, line); err != nil {
			errColor.Fprintf(os.Stderr, "%v\n", err)
		}
	}
}

// evalLine runs one line of input through ip, recovering from any panic so
// a single bad line cannot bring down the session.
func evalLine(ip *interp.Interp, line string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return ip.Run(line)
}
