package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/psi-lang/psi/internal/logio"
	"github.com/psi-lang/psi/internal/panicerr"
	"github.com/psi-lang/psi/interp"
	"github.com/spf13/cobra"
)

var (
	evalExpr   string
	traceFlag  bool
	dumpStack  bool
	timeout    time.Duration
	configPath string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program from a file or inline expression",
	Long: `Execute a program from a file or inline expression.

Examples:
  # Run a script file
  psi run hello.ps

  # Evaluate an inline expression
  psi run -e "2 2 add ="

  # Run with an execution trace
  psi run --trace hello.ps`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
	runCmd.Flags().BoolVar(&traceFlag, "trace", false, "trace every operator dispatch to stderr")
	runCmd.Flags().BoolVar(&dumpStack, "dump-stack", false, "print the operand stack after execution")
	runCmd.Flags().DurationVar(&timeout, "timeout", 0, "abort execution after the given duration")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML file of interpreter limits (maxSteps, maxDepth, trace)")
}

func runScript(_ *cobra.Command, args []string) error {
	source, name, err := readSource(args)
	if err != nil {
		return err
	}

	cfg, err := loadRunConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", configPath, err)
	}

	log := logio.Logger{}
	log.SetOutput(os.Stderr)

	opts := []interp.Option{interp.WithOutput(os.Stdout)}
	if cfg.MaxSteps > 0 {
		opts = append(opts, interp.WithMaxSteps(cfg.MaxSteps))
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, interp.WithMaxDepth(cfg.MaxDepth))
	}
	if traceFlag || cfg.Trace {
		opts = append(opts, interp.WithLogf(log.Leveledf("TRACE")))
	}

	ip := interp.New(opts...)

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	runErr := runWithContext(ctx, ip, source, name)
	if runErr != nil {
		log.Errorf("%v", runErr)
	}

	if dumpStack {
		for _, obj := range ip.GetStack() {
			fmt.Fprintln(os.Stderr, obj.Verbose())
		}
	}

	if runErr != nil {
		return fmt.Errorf("%s: %w", name, runErr)
	}
	return nil
}

// runWithContext runs source to completion, or returns ctx.Err() if the
// deadline expires first. The interpreter itself has no cancellation
// surface (§5 of its design), so a timeout can only abandon the call, not
// interrupt it mid-step; this is documented behavior, not a bug.
func runWithContext(ctx context.Context, ip *interp.Interp, source, name string) error {
	done := make(chan error, 1)
	go func() { done <- panicerr.Recover(name, func() error { return ip.Run(source) }) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func readSource(args []string) (source, name string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		data, rerr := os.ReadFile(args[0])
		if rerr != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], rerr)
		}
		return string(data), args[0], nil
	}
	data, rerr := io.ReadAll(os.Stdin)
	if rerr != nil {
		return "", "", fmt.Errorf("either provide a file path, -e, or pipe source on stdin: %w", rerr)
	}
	return string(data), "<stdin>", nil
}
