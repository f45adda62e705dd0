package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dacrab/profilegen/internal/cli"
	"github.com/dacrab/profilegen/pkg/errors"
)

// Exit codes: 0 success, 1 failure, 2 missing configuration, 130 interrupted.
const (
	exitFailure     = 1
	exitConfig      = 2
	exitInterrupted = 130
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		switch {
		case stderrors.Is(err, context.Canceled):
			os.Exit(exitInterrupted)
		case errors.GetCode(err) == errors.ErrCodeConfigMissing:
			os.Exit(exitConfig)
		case errors.GetCode(err) == "":
			// Commands print their own diagnostics; anything uncoded
			// (flag parsing, usage) has not been shown yet.
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitFailure)
		default:
			os.Exit(exitFailure)
		}
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	originalPreRun := root.PersistentPreRun
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if originalPreRun != nil {
			originalPreRun(cmd, args)
		}
	}

	return root.ExecuteContext(ctx)
}
