package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
	"github.com/whint-io/whint/errz"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var red = color.New(color.FgRed).SprintFunc()

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line and returns the process exit status.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(viper.New())
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, red(formatError(err)))
		return 1
	}
	return 0
}

// formatError renders the one-line diagnostic, e.g.
// "error[E3003]: return with empty call stack: ... (position 4)".
// Aggregated errors keep a plain header since each entry may differ.
func formatError(err error) string {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		if kind, ok := errz.KindOf(err); ok {
			return fmt.Sprintf("error[%s]: %s", kind.Code(), err)
		}
	}
	return "error: " + err.Error()
}
