package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/bundlecheck/internal/cli"
	bcerrors "github.com/matzehuels/bundlecheck/pkg/errors"
)

// Exit statuses.
const (
	exitOK          = 0
	exitError       = 1   // any error, including a failed check
	exitInterrupted = 130 // SIGINT
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line in args and returns the exit status.
// Logs and error messages go to stderr.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	c := cli.New(stderr, cli.LogInfo)
	c.RegisterHooks()

	root := c.RootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		fmt.Fprintln(stderr, bcerrors.UserMessage(err))
		return exitError
	}
}
