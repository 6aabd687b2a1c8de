package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/anjor/cleave"
	"github.com/anjor/cleave/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {

	// Parse CLI and initialize everything
	// Argument errors are already reported by the time we get them back
	cl, err := cleave.NewFromArgv(argv, stdin, stdout, stderr)
	switch {
	case errors.Is(err, cleave.ErrUsageDisplayed):
		return 0
	case errors.Is(err, cleave.ErrInvalidArguments):
		return 1
	case err != nil:
		fmt.Fprintf(stderr, "%s: %s\n", cleave.NAME, err)
		return 1
	}

	logger := logging.New(stderr, cl.Settings().Verbose).Named(cleave.NAME)
	defer logger.Sync() //nolint:errcheck
	cl.SetLogger(logger)

	if err := cl.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", cleave.NAME, err)
		return 1
	}

	return 0
}
