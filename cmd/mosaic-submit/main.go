package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fatalistix/mosaic-submit/internal/app"
	"github.com/fatalistix/mosaic-submit/internal/cli"
	"github.com/fatalistix/mosaic-submit/internal/domain/model"
	"github.com/fatalistix/mosaic-submit/internal/http/client"
	"github.com/fatalistix/mosaic-submit/internal/loader"
	"github.com/fatalistix/mosaic-submit/internal/validation"
	"github.com/golang-cz/devslog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := run(ctx, os.Args, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// run returns the process exit code. A usage error and any HTTP status count
// as success; failing to read the image or to reach the endpoint do not.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	program := "mosaic-submit"
	if len(args) > 0 {
		program = filepath.Base(args[0])
		args = args[1:]
	}

	v, err := validation.NewRequestValidator()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	invocation, err := cli.Parse(args, v)
	if err != nil {
		var usageErr *model.UsageError
		if errors.As(err, &usageErr) {
			cli.PrintUsage(stdout, program)
			return 0
		}

		fmt.Fprintln(stderr, err)
		return 1
	}

	log := setupLog(stderr)

	c := app.NewClient(
		log,
		loader.NewFileLoader(log),
		client.NewSubmitter(log, 0),
		stdout,
	)

	if err := c.Run(ctx, invocation); err != nil {
		printFailure(stderr, err)
		return 1
	}

	return 0
}

func printFailure(w io.Writer, err error) {
	var (
		accessErr    *model.FileAccessError
		transportErr *model.TransportError
	)

	switch {
	case errors.As(err, &accessErr):
		fmt.Fprintf(w, "file access error: %v\n", accessErr)
	case errors.As(err, &transportErr):
		fmt.Fprintf(w, "transport error: %v\n", transportErr)
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}

func setupLog(w io.Writer) *slog.Logger {
	slogOpts := &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelInfo,
	}

	devSlogOpts := &devslog.Options{
		HandlerOptions: slogOpts,
	}

	return slog.New(devslog.NewHandler(w, devSlogOpts))
}
