package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatalistix/mosaic-submit/internal/cli"
	"github.com/fatalistix/mosaic-submit/internal/domain/model"
	"github.com/fatalistix/mosaic-submit/internal/payload"
	"github.com/fatalistix/mosaic-submit/internal/report"
)

type ImageLoader interface {
	Load(path string) ([]byte, error)
}

type SubmissionSender interface {
	Submit(ctx context.Context, url string, request model.SubmissionRequest) (model.SubmissionResult, error)
}

type Client struct {
	log    *slog.Logger
	loader ImageLoader
	sender SubmissionSender
	out    io.Writer
}

func NewClient(log *slog.Logger, loader ImageLoader, sender SubmissionSender, out io.Writer) *Client {
	return &Client{
		log:    log,
		loader: loader,
		sender: sender,
		out:    out,
	}
}

// Run stops at the first failure. Nothing is written to out unless the
// endpoint answered.
func (c *Client) Run(ctx context.Context, invocation cli.Invocation) error {
	const op = "app.Client.Run"

	log := c.log.With(
		slog.String("op", op),
	)

	raw, err := c.loader.Load(invocation.FilePath)
	if err != nil {
		return fmt.Errorf("%s: error loading image: %w", op, err)
	}

	request := payload.Encode(raw, invocation.Hashtags)

	log.Info("encoded image into base64", slog.Int("image bytes", len(raw)), slog.Int("origin length", len(request.Origin)))

	result, err := c.sender.Submit(ctx, invocation.URL, request)
	if err != nil {
		return fmt.Errorf("%s: error submitting image: %w", op, err)
	}

	if err := report.Print(c.out, result); err != nil {
		return fmt.Errorf("%s: error reporting result: %w", op, err)
	}

	return nil
}
