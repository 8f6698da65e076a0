package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fatalistix/mosaic-submit/internal/domain/model"
	"github.com/fatalistix/slogattr"
)

type Submitter struct {
	log    *slog.Logger
	client *http.Client
}

// NewSubmitter returns a submitter whose requests time out after timeout.
// Zero means no timeout.
func NewSubmitter(log *slog.Logger, timeout time.Duration) *Submitter {
	return &Submitter{
		log: log,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Submit posts request to url exactly once. Any status code the server
// answers with is a valid result; only failing to get an answer is an error,
// reported as *model.TransportError.
func (s *Submitter) Submit(ctx context.Context, url string, request model.SubmissionRequest) (model.SubmissionResult, error) {
	const op = "http.client.Submitter.Submit"

	log := s.log.With(
		slog.String("op", op),
		slog.String("url", url),
	)

	requestBytes, err := json.Marshal(request)
	if err != nil {
		log.Error("error marshaling submission request", slogattr.Err(err))
		return model.SubmissionResult{}, fmt.Errorf("%s: error marshaling request: %w", op, err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBytes))
	if err != nil {
		log.Error("error creating http request", slogattr.Err(err))
		return model.SubmissionResult{}, &model.TransportError{URL: url, Err: err}
	}

	httpRequest.Header.Set("Content-Type", "application/json")

	log.Info("sending submission", slog.Any("hashtags", request.Hashtags), slog.Int("body bytes", len(requestBytes)))

	httpResponse, err := s.client.Do(httpRequest)
	if err != nil {
		log.Error("error executing http request", slogattr.Err(err))
		return model.SubmissionResult{}, &model.TransportError{URL: url, Err: err}
	}

	defer s.closeOrLog(httpResponse.Body)

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		log.Error("error reading response body", slog.Int("status code", httpResponse.StatusCode), slogattr.Err(err))
		return model.SubmissionResult{}, &model.TransportError{URL: url, Err: err}
	}

	log.Info("submission answered", slog.Int("status code", httpResponse.StatusCode))

	return model.SubmissionResult{
		StatusCode: httpResponse.StatusCode,
		Body:       string(body),
	}, nil
}

func (s *Submitter) closeOrLog(closer io.Closer) {
	const op = "http.client.Submitter.closeOrLog"

	if err := closer.Close(); err != nil {
		s.log.Error(
			"unable to close",
			slog.String("op", op),
			slog.Any("closer", closer),
			slogattr.Err(err),
		)
	}
}
