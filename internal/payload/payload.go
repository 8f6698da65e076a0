// Package payload builds the JSON envelope that carries an image to the
// mosaic worker endpoint.
package payload

import (
	"encoding/base64"
	"fmt"

	"github.com/fatalistix/mosaic-submit/internal/domain/model"
)

// Encode wraps raw image bytes and hashtags into a submission request with the
// default piece size. The image is never inspected.
func Encode(raw []byte, hashtags []string) model.SubmissionRequest {
	return model.SubmissionRequest{
		Origin:    base64.StdEncoding.EncodeToString(raw),
		Hashtags:  append(make([]string, 0, len(hashtags)), hashtags...),
		PieceSize: model.DefaultPieceSize,
	}
}

// Decode returns the image bytes carried in an origin field.
func Decode(origin string) ([]byte, error) {
	const op = "payload.Decode"

	raw, err := base64.StdEncoding.DecodeString(origin)
	if err != nil {
		return nil, fmt.Errorf("%s: error decoding origin: %w", op, err)
	}

	return raw, nil
}
