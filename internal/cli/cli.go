package cli

import (
	"fmt"
	"io"

	"github.com/fatalistix/mosaic-submit/internal/domain/model"
)

type Validator interface {
	Validate(i interface{}) error
}

type Invocation struct {
	URL      string
	FilePath string
	Hashtags []string `validate:"min=1"`
}

// Parse reads url, image file path and one or more hashtags from args, which
// must not include the program name. It returns *model.UsageError when fewer
// than three arguments are given.
func Parse(args []string, v Validator) (Invocation, error) {
	const op = "cli.Parse"

	if len(args) < 3 {
		return Invocation{}, &model.UsageError{Got: len(args)}
	}

	invocation := Invocation{
		URL:      args[0],
		FilePath: args[1],
		Hashtags: append([]string(nil), args[2:]...),
	}

	if err := v.Validate(invocation); err != nil {
		return Invocation{}, fmt.Errorf("%s: invalid invocation: %w", op, err)
	}

	return invocation, nil
}

func PrintUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s <url> <img_file> <hashtag> ...\n", program)
}
