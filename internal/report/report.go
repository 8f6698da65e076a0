package report

import (
	"fmt"
	"io"

	"github.com/fatalistix/mosaic-submit/internal/domain/model"
)

func Print(w io.Writer, result model.SubmissionResult) error {
	const op = "report.Print"

	if _, err := fmt.Fprintf(w, "%d\n%s\n", result.StatusCode, result.Body); err != nil {
		return fmt.Errorf("%s: error writing result: %w", op, err)
	}

	return nil
}
