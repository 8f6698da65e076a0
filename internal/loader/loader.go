package loader

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatalistix/mosaic-submit/internal/domain/model"
	"github.com/fatalistix/slogattr"
)

type FileLoader struct {
	log *slog.Logger
}

func NewFileLoader(log *slog.Logger) *FileLoader {
	return &FileLoader{
		log: log,
	}
}

// Load reads the whole file at path. Any failure is reported as
// *model.FileAccessError and no partial content is returned.
func (l *FileLoader) Load(path string) ([]byte, error) {
	const op = "loader.FileLoader.Load"

	log := l.log.With(
		slog.String("op", op),
		slog.String("path", path),
	)

	log.Info("reading image file")

	file, err := os.Open(path)
	if err != nil {
		log.Error("error opening file", slogattr.Err(err))
		return nil, &model.FileAccessError{Path: path, Err: err}
	}

	defer l.closeOrLog(file)

	content, err := io.ReadAll(file)
	if err != nil {
		log.Error("error reading file", slogattr.Err(err))
		return nil, &model.FileAccessError{Path: path, Err: err}
	}

	log.Debug("image file read", slog.Int("bytes", len(content)))

	return content, nil
}

func (l *FileLoader) closeOrLog(closer io.Closer) {
	const op = "loader.FileLoader.closeOrLog"

	if err := closer.Close(); err != nil {
		l.log.Error(
			"unable to close",
			slog.String("op", op),
			slog.Any("closer", closer),
			slogattr.Err(err),
		)
	}
}
