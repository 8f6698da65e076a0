package model

import "fmt"

// UsageError, FileAccessError and TransportError are the only ways a
// submission can fail. HTTP error statuses are results, not errors.
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected at least 3 arguments (url, image file, hashtag), got %d", e.Got)
}

type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("unable to read image file %q: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unable to reach %q: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
