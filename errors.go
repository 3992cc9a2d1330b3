package huffpack

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is wrapped by every error caused by reading or writing a file.
	ErrIO = errors.New("I/O error")

	// ErrInvalidInput is wrapped by errors caused by input that cannot be
	// compressed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorruptArtifact is wrapped by errors caused by a compressed
	// artifact that is truncated or malformed.
	ErrCorruptArtifact = errors.New("corrupt artifact")

	// ErrEmptyInput is returned by BuildTree when every frequency is zero.
	ErrEmptyInput = fmt.Errorf("%w: no symbols to build a tree from", ErrInvalidInput)

	// ErrInputTooLarge is returned when an input exceeds the size limit.
	ErrInputTooLarge = fmt.Errorf("%w: input too large", ErrInvalidInput)
)

// FileError records a failed Compress or Decompress along with the file
// involved.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

func corruptf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCorruptArtifact, fmt.Sprintf(format, args...))
}
