// pkg/unpack/errors.go
package unpack

import (
	"errors"
	"fmt"

	"github.com/creativeyann17/go-unbox/internal/format"
)

var (
	// ErrInputRequired is returned when input path is not specified
	ErrInputRequired = errors.New("input file path is required")

	// ErrUnreadableInput is returned when the input file is missing or cannot be read
	ErrUnreadableInput = errors.New("input file is missing or unreadable")

	// ErrToolUnavailable is returned when a required external tool is not installed
	ErrToolUnavailable = errors.New("required tool unavailable")

	// ErrUnsupportedType is reported when no strategy handles the classified type
	ErrUnsupportedType = errors.New("file type not recognized or not supported")

	// ErrFileExists is returned when output file exists and overwrite is false
	ErrFileExists = errors.New("file exists (use --overwrite to replace)")

	// ErrDuplicateEntry is returned when an archive lists the same entry twice
	ErrDuplicateEntry = errors.New("duplicate entry in archive")

	// ErrUnsupportedEntry is returned for device and fifo entries
	ErrUnsupportedEntry = errors.New("unsupported entry type")
)

// Error describes why a strategy could not unpack its input
type Error struct {
	Type format.Type
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Type, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
