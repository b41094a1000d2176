// pkg/classify/errors.go
package classify

import "errors"

var (
	// ErrUnreadableInput is returned when the input file is missing or cannot be read.
	// It is distinct from an UNKNOWN classification.
	ErrUnreadableInput = errors.New("input file is missing or unreadable")

	// ErrToolUnavailable is returned when a probe needed an external tool that is not installed
	// and no other probe matched
	ErrToolUnavailable = errors.New("probe tool unavailable")
)
