// pkg/unpack/progress.go
package unpack

import (
	"fmt"
	"strings"

	"github.com/creativeyann17/go-unbox/pkg/gounbox"
	"github.com/vbauerster/mpb/v8"
)

// ProgressCallback is called for various progress events
type ProgressCallback func(event ProgressEvent)

// ProgressEvent contains progress information
type ProgressEvent struct {
	Type             EventType
	FilePath         string
	Current          int64
	Total            int64
	CurrentBytes     uint64
	TotalBytes       uint64
	DecompressedSize uint64
}

// EventType indicates the type of progress event
type EventType = gounbox.EventType

const (
	EventStart        = gounbox.EventStart
	EventFileStart    = gounbox.EventFileStart
	EventFileProgress = gounbox.EventFileProgress
	EventFileComplete = gounbox.EventFileComplete
	EventFileSkipped  = gounbox.EventFileSkipped
	EventComplete     = gounbox.EventComplete
	EventError        = gounbox.EventError
)

// ProgressBarCallback creates a progress callback that displays multi-progress bars
// Returns the callback function and the progress container (call Wait() after unpacking)
func ProgressBarCallback() (ProgressCallback, *mpb.Progress) {
	genericCb, progress := gounbox.ProgressBarCallback()

	callback := func(event ProgressEvent) {
		genericCb(gounbox.ProgressEvent{
			Type:         event.Type,
			FilePath:     event.FilePath,
			Current:      event.Current,
			Total:        event.Total,
			CurrentBytes: event.CurrentBytes,
			TotalBytes:   event.TotalBytes,
		})
	}

	return callback, progress
}

// FormatSummary formats an unpack result into a human-readable summary string
func FormatSummary(result *Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Type:     %s\n", result.Type)
	fmt.Fprintf(&sb, "Status:   %s\n", result.Status)
	if result.Location != "" {
		fmt.Fprintf(&sb, "Location: %s\n", result.Location)
	}
	if result.Err != nil {
		fmt.Fprintf(&sb, "Reason:   %v\n", result.Err)
	}
	sb.WriteString("\n")

	if result.Status == StatusSuccess || result.Status == StatusPartial {
		sb.WriteString(gounbox.FormatSummary(result))
	}

	return sb.String()
}

// FormatSize formats bytes into human-readable string
func FormatSize(bytes uint64) string {
	return gounbox.FormatSize(bytes)
}

// TruncateLeft truncates a path from the left to fit maxLen, preserving the filename
func TruncateLeft(path string, maxLen int) string {
	return gounbox.TruncateLeft(path, maxLen)
}
