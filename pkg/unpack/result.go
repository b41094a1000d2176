// pkg/unpack/result.go
package unpack

import "github.com/creativeyann17/go-unbox/internal/format"

// Status is the overall outcome of an unpack
type Status int

const (
	StatusSuccess Status = iota
	StatusPartial
	StatusFailure
	StatusUnsupported
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusPartial:
		return "partial"
	case StatusFailure:
		return "failure"
	case StatusUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Entry describes one file written to the output directory
type Entry struct {
	// Name inside the archive
	Name string

	// Path on disk
	Path string

	// Size in bytes
	Size uint64

	// Digest is the BLAKE3 hex digest, empty unless Options.Checksum
	Digest string
}

// Result contains the outcome and statistics of an unpack
type Result struct {
	// Type the input was classified as
	Type format.Type

	// MIME is the sniffed content type, set by File
	MIME string

	// Status is the overall outcome
	Status Status

	// Location is the directory or file the output landed in
	Location string

	// Err is the failure reason for StatusFailure and StatusUnsupported
	Err error

	// Total number of files in the input
	FilesTotal int

	// Number of files successfully written
	FilesProcessed int

	// Number of files skipped by exclude patterns
	FilesSkipped int

	// Total compressed size in bytes
	CompressedSize uint64

	// Total decompressed size in bytes
	DecompressedSize uint64

	// Files written, in extraction order
	Files []Entry

	// List of errors encountered (non-fatal)
	Errors []error
}

// Success returns true if the input was fully unpacked without errors
func (r *Result) Success() bool {
	return r.Status == StatusSuccess
}

// Reason returns a human-readable explanation for a non-successful result
func (r *Result) Reason() string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case len(r.Errors) > 0:
		return r.Errors[0].Error()
	default:
		return ""
	}
}

// GetFilesTotal returns total files (interface method)
func (r *Result) GetFilesTotal() int {
	return r.FilesTotal
}

// GetFilesProcessed returns processed files (interface method)
func (r *Result) GetFilesProcessed() int {
	return r.FilesProcessed
}

// GetFilesSkipped returns skipped files (interface method)
func (r *Result) GetFilesSkipped() int {
	return r.FilesSkipped
}

// GetErrors returns the error list (interface method)
func (r *Result) GetErrors() []error {
	return r.Errors
}

// GetCompressedSize returns compressed size (interface method)
func (r *Result) GetCompressedSize() uint64 {
	return r.CompressedSize
}

// GetDecompressedSize returns decompressed size (interface method)
func (r *Result) GetDecompressedSize() uint64 {
	return r.DecompressedSize
}

// finish derives the status from the fatal error and the per-entry errors
func (r *Result) finish(err error) {
	switch {
	case err != nil:
		r.Status = StatusFailure
		r.Err = err
	case len(r.Errors) > 0:
		r.Status = StatusPartial
	default:
		r.Status = StatusSuccess
	}
}
