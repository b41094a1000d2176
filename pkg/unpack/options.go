// pkg/unpack/options.go
package unpack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/creativeyann17/go-unbox/internal/tool"
)

// Options configures the unpack behavior
type Options struct {
	// Input file path
	InputPath string

	// Output directory path
	// Default: the directory containing InputPath
	OutputPath string

	// Overwrite existing files instead of recording an error
	Overwrite bool

	// Checksum records a BLAKE3 digest of every written file
	Checksum bool

	// Exclude lists gitignore-style patterns of entries to skip
	Exclude []string

	// UPXPath is the upx executable
	// Default: "upx"
	UPXPath string

	// MSIExtractPath is the msiextract executable
	// Default: "msiextract"
	MSIExtractPath string

	// Runner starts the external tools
	// Default: tool.ExecRunner
	Runner tool.Runner

	// Verbose enables detailed logging
	Verbose bool

	// Quiet suppresses all output except errors
	Quiet bool

	// Output receives status lines
	// Default: os.Stdout
	Output io.Writer
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		Overwrite:      false,
		Checksum:       false,
		UPXPath:        tool.DefaultUPX,
		MSIExtractPath: tool.DefaultMSIExtract,
		Verbose:        false,
		Quiet:          false,
	}
}

// Validate checks if options are valid and fills in defaults
func (o *Options) Validate() error {
	if o.InputPath == "" {
		return ErrInputRequired
	}
	if o.OutputPath == "" {
		abs, err := filepath.Abs(o.InputPath)
		if err != nil {
			return fmt.Errorf("resolve input path: %w", err)
		}
		o.OutputPath = filepath.Dir(abs)
	}
	if o.UPXPath == "" {
		o.UPXPath = tool.DefaultUPX
	}
	if o.MSIExtractPath == "" {
		o.MSIExtractPath = tool.DefaultMSIExtract
	}
	if o.Runner == nil {
		o.Runner = tool.ExecRunner{}
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	if o.Quiet {
		o.Verbose = false
	}
	return nil
}

// logf prints a status line unless quiet
func (o *Options) logf(format string, args ...interface{}) {
	if o.Quiet || o.Output == nil {
		return
	}
	fmt.Fprintf(o.Output, format+"\n", args...)
}

// debugf prints a status line only in verbose mode
func (o *Options) debugf(format string, args ...interface{}) {
	if !o.Verbose {
		return
	}
	o.logf(format, args...)
}
