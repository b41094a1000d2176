// pkg/classify/classify.go
package classify

import (
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/creativeyann17/go-unbox/internal/format"
	"github.com/creativeyann17/go-unbox/internal/tool"
)

// Options configures the default probe chain
type Options struct {
	// Runner starts external processes
	// Default: tool.ExecRunner
	Runner tool.Runner

	// UPXPath is the upx executable used by the fallback probe
	// Default: "upx"
	UPXPath string
}

// Attempt records what one probe answered during a detection
type Attempt struct {
	Probe   string
	Verdict Verdict
	Err     error
}

// Detection is the full outcome of classifying a file
type Detection struct {
	Path     string
	MIME     string
	Type     format.Type
	Probe    string // name of the probe that matched, empty for UNKNOWN
	Attempts []Attempt
}

// Classifier runs an ordered list of probes and stops at the first match
type Classifier struct {
	probes []Probe
}

// New creates a classifier running probes in the given order.
// Cheap probes should come first.
func New(probes ...Probe) *Classifier {
	return &Classifier{probes: probes}
}

// Default creates the standard chain: signature table, MSI structure, then
// the upx probe. A nil opts uses the defaults.
func Default(opts *Options) *Classifier {
	if opts == nil {
		opts = &Options{}
	}
	return New(
		SignatureProbe{},
		MSIProbe{},
		UPXProbe{UPX: tool.NewUPX(opts.Runner, opts.UPXPath)},
	)
}

// Probes returns the probes in execution order
func (c *Classifier) Probes() []Probe {
	return c.probes
}

// Detect sniffs the file content and runs the probe chain.
// An unreadable file returns ErrUnreadableInput. When nothing matched and a
// probe's tool was missing, the detection is returned together with
// ErrToolUnavailable.
func (c *Classifier) Detect(path string) (*Detection, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableInput, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnreadableInput, path)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableInput, err)
	}

	det := &Detection{
		Path: path,
		MIME: mtype.String(),
		Type: format.TypeUnknown,
	}
	sample := &Sample{Path: path, MIME: mtype}

	var unavailable *Attempt
	for _, p := range c.probes {
		out := p.Probe(sample)
		det.Attempts = append(det.Attempts, Attempt{Probe: p.Name(), Verdict: out.Verdict, Err: out.Err})

		switch out.Verdict {
		case Matched:
			det.Type = out.Type
			det.Probe = p.Name()
			return det, nil
		case ToolUnavailable:
			if unavailable == nil {
				a := det.Attempts[len(det.Attempts)-1]
				unavailable = &a
			}
		}
	}

	if unavailable != nil {
		return det, fmt.Errorf("%s probe: %w: %v", unavailable.Probe, ErrToolUnavailable, unavailable.Err)
	}
	return det, nil
}

// Classify returns only the type of the file
func (c *Classifier) Classify(path string) (format.Type, error) {
	det, err := c.Detect(path)
	if det == nil {
		return format.TypeUnknown, err
	}
	return det.Type, err
}

// Detect runs the default chain on path
func Detect(path string) (*Detection, error) {
	return Default(nil).Detect(path)
}

// Classify runs the default chain on path and returns the type
func Classify(path string) (format.Type, error) {
	return Default(nil).Classify(path)
}
