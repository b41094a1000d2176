// pkg/unpack/unpack.go
package unpack

import (
	"errors"
	"fmt"
	"os"

	"github.com/creativeyann17/go-unbox/internal/format"
	"github.com/creativeyann17/go-unbox/internal/tool"
	"github.com/creativeyann17/go-unbox/pkg/classify"
)

// strategy unpacks one input type and returns where the output landed
type strategy struct {
	op  string
	run func(x *extractor) (string, error)
}

var strategies = map[format.Type]strategy{
	format.TypeSevenZip: {op: "extract", run: unpackSevenZip},
	format.TypeZip:      {op: "extract", run: unpackZip},
	format.TypeTar:      {op: "extract", run: unpackTar},
	format.TypeRar:      {op: "extract", run: unpackRar},
	format.TypeGzip:     {op: "decompress", run: unpackGzip},
	format.TypeXz:       {op: "decompress", run: unpackXz},
	format.TypeZstd:     {op: "decompress", run: unpackZstd},
	format.TypeMSI:      {op: "msiextract", run: unpackMSI},
	format.TypeUPX:      {op: "upx", run: unpackUPX},
}

// Supported reports whether a strategy exists for the type
func Supported(t format.Type) bool {
	_, ok := strategies[t]
	return ok
}

// Unpack runs the strategy for typ on opts.InputPath.
// The error return is reserved for invalid options; every unpack failure is
// reported through the Result status.
func Unpack(opts *Options, typ format.Type, progressCb ProgressCallback) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{Type: typ}

	s, ok := strategies[typ]
	if !ok {
		result.Status = StatusUnsupported
		result.Err = &Error{Type: typ, Op: "dispatch", Err: ErrUnsupportedType}
		return result, nil
	}

	if err := os.MkdirAll(opts.OutputPath, 0755); err != nil {
		result.finish(&Error{Type: typ, Op: "create output directory", Err: err})
		return result, nil
	}

	opts.logf("%s", describe(typ))

	x := newExtractor(opts, progressCb, result)
	location, err := s.run(x)
	x.complete()

	if err != nil {
		result.finish(&Error{Type: typ, Op: s.op, Err: err})
		return result, nil
	}

	result.Location = location
	result.finish(nil)
	return result, nil
}

// File classifies opts.InputPath and unpacks it with the matching strategy.
// An unreadable input is returned as ErrUnreadableInput.
func File(opts *Options, progressCb ProgressCallback) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	classifier := classify.Default(&classify.Options{
		Runner:  opts.Runner,
		UPXPath: opts.UPXPath,
	})

	det, err := classifier.Detect(opts.InputPath)
	switch {
	case errors.Is(err, classify.ErrUnreadableInput):
		return nil, fmt.Errorf("%w: %s", ErrUnreadableInput, opts.InputPath)
	case errors.Is(err, classify.ErrToolUnavailable):
		opts.logf("MIME type: %s", det.MIME)
		return &Result{
			Type:   det.Type,
			MIME:   det.MIME,
			Status: StatusFailure,
			Err:    &Error{Type: det.Type, Op: "classify", Err: fmt.Errorf("%w: %v", ErrToolUnavailable, err)},
		}, nil
	case err != nil:
		return nil, err
	}

	opts.logf("MIME type: %s", det.MIME)
	if det.Probe != "" {
		opts.debugf("Matched by %s probe", det.Probe)
	}

	result, err := Unpack(opts, det.Type, progressCb)
	if result != nil {
		result.MIME = det.MIME
	}
	return result, err
}

// describe returns the status line announcing the strategy
func describe(typ format.Type) string {
	switch {
	case typ.IsContainer():
		return fmt.Sprintf("Extracting %s archive...", typ)
	case typ.IsStream():
		return fmt.Sprintf("Decompressing %s stream...", typ)
	case typ == format.TypeMSI:
		return "Windows Installer package, extracting with msiextract..."
	case typ == format.TypeUPX:
		return "UPX-packed executable, unpacking with upx..."
	default:
		return fmt.Sprintf("Unpacking %s...", typ)
	}
}

// toolError maps a missing executable to ErrToolUnavailable
func toolError(err error) error {
	if errors.Is(err, tool.ErrNotInstalled) {
		return fmt.Errorf("%w: %v", ErrToolUnavailable, err)
	}
	return err
}
