// pkg/classify/probe.go
package classify

import (
	"errors"

	"github.com/gabriel-vasile/mimetype"

	"github.com/creativeyann17/go-unbox/internal/format"
	"github.com/creativeyann17/go-unbox/internal/tool"
)

// Sample is the sniffed input handed to every probe
type Sample struct {
	Path string
	MIME *mimetype.MIME
}

// Verdict is the answer of a single probe
type Verdict int

const (
	NotMatched Verdict = iota
	Matched
	ToolUnavailable
)

// String returns the string representation of the verdict
func (v Verdict) String() string {
	switch v {
	case Matched:
		return "matched"
	case ToolUnavailable:
		return "tool unavailable"
	default:
		return "not matched"
	}
}

// Outcome is what a probe reports. Type is only meaningful when Verdict is Matched.
// Err explains a ToolUnavailable verdict or a probe that could not decide.
type Outcome struct {
	Verdict Verdict
	Type    format.Type
	Err     error
}

// Probe inspects a sample and decides whether it recognises it
type Probe interface {
	Name() string
	Probe(s *Sample) Outcome
}

// SignatureProbe maps the sniffed MIME type through the exact-match table.
// The sniffed type's parents are consulted too, so zip-based containers
// (jar, apk, ...) resolve to ZIP.
type SignatureProbe struct{}

func (SignatureProbe) Name() string { return "signature" }

func (SignatureProbe) Probe(s *Sample) Outcome {
	for m := s.MIME; m != nil; m = m.Parent() {
		if t := format.FromMIME(m.String()); t != format.TypeUnknown {
			return Outcome{Verdict: Matched, Type: t}
		}
		// Aliases, e.g. application/x-rar for application/x-rar-compressed
		for _, e := range format.MIMETable {
			if m.Is(e.MIME) {
				return Outcome{Verdict: Matched, Type: e.Type}
			}
		}
	}
	return Outcome{Verdict: NotMatched}
}

// MSIProbe recognises Windows Installer packages: OLE compound files whose
// root storage carries the installer CLSID
type MSIProbe struct{}

func (MSIProbe) Name() string { return "msi" }

func (MSIProbe) Probe(s *Sample) Outcome {
	if s.MIME.Is(format.MIMEMSI) {
		return Outcome{Verdict: Matched, Type: format.TypeMSI}
	}
	return Outcome{Verdict: NotMatched}
}

// UPXProbe asks upx whether it packed the file (`upx -t`). It spawns a
// process, so it belongs at the end of the chain.
type UPXProbe struct {
	UPX *tool.UPX
}

func (UPXProbe) Name() string { return "upx" }

func (p UPXProbe) Probe(s *Sample) Outcome {
	packed, err := p.UPX.Test(s.Path)
	if errors.Is(err, tool.ErrNotInstalled) {
		return Outcome{Verdict: ToolUnavailable, Err: err}
	}
	if err != nil {
		return Outcome{Verdict: NotMatched, Err: err}
	}
	if packed {
		return Outcome{Verdict: Matched, Type: format.TypeUPX}
	}
	return Outcome{Verdict: NotMatched}
}
