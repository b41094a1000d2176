// internal/tool/upx.go
package tool

import (
	"fmt"
	"strings"
)

// DefaultUPX is the executable name of the UPX packer
const DefaultUPX = "upx"

// notPackedMarker is what upx prints on stderr for a file it did not pack
const notPackedMarker = "NotPackedException"

// UPX drives the upx executable packer
type UPX struct {
	Runner Runner
	Path   string
}

// NewUPX returns a UPX wrapper, falling back to ExecRunner and "upx"
func NewUPX(runner Runner, path string) *UPX {
	if runner == nil {
		runner = ExecRunner{}
	}
	if path == "" {
		path = DefaultUPX
	}
	return &UPX{Runner: runner, Path: path}
}

// Test runs `upx -t` and reports whether the file is packed by UPX.
// Any upx exception on stderr or a non-zero exit means "not packed".
func (u *UPX) Test(path string) (bool, error) {
	out, err := u.Runner.Run(u.Path, "-t", path)
	if err != nil {
		return false, err
	}
	if strings.Contains(out.Stderr, notPackedMarker) {
		return false, nil
	}
	if out.Failed() {
		return false, nil
	}
	return true, nil
}

// Decompress runs `upx -d -o outputPath path`
func (u *UPX) Decompress(path, outputPath string) error {
	out, err := u.Runner.Run(u.Path, "-d", "-o", outputPath, path)
	if err != nil {
		return err
	}
	if out.Failed() {
		return fmt.Errorf("%w: %s", ErrToolFailed, out.Diagnostic())
	}
	return nil
}
