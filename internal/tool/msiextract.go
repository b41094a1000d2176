// internal/tool/msiextract.go
package tool

import "fmt"

// DefaultMSIExtract is the executable name of the msitools extractor
const DefaultMSIExtract = "msiextract"

// MSIExtract drives msiextract from msitools
type MSIExtract struct {
	Runner Runner
	Path   string
}

// NewMSIExtract returns an MSIExtract wrapper, falling back to ExecRunner and "msiextract"
func NewMSIExtract(runner Runner, path string) *MSIExtract {
	if runner == nil {
		runner = ExecRunner{}
	}
	if path == "" {
		path = DefaultMSIExtract
	}
	return &MSIExtract{Runner: runner, Path: path}
}

// Extract runs `msiextract -C targetDir path`.
// Arguments are passed directly to the process, never through a shell.
func (m *MSIExtract) Extract(path, targetDir string) error {
	out, err := m.Runner.Run(m.Path, "-C", targetDir, path)
	if err != nil {
		return err
	}
	if out.Failed() {
		return fmt.Errorf("%w: %s", ErrToolFailed, out.Diagnostic())
	}
	return nil
}
