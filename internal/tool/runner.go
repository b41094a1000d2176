// internal/tool/runner.go
package tool

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

var (
	// ErrNotInstalled is returned when an external utility cannot be found
	ErrNotInstalled = errors.New("tool is not installed or not found in PATH")

	// ErrToolFailed is returned when an external utility reports an error
	ErrToolFailed = errors.New("tool reported an error")
)

// Output holds what an external process wrote and how it exited
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Failed reports whether the process signalled a failure, either through
// its diagnostic channel or through its exit status
func (o *Output) Failed() bool {
	return strings.TrimSpace(o.Stderr) != "" || o.ExitCode != 0
}

// Diagnostic returns the most useful failure message of the process
func (o *Output) Diagnostic() string {
	if msg := strings.TrimSpace(o.Stderr); msg != "" {
		return msg
	}
	if o.ExitCode != 0 {
		return fmt.Sprintf("exit status %d", o.ExitCode)
	}
	return ""
}

// Runner starts an external process and waits for it to finish.
// A non-zero exit status is not an error: it is reported in Output.
type Runner interface {
	Run(name string, args ...string) (*Output, error)
}

// ExecRunner runs processes with os/exec
type ExecRunner struct{}

// Run implements Runner
func (ExecRunner) Run(name string, args ...string) (*Output, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotInstalled)
		}
		return nil, fmt.Errorf("lookup %s: %w", name, err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	out := &Output{}
	err = cmd.Run()
	out.Stdout = stdout.String()
	out.Stderr = stderr.String()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", name, err)
	}
	return out, nil
}
