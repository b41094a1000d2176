// internal/tool/tooltest/fake.go

// Package tooltest provides a scripted tool.Runner for tests
package tooltest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/creativeyann17/go-unbox/internal/tool"
)

// Call records one invocation of the fake runner
type Call struct {
	Name string
	Args []string
}

// String renders the call like a command line
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Runner answers every invocation with a scripted Output or error.
// Missing lists executables that behave as not installed.
type Runner struct {
	mu      sync.Mutex
	Calls   []Call
	Output  func(name string, args []string) *tool.Output
	Missing map[string]bool
	// OnRun runs before Output, e.g. to create files the real tool would write
	OnRun func(name string, args []string) error
}

// Run implements tool.Runner
func (r *Runner) Run(name string, args ...string) (*tool.Output, error) {
	r.mu.Lock()
	r.Calls = append(r.Calls, Call{Name: name, Args: append([]string(nil), args...)})
	r.mu.Unlock()

	if r.Missing[name] {
		return nil, fmt.Errorf("%s: %w", name, tool.ErrNotInstalled)
	}
	if r.OnRun != nil {
		if err := r.OnRun(name, args); err != nil {
			return nil, err
		}
	}
	if r.Output == nil {
		return &tool.Output{}, nil
	}
	return r.Output(name, args), nil
}

// CallCount returns the number of recorded invocations
func (r *Runner) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Calls)
}

// Last returns the most recent invocation
func (r *Runner) Last() Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Calls) == 0 {
		return Call{}
	}
	return r.Calls[len(r.Calls)-1]
}
