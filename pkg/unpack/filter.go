// pkg/unpack/filter.go
package unpack

import (
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// excludeFilter matches archive entry names against gitignore-style patterns.
// A nil filter matches nothing.
type excludeFilter struct {
	matcher *ignore.GitIgnore
}

// newExcludeFilter compiles the patterns, returning nil when there are none
func newExcludeFilter(patterns []string) *excludeFilter {
	var lines []string
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return &excludeFilter{matcher: ignore.CompileIgnoreLines(lines...)}
}

// Match reports whether the entry should be skipped.
// Names use forward slashes; directory names end with "/".
func (f *excludeFilter) Match(name string) bool {
	if f == nil {
		return false
	}
	name = strings.TrimPrefix(filepath.ToSlash(name), "./")
	return f.matcher.MatchesPath(name)
}
