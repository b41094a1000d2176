// pkg/gounbox/io.go
package gounbox

import "io"

// ProgressWriter counts the bytes of an entry as they land in its output file
type ProgressWriter struct {
	Writer  io.Writer
	OnWrite func(n int)
}

func (pw *ProgressWriter) Write(p []byte) (n int, err error) {
	n, err = pw.Writer.Write(p)
	if n > 0 && pw.OnWrite != nil {
		pw.OnWrite(n)
	}
	return n, err
}

// ProgressReader counts compressed bytes consumed from an input. Single-stream
// formats report progress this way because their output size is unknown.
type ProgressReader struct {
	Reader io.Reader
	OnRead func(n int)
}

func (pr *ProgressReader) Read(p []byte) (n int, err error) {
	n, err = pr.Reader.Read(p)
	if n > 0 && pr.OnRead != nil {
		pr.OnRead(n)
	}
	return n, err
}

// PathTracker remembers the entry names already extracted from an archive,
// so a name listed twice is reported instead of silently overwriting the first
type PathTracker struct {
	seen map[string]bool
}

// NewPathTracker creates an empty tracker for one unpack run
func NewPathTracker() *PathTracker {
	return &PathTracker{
		seen: make(map[string]bool),
	}
}

// CheckDuplicate reports whether entry was already extracted in this run.
// The first call for a name records it and returns false.
func (pt *PathTracker) CheckDuplicate(entry string) bool {
	if pt.seen[entry] {
		return true
	}
	pt.seen[entry] = true
	return false
}
