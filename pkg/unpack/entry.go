// pkg/unpack/entry.go
package unpack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/creativeyann17/go-unbox/internal/digest"
	"github.com/creativeyann17/go-unbox/pkg/gounbox"
)

// extractor carries the per-invocation state shared by the strategies
type extractor struct {
	opts    *Options
	cb      ProgressCallback
	result  *Result
	exclude *excludeFilter
	seen    *gounbox.PathTracker
}

func newExtractor(opts *Options, progressCb ProgressCallback, result *Result) *extractor {
	return &extractor{
		opts:    opts,
		cb:      progressCb,
		result:  result,
		exclude: newExcludeFilter(opts.Exclude),
		seen:    gounbox.NewPathTracker(),
	}
}

func (x *extractor) emit(event ProgressEvent) {
	if x.cb != nil {
		x.cb(event)
	}
}

// start announces the number of file entries about to be processed
func (x *extractor) start(total int) {
	x.result.FilesTotal = total
	x.emit(ProgressEvent{
		Type:  EventStart,
		Total: int64(total),
	})
}

func (x *extractor) complete() {
	x.emit(ProgressEvent{
		Type:             EventComplete,
		Current:          int64(x.result.FilesProcessed),
		Total:            int64(x.result.FilesTotal),
		TotalBytes:       x.result.CompressedSize,
		DecompressedSize: x.result.DecompressedSize,
	})
}

// addInputSize accounts the on-disk size of an input file
func (x *extractor) addInputSize(path string) {
	if info, err := os.Stat(path); err == nil {
		x.result.CompressedSize += uint64(info.Size())
	}
}

// skip reports whether the entry is excluded and accounts it
func (x *extractor) skip(name string) bool {
	if !x.exclude.Match(name) {
		return false
	}
	x.result.FilesSkipped++
	x.opts.debugf("  skip %s", name)
	x.emit(ProgressEvent{Type: EventFileSkipped, FilePath: name})
	return true
}

// entryError records a non-fatal per-entry error
func (x *extractor) entryError(name string, err error) {
	x.result.Errors = append(x.result.Errors, fmt.Errorf("%s: %w", name, err))
	x.emit(ProgressEvent{Type: EventError, FilePath: name})
}

// dir creates a directory entry under the output directory
func (x *extractor) dir(name string) {
	name = entryName(name)
	if name == "" || x.exclude.Match(name+"/") {
		return
	}
	outPath := filepath.Join(x.opts.OutputPath, filepath.FromSlash(name))
	if err := os.MkdirAll(outPath, 0755); err != nil {
		x.result.Errors = append(x.result.Errors, fmt.Errorf("%s: mkdir: %w", name, err))
	}
}

// entry extracts one regular file of a container. Problems are recorded on
// the result and the caller moves on to the next entry.
func (x *extractor) entry(name string, size int64, mode os.FileMode, open func() (io.ReadCloser, error)) {
	name = entryName(name)
	if x.skip(name) {
		return
	}
	if size < 0 {
		size = 0
	}

	x.emit(ProgressEvent{
		Type:     EventFileStart,
		FilePath: name,
		Total:    size,
	})

	if x.seen.CheckDuplicate(name) {
		x.entryError(name, ErrDuplicateEntry)
		return
	}

	rc, err := open()
	if err != nil {
		x.entryError(name, fmt.Errorf("open: %w", err))
		return
	}
	defer rc.Close()

	if err := x.writeFile(name, mode, rc, size, true); err != nil {
		x.entryError(name, err)
	}
}

// writeFile copies r to name under the output directory. total is the size
// reported to progress bars; trackWrites reports progress per written chunk.
func (x *extractor) writeFile(name string, mode os.FileMode, r io.Reader, total int64, trackWrites bool) error {
	outPath := filepath.Join(x.opts.OutputPath, filepath.FromSlash(name))

	if !x.opts.Overwrite {
		if _, err := os.Stat(outPath); err == nil {
			return ErrFileExists
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	perm := mode.Perm()
	if perm == 0 {
		perm = 0644
	}
	outFile, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer outFile.Close()

	var dst io.Writer = outFile
	var hasher *digest.Writer
	if x.opts.Checksum {
		hasher = digest.NewWriter(outFile)
		dst = hasher
	}

	var written uint64
	proxy := &gounbox.ProgressWriter{
		Writer: dst,
		OnWrite: func(n int) {
			written += uint64(n)
			if trackWrites {
				x.emit(ProgressEvent{
					Type:         EventFileProgress,
					FilePath:     name,
					Current:      int64(written),
					Total:        total,
					CurrentBytes: written,
				})
			}
		},
	}

	if _, err := io.Copy(proxy, r); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := outFile.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	entry := Entry{Name: name, Path: outPath, Size: written}
	if hasher != nil {
		entry.Digest = hasher.Sum().String()
	}
	x.addEntry(entry, total)
	return nil
}

// link recreates a symbolic link (target kept verbatim) or a hard link
// (target is another entry of the same archive)
func (x *extractor) link(name, target string, hard bool) {
	name = entryName(name)
	if x.skip(name) {
		return
	}

	x.emit(ProgressEvent{Type: EventFileStart, FilePath: name})

	if x.seen.CheckDuplicate(name) {
		x.entryError(name, ErrDuplicateEntry)
		return
	}

	outPath := filepath.Join(x.opts.OutputPath, filepath.FromSlash(name))
	if _, err := os.Lstat(outPath); err == nil {
		if !x.opts.Overwrite {
			x.entryError(name, ErrFileExists)
			return
		}
		if err := os.Remove(outPath); err != nil {
			x.entryError(name, fmt.Errorf("remove: %w", err))
			return
		}
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		x.entryError(name, fmt.Errorf("mkdir: %w", err))
		return
	}

	if hard {
		src := filepath.Join(x.opts.OutputPath, filepath.FromSlash(entryName(target)))
		if err := os.Link(src, outPath); err != nil {
			x.entryError(name, fmt.Errorf("link: %w", err))
			return
		}
		if err := x.record(name, outPath); err != nil {
			x.entryError(name, err)
		}
		return
	}

	if err := os.Symlink(target, outPath); err != nil {
		x.entryError(name, fmt.Errorf("symlink: %w", err))
		return
	}
	x.addEntry(Entry{Name: name, Path: outPath}, 0)
}

// record registers a file an external tool wrote
func (x *extractor) record(name, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	entry := Entry{Name: name, Path: path, Size: uint64(info.Size())}
	if x.opts.Checksum {
		sum, err := digest.File(path)
		if err != nil {
			return fmt.Errorf("checksum %s: %w", name, err)
		}
		entry.Digest = sum.String()
	}
	x.addEntry(entry, info.Size())
	return nil
}

func (x *extractor) addEntry(entry Entry, total int64) {
	x.result.Files = append(x.result.Files, entry)
	x.result.FilesProcessed++
	x.result.DecompressedSize += entry.Size

	if entry.Digest != "" {
		x.opts.debugf("  %s (%s) blake3:%s", entry.Name, FormatSize(entry.Size), entry.Digest)
	} else {
		x.opts.debugf("  %s (%s)", entry.Name, FormatSize(entry.Size))
	}

	x.emit(ProgressEvent{
		Type:             EventFileComplete,
		FilePath:         entry.Name,
		Current:          total,
		Total:            total,
		DecompressedSize: entry.Size,
	})
}

// entryName normalises an archive entry name to a relative slash path
func entryName(name string) string {
	name = filepath.ToSlash(name)
	name = strings.TrimPrefix(name, "./")
	return strings.TrimSuffix(name, "/")
}
