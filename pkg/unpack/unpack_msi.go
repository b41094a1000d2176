// pkg/unpack/unpack_msi.go
package unpack

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/creativeyann17/go-unbox/internal/tool"
)

// MSITargetDir is the directory under the output directory that receives MSI contents
const MSITargetDir = "extracted_files"

// unpackMSI runs msiextract into <output>/extracted_files and records the
// files it created or rewrote
func unpackMSI(x *extractor) (string, error) {
	target := filepath.Join(x.opts.OutputPath, MSITargetDir)
	if err := os.MkdirAll(target, 0755); err != nil {
		return "", fmt.Errorf("create target directory: %w", err)
	}

	before, err := scanRegularFiles(target)
	if err != nil {
		return "", fmt.Errorf("scan target directory: %w", err)
	}

	x.opts.debugf("Running %s -C %s %s", x.opts.MSIExtractPath, target, x.opts.InputPath)
	msi := tool.NewMSIExtract(x.opts.Runner, x.opts.MSIExtractPath)
	if err := msi.Extract(x.opts.InputPath, target); err != nil {
		return "", toolError(err)
	}

	x.addInputSize(x.opts.InputPath)

	after, err := scanRegularFiles(target)
	if err != nil {
		return "", fmt.Errorf("scan extracted files: %w", err)
	}

	// Leftovers of an earlier run are not part of this result
	var written []string
	for path, info := range after {
		if prev, ok := before[path]; ok && prev.Size() == info.Size() && prev.ModTime().Equal(info.ModTime()) {
			x.opts.debugf("  keep %s (from an earlier run)", path)
			continue
		}
		written = append(written, path)
	}
	sort.Strings(written)

	x.start(len(written))
	for _, path := range written {
		rel, err := filepath.Rel(target, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		if err := x.record(filepath.ToSlash(rel), path); err != nil {
			x.entryError(filepath.ToSlash(rel), err)
		}
	}

	return target, nil
}

// scanRegularFiles lists the regular files under root with their stat info
func scanRegularFiles(root string) (map[string]fs.FileInfo, error) {
	files := make(map[string]fs.FileInfo)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files[path] = info
		return nil
	})
	return files, err
}
