// pkg/unpack/unpack_7z.go
package unpack

import (
	"fmt"
	"io"

	"github.com/javi11/sevenzip"
)

// unpackSevenZip extracts every entry of a 7z archive
func unpackSevenZip(x *extractor) (string, error) {
	archive, err := sevenzip.OpenReader(x.opts.InputPath)
	if err != nil {
		return "", fmt.Errorf("open 7z archive: %w", err)
	}
	defer archive.Close()

	x.addInputSize(x.opts.InputPath)

	var totalFiles int
	for _, f := range archive.File {
		if !f.FileInfo().IsDir() {
			totalFiles++
		}
	}
	x.start(totalFiles)

	for _, f := range archive.File {
		info := f.FileInfo()
		if info.IsDir() {
			x.dir(f.Name)
			continue
		}
		x.entry(f.Name, info.Size(), info.Mode(), func() (io.ReadCloser, error) {
			return f.Open()
		})
	}

	return x.opts.OutputPath, nil
}
