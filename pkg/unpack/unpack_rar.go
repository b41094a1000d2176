// pkg/unpack/unpack_rar.go
package unpack

import (
	"fmt"
	"io"

	"github.com/nwaples/rardecode"
)

// unpackRar extracts every entry of a RAR archive (no password support)
func unpackRar(x *extractor) (string, error) {
	totalFiles, err := countRarFiles(x.opts.InputPath)
	if err != nil {
		return "", fmt.Errorf("scan archive: %w", err)
	}
	x.start(totalFiles)

	archive, err := rardecode.OpenReader(x.opts.InputPath, "")
	if err != nil {
		return "", fmt.Errorf("open rar archive: %w", err)
	}
	defer archive.Close()

	x.addInputSize(x.opts.InputPath)

	for {
		header, err := archive.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read rar header: %w", err)
		}

		if header.IsDir {
			x.dir(header.Name)
			continue
		}
		x.entry(header.Name, header.UnPackedSize, header.Mode(), func() (io.ReadCloser, error) {
			return io.NopCloser(archive), nil
		})
	}

	return x.opts.OutputPath, nil
}

// countRarFiles counts the file entries of a RAR archive
func countRarFiles(path string) (int, error) {
	archive, err := rardecode.OpenReader(path, "")
	if err != nil {
		return 0, err
	}
	defer archive.Close()

	count := 0
	for {
		header, err := archive.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		if !header.IsDir {
			count++
		}
	}
	return count, nil
}
