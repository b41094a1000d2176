// pkg/unpack/unpack_zip.go
package unpack

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// unpackZip extracts a zip archive.
// Split sets named archive_01.zip, archive_02.zip, ... are extracted part by part.
func unpackZip(x *extractor) (string, error) {
	zipPaths, err := zipParts(x.opts.InputPath)
	if err != nil {
		return "", err
	}

	if len(zipPaths) > 1 {
		x.opts.logf("Detecting multi-part archive: scanning %d parts...", len(zipPaths))
		for _, part := range zipPaths {
			if part != x.opts.InputPath {
				x.opts.logf("  including sibling part %s", filepath.Base(part))
			}
		}
	}
	var totalFiles int
	for _, zipPath := range zipPaths {
		zr, err := zip.OpenReader(zipPath)
		if err != nil {
			return "", fmt.Errorf("open zip archive %s: %w", zipPath, err)
		}
		for _, f := range zr.File {
			if !f.FileInfo().IsDir() {
				totalFiles++
			}
		}
		zr.Close()
	}
	if len(zipPaths) > 1 {
		x.opts.logf("Found %d files across %d archive parts", totalFiles, len(zipPaths))
	}

	x.start(totalFiles)

	for _, zipPath := range zipPaths {
		if err := extractZipFile(zipPath, x); err != nil {
			return "", fmt.Errorf("extract %s: %w", zipPath, err)
		}
	}

	return x.opts.OutputPath, nil
}

// zipParts returns every part of a split set when inputPath looks like
// name_NN.zip and belongs to the consecutive run name_01.zip, name_02.zip, ...
// Otherwise inputPath alone.
func zipParts(inputPath string) ([]string, error) {
	baseName := filepath.Base(inputPath)
	if !strings.HasSuffix(baseName, ".zip") || !strings.Contains(baseName, "_") {
		return []string{inputPath}, nil
	}

	parts := strings.Split(strings.TrimSuffix(baseName, ".zip"), "_")
	lastPart := parts[len(parts)-1]
	if len(lastPart) != 2 || !isDigit(lastPart[0]) || !isDigit(lastPart[1]) {
		return []string{inputPath}, nil
	}

	basePattern := strings.Join(parts[:len(parts)-1], "_")
	dirPath := filepath.Dir(inputPath)

	var zipPaths []string
	member := false
	for i := 1; i <= 99; i++ {
		partPath := filepath.Join(dirPath, fmt.Sprintf("%s_%02d.zip", basePattern, i))
		if _, err := os.Stat(partPath); err != nil {
			break
		}
		if filepath.Clean(partPath) == filepath.Clean(inputPath) {
			member = true
			partPath = inputPath
		}
		zipPaths = append(zipPaths, partPath)
	}

	// A lone file that only looks numbered (report_07.zip), or one outside
	// the run starting at _01
	if !member {
		return []string{inputPath}, nil
	}
	return zipPaths, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// extractZipFile extracts a single zip archive
func extractZipFile(zipPath string, x *extractor) error {
	zipReader, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("open zip: %w", err)
	}
	defer zipReader.Close()

	x.addInputSize(zipPath)

	for _, zipFile := range zipReader.File {
		if zipFile.FileInfo().IsDir() {
			x.dir(zipFile.Name)
			continue
		}
		x.entry(zipFile.Name, int64(zipFile.UncompressedSize64), zipFile.Mode(), func() (io.ReadCloser, error) {
			return zipFile.Open()
		})
	}

	return nil
}
