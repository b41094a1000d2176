// pkg/unpack/unpack_tar.go
package unpack

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
)

// unpackTar extracts an uncompressed tar archive. Symbolic and hard links are
// recreated; device and fifo entries are reported as errors.
func unpackTar(x *extractor) (string, error) {
	totalFiles, err := countTarFiles(x.opts.InputPath)
	if err != nil {
		return "", fmt.Errorf("scan archive: %w", err)
	}
	x.start(totalFiles)

	file, err := os.Open(x.opts.InputPath)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer file.Close()

	x.addInputSize(x.opts.InputPath)

	tarReader := tar.NewReader(file)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read tar header: %w", err)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			x.dir(header.Name)
		case tar.TypeReg:
			x.entry(header.Name, header.Size, header.FileInfo().Mode(), func() (io.ReadCloser, error) {
				return io.NopCloser(tarReader), nil
			})
		case tar.TypeSymlink:
			x.link(header.Name, header.Linkname, false)
		case tar.TypeLink:
			x.link(header.Name, header.Linkname, true)
		case tar.TypeChar, tar.TypeBlock, tar.TypeFifo:
			x.entryError(entryName(header.Name), fmt.Errorf("%w %q", ErrUnsupportedEntry, header.Typeflag))
		default:
			x.opts.debugf("  ignore %s (type %q)", header.Name, header.Typeflag)
		}
	}

	return x.opts.OutputPath, nil
}

// countTarFiles counts the file entries (regular, links, devices) in a tar archive
func countTarFiles(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	tarReader := tar.NewReader(file)
	count := 0
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		switch header.Typeflag {
		case tar.TypeReg, tar.TypeSymlink, tar.TypeLink, tar.TypeChar, tar.TypeBlock, tar.TypeFifo:
			count++
		}
	}
	return count, nil
}
