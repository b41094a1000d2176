// pkg/unpack/unpack_stream.go
package unpack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/creativeyann17/go-unbox/internal/format"
	"github.com/creativeyann17/go-unbox/pkg/gounbox"
)

// suffixRule maps an input file suffix to the suffix of the output file
type suffixRule struct {
	ext     string
	replace string
}

// streamSuffixes lists the suffixes stripped from single-stream inputs, longest first
var streamSuffixes = map[format.Type][]suffixRule{
	format.TypeGzip: {{".tgz", ".tar"}, {".gz", ""}},
	format.TypeXz:   {{".txz", ".tar"}, {".xz", ""}},
	format.TypeZstd: {{".tzst", ".tar"}, {".zstd", ""}, {".zst", ""}},
}

// streamOpener wraps the compressed input and returns the decoder and the
// original file name stored in the stream header, if any
type streamOpener func(r io.Reader) (io.ReadCloser, string, error)

func unpackGzip(x *extractor) (string, error) {
	return x.stream(format.TypeGzip, func(r io.Reader) (io.ReadCloser, string, error) {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, "", err
		}
		return zr, zr.Name, nil
	})
}

func unpackXz(x *extractor) (string, error) {
	return x.stream(format.TypeXz, func(r io.Reader) (io.ReadCloser, string, error) {
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, "", err
		}
		return io.NopCloser(xr), "", nil
	})
}

func unpackZstd(x *extractor) (string, error) {
	return x.stream(format.TypeZstd, func(r io.Reader) (io.ReadCloser, string, error) {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, "", err
		}
		return zr.IOReadCloser(), "", nil
	})
}

// stream decompresses a single-stream input into one file. Any error is fatal.
func (x *extractor) stream(typ format.Type, open streamOpener) (string, error) {
	file, err := os.Open(x.opts.InputPath)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat input: %w", err)
	}
	inputSize := stat.Size()
	x.result.CompressedSize += uint64(inputSize)

	// Progress follows the compressed bytes consumed; the output size is unknown upfront
	var name string
	var read int64
	src := &gounbox.ProgressReader{
		Reader: file,
		OnRead: func(n int) {
			read += int64(n)
			if name == "" {
				return
			}
			x.emit(ProgressEvent{
				Type:         EventFileProgress,
				FilePath:     name,
				Current:      read,
				Total:        inputSize,
				CurrentBytes: uint64(read),
				TotalBytes:   uint64(inputSize),
			})
		},
	}

	decoder, header, err := open(src)
	if err != nil {
		return "", fmt.Errorf("read %s stream: %w", strings.ToLower(typ.String()), err)
	}
	defer decoder.Close()

	name = streamOutputName(x.opts.InputPath, typ, header)
	location := filepath.Join(x.opts.OutputPath, name)

	x.start(1)
	if x.skip(name) {
		return x.opts.OutputPath, nil
	}

	x.emit(ProgressEvent{
		Type:     EventFileStart,
		FilePath: name,
		Total:    inputSize,
	})
	if err := x.writeFile(name, 0644, decoder, inputSize, false); err != nil {
		x.emit(ProgressEvent{Type: EventError, FilePath: name})
		return "", fmt.Errorf("%s: %w", name, err)
	}

	return location, nil
}

// streamOutputName derives the output file name of a single-stream input:
// the input name with its compression suffix stripped, then the name stored
// in the stream header, then the input name with ".out" appended
func streamOutputName(inputPath string, typ format.Type, headerName string) string {
	base := filepath.Base(inputPath)
	lower := strings.ToLower(base)

	for _, rule := range streamSuffixes[typ] {
		if strings.HasSuffix(lower, rule.ext) && len(base) > len(rule.ext) {
			return base[:len(base)-len(rule.ext)] + rule.replace
		}
	}

	if headerName != "" {
		if name := filepath.Base(filepath.FromSlash(headerName)); name != "." && name != string(filepath.Separator) {
			return name
		}
	}

	return base + ".out"
}
