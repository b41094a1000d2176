// pkg/unpack/unpack_upx.go
package unpack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/creativeyann17/go-unbox/internal/tool"
)

// UPXOutputName is the file under the output directory that receives the unpacked executable
const UPXOutputName = "unpacked_file"

// unpackUPX runs upx -d into <output>/unpacked_file
func unpackUPX(x *extractor) (string, error) {
	outPath := filepath.Join(x.opts.OutputPath, UPXOutputName)

	if _, err := os.Stat(outPath); err == nil {
		if !x.opts.Overwrite {
			return "", fmt.Errorf("%s: %w", UPXOutputName, ErrFileExists)
		}
		// upx refuses to replace an existing output file
		if err := os.Remove(outPath); err != nil {
			return "", fmt.Errorf("remove %s: %w", UPXOutputName, err)
		}
	}

	x.start(1)
	x.emit(ProgressEvent{Type: EventFileStart, FilePath: UPXOutputName})

	x.opts.debugf("Running %s -d -o %s %s", x.opts.UPXPath, outPath, x.opts.InputPath)
	upx := tool.NewUPX(x.opts.Runner, x.opts.UPXPath)
	if err := upx.Decompress(x.opts.InputPath, outPath); err != nil {
		x.emit(ProgressEvent{Type: EventError, FilePath: UPXOutputName})
		return "", toolError(err)
	}

	x.addInputSize(x.opts.InputPath)
	if err := x.record(UPXOutputName, outPath); err != nil {
		return "", fmt.Errorf("upx reported success but produced no output: %w", err)
	}

	return outPath, nil
}
