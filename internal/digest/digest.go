// internal/digest/digest.go
package digest

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Sum is a BLAKE3-256 digest
type Sum [32]byte

// String returns the hex encoding of the digest
func (s Sum) String() string {
	return hex.EncodeToString(s[:])
}

// Bytes computes the digest of an in-memory buffer
func Bytes(data []byte) Sum {
	return blake3.Sum256(data)
}

// File computes the digest of the file at path
func File(path string) (Sum, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sum{}, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	w := NewWriter(io.Discard)
	if _, err := io.Copy(w, f); err != nil {
		return Sum{}, fmt.Errorf("hash: %w", err)
	}
	return w.Sum(), nil
}

// Writer forwards writes to an underlying writer and hashes them on the way
type Writer struct {
	w      io.Writer
	hasher *blake3.Hasher
}

// NewWriter wraps w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, hasher: blake3.New()}
}

func (dw *Writer) Write(p []byte) (int, error) {
	n, err := dw.w.Write(p)
	if n > 0 {
		// blake3.Hasher never returns an error
		_, _ = dw.hasher.Write(p[:n])
	}
	return n, err
}

// Sum returns the digest of everything written so far
func (dw *Writer) Sum() Sum {
	var s Sum
	copy(s[:], dw.hasher.Sum(nil))
	return s
}
