package digest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriterMatchesBytes(t *testing.T) {
	data := bytes.Repeat([]byte("Hello World! This is test data for hashing. "), 100)

	var buf bytes.Buffer
	w := NewWriter(&buf)

	// Write in uneven pieces
	for i := 0; i < len(data); i += 37 {
		end := i + 37
		if end > len(data) {
			end = len(data)
		}
		if _, err := w.Write(data[i:end]); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	if !bytes.Equal(buf.Bytes(), data) {
		t.Error("Forwarded data doesn't match original")
	}
	if w.Sum() != Bytes(data) {
		t.Errorf("Streaming digest %s != one-shot digest %s", w.Sum(), Bytes(data))
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.bin")
	data := []byte("This is a test file.")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	sum, err := File(path)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}
	if sum != Bytes(data) {
		t.Errorf("Expected %s, got %s", Bytes(data), sum)
	}
	if len(sum.String()) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(sum.String()))
	}

	if _, err := File(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDistinctContent(t *testing.T) {
	if Bytes([]byte("a")) == Bytes([]byte("b")) {
		t.Error("Different content should produce different digests")
	}
}
