// internal/archivetest/archivetest.go

// Package archivetest builds sample inputs of every supported type for tests
package archivetest

import (
	"archive/tar"
	"archive/zip"
	_ "embed"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Entry name and content stored in the embedded 7z and rar samples
const (
	SampleName    = "test_file.txt"
	SampleContent = "This is a test file."
)

//go:embed testdata/sample.7z
var sample7z []byte

//go:embed testdata/sample.rar
var sampleRar []byte

// WriteFile writes data to path, creating parent directories
func WriteFile(t testing.TB, path string, data []byte) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// Zip writes a zip archive holding files (name -> content)
func Zip(t testing.TB, path string, files map[string]string) string {
	t.Helper()
	f := create(t, path)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range sortedNames(files) {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			t.Fatalf("Failed to add %s to zip: %v", name, err)
		}
		if _, err := io.WriteString(w, files[name]); err != nil {
			t.Fatalf("Failed to write %s to zip: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return path
}

// Tar writes an uncompressed tar archive holding files (name -> content).
// Parent directories get their own headers.
func Tar(t testing.TB, path string, files map[string]string) string {
	t.Helper()
	f := create(t, path)
	defer f.Close()

	tw := tar.NewWriter(f)
	seenDirs := make(map[string]bool)
	for _, name := range sortedNames(files) {
		if dir := filepath.ToSlash(filepath.Dir(name)); dir != "." && !seenDirs[dir] {
			seenDirs[dir] = true
			if err := tw.WriteHeader(&tar.Header{Name: dir + "/", Typeflag: tar.TypeDir, Mode: 0755}); err != nil {
				t.Fatalf("Failed to write dir header %s: %v", dir, err)
			}
		}
		content := files[name]
		hdr := &tar.Header{Name: name, Typeflag: tar.TypeReg, Mode: 0644, Size: int64(len(content))}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("Failed to write header %s: %v", name, err)
		}
		if _, err := io.WriteString(tw, content); err != nil {
			t.Fatalf("Failed to write %s to tar: %v", name, err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Failed to close tar: %v", err)
	}
	return path
}

// TarEntry is one raw tar member. Size is filled from Content for regular files.
type TarEntry struct {
	Header  tar.Header
	Content string
}

// TarEntries writes an uncompressed tar archive with entries in order, for
// links and special files Tar cannot express
func TarEntries(t testing.TB, path string, entries []TarEntry) string {
	t.Helper()
	f := create(t, path)
	defer f.Close()

	tw := tar.NewWriter(f)
	for _, e := range entries {
		hdr := e.Header
		if hdr.Typeflag == tar.TypeReg {
			hdr.Size = int64(len(e.Content))
		}
		if err := tw.WriteHeader(&hdr); err != nil {
			t.Fatalf("Failed to write header %s: %v", hdr.Name, err)
		}
		if hdr.Size > 0 {
			if _, err := io.WriteString(tw, e.Content); err != nil {
				t.Fatalf("Failed to write %s to tar: %v", hdr.Name, err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Failed to close tar: %v", err)
	}
	return path
}

// Gzip writes data as a single gzip stream. headerName is stored in the
// gzip header when not empty.
func Gzip(t testing.TB, path string, data []byte, headerName string) string {
	t.Helper()
	f := create(t, path)
	defer f.Close()

	gw := gzip.NewWriter(f)
	gw.Name = headerName
	if _, err := gw.Write(data); err != nil {
		t.Fatalf("Failed to write gzip data: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("Failed to close gzip: %v", err)
	}
	return path
}

// Xz writes data as a single xz stream
func Xz(t testing.TB, path string, data []byte) string {
	t.Helper()
	f := create(t, path)
	defer f.Close()

	xw, err := xz.NewWriter(f)
	if err != nil {
		t.Fatalf("Failed to create xz writer: %v", err)
	}
	if _, err := xw.Write(data); err != nil {
		t.Fatalf("Failed to write xz data: %v", err)
	}
	if err := xw.Close(); err != nil {
		t.Fatalf("Failed to close xz: %v", err)
	}
	return path
}

// Zstd writes data as a single zstd stream
func Zstd(t testing.TB, path string, data []byte) string {
	t.Helper()
	f := create(t, path)
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatalf("Failed to create zstd writer: %v", err)
	}
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("Failed to write zstd data: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zstd: %v", err)
	}
	return path
}

// SevenZip writes a 7z archive holding SampleName with SampleContent
func SevenZip(t testing.TB, path string) string {
	t.Helper()
	return WriteFile(t, path, sample7z)
}

// Rar writes a RAR 4 archive holding SampleName with SampleContent
func Rar(t testing.TB, path string) string {
	t.Helper()
	return WriteFile(t, path, sampleRar)
}

// MSIHeader returns the leading bytes of a Windows Installer package: an OLE
// compound file whose root storage carries the installer CLSID.
func MSIHeader() []byte {
	const sector = 512
	buf := make([]byte, 2*sector)
	copy(buf, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	binary.LittleEndian.PutUint16(buf[24:], 0x003E) // minor version
	binary.LittleEndian.PutUint16(buf[26:], 0x0003) // major version 3: 512-byte sectors
	binary.LittleEndian.PutUint16(buf[28:], 0xFFFE) // byte order
	binary.LittleEndian.PutUint16(buf[30:], 0x0009) // sector shift
	binary.LittleEndian.PutUint32(buf[48:], 0)      // first directory sector
	clsid := []byte{
		0x84, 0x10, 0x0C, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
	}
	copy(buf[sector+80:], clsid)
	return buf
}

// MSI writes a file carrying an MSI header
func MSI(t testing.TB, path string) string {
	t.Helper()
	return WriteFile(t, path, MSIHeader())
}

// Blob writes bytes no sniffer or probe recognises
func Blob(t testing.TB, path string) string {
	t.Helper()
	data := make([]byte, 256)
	copy(data, "GOUNBOX-TAGGED-BLOB\x00")
	for i := 32; i < len(data); i++ {
		data[i] = byte(i * 7)
	}
	return WriteFile(t, path, data)
}

func create(t testing.TB, path string) *os.File {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	return f
}

func sortedNames(files map[string]string) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
