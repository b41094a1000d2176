package unpack

import (
	"testing"

	"github.com/creativeyann17/go-unbox/internal/format"
)

func TestStreamOutputName(t *testing.T) {
	tests := []struct {
		input  string
		typ    format.Type
		header string
		want   string
	}{
		{"/data/name.gz", format.TypeGzip, "", "name"},
		{"/data/a.tar.gz", format.TypeGzip, "", "a.tar"},
		{"/data/a.tgz", format.TypeGzip, "", "a.tar"},
		{"/data/.gz", format.TypeGzip, "inner.txt", "inner.txt"},
		{"/data/blob", format.TypeGzip, "dir/inner.txt", "inner.txt"},
		{"/data/blob", format.TypeGzip, "", "blob.out"},
		{"/data/a.xz", format.TypeXz, "", "a"},
		{"/data/a.txz", format.TypeXz, "", "a.tar"},
		{"/data/a.zst", format.TypeZstd, "", "a"},
		{"/data/a.zstd", format.TypeZstd, "", "a"},
		{"/data/a.tzst", format.TypeZstd, "", "a.tar"},
		{"/data/a.gz", format.TypeXz, "", "a.gz.out"},
	}
	for _, tt := range tests {
		if got := streamOutputName(tt.input, tt.typ, tt.header); got != tt.want {
			t.Errorf("streamOutputName(%q, %s, %q) = %q, want %q", tt.input, tt.typ, tt.header, got, tt.want)
		}
	}
}

func TestExcludeFilter(t *testing.T) {
	var none *excludeFilter
	if none.Match("anything") {
		t.Error("Nil filter should match nothing")
	}
	if newExcludeFilter([]string{"", "  "}) != nil {
		t.Error("Blank patterns should yield no filter")
	}

	f := newExcludeFilter([]string{"*.log", "/build/", "tmp"})
	tests := []struct {
		name string
		want bool
	}{
		{"app.log", true},
		{"logs/deep/app.log", true},
		{"./app.log", true},
		{"build/out.bin", true},
		{"src/build/x.go", false},
		{"tmp", true},
		{"cache/tmp/file", true},
		{"main.go", false},
	}
	for _, tt := range tests {
		if got := f.Match(tt.name); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEntryName(t *testing.T) {
	tests := map[string]string{
		"./a/b.txt": "a/b.txt",
		"dir/":      "dir",
		"plain.txt": "plain.txt",
	}
	for in, want := range tests {
		if got := entryName(in); got != want {
			t.Errorf("entryName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResultFinish(t *testing.T) {
	r := &Result{}
	r.finish(nil)
	if r.Status != StatusSuccess || !r.Success() {
		t.Errorf("Expected success, got %s", r.Status)
	}

	r = &Result{Errors: []error{ErrFileExists}}
	r.finish(nil)
	if r.Status != StatusPartial || r.Reason() != ErrFileExists.Error() {
		t.Errorf("Expected partial, got %s %q", r.Status, r.Reason())
	}

	r = &Result{}
	r.finish(ErrToolUnavailable)
	if r.Status != StatusFailure || r.Err != ErrToolUnavailable {
		t.Errorf("Expected failure, got %s", r.Status)
	}
}

func TestDescribe(t *testing.T) {
	tests := map[format.Type]string{
		format.TypeZip:  "Extracting ZIP archive...",
		format.TypeXz:   "Decompressing XZ stream...",
		format.TypeMSI:  "Windows Installer package, extracting with msiextract...",
		format.TypeUPX:  "UPX-packed executable, unpacking with upx...",
		format.TypeRar:  "Extracting RAR archive...",
		format.TypeGzip: "Decompressing GZIP stream...",
	}
	for typ, want := range tests {
		if got := describe(typ); got != want {
			t.Errorf("describe(%s) = %q, want %q", typ, got, want)
		}
	}
}
