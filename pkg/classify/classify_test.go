package classify_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creativeyann17/go-unbox/internal/archivetest"
	"github.com/creativeyann17/go-unbox/internal/format"
	"github.com/creativeyann17/go-unbox/internal/tool"
	"github.com/creativeyann17/go-unbox/internal/tool/tooltest"
	"github.com/creativeyann17/go-unbox/pkg/classify"
)

// notPacked answers every upx -t like upx does for a foreign file
func notPacked(name string, args []string) *tool.Output {
	return &tool.Output{
		Stderr:   "upx: " + args[len(args)-1] + ": NotPackedException: not packed by UPX",
		ExitCode: 2,
	}
}

func newClassifier(runner tool.Runner) *classify.Classifier {
	return classify.Default(&classify.Options{Runner: runner})
}

func TestClassifyBySignature(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("This is a test file.")

	tests := []struct {
		name string
		path string
		want format.Type
	}{
		{"Zip", archivetest.Zip(t, filepath.Join(dir, "a.zip"), map[string]string{"a.txt": "hello"}), format.TypeZip},
		{"RenamedZip", archivetest.Zip(t, filepath.Join(dir, "zip.bin"), map[string]string{"a.txt": "hello"}), format.TypeZip},
		{"Tar", archivetest.Tar(t, filepath.Join(dir, "report.tar"), map[string]string{"a.txt": "hello"}), format.TypeTar},
		{"Gzip", archivetest.Gzip(t, filepath.Join(dir, "name.gz"), payload, ""), format.TypeGzip},
		{"SevenZip", archivetest.SevenZip(t, filepath.Join(dir, "sample.7z")), format.TypeSevenZip},
		{"Rar", archivetest.Rar(t, filepath.Join(dir, "sample.rar")), format.TypeRar},
		{"Xz", archivetest.Xz(t, filepath.Join(dir, "data.xz"), payload), format.TypeXz},
		{"Zstd", archivetest.Zstd(t, filepath.Join(dir, "data.zst"), payload), format.TypeZstd},
		{"MSI", archivetest.MSI(t, filepath.Join(dir, "setup.msi")), format.TypeMSI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &tooltest.Runner{Output: notPacked}
			det, err := newClassifier(runner).Detect(tt.path)
			if err != nil {
				t.Fatalf("Detect failed: %v", err)
			}
			if det.Type != tt.want {
				t.Errorf("Expected %s, got %s (mime %s)", tt.want, det.Type, det.MIME)
			}
			if runner.CallCount() != 0 {
				t.Errorf("Expected no upx call for a signature match, got %d", runner.CallCount())
			}
		})
	}
}

func TestClassifyMSIProbe(t *testing.T) {
	path := archivetest.MSI(t, filepath.Join(t.TempDir(), "installer.bin"))

	det, err := newClassifier(&tooltest.Runner{Output: notPacked}).Detect(path)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if det.Type != format.TypeMSI {
		t.Fatalf("Expected MSI, got %s", det.Type)
	}
	if det.Probe != "msi" {
		t.Errorf("Expected msi probe to match, got %q", det.Probe)
	}
}

func TestClassifyUnknownBlob(t *testing.T) {
	path := archivetest.Blob(t, filepath.Join(t.TempDir(), "blob.dat"))
	runner := &tooltest.Runner{Output: notPacked}

	det, err := newClassifier(runner).Detect(path)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if det.Type != format.TypeUnknown {
		t.Errorf("Expected UNKNOWN, got %s", det.Type)
	}
	if det.Probe != "" {
		t.Errorf("Expected no matching probe, got %q", det.Probe)
	}
	if len(det.Attempts) != 3 {
		t.Fatalf("Expected 3 attempts, got %d", len(det.Attempts))
	}
	if got := runner.Last().String(); got != "upx -t "+path {
		t.Errorf("Unexpected upx invocation: %s", got)
	}
}

func TestClassifyUPX(t *testing.T) {
	path := archivetest.Blob(t, filepath.Join(t.TempDir(), "packed.exe"))
	runner := &tooltest.Runner{Output: func(string, []string) *tool.Output {
		return &tool.Output{Stdout: "testing packed.exe [OK]\nTested 1 file."}
	}}

	det, err := newClassifier(runner).Detect(path)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if det.Type != format.TypeUPX {
		t.Errorf("Expected UPX, got %s", det.Type)
	}
	if det.Probe != "upx" {
		t.Errorf("Expected upx probe to match, got %q", det.Probe)
	}
}

func TestClassifyUPXNonZeroExit(t *testing.T) {
	path := archivetest.Blob(t, filepath.Join(t.TempDir(), "weird.bin"))
	runner := &tooltest.Runner{Output: func(string, []string) *tool.Output {
		return &tool.Output{ExitCode: 1}
	}}

	typ, err := newClassifier(runner).Classify(path)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if typ != format.TypeUnknown {
		t.Errorf("Expected UNKNOWN for failing upx, got %s", typ)
	}
}

func TestClassifyToolUnavailable(t *testing.T) {
	path := archivetest.Blob(t, filepath.Join(t.TempDir(), "blob.dat"))
	runner := &tooltest.Runner{Missing: map[string]bool{"upx": true}}

	det, err := newClassifier(runner).Detect(path)
	if !errors.Is(err, classify.ErrToolUnavailable) {
		t.Fatalf("Expected ErrToolUnavailable, got %v", err)
	}
	if det == nil || det.Type != format.TypeUnknown {
		t.Fatalf("Expected UNKNOWN detection alongside the error, got %+v", det)
	}
	if !strings.Contains(err.Error(), "upx") {
		t.Errorf("Error should name the probe: %v", err)
	}
}

func TestClassifyMissingToolIgnoredWhenMatched(t *testing.T) {
	path := archivetest.Zip(t, filepath.Join(t.TempDir(), "a.zip"), map[string]string{"a.txt": "hello"})
	runner := &tooltest.Runner{Missing: map[string]bool{"upx": true}}

	typ, err := newClassifier(runner).Classify(path)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if typ != format.TypeZip {
		t.Errorf("Expected ZIP, got %s", typ)
	}
}

func TestClassifyUnreadable(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing", func(t *testing.T) {
		_, err := newClassifier(&tooltest.Runner{}).Classify(filepath.Join(dir, "does-not-exist"))
		if !errors.Is(err, classify.ErrUnreadableInput) {
			t.Errorf("Expected ErrUnreadableInput, got %v", err)
		}
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := newClassifier(&tooltest.Runner{}).Classify(dir)
		if !errors.Is(err, classify.ErrUnreadableInput) {
			t.Errorf("Expected ErrUnreadableInput, got %v", err)
		}
	})
}

type fixedProbe struct {
	name string
	out  classify.Outcome
	hits *int
}

func (p fixedProbe) Name() string { return p.name }

func (p fixedProbe) Probe(*classify.Sample) classify.Outcome {
	*p.hits++
	return p.out
}

func TestClassifierFirstMatchWins(t *testing.T) {
	path := archivetest.Blob(t, filepath.Join(t.TempDir(), "blob.dat"))
	var first, second, third int

	c := classify.New(
		fixedProbe{name: "first", out: classify.Outcome{Verdict: classify.NotMatched}, hits: &first},
		fixedProbe{name: "second", out: classify.Outcome{Verdict: classify.Matched, Type: format.TypeRar}, hits: &second},
		fixedProbe{name: "third", out: classify.Outcome{Verdict: classify.Matched, Type: format.TypeZip}, hits: &third},
	)

	det, err := c.Detect(path)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if det.Type != format.TypeRar || det.Probe != "second" {
		t.Errorf("Expected RAR from second probe, got %s from %q", det.Type, det.Probe)
	}
	if first != 1 || second != 1 || third != 0 {
		t.Errorf("Unexpected probe hits: %d %d %d", first, second, third)
	}
}

func TestVerdictString(t *testing.T) {
	if classify.Matched.String() != "matched" {
		t.Errorf("Unexpected: %s", classify.Matched)
	}
	if classify.ToolUnavailable.String() != "tool unavailable" {
		t.Errorf("Unexpected: %s", classify.ToolUnavailable)
	}
	if classify.NotMatched.String() != "not matched" {
		t.Errorf("Unexpected: %s", classify.NotMatched)
	}
}
