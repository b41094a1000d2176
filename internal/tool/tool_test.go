package tool_test

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/creativeyann17/go-unbox/internal/tool"
	"github.com/creativeyann17/go-unbox/internal/tool/tooltest"
)

func TestUPXTest(t *testing.T) {
	tests := []struct {
		name   string
		output tool.Output
		packed bool
	}{
		{"Packed", tool.Output{Stdout: "testing hello_upx.exe [OK]"}, true},
		{"NotPacked", tool.Output{Stderr: "upx: blob.bin: NotPackedException: not packed by UPX", ExitCode: 2}, false},
		{"NotPackedZeroExit", tool.Output{Stderr: "upx: blob.bin: NotPackedException: not packed by UPX"}, false},
		{"UnknownFormat", tool.Output{Stderr: "upx: blob.bin: UnknownExecutableFormatException", ExitCode: 1}, false},
		{"NonZeroExitOnly", tool.Output{ExitCode: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.output
			runner := &tooltest.Runner{
				Output: func(string, []string) *tool.Output { return &out },
			}
			packed, err := tool.NewUPX(runner, "").Test("sample.bin")
			if err != nil {
				t.Fatalf("Test failed: %v", err)
			}
			if packed != tt.packed {
				t.Errorf("Expected packed=%v, got %v", tt.packed, packed)
			}
			if got := runner.Last().String(); got != "upx -t sample.bin" {
				t.Errorf("Unexpected command line: %q", got)
			}
		})
	}
}

func TestUPXMissing(t *testing.T) {
	runner := &tooltest.Runner{Missing: map[string]bool{"upx": true}}

	_, err := tool.NewUPX(runner, "").Test("sample.bin")
	if !errors.Is(err, tool.ErrNotInstalled) {
		t.Fatalf("Expected ErrNotInstalled, got %v", err)
	}

	err = tool.NewUPX(runner, "").Decompress("sample.bin", "out")
	if !errors.Is(err, tool.ErrNotInstalled) {
		t.Fatalf("Expected ErrNotInstalled, got %v", err)
	}
}

func TestUPXDecompress(t *testing.T) {
	runner := &tooltest.Runner{}
	if err := tool.NewUPX(runner, "/opt/upx/upx").Decompress("in.exe", "/tmp/out/unpacked_file"); err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if got := runner.Last().String(); got != "/opt/upx/upx -d -o /tmp/out/unpacked_file in.exe" {
		t.Errorf("Unexpected command line: %q", got)
	}

	runner.Output = func(string, []string) *tool.Output {
		return &tool.Output{Stderr: "upx: in.exe: CantUnpackException: file is modified/hacked/protected"}
	}
	err := tool.NewUPX(runner, "").Decompress("in.exe", "out")
	if !errors.Is(err, tool.ErrToolFailed) {
		t.Fatalf("Expected ErrToolFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "CantUnpackException") {
		t.Errorf("Error should carry the diagnostic, got %v", err)
	}
}

func TestMSIExtract(t *testing.T) {
	runner := &tooltest.Runner{}
	if err := tool.NewMSIExtract(runner, "").Extract("setup.msi", "/out/extracted_files"); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got := runner.Last().String(); got != "msiextract -C /out/extracted_files setup.msi" {
		t.Errorf("Unexpected command line: %q", got)
	}

	t.Run("ExitStatusWithoutStderr", func(t *testing.T) {
		runner := &tooltest.Runner{
			Output: func(string, []string) *tool.Output { return &tool.Output{ExitCode: 3} },
		}
		err := tool.NewMSIExtract(runner, "").Extract("setup.msi", "out")
		if !errors.Is(err, tool.ErrToolFailed) {
			t.Fatalf("Expected ErrToolFailed, got %v", err)
		}
		if !strings.Contains(err.Error(), "exit status 3") {
			t.Errorf("Expected exit status in message, got %v", err)
		}
	})
}

func TestExecRunnerMissingTool(t *testing.T) {
	_, err := tool.ExecRunner{}.Run("gounbox-definitely-not-a-real-tool")
	if !errors.Is(err, tool.ErrNotInstalled) {
		t.Fatalf("Expected ErrNotInstalled, got %v", err)
	}
}

func TestExecRunnerCapturesExitCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	out, err := tool.ExecRunner{}.Run("sh", "-c", "echo out; echo err >&2; exit 4")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if strings.TrimSpace(out.Stdout) != "out" {
		t.Errorf("Expected stdout 'out', got %q", out.Stdout)
	}
	if strings.TrimSpace(out.Stderr) != "err" {
		t.Errorf("Expected stderr 'err', got %q", out.Stderr)
	}
	if out.ExitCode != 4 {
		t.Errorf("Expected exit code 4, got %d", out.ExitCode)
	}
	if !out.Failed() {
		t.Error("Output should report failure")
	}
}
