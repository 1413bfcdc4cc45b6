package logutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetLogger_DiscardsByDefault(t *testing.T) {
	defer SetOutput(io.Discard)
	logger := GetLogger("x: ")
	// Must not panic or write anywhere.
	logger.Println("dropped")
}

func TestSetOutput_RedirectsExistingAndNewLoggers(t *testing.T) {
	defer SetOutput(io.Discard)
	before := GetLogger("before: ")
	var sb strings.Builder
	SetOutput(&sb)
	after := GetLogger("after: ")

	before.Println("one")
	after.Println("two")

	got := sb.String()
	if !strings.Contains(got, "before: ") || !strings.Contains(got, "one") {
		t.Errorf("output %q misses the pre-existing logger's line", got)
	}
	if !strings.Contains(got, "after: ") || !strings.Contains(got, "two") {
		t.Errorf("output %q misses the new logger's line", got)
	}
}

func TestSetOutputFile(t *testing.T) {
	defer SetOutput(io.Discard)
	fname := filepath.Join(t.TempDir(), "trace.log")
	closer, err := SetOutputFile(fname)
	if err != nil {
		t.Fatalf("SetOutputFile -> error %v", err)
	}
	GetLogger("t: ").Println("hello")
	if err := closer.Close(); err != nil {
		t.Errorf("Close -> error %v", err)
	}

	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatalf("ReadFile -> error %v", err)
	}
	if !strings.Contains(string(content), "hello") {
		t.Errorf("file content %q does not contain the logged line", content)
	}
}

func TestSetOutputFile_EmptyNameDiscards(t *testing.T) {
	closer, err := SetOutputFile("")
	if err != nil {
		t.Fatalf("SetOutputFile(\"\") -> error %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close -> error %v", err)
	}
}

func TestSetOutputFile_BadPath(t *testing.T) {
	defer SetOutput(io.Discard)
	if _, err := SetOutputFile(string(filepath.Separator) + "nonexistent-dir/trace.log"); err == nil {
		t.Errorf("SetOutputFile on a bad path -> no error")
	}
}
