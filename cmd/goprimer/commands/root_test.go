package commands

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goprimer/goprimer/pkg/logutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	defer logutil.SetOutput(io.Discard)
	var sb strings.Builder
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&sb)
	cmd.SetErr(&sb)
	err := cmd.Execute()
	return sb.String(), err
}

func TestDump_ShowsScreenAndTraces(t *testing.T) {
	out, err := execute(t, "--dump")
	if err != nil {
		t.Fatalf("execute -> error %v", err)
	}
	for _, want := range []string{"Bindings", "Generics", "primer: "} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output does not contain %q; output:\n%s", want, out)
		}
	}
}

func TestDump_TraceFileReceivesTraces(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "trace.log")
	out, err := execute(t, "--dump", "--trace", fname)
	if err != nil {
		t.Fatalf("execute -> error %v", err)
	}
	if strings.Contains(out, "primer: ") {
		t.Errorf("traces leaked to stdout despite --trace; output:\n%s", out)
	}
	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatalf("ReadFile -> error %v", err)
	}
	if !strings.Contains(string(content), "bindings: ") {
		t.Errorf("trace file %q misses the bindings block", content)
	}
}

func TestConfigFlag_AppliesTracePrefix(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(fname, []byte("trace-prefix: \"tour: \"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--dump", "--config", fname)
	if err != nil {
		t.Fatalf("execute -> error %v", err)
	}
	if !strings.Contains(out, "tour: ") {
		t.Errorf("output does not use the configured trace prefix:\n%s", out)
	}
}

func TestConfigFlag_BadStylingIsAnError(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(fname, []byte("theme:\n  title: sparkly\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--dump", "--config", fname)
	if err == nil {
		t.Fatalf("execute with a bad styling word -> no error")
	}
	// The command layer must report the error, not just return it.
	if !strings.Contains(out, "theme.title") {
		t.Errorf("error was not reported on the command's output:\n%s", out)
	}
}

func TestRejectsPositionalArgs(t *testing.T) {
	if _, err := execute(t, "extra"); err == nil {
		t.Errorf("execute with a positional arg -> no error")
	}
}
