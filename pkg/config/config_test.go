package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goprimer/goprimer/pkg/ui"
)

// Stylings are func values, which go-cmp never considers equal, so compare
// them by their effect on a rendered Text instead.
var compareStylings = cmp.Comparer(func(a, b ui.Styling) bool {
	return cmp.Equal(ui.StyleText(ui.T("x"), a), ui.StyleText(ui.T("x"), b))
})

func writeFile(t *testing.T, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(fname, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestLoad_EmptyNameGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load -> error %v", err)
	}
	if diff := cmp.Diff(Default(), cfg, compareStylings); diff != "" {
		t.Errorf("config differs from defaults (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	if err != nil {
		t.Fatalf("Load -> error %v", err)
	}
	if diff := cmp.Diff(Default(), cfg, compareStylings); diff != "" {
		t.Errorf("config differs from defaults (-want +got):\n%s", diff)
	}
}

func TestLoad_AppliesThemeAndMaxHeight(t *testing.T) {
	fname := writeFile(t, `
theme:
  title: red bold
  button: underlined
  focused-button: bg-blue
max-height: 15
trace-prefix: "lesson: "
`)
	cfg, err := Load(fname)
	if err != nil {
		t.Fatalf("Load -> error %v", err)
	}
	if cfg.MaxHeight != 15 {
		t.Errorf("MaxHeight = %d, want 15", cfg.MaxHeight)
	}
	if cfg.TracePrefix != "lesson: " {
		t.Errorf("TracePrefix = %q, want %q", cfg.TracePrefix, "lesson: ")
	}

	wantTitle := ui.StyleText(ui.T("x"), ui.FgRed, ui.Bold)
	if diff := cmp.Diff(wantTitle, ui.StyleText(ui.T("x"), cfg.Theme.Title)); diff != "" {
		t.Errorf("title styling differs (-want +got):\n%s", diff)
	}
	wantFocused := ui.StyleText(ui.T("x"), ui.BgBlue)
	if diff := cmp.Diff(wantFocused, ui.StyleText(ui.T("x"), cfg.Theme.FocusedButton)); diff != "" {
		t.Errorf("focused-button styling differs (-want +got):\n%s", diff)
	}
	// Label was not mentioned, so it keeps the default.
	if cfg.Theme.Label != nil {
		t.Errorf("Label styling = %v, want nil", cfg.Theme.Label)
	}
}

func TestLoad_RejectsInvalidStylingWord(t *testing.T) {
	fname := writeFile(t, "theme:\n  title: sparkly\n")
	_, err := Load(fname)
	if err == nil || !strings.Contains(err.Error(), "theme.title") {
		t.Errorf("Load -> error %v, want one mentioning theme.title", err)
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	fname := writeFile(t, "colour-scheme: dark\n")
	if _, err := Load(fname); err == nil {
		t.Errorf("Load -> no error, want unknown key error")
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	fname := writeFile(t, "theme: [unclosed\n")
	if _, err := Load(fname); err == nil {
		t.Errorf("Load -> no error, want parse error")
	}
}
