package primer

import (
	"log"
	"strings"
	"testing"

	"github.com/goprimer/goprimer/pkg/config"
	"github.com/goprimer/goprimer/pkg/term"
	"github.com/goprimer/goprimer/pkg/ui"
)

func TestScreen_OnAppearWritesOneBlockPerLessonInOrder(t *testing.T) {
	var sb strings.Builder
	s := NewScreen(ScreenSpec{Trace: log.New(&sb, "", 0)})
	s.OnAppear()

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	var blocks []string
	for _, line := range lines {
		name, _, ok := strings.Cut(line, ": ")
		if !ok {
			t.Fatalf("trace line %q has no lesson prefix", line)
		}
		if len(blocks) == 0 || blocks[len(blocks)-1] != name {
			blocks = append(blocks, name)
		}
	}
	want := []string{"bindings", "sequences", "conditionals", "functions",
		"types", "copying", "generics"}
	if len(blocks) != len(want) {
		t.Fatalf("trace blocks are %v, want %v", blocks, want)
	}
	for i := range want {
		if blocks[i] != want[i] {
			t.Fatalf("trace blocks are %v, want %v", blocks, want)
		}
	}
}

func TestScreen_DumpShowsAllSections(t *testing.T) {
	s := NewScreen(ScreenSpec{})
	dump := s.Dump(80)
	for _, want := range []string{
		"Bindings", "var counter = 0",
		"Sequences", "words = [ant bee cat] (slice, len 3)",
		"Conditionals", "so left < right",
		"Functions", "Double(x) = 6   Add(x, 10) = 13",
		"Types", "Celsius(21) = Fahrenheit(69.8)",
		"Copying", "v = {1 2}",
		"Generics", "Sum = 8, Smallest = 1",
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump does not contain %q; dump:\n%s", want, dump)
		}
	}
}

func TestScreen_ButtonActivationShowsOnNextRender(t *testing.T) {
	s := NewScreen(ScreenSpec{})
	form := s.Form()
	form.Render(80, 30)

	// The first button on the screen is the bindings counter's +1.
	form.Handle(term.K(ui.Enter))
	if dump := s.Dump(80); !strings.Contains(dump, "var counter = 1") {
		t.Errorf("dump after activation does not show the new counter:\n%s", dump)
	}
}

func TestScreen_AppliesLabelStyling(t *testing.T) {
	s := NewScreen(ScreenSpec{Theme: config.Theme{Label: ui.FgRed}})
	sections := s.sections()
	label := sections[0].Rows[0].Label
	if len(label) == 0 || label[0].Fg != ui.Red {
		t.Errorf("label %v is not styled red", label)
	}
}
