package tk

import (
	"fmt"
	"strings"
	"testing"

	"github.com/goprimer/goprimer/pkg/term"
	"github.com/goprimer/goprimer/pkg/ui"
)

// A minimal model for testing the immediate-mode contract: the source closure
// derives sections from this counter, so bumping it must be reflected on the
// next render with no other plumbing.
type counterModel struct{ n int }

func (m *counterModel) sections() []Section {
	return []Section{{
		Title: ui.T("Counter"),
		Rows: []Row{{
			Label: ui.T(fmt.Sprintf("n = %d", m.n)),
			Buttons: []Button{
				{Label: ui.T("+1"), OnActivate: func() { m.n++ }},
				{Label: ui.T("-1"), OnActivate: func() { m.n-- }},
			},
		}},
	}}
}

func renderToLines(w Widget, width, height int) []string {
	buf := w.Render(width, height)
	var lines []string
	for _, line := range buf.Lines {
		var sb strings.Builder
		for _, cell := range line {
			sb.WriteString(cell.Text)
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return lines
}

func TestForm_RederivesContentOnEveryRender(t *testing.T) {
	m := &counterModel{}
	f := NewForm(FormSpec{Source: m.sections})

	lines := renderToLines(f, 40, 10)
	if want := "n = 0 [+1] [-1]"; lines[1] != want {
		t.Errorf("line 1 is %q, want %q", lines[1], want)
	}

	m.n = 7
	lines = renderToLines(f, 40, 10)
	if want := "n = 7 [+1] [-1]"; lines[1] != want {
		t.Errorf("after mutation line 1 is %q, want %q", lines[1], want)
	}
}

func TestForm_DefaultSpecStylesFocusedButton(t *testing.T) {
	m := &counterModel{}
	// No stylings given: the focused button must still render, with the
	// default inverse styling.
	f := NewForm(FormSpec{Source: m.sections})
	buf := f.Render(40, 10)
	found := false
	for _, cell := range buf.Lines[1] {
		if cell.Style == "7" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("no inverse cell in %s", buf.TTYString())
	}
}

func TestForm_ActivateInvokesFocusedButton(t *testing.T) {
	m := &counterModel{}
	f := NewForm(FormSpec{Source: m.sections})
	f.Render(40, 10)

	if handled := f.Handle(term.K(ui.Enter)); !handled {
		t.Errorf("Enter is not handled")
	}
	if m.n != 1 {
		t.Errorf("n = %d after activating +1, want 1", m.n)
	}

	// Move focus to the -1 button and activate twice with Space.
	f.Handle(term.K(ui.Tab))
	f.Handle(term.K(' '))
	f.Handle(term.K(' '))
	if m.n != -1 {
		t.Errorf("n = %d after activating -1 twice, want -1", m.n)
	}
}

func TestForm_FocusWrapsAround(t *testing.T) {
	m := &counterModel{}
	f := NewForm(FormSpec{Source: m.sections})
	f.Render(40, 10)

	f.Handle(term.K(ui.Tab, ui.Shift))
	if got := f.CopyState().Focus; got != 1 {
		t.Errorf("focus after Shift-Tab from 0 is %d, want 1", got)
	}
	f.Handle(term.K(ui.Tab))
	if got := f.CopyState().Focus; got != 0 {
		t.Errorf("focus after Tab wraps to %d, want 0", got)
	}
}

func manySections(n int) func() []Section {
	return func() []Section {
		var sections []Section
		for i := 0; i < n; i++ {
			sections = append(sections, Section{
				Title: ui.T(fmt.Sprintf("Section %d", i)),
				Rows:  []Row{{Label: ui.T("row")}},
			})
		}
		return sections
	}
}

func TestForm_ScrollAndScrollbar(t *testing.T) {
	f := NewForm(FormSpec{Source: manySections(10)})

	// 10 sections make 10*2 + 9 = 29 lines; a 5-line window overflows, so the
	// rightmost column must be a scrollbar.
	buf := f.Render(20, 5)
	if len(buf.Lines) != 5 {
		t.Fatalf("render has %d lines, want 5", len(buf.Lines))
	}
	if w := buf.Width; w != 20 {
		t.Errorf("buffer width is %d, want 20", w)
	}

	f.ScrollBy(3)
	if got := f.CopyState().First; got != 3 {
		t.Errorf("First after ScrollBy(3) is %d, want 3", got)
	}
	f.ScrollBy(-10)
	if got := f.CopyState().First; got != 0 {
		t.Errorf("First does not clamp at 0: %d", got)
	}

	// Scrolling past the end clamps so that the last line stays visible.
	f.ScrollBy(1000)
	f.Render(20, 5)
	if got := f.CopyState().First; got != 29-5 {
		t.Errorf("First after overscroll render is %d, want %d", got, 29-5)
	}
}

func TestForm_NoScrollbarWhenContentFits(t *testing.T) {
	m := &counterModel{}
	f := NewForm(FormSpec{Source: m.sections})
	buf := f.Render(20, 10)
	// Without overflow the content uses the full width; a scrollbar would
	// make the last column magenta cells.
	lines := renderToLines(f, 20, 10)
	if strings.HasSuffix(lines[0], "│") {
		t.Errorf("unexpected scrollbar in %q", lines[0])
	}
	if len(buf.Lines) != 2 {
		t.Errorf("render has %d lines, want 2", len(buf.Lines))
	}
}

func TestForm_PageKeysUseLastRenderHeight(t *testing.T) {
	f := NewForm(FormSpec{Source: manySections(10)})
	f.Render(20, 5)
	f.Handle(term.K(ui.PageDown))
	if got := f.CopyState().First; got != 5 {
		t.Errorf("First after PageDown is %d, want 5", got)
	}
	f.Handle(term.K(ui.PageUp))
	if got := f.CopyState().First; got != 0 {
		t.Errorf("First after PageUp is %d, want 0", got)
	}
}

func TestForm_CustomBindingsTakePrecedence(t *testing.T) {
	called := false
	bindings := MapBindings{ui.K('q'): func(Widget) { called = true }}
	f := NewForm(FormSpec{Bindings: bindings, Source: manySections(2)})
	if !f.Handle(term.K('q')) {
		t.Errorf("bound key is not handled")
	}
	if !called {
		t.Errorf("binding is not invoked")
	}
	if f.Handle(term.K('x')) {
		t.Errorf("unbound key is handled")
	}
}
