package tk

import (
	"sync"

	"github.com/goprimer/goprimer/pkg/term"
	"github.com/goprimer/goprimer/pkg/ui"
)

// Form is a Widget for displaying a single scrollable screen of sections,
// each made of text rows and buttons.
//
// The Form is "immediate mode": it retains no content of its own. On every
// render it calls the Source function to re-derive the sections from whatever
// state the application keeps, so mutating that state and requesting a redraw
// is all it takes to update the screen. The only state the Form itself keeps
// is the scroll position and which button has the focus.
type Form interface {
	Widget
	// ScrollBy scrolls the widget by the given delta. Positive values scroll
	// down, and negative values scroll up.
	ScrollBy(delta int)
	// FocusBy moves the focus by the given delta, wrapping around in both
	// directions, and scrolls the focused button into view on the next
	// render.
	FocusBy(delta int)
	// Activate invokes the OnActivate callback of the focused button.
	Activate()
	// MutateState mutates the state.
	MutateState(f func(*FormState))
	// CopyState returns a copy of the state.
	CopyState() FormState
}

// Section is a titled group of rows.
type Section struct {
	Title ui.Text
	Rows  []Row
}

// Row is one line of a Section: a label, optionally followed by buttons.
type Row struct {
	Label   ui.Text
	Buttons []Button
}

// Button is an activatable element of a Row.
type Button struct {
	Label      ui.Text
	OnActivate func()
}

// FormSpec specifies the configuration and initial state for Form.
type FormSpec struct {
	// Key bindings.
	Bindings Bindings
	// Source derives the current sections. It is called on every render and
	// must be cheap and free of side effects.
	Source func() []Section
	// Styling for section titles.
	TitleStyling ui.Styling
	// Styling for buttons that do not have the focus.
	ButtonStyling ui.Styling
	// Styling for the button that has the focus.
	FocusStyling ui.Styling

	// State. When used in [NewForm], this field specifies the initial state.
	State FormState
}

// FormState keeps the mutable state of Form.
type FormState struct {
	// Index of the first line being shown.
	First int
	// Index of the focused button, in flattened order across all sections.
	Focus int
	// Height of the window used in the last render. Used by paging commands.
	ContentHeight int
	// If true, the next render adjusts First so that the focused button is
	// visible.
	ScrollToFocus bool
}

type form struct {
	// Mutex for synchronizing access to the state.
	StateMutex sync.RWMutex
	FormSpec
}

// NewForm creates a new Form from the given spec.
func NewForm(spec FormSpec) Form {
	if spec.Bindings == nil {
		spec.Bindings = DummyBindings{}
	}
	if spec.Source == nil {
		spec.Source = func() []Section { return nil }
	}
	if spec.TitleStyling == nil {
		spec.TitleStyling = ui.Bold
	}
	if spec.FocusStyling == nil {
		spec.FocusStyling = ui.Inverse
	}
	return &form{FormSpec: spec}
}

// A line of the fully derived form content, remembering which flattened
// button indices it contains.
type formLine struct {
	text ui.Text
	// Flattened index of the first button on this line, or -1 if the line
	// has no buttons.
	firstButton int
	buttons     []Button
}

// Derives the full line list from the sections. Returns the lines and the
// total number of buttons.
func (w *form) layout(sections []Section) ([]formLine, int) {
	var lines []formLine
	nButtons := 0
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, formLine{nil, -1, nil})
		}
		lines = append(lines,
			formLine{ui.StyleText(section.Title, w.TitleStyling), -1, nil})
		for _, row := range section.Rows {
			line := formLine{row.Label, -1, nil}
			if len(row.Buttons) > 0 {
				line.firstButton = nButtons
				line.buttons = row.Buttons
				nButtons += len(row.Buttons)
			}
			lines = append(lines, line)
		}
	}
	return lines, nButtons
}

// Renders one line, highlighting the focused button if it is on this line.
func (w *form) renderLine(bb *term.BufferBuilder, line formLine, focus int) {
	bb.WriteStyled(line.text)
	for i, button := range line.buttons {
		bb.Write(" ")
		styling := w.ButtonStyling
		if line.firstButton+i == focus {
			styling = ui.Stylings(w.ButtonStyling, w.FocusStyling)
		}
		// Buttons are rendered with surrounding brackets so that they are
		// recognizable even on monochrome terminals.
		label := ui.Concat(ui.T("["), button.Label, ui.T("]"))
		bb.WriteStyled(ui.StyleText(label, styling))
	}
}

// Returns all buttons of the current sections in flattened order.
func (w *form) buttons() []Button {
	var buttons []Button
	for _, section := range w.Source() {
		for _, row := range section.Rows {
			buttons = append(buttons, row.Buttons...)
		}
	}
	return buttons
}

func (w *form) Render(width, height int) *term.Buffer {
	sections := w.Source()
	lines, nButtons := w.layout(sections)

	var first, focus int
	w.MutateState(func(s *FormState) {
		if s.Focus < 0 || s.Focus >= nButtons {
			s.Focus = 0
		}
		if s.ScrollToFocus {
			s.ScrollToFocus = false
			if line := lineOfButton(lines, s.Focus); line != -1 {
				if line < s.First {
					s.First = line
				} else if line >= s.First+height {
					s.First = line - height + 1
				}
			}
		}
		if s.First > len(lines)-height {
			s.First = len(lines) - height
		}
		if s.First < 0 {
			s.First = 0
		}
		s.ContentHeight = height
		first, focus = s.First, s.Focus
	})

	needScrollbar := first > 0 || first+height < len(lines)
	textWidth := width
	if needScrollbar {
		textWidth--
	}

	bb := term.NewBufferBuilder(textWidth)
	for i := first; i < first+height && i < len(lines); i++ {
		if i > first {
			bb.Newline()
		}
		w.renderLine(bb, lines[i], focus)
	}
	buf := bb.Buffer()
	buf.TrimToLines(0, height)

	if needScrollbar {
		scrollbar := VScrollbar{
			Total: len(lines), Low: first, High: first + height}
		buf.ExtendRight(scrollbar.Render(1, height), false)
	}
	return buf
}

func lineOfButton(lines []formLine, focus int) int {
	for i, line := range lines {
		if line.firstButton != -1 &&
			line.firstButton <= focus && focus < line.firstButton+len(line.buttons) {
			return i
		}
	}
	return -1
}

func (w *form) MaxHeight(width, height int) int {
	lines, _ := w.layout(w.Source())
	return len(lines)
}

func (w *form) Handle(event term.Event) bool {
	if w.Bindings.Handle(w, event) {
		return true
	}
	switch event {
	case term.K(ui.Up):
		w.ScrollBy(-1)
	case term.K(ui.Down):
		w.ScrollBy(1)
	case term.K(ui.PageUp):
		w.ScrollBy(-w.CopyState().ContentHeight)
	case term.K(ui.PageDown):
		w.ScrollBy(w.CopyState().ContentHeight)
	case term.K(ui.Home):
		w.MutateState(func(s *FormState) { s.First = 0 })
	case term.K(ui.End):
		w.MutateState(func(s *FormState) { s.First = w.MaxHeight(0, 0) })
	case term.K(ui.Tab), term.K(ui.Right):
		w.FocusBy(1)
	case term.K(ui.Tab, ui.Shift), term.K(ui.Left):
		w.FocusBy(-1)
	case term.K(ui.Enter), term.K(' '):
		w.Activate()
	default:
		return false
	}
	return true
}

func (w *form) ScrollBy(delta int) {
	lines, _ := w.layout(w.Source())
	w.MutateState(func(s *FormState) {
		s.First += delta
		if s.First >= len(lines) {
			s.First = len(lines) - 1
		}
		if s.First < 0 {
			s.First = 0
		}
	})
}

func (w *form) FocusBy(delta int) {
	_, nButtons := w.layout(w.Source())
	if nButtons == 0 {
		return
	}
	w.MutateState(func(s *FormState) {
		s.Focus = ((s.Focus+delta)%nButtons + nButtons) % nButtons
		s.ScrollToFocus = true
	})
}

func (w *form) Activate() {
	buttons := w.buttons()
	focus := w.CopyState().Focus
	if focus < 0 || focus >= len(buttons) {
		return
	}
	if onActivate := buttons[focus].OnActivate; onActivate != nil {
		onActivate()
	}
}

func (w *form) MutateState(f func(*FormState)) {
	w.StateMutex.Lock()
	defer w.StateMutex.Unlock()
	f(&w.State)
}

// CopyState returns a copy of the State while r-locking the StateMutex.
func (w *form) CopyState() FormState {
	w.StateMutex.RLock()
	defer w.StateMutex.RUnlock()
	return w.State
}
