package primer

import (
	"log"
	"strings"

	"github.com/goprimer/goprimer/pkg/config"
	"github.com/goprimer/goprimer/pkg/logutil"
	"github.com/goprimer/goprimer/pkg/tk"
	"github.com/goprimer/goprimer/pkg/ui"
)

// ScreenSpec specifies a Screen.
type ScreenSpec struct {
	// Stylings for the screen elements. The zero value gets the defaults of
	// [config.Default].
	Theme config.Theme
	// Destination of the diagnostic traces. If nil, a discarding logger from
	// logutil is used.
	Trace *log.Logger
}

// Screen assembles all lessons into one scrollable form.
type Screen struct {
	lessons []Lesson
	form    tk.Form
	trace   *log.Logger

	labelStyling ui.Styling
}

// NewScreen creates a Screen with fresh lessons.
func NewScreen(spec ScreenSpec) *Screen {
	s := &Screen{
		lessons:      Lessons(),
		trace:        spec.Trace,
		labelStyling: spec.Theme.Label,
	}
	if s.trace == nil {
		s.trace = logutil.GetLogger("")
	}
	s.form = tk.NewForm(tk.FormSpec{
		Source:        s.sections,
		TitleStyling:  spec.Theme.Title,
		ButtonStyling: spec.Theme.Button,
		FocusStyling:  spec.Theme.FocusedButton,
	})
	return s
}

// Form returns the form widget presenting the screen.
func (s *Screen) Form() tk.Form { return s.form }

// Lessons returns the screen's lessons, in presentation order.
func (s *Screen) Lessons() []Lesson { return s.lessons }

func (s *Screen) sections() []tk.Section {
	sections := make([]tk.Section, len(s.lessons))
	for i, lesson := range s.lessons {
		section := lesson.Section()
		if s.labelStyling != nil {
			for j := range section.Rows {
				section.Rows[j].Label =
					ui.StyleText(section.Rows[j].Label, s.labelStyling)
			}
		}
		sections[i] = section
	}
	return sections
}

// OnAppear writes every lesson's diagnostic trace, one block per lesson in
// presentation order. The app calls this once, when the screen first shows.
func (s *Screen) OnAppear() {
	for _, lesson := range s.lessons {
		for _, line := range lesson.Trace() {
			s.trace.Printf("%s: %s", lesson.Name(), line)
		}
	}
}

// Dump renders the whole screen once at the given width and returns it as
// plain text, one line per row, without styling. Used when the output is
// not a terminal.
func (s *Screen) Dump(width int) string {
	height := s.form.MaxHeight(width, 0)
	buf := s.form.Render(width, height)
	var sb strings.Builder
	for _, line := range buf.Lines {
		var lb strings.Builder
		for _, cell := range line {
			lb.WriteString(cell.Text)
		}
		sb.WriteString(strings.TrimRight(lb.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
