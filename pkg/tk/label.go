package tk

import (
	"github.com/goprimer/goprimer/pkg/term"
	"github.com/goprimer/goprimer/pkg/ui"
)

// Label is a Widget that writes out a static text.
type Label struct {
	Content ui.Text
}

// Render shows the content. If the given box is too small, the text is
// cropped.
func (l Label) Render(width, height int) *term.Buffer {
	b := l.render(width)
	b.TrimToLines(0, height)
	return b
}

// MaxHeight returns the maximum height the Label can take when rendering
// within a bound box.
func (l Label) MaxHeight(width, height int) int {
	return len(l.render(width).Lines)
}

func (l Label) render(width int) *term.Buffer {
	return term.NewBufferBuilder(width).WriteStyled(l.Content).Buffer()
}

// Handle always returns false.
func (l Label) Handle(event term.Event) bool {
	return false
}

// Empty is an empty widget.
type Empty struct{}

// Render shows nothing, although the resulting Buffer still occupies one
// line.
func (Empty) Render(width, height int) *term.Buffer {
	return term.NewBufferBuilder(width).Buffer()
}

// MaxHeight returns 1, since this widget always occupies one line.
func (Empty) MaxHeight(width, height int) int {
	return 1
}

// Handle always returns false.
func (Empty) Handle(event term.Event) bool {
	return false
}
