package term

import (
	"strings"

	"github.com/goprimer/goprimer/pkg/ui"
	"github.com/goprimer/goprimer/pkg/wcwidth"
)

// BufferBuilder builds a Buffer by sequential appends, wrapping lines at the
// width bound.
type BufferBuilder struct {
	Width, Col, Indent int
	// EagerWrap wraps the line the moment the cursor reaches the right edge,
	// instead of waiting for the next cell that would not fit. Mostly useful
	// when echoing input verbatim.
	EagerWrap bool
	// Lines the content of the buffer.
	Lines [][]Cell
	// Dot is what the user perceives as the cursor.
	Dot Pos
}

// NewBufferBuilder makes a new BufferBuilder, initially with one empty line.
func NewBufferBuilder(width int) *BufferBuilder {
	return &BufferBuilder{Width: width, Lines: [][]Cell{make([]Cell, 0, width)}}
}

// Cursor returns the current position of the cursor.
func (bb *BufferBuilder) Cursor() Pos {
	return Pos{len(bb.Lines) - 1, bb.Col}
}

// Buffer returns a Buffer built by the BufferBuilder.
func (bb *BufferBuilder) Buffer() *Buffer {
	return &Buffer{Width: bb.Width, Lines: bb.Lines, Dot: bb.Dot}
}

// SetIndent sets the indent for subsequent lines and returns bb itself.
func (bb *BufferBuilder) SetIndent(indent int) *BufferBuilder {
	bb.Indent = indent
	return bb
}

// SetEagerWrap sets whether to wrap eagerly and returns bb itself.
func (bb *BufferBuilder) SetEagerWrap(v bool) *BufferBuilder {
	bb.EagerWrap = v
	return bb
}

// SetDotHere sets the dot to the current position of the cursor and returns
// bb itself.
func (bb *BufferBuilder) SetDotHere() *BufferBuilder {
	bb.Dot = bb.Cursor()
	return bb
}

func (bb *BufferBuilder) appendLine() {
	bb.Lines = append(bb.Lines, make([]Cell, 0, bb.Width))
	bb.Col = 0
}

func (bb *BufferBuilder) appendCell(c Cell) {
	n := len(bb.Lines)
	bb.Lines[n-1] = append(bb.Lines[n-1], c)
	bb.Col += wcwidth.Of(c.Text)
}

// Newline starts a newline, writing the indent on the new line if it is set.
func (bb *BufferBuilder) Newline() *BufferBuilder {
	bb.appendLine()
	if bb.Indent > 0 {
		for i := 0; i < bb.Indent; i++ {
			bb.appendCell(Cell{Text: " "})
		}
	}
	return bb
}

// Control characters render in caret notation (like ^C) with this extra
// styling so they stand out from literal text.
var styleForControlChar = ui.Inverse

// WriteRuneSGR writes one rune with a literal SGR style, wrapping the line
// when the rune does not fit. Control characters get the caret form and the
// styleForControlChar styling on top of the given style.
func (bb *BufferBuilder) WriteRuneSGR(r rune, style string) *BufferBuilder {
	if r == '\n' {
		bb.Newline()
		return bb
	}
	c := Cell{string(r), style}
	if r < 0x20 || r == 0x7f {
		style2 := ui.ApplyStyling(ui.Style{}, styleForControlChar).SGR()
		if style != "" {
			style = style + ";" + style2
		} else {
			style = style2
		}
		c = Cell{"^" + string(r^0x40), style}
	}

	if bb.Col+wcwidth.Of(c.Text) > bb.Width {
		bb.Newline()
		bb.appendCell(c)
	} else {
		bb.appendCell(c)
		if bb.Col == bb.Width && bb.EagerWrap {
			bb.Newline()
		}
	}
	return bb
}

// Write writes a string to the buffer, with the given stylings applied.
func (bb *BufferBuilder) Write(text string, ts ...ui.Styling) *BufferBuilder {
	return bb.WriteStyled(ui.T(text, ts...))
}

// WriteSpaces writes w spaces.
func (bb *BufferBuilder) WriteSpaces(w int, ts ...ui.Styling) *BufferBuilder {
	return bb.Write(strings.Repeat(" ", w), ts...)
}

// WriteStringSGR writes a string to the buffer with a literal SGR style.
func (bb *BufferBuilder) WriteStringSGR(text, style string) *BufferBuilder {
	for _, r := range text {
		bb.WriteRuneSGR(r, style)
	}
	return bb
}

// WriteStyled writes a styled text.
func (bb *BufferBuilder) WriteStyled(t ui.Text) *BufferBuilder {
	for _, seg := range t {
		bb.WriteStringSGR(seg.Text, seg.SGR())
	}
	return bb
}
