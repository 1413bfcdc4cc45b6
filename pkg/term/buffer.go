package term

import (
	"fmt"
	"strings"

	"github.com/goprimer/goprimer/pkg/wcwidth"
)

// Cell is one unit of screen content: a run of text sharing one style. It
// may be wider than one column (East Asian wide runes) and control
// characters take a two-column caret form.
type Cell struct {
	Text  string
	Style string
}

// Pos is a line/column position within a buffer.
type Pos struct {
	Line, Col int
}

func cellsWidth(cs []Cell) int {
	w := 0
	for _, c := range cs {
		w += wcwidth.Of(c.Text)
	}
	return w
}

// Reports whether two lines are equal; when they are not, also returns the
// index of the first cell that differs (which may be one past the shorter
// line).
func compareCells(r1, r2 []Cell) (bool, int) {
	for i, c := range r1 {
		if i >= len(r2) || c != r2[i] {
			return false, i
		}
	}
	if len(r1) < len(r2) {
		return false, len(r1)
	}
	return true, 0
}

// Buffer is our model of a rectangular terminal region, with the cursor
// position the user should end up seeing (the "dot").
//
// Terminals offer no sane way to read back what is on screen, so rendering
// is one-way: widgets produce Buffers, and the Writer diffs them against the
// previously written one. The model is only as good as our idea of character
// widths and wrap points, which is why wcwidth has to agree with the
// terminal's.
type Buffer struct {
	Width int
	Lines [][]Cell
	Dot   Pos
}

// Where the cursor lands after writing out the whole buffer.
func endPos(b *Buffer) Pos {
	return Pos{len(b.Lines) - 1, cellsWidth(b.Lines[len(b.Lines)-1])}
}

// TrimToLines keeps only the lines in [low, high), shifting the dot
// accordingly.
func (b *Buffer) TrimToLines(low, high int) {
	if low < 0 {
		low = 0
	}
	if high > len(b.Lines) {
		high = len(b.Lines)
	}
	for i := 0; i < low; i++ {
		b.Lines[i] = nil
	}
	for i := high; i < len(b.Lines); i++ {
		b.Lines[i] = nil
	}
	b.Lines = b.Lines[low:high]
	b.Dot.Line -= low
	if b.Dot.Line < 0 {
		b.Dot.Line = 0
	}
}

// ExtendDown appends all lines of b2 below b, widening b if b2 is wider.
// If moveDot is true, the dot is taken from b2 (offset by b's height). It
// returns b itself.
func (b *Buffer) ExtendDown(b2 *Buffer, moveDot bool) *Buffer {
	if b2 == nil || b2.Lines == nil {
		return b
	}
	if moveDot {
		b.Dot = Pos{Line: len(b.Lines) + b2.Dot.Line, Col: b2.Dot.Col}
	}
	b.Lines = append(b.Lines, b2.Lines...)
	b.Width = max(b.Width, b2.Width)
	return b
}

// ExtendRight puts b2 to the right of b: each line of b is padded to b's
// width and the corresponding line of b2 appended, adding lines when b2 is
// taller. If moveDot is true, the dot is taken from b2 (offset by b's
// width). It returns b itself.
func (b *Buffer) ExtendRight(b2 *Buffer, moveDot bool) *Buffer {
	i := 0
	for ; i < len(b.Lines) && i < len(b2.Lines); i++ {
		if w := cellsWidth(b.Lines[i]); w < b.Width {
			b.Lines[i] = append(b.Lines[i], makeSpacing(b.Width-w)...)
		}
		b.Lines[i] = append(b.Lines[i], b2.Lines[i]...)
	}
	for ; i < len(b2.Lines); i++ {
		b.Lines = append(b.Lines, append(makeSpacing(b.Width), b2.Lines[i]...))
	}

	if moveDot {
		b.Dot = Pos{Line: b2.Dot.Line, Col: b.Width + b2.Dot.Col}
	}
	b.Width += b2.Width
	return b
}

func makeSpacing(n int) []Cell {
	cs := make([]Cell, n)
	for i := range cs {
		cs[i].Text = " "
	}
	return cs
}

// Buffer returns itself, mirroring [BufferBuilder.Buffer] so that code can
// accept either through one interface.
func (b *Buffer) Buffer() *Buffer { return b }

// TTYString returns a readable rendition of the buffer for test failures and
// debugging: a box-drawing frame around the content, with SGR sequences
// embedded for styles and "$" marking the end of a padded line.
func (b *Buffer) TTYString() string {
	if b == nil {
		return "nil"
	}
	sb := new(strings.Builder)
	fmt.Fprintf(sb, "Width = %d, Dot = (%d, %d)\n", b.Width, b.Dot.Line, b.Dot.Col)
	sb.WriteString("┌" + strings.Repeat("─", b.Width) + "┐\n")
	for _, line := range b.Lines {
		sb.WriteRune('│')
		lastStyle := ""
		usedWidth := 0
		for _, cell := range line {
			if cell.Style != lastStyle {
				switch {
				case lastStyle == "":
					sb.WriteString("\033[" + cell.Style + "m")
				case cell.Style == "":
					sb.WriteString("\033[m")
				default:
					sb.WriteString("\033[;" + cell.Style + "m")
				}
				lastStyle = cell.Style
			}
			sb.WriteString(cell.Text)
			usedWidth += wcwidth.Of(cell.Text)
		}
		if lastStyle != "" {
			sb.WriteString("\033[m")
		}
		if usedWidth < b.Width {
			sb.WriteString("$" + strings.Repeat(" ", b.Width-usedWidth-1))
		}
		sb.WriteString("│\n")
	}
	sb.WriteString("└" + strings.Repeat("─", b.Width) + "┘\n")
	return sb.String()
}
