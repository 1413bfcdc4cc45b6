package term

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goprimer/goprimer/pkg/ui"
)

// Writer keeps the buffer last committed to the terminal, and knows how to
// bring the display from that buffer to a new one.
type Writer interface {
	// Buffer returns the last committed buffer.
	Buffer() *Buffer
	// ResetBuffer forgets the last committed buffer without touching the
	// display.
	ResetBuffer()
	// UpdateBuffer makes the display show buf, with notes (if any) written
	// above it. When full is true the whole area is rewritten; otherwise only
	// lines that differ from the committed buffer are patched.
	UpdateBuffer(notes ui.Text, buf *Buffer, full bool) error
}

type writer struct {
	out       io.Writer
	committed *Buffer
}

// NewWriter returns a Writer that writes VT100 sequences to the given
// io.Writer.
func NewWriter(f io.Writer) Writer {
	return &writer{out: f, committed: &Buffer{}}
}

func (w *writer) Buffer() *Buffer {
	return w.committed
}

func (w *writer) ResetBuffer() {
	w.committed = &Buffer{}
}

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

func (w *writer) UpdateBuffer(notes ui.Text, buf *Buffer, full bool) error {
	if notes != nil || (w.committed.Lines != nil && buf.Width != w.committed.Width) {
		// Notes scroll the area down, and a width change invalidates every
		// line; patching makes no sense in either case.
		full = true
	}

	// Assemble the whole frame first so the terminal sees a single write.
	var out bytes.Buffer

	// Keep the cursor hidden until the frame is complete to avoid flicker.
	out.WriteString(hideCursor)

	// Move back up to the first line of the committed area.
	if line := w.committed.Dot.Line; line > 0 {
		fmt.Fprintf(&out, "\033[%dA", line)
	}
	out.WriteString("\r")

	if full {
		// Erase downwards, but write a space before erasing: an erase issued
		// straight from the top-left corner makes tmux believe a full-screen
		// program has started and copy the screen into its scrollback. The
		// space defeats that, and the \r undoes the space.
		out.WriteString(" \033[J\r")
	}

	if notes != nil {
		// Turn line wrapping back on around the notes, so a long note wraps
		// in the terminal's own way and can be copied out cleanly.
		out.WriteString("\033[?7h" + notes.VTString() + "\n\033[?7l")
	}

	sw := sgrWriter{out: &out}
	for i, line := range buf.Lines {
		if i > 0 {
			out.WriteString("\n")
		}
		if full || i >= len(w.committed.Lines) {
			// Nothing committed on this line; write it whole.
			sw.writeCells(line)
			continue
		}
		old := w.committed.Lines[i]
		eq, j := compareCells(line, old)
		if eq {
			continue
		}
		// Jump to the first differing cell.
		if col := cellsWidth(line[:j]); col > 0 {
			fmt.Fprintf(&out, "\033[%dC", col)
		}
		if j < len(old) {
			// The old line has content past the differing cell; erase it
			// before writing the replacement.
			sw.setStyle("")
			out.WriteString("\033[K")
		}
		sw.writeCells(line[j:])
	}
	if !full && len(w.committed.Lines) > len(buf.Lines) {
		// The committed area is taller than the new one; erase the leftover
		// lines. A bare \033[J would also eat the final column when the
		// cursor sits just past it, so step down one line first and come
		// back up. The committed area being taller guarantees the \n does
		// not scroll.
		sw.setStyle("")
		out.WriteString("\n\033[J\033[A")
	}
	sw.setStyle("")
	out.Write(moveCursor(endPos(buf), buf.Dot))

	out.WriteString(showCursor)

	if _, err := w.out.Write(out.Bytes()); err != nil {
		return err
	}
	w.committed = buf
	return nil
}

// Tracks the SGR state across cell writes, so that runs of cells sharing a
// style cost one escape sequence.
type sgrWriter struct {
	out   *bytes.Buffer
	style string
}

func (sw *sgrWriter) setStyle(style string) {
	if style != sw.style {
		fmt.Fprintf(sw.out, "\033[0;%sm", style)
		sw.style = style
	}
}

func (sw *sgrWriter) writeCells(cells []Cell) {
	for _, c := range cells {
		sw.setStyle(c.Style)
		sw.out.WriteString(c.Text)
	}
}

// moveCursor returns the sequence that moves the cursor from one position to
// another: relative movement between lines, then \r and absolute movement
// within the line.
func moveCursor(from, to Pos) []byte {
	var out bytes.Buffer
	switch {
	case from.Line < to.Line:
		fmt.Fprintf(&out, "\033[%dB", to.Line-from.Line)
	case from.Line > to.Line:
		fmt.Fprintf(&out, "\033[%dA", from.Line-to.Line)
	}
	out.WriteString("\r")
	if to.Col > 0 {
		fmt.Fprintf(&out, "\033[%dC", to.Col)
	}
	return out.Bytes()
}
