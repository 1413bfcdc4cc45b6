//go:build unix

package term

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/goprimer/goprimer/pkg/sys"
	"github.com/goprimer/goprimer/pkg/ui"
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// TTY is the terminal dependency of the app.
type TTY interface {
	// Setup sets up the terminal for the app (raw input, no echo).
	//
	// It returns a restore function that undoes the setup, and any error
	// during setup. Only fatal errors that make the terminal unsuitable for
	// later operations are returned.
	Setup() (restore func(), err error)

	// StartInput starts the delivery of terminal events and returns a channel
	// on which events are made available.
	StartInput() <-chan Event
	// StopInput causes input delivery to be stopped. When this function
	// returns, the channel previously returned by StartInput will no longer
	// deliver input events.
	StopInput()

	// NotifySignals starts relaying signals and returns a channel on which
	// signals are delivered.
	NotifySignals() <-chan os.Signal
	// StopSignals stops the relaying of signals. After this function returns,
	// the channel returned by NotifySignals will no longer deliver signals.
	StopSignals()

	// Size returns the height and width of the terminal.
	Size() (h, w int)

	// Buffer returns the current buffer. The initial value of the current
	// buffer is nil.
	Buffer() *Buffer
	// ResetBuffer resets the current buffer to nil without actuating any
	// redraw.
	ResetBuffer()
	// UpdateBuffer updates the current buffer and draws it to the terminal.
	UpdateBuffer(notes ui.Text, buf *Buffer, full bool) error
}

type aTTY struct {
	in, out *os.File
	r       Reader
	w       Writer
	sigCh   chan os.Signal
}

const sigsChanBufferSize = 256

// NewTTY returns a new TTY from input and output terminal files.
func NewTTY(in, out *os.File) TTY {
	return &aTTY{in: in, out: out, w: NewWriter(out)}
}

// IsTerminal returns whether the given file is a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *aTTY) Setup() (func(), error) {
	restore, err := setup(t.in, t.out)
	if restore == nil {
		return func() {}, err
	}
	return func() {
		if err := restore(); err != nil {
			fmt.Fprintln(t.out, "failed to restore terminal properties:", err)
		}
	}, err
}

func (t *aTTY) StartInput() <-chan Event {
	t.r = NewReader(t.in)
	eventCh := make(chan Event)
	go func() {
		defer close(eventCh)
		for {
			event, err := t.r.ReadEvent()
			switch {
			case err == nil:
				eventCh <- event
			case err == ErrStopped:
				return
			case IsReadErrorRecoverable(err):
				// Skip the erroneous sequence; the next read starts fresh.
			default:
				eventCh <- FatalErrorEvent{err}
				return
			}
		}
	}()
	return eventCh
}

func (t *aTTY) StopInput() {
	t.r.Stop()
	t.r.Close()
	t.r = nil
}

func (t *aTTY) NotifySignals() <-chan os.Signal {
	t.sigCh = make(chan os.Signal, sigsChanBufferSize)
	signal.Notify(t.sigCh, unix.SIGWINCH, unix.SIGINT, unix.SIGTERM)
	return t.sigCh
}

func (t *aTTY) StopSignals() {
	signal.Stop(t.sigCh)
	close(t.sigCh)
	t.sigCh = nil
}

func (t *aTTY) Size() (h, w int) {
	return sys.Winsize(t.out)
}

func (t *aTTY) Buffer() *Buffer {
	return t.w.Buffer()
}

func (t *aTTY) ResetBuffer() {
	t.w.ResetBuffer()
}

func (t *aTTY) UpdateBuffer(notes ui.Text, buf *Buffer, full bool) error {
	return t.w.UpdateBuffer(notes, buf, full)
}
