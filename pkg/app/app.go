// Package app provides the main loop of the interactive UI.
package app

import (
	"os"
	"sync"
	"syscall"

	"github.com/goprimer/goprimer/pkg/sys"
	"github.com/goprimer/goprimer/pkg/term"
	"github.com/goprimer/goprimer/pkg/tk"
	"github.com/goprimer/goprimer/pkg/ui"
)

// App represents a terminal application.
type App interface {
	// Run sets up the terminal, runs the event loop until Quit is called or a
	// fatal error occurs, and restores the terminal before returning.
	Run() error
	// Quit requests the main loop to terminate. It can be called from any
	// goroutine, including from within a widget callback.
	Quit()
	// Redraw requests a redraw. It never blocks and can be called regardless
	// of whether the app is running or not.
	Redraw()
	// RedrawFull requests a full redraw. It never blocks and can be called
	// regardless of whether the app is running or not.
	RedrawFull()
	// Notify adds a note that will be shown above the UI on the next redraw
	// and requests a redraw.
	Notify(note ui.Text)
}

// AppSpec specifies the configuration and initial state for an App.
type AppSpec struct {
	// The terminal the app runs on. Required.
	TTY term.TTY
	// Maximum height the UI may take up, in lines. A value of 0 or less means
	// no limit beyond the terminal height.
	MaxHeight func() int
	// The root widget. It handles all events not consumed by GlobalBindings.
	Root tk.Widget
	// Bindings tried before the root widget gets to handle an event. Useful
	// for app-wide keys like quitting.
	GlobalBindings tk.Bindings
	// Hooks called exactly once, after the terminal has been set up and
	// before the first redraw.
	OnAppear []func()
}

type app struct {
	loop *loop
	AppSpec

	notesMutex sync.Mutex
	notes      []ui.Text
}

// NewApp creates a new App from the given spec.
func NewApp(spec AppSpec) App {
	if spec.MaxHeight == nil {
		spec.MaxHeight = func() int { return -1 }
	}
	if spec.Root == nil {
		spec.Root = tk.Empty{}
	}
	if spec.GlobalBindings == nil {
		spec.GlobalBindings = tk.DummyBindings{}
	}
	a := &app{loop: newLoop(), AppSpec: spec}
	a.loop.HandleCb(a.handle)
	a.loop.RedrawCb(a.redraw)
	return a
}

func (a *app) handle(e event) {
	switch e := e.(type) {
	case os.Signal:
		a.handleSignal(e)
	case term.Event:
		a.handleTermEvent(e)
	}
}

func (a *app) handleSignal(sig os.Signal) {
	switch sig {
	case syscall.SIGINT, syscall.SIGTERM:
		a.loop.Return(nil)
	case sys.SIGWINCH:
		a.RedrawFull()
	}
}

func (a *app) handleTermEvent(e term.Event) {
	if fatal, ok := e.(term.FatalErrorEvent); ok {
		a.loop.Return(fatal.Err)
		return
	}
	if a.GlobalBindings.Handle(a.Root, e) {
		return
	}
	a.Root.Handle(e)
}

func (a *app) redraw(flag redrawFlag) {
	height, width := a.TTY.Size()
	if maxHeight := a.MaxHeight(); maxHeight > 0 && maxHeight < height {
		height = maxHeight
	}

	notes := a.popNotes()
	buf := a.Root.Render(width, height)
	if flag&finalRedraw != 0 {
		// Leave the cursor on a fresh line below the UI, so that the content
		// stays in the scrollback after the app exits.
		buf.ExtendDown(term.NewBufferBuilder(width).Buffer(), true)
		a.TTY.UpdateBuffer(notes, buf, flag&fullRedraw != 0)
		a.TTY.ResetBuffer()
	} else {
		a.TTY.UpdateBuffer(notes, buf, flag&fullRedraw != 0)
	}
}

func (a *app) popNotes() ui.Text {
	a.notesMutex.Lock()
	defer a.notesMutex.Unlock()
	if len(a.notes) == 0 {
		return nil
	}
	var t ui.Text
	for i, note := range a.notes {
		if i > 0 {
			t = ui.Concat(t, ui.T("\n"))
		}
		t = ui.Concat(t, note)
	}
	a.notes = nil
	return t
}

func (a *app) Run() error {
	restore, err := a.TTY.Setup()
	if err != nil {
		restore()
		return err
	}
	defer restore()

	for _, f := range a.OnAppear {
		f()
	}

	eventCh := a.TTY.StartInput()
	defer a.TTY.StopInput()
	go func() {
		for event := range eventCh {
			a.loop.Input(event)
		}
	}()

	sigCh := a.TTY.NotifySignals()
	defer a.TTY.StopSignals()
	go func() {
		for sig := range sigCh {
			a.loop.Input(sig)
		}
	}()

	return a.loop.Run()
}

func (a *app) Quit() {
	a.loop.Return(nil)
}

func (a *app) Redraw() {
	a.loop.Redraw(false)
}

func (a *app) RedrawFull() {
	a.loop.Redraw(true)
}

func (a *app) Notify(note ui.Text) {
	a.notesMutex.Lock()
	a.notes = append(a.notes, note)
	a.notesMutex.Unlock()
	a.Redraw()
}
