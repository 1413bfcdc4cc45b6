// Package tk is a toolkit for building terminal "widgets".
//
// A widget is a purely presentational object: it knows how to render itself
// into a [term.Buffer] and how to react to terminal events, and nothing else.
// The toolkit deliberately keeps widgets free of any main-loop logic; see the
// app package for that.
package tk

import (
	"github.com/goprimer/goprimer/pkg/term"
	"github.com/goprimer/goprimer/pkg/ui"
)

// Widget is the basic component of UI; it knows how to render itself and how
// to handle events.
type Widget interface {
	Renderer
	Handler
	// MaxHeight returns the maximum height needed to render the widget given
	// the bounding box.
	MaxHeight(width, height int) int
}

// Renderer wraps the Render method.
type Renderer interface {
	// Render renders onto a region of bound width and height.
	Render(width, height int) *term.Buffer
}

// Handler wraps the Handle method.
type Handler interface {
	// Handle handles a terminal event. If the widget has consumed the event,
	// it should return true; otherwise it should return false.
	Handle(event term.Event) bool
}

// Bindings is the interface for key bindings.
type Bindings interface {
	Handle(Widget, term.Event) bool
}

// DummyBindings is a trivial Bindings implementation that handles no events.
type DummyBindings struct{}

// Handle always returns false.
func (DummyBindings) Handle(w Widget, event term.Event) bool { return false }

// MapBindings is a map-backed Bindings implementation.
type MapBindings map[ui.Key]func(Widget)

// Handle invokes the function corresponding to the event's key, if any.
func (m MapBindings) Handle(w Widget, event term.Event) bool {
	k, ok := event.(term.KeyEvent)
	if !ok {
		return false
	}
	fn, ok := m[ui.Key(k)]
	if !ok {
		return false
	}
	fn(w)
	return true
}
