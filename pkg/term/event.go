package term

import "github.com/goprimer/goprimer/pkg/ui"

// Event represents an event that can be read from the terminal.
type Event interface{ isEvent() }

// KeyEvent represents a key press.
type KeyEvent ui.Key

// K constructs a new KeyEvent.
func K(r rune, mods ...ui.Mod) KeyEvent {
	return KeyEvent(ui.K(r, mods...))
}

func (KeyEvent) isEvent() {}

func (e KeyEvent) String() string {
	return ui.Key(e).String()
}

// FatalErrorEvent represents an error that affects the Reader's ability to
// continue reading events.
type FatalErrorEvent struct{ Err error }

func (FatalErrorEvent) isEvent() {}
