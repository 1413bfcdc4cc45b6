package ui

import (
	"fmt"
	"strings"
)

// Key represents a single keyboard input, typically assembled from an escape
// sequence.
type Key struct {
	Rune rune
	Mod  Mod
}

// K constructs a new Key.
func K(r rune, mods ...Mod) Key {
	var mod Mod
	for _, m := range mods {
		mod |= m
	}
	return Key{r, mod}
}

// Mod represents a modifier key.
type Mod byte

// Values for Mod.
const (
	// Shift is the shift modifier. It is only applied to special keys (e.g.
	// Shift-F1). For instance 'A' and '@' which are typically entered with the
	// shift key pressed, are not considered to be shift-modified.
	Shift Mod = 1 << iota
	// Alt is the alt modifier, traditionally known as the meta modifier.
	Alt
	Ctrl
)

// Special negative runes to represent function keys, used in the Rune field
// of the Key struct. This also has a few function names that are aliases for
// simple runes. See keyNames for mapping these values to names.
const (
	// Function key names.
	F1 rune = -iota - 1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	Up
	Down
	Right
	Left

	Home
	Insert
	Delete
	End
	PageUp
	PageDown

	// Aliases for ^I, ^J and 0x7f.
	Tab       = '\t'
	Enter     = '\n'
	Backspace = 0x7f
)

// keyNames maps runes, whether simple or special, to their names.
var keyNames = map[rune]string{
	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	Up: "Up", Down: "Down", Right: "Right", Left: "Left",
	Home: "Home", Insert: "Insert", Delete: "Delete", End: "End",
	PageUp: "PageUp", PageDown: "PageDown",
	Tab: "Tab", Enter: "Enter", Backspace: "Backspace",
}

var keyByName = map[string]rune{}

func init() {
	for r, name := range keyNames {
		keyByName[name] = r
	}
}

func (k Key) String() string {
	var sb strings.Builder
	if k.Mod&Ctrl != 0 {
		sb.WriteString("Ctrl-")
	}
	if k.Mod&Alt != 0 {
		sb.WriteString("Alt-")
	}
	if k.Mod&Shift != 0 {
		sb.WriteString("Shift-")
	}
	if name, ok := keyNames[k.Rune]; ok {
		sb.WriteString(name)
	} else if k.Rune > 0 {
		sb.WriteRune(k.Rune)
	} else {
		fmt.Fprintf(&sb, "(bad function key %d)", k.Rune)
	}
	return sb.String()
}

// ParseKey parses a symbolic key. The syntax is:
//
//	a sequence of zero or more modifiers, each followed by a dash, followed
//	by the base key.
//
// Modifiers are case-insensitive and can be given in full ("shift", "alt",
// "ctrl") or by their initial; "meta" and "m" are aliases for alt. The base
// key is either a single rune or one of the key names in keyNames.
func ParseKey(s string) (Key, error) {
	var k Key
	// Parse modifiers.
	for {
		i := strings.IndexAny(s, "-+")
		if i <= 0 {
			break
		}
		modname := strings.ToLower(s[:i])
		switch modname {
		case "s", "shift":
			k.Mod |= Shift
		case "a", "alt", "m", "meta":
			k.Mod |= Alt
		case "c", "ctrl":
			k.Mod |= Ctrl
		default:
			return Key{}, fmt.Errorf("bad modifier: %s", modname)
		}
		s = s[i+1:]
	}

	if len([]rune(s)) == 1 {
		k.Rune = []rune(s)[0]
		if k.Mod&Ctrl != 0 {
			// Normalize Ctrl-I to Tab and Ctrl-J to Enter.
			switch k.Rune {
			case 'i', 'I':
				k.Rune = Tab
				k.Mod &= ^Ctrl
			case 'j', 'J':
				k.Rune = Enter
				k.Mod &= ^Ctrl
			default:
				// Uppercase the rune so that Ctrl-x and Ctrl-X are the same.
				if 'a' <= k.Rune && k.Rune <= 'z' {
					k.Rune += 'A' - 'a'
				}
			}
		}
		return k, nil
	}

	if r, ok := keyByName[s]; ok {
		k.Rune = r
		return k, nil
	}

	return Key{}, fmt.Errorf("bad key: %s", s)
}
