//go:build unix

package term

import (
	"os"
	"time"
	"unicode/utf8"

	"github.com/goprimer/goprimer/pkg/ui"
)

// reader reads terminal escape sequences and decodes them into events.
type reader struct {
	fr fileReader
}

func newReader(f *os.File) *reader {
	fr, err := newFileReader(f)
	if err != nil {
		// The only error newFileReader can return is from os.Pipe, which only
		// fails when the process is running out of file descriptors.
		panic(err)
	}
	return &reader{fr}
}

func (rd *reader) ReadEvent() (Event, error) {
	return readEvent(rd.fr)
}

func (rd *reader) Stop() {
	rd.fr.Stop()
}

func (rd *reader) Close() {
	rd.fr.Close()
}

type byteReaderWithTimeout interface {
	// ReadByteWithTimeout reads a single byte with a timeout. A negative
	// timeout means no timeout.
	ReadByteWithTimeout(timeout time.Duration) (byte, error)
}

// Used by readRune to signal end of the current sequence.
const runeEndOfSeq rune = -1

// Timeout for bytes in escape sequences. Modern terminal emulators send escape
// sequences very fast, so 10ms is more than sufficient. SSH connections on a
// slow link might be problematic though.
var keySeqTimeout = 10 * time.Millisecond

func readEvent(rd byteReaderWithTimeout) (event Event, err error) {
	var r rune
	r, err = readRune(rd, -1)
	if err != nil {
		return
	}

	currentSeq := string(r)
	// Attempts to read a rune within keySeqTimeout. It returns runeEndOfSeq if
	// there is any error; the caller should terminate the current sequence
	// when it sees that value.
	readSeqRune := func() rune {
		r, e := readRune(rd, keySeqTimeout)
		if e != nil {
			return runeEndOfSeq
		}
		currentSeq += string(r)
		return r
	}
	badSeq := func(msg string) {
		err = seqError{msg, currentSeq}
	}

	switch r {
	case 0x1b: // ^[ Escape
		r2 := readSeqRune()
		// Rxvt and derivatives prepend another ESC to a CSI-style or G3-style
		// sequence to signal Alt. If that happens, remember it; it is picked
		// up when decoding those two kinds of sequences.
		hasTwoLeadingESC := false
		if r2 == 0x1b {
			hasTwoLeadingESC = true
			r2 = readSeqRune()
		}
		altIfDoubleESC := func(k ui.Key) ui.Key {
			if hasTwoLeadingESC {
				k.Mod |= ui.Alt
			}
			return k
		}
		if r2 == runeEndOfSeq {
			// Nothing follows. Taken as a lone Escape.
			event = KeyEvent{Rune: '[', Mod: ui.Ctrl}
			break
		}
		switch r2 {
		case '[':
			// A '[' follows. CSI style function key sequence.
			r = readSeqRune()
			if r == runeEndOfSeq {
				event = KeyEvent{Rune: '[', Mod: ui.Alt}
				return
			}
			nums := make([]int, 0, 2)
		CSISeq:
			for {
				switch {
				case r == ';':
					nums = append(nums, 0)
				case '0' <= r && r <= '9':
					if len(nums) == 0 {
						nums = append(nums, 0)
					}
					cur := len(nums) - 1
					nums[cur] = nums[cur]*10 + int(r-'0')
				case r == runeEndOfSeq:
					badSeq("incomplete CSI")
					return
				default: // Treat as a terminator.
					break CSISeq
				}
				r = readSeqRune()
			}
			if r == '~' {
				// Tilde-terminated. The first parameter identifies the key,
				// and the optional second one is the modifier.
				if len(nums) == 0 {
					badSeq("empty tilde sequence")
					return
				}
				k, ok := tildeKey[nums[0]]
				if !ok {
					badSeq("bad tilde sequence")
					return
				}
				if len(nums) > 1 {
					k.Mod = xtermModify(nums[1])
				}
				event = KeyEvent(altIfDoubleESC(k))
			} else {
				// Letter-terminated.
				k, ok := csiLetterKey[r]
				if !ok {
					badSeq("bad CSI")
					return
				}
				if len(nums) == 2 {
					// Parameters are like "1;5" for Ctrl-arrow.
					k.Mod |= xtermModify(nums[1])
				}
				event = KeyEvent(altIfDoubleESC(k))
			}
		case 'O':
			// An 'O' follows. G3 style function key sequence: read one rune.
			r = readSeqRune()
			if r == runeEndOfSeq {
				event = KeyEvent{Rune: 'O', Mod: ui.Alt}
				return
			}
			kr, ok := g3Key[r]
			if !ok {
				badSeq("bad G3 sequence")
				return
			}
			event = KeyEvent(altIfDoubleESC(ui.Key{Rune: kr}))
		default:
			// Something other than '[' or 'O' follows: an Alt-modified key.
			k := runeToKey(r2)
			k.Mod |= ui.Alt
			event = KeyEvent(k)
		}
	default:
		event = KeyEvent(runeToKey(r))
	}
	return
}

// Decodes a rune read in isolation into a Key, translating control characters
// to their Ctrl- form.
func runeToKey(r rune) ui.Key {
	switch r {
	case ui.Tab, ui.Enter, ui.Backspace:
		return ui.Key{Rune: r}
	case 0x0:
		return ui.Key{Rune: '`', Mod: ui.Ctrl} // ^@ is sent by Ctrl-`
	case 0x1e:
		return ui.Key{Rune: '6', Mod: ui.Ctrl} // ^^ is sent by Ctrl-6
	case 0x1f:
		return ui.Key{Rune: '/', Mod: ui.Ctrl} // ^_ is sent by Ctrl-/
	default:
		if r < 0x20 {
			return ui.Key{Rune: r + 0x40, Mod: ui.Ctrl}
		}
		return ui.Key{Rune: r}
	}
}

// Keys in tilde-terminated CSI sequences, indexed by the first parameter.
var tildeKey = map[int]ui.Key{
	1: {Rune: ui.Home}, 2: {Rune: ui.Insert}, 3: {Rune: ui.Delete},
	4: {Rune: ui.End}, 5: {Rune: ui.PageUp}, 6: {Rune: ui.PageDown},
	11: {Rune: ui.F1}, 12: {Rune: ui.F2}, 13: {Rune: ui.F3}, 14: {Rune: ui.F4},
	15: {Rune: ui.F5}, 17: {Rune: ui.F6}, 18: {Rune: ui.F7}, 19: {Rune: ui.F8},
	20: {Rune: ui.F9}, 21: {Rune: ui.F10}, 23: {Rune: ui.F11}, 24: {Rune: ui.F12},
}

// Keys in letter-terminated CSI sequences, indexed by the terminator letter.
var csiLetterKey = map[rune]ui.Key{
	'A': {Rune: ui.Up}, 'B': {Rune: ui.Down},
	'C': {Rune: ui.Right}, 'D': {Rune: ui.Left},
	'H': {Rune: ui.Home}, 'F': {Rune: ui.End},
	'Z': {Rune: ui.Tab, Mod: ui.Shift},
}

// Keys in G3-style sequences (ESC O followed by one letter).
var g3Key = map[rune]rune{
	'A': ui.Up, 'B': ui.Down, 'C': ui.Right, 'D': ui.Left,
	'H': ui.Home, 'F': ui.End,
	'P': ui.F1, 'Q': ui.F2, 'R': ui.F3, 'S': ui.F4,
}

// Decodes the xterm-style modifier parameter (1 means no modifier).
func xtermModify(mod int) ui.Mod {
	var m ui.Mod
	if mod > 0 {
		mod--
	}
	if mod&1 != 0 {
		m |= ui.Shift
	}
	if mod&2 != 0 {
		m |= ui.Alt
	}
	if mod&4 != 0 {
		m |= ui.Ctrl
	}
	return m
}

// Reads a single rune, assembling UTF-8 byte sequences as needed.
func readRune(rd byteReaderWithTimeout, timeout time.Duration) (rune, error) {
	leader, err := rd.ReadByteWithTimeout(timeout)
	if err != nil {
		return runeEndOfSeq, err
	}
	var r rune
	pending := 0
	switch {
	case leader>>7 == 0:
		r = rune(leader)
	case leader>>5 == 0x6:
		r = rune(leader & 0x1f)
		pending = 1
	case leader>>4 == 0xe:
		r = rune(leader & 0xf)
		pending = 2
	case leader>>3 == 0x1e:
		r = rune(leader & 0x7)
		pending = 3
	}
	for i := 0; i < pending; i++ {
		b, err := rd.ReadByteWithTimeout(keySeqTimeout)
		if err != nil {
			return runeEndOfSeq, err
		}
		r = r<<6 | rune(b&0x3f)
	}
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	return r, nil
}
