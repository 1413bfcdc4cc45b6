// Package ui provides types that wrap the state of UI elements: styled text
// and keys.
package ui

import (
	"strings"

	"github.com/goprimer/goprimer/pkg/wcwidth"
)

// Text is a list of styled Segments.
type Text []*Segment

// T constructs a new Text with the given content and the given Styling's
// applied.
func T(s string, ts ...Styling) Text {
	return StyleText(Text{&Segment{Text: s}}, ts...)
}

// Concat concatenates two Texts.
func Concat(ts ...Text) Text {
	var t Text
	for _, t2 := range ts {
		t = append(t, t2...)
	}
	return t
}

// Clone returns a deep copy of Text.
func (t Text) Clone() Text {
	newt := make(Text, len(t))
	for i, seg := range t {
		newt[i] = seg.Clone()
	}
	return newt
}

// CountRune counts the number of times a rune occurs in a Text.
func (t Text) CountRune(r rune) int {
	n := 0
	for _, seg := range t {
		n += seg.CountRune(r)
	}
	return n
}

// CountLines counts the number of lines in a Text. It is equal to
// t.CountRune('\n') + 1.
func (t Text) CountLines() int {
	return t.CountRune('\n') + 1
}

// SplitByRune splits a Text by the given rune.
func (t Text) SplitByRune(r rune) []Text {
	if len(t) == 0 {
		return nil
	}
	// A split point may fall anywhere relative to segment borders, so split
	// each Segment on its own and glue the last piece of one segment to the
	// first piece of the next: those pieces sit on the same output line.
	var result []Text
	var paste Text
	for _, seg := range t {
		subSegs := seg.SplitByRune(r)
		if len(subSegs) == 1 {
			// No split point inside this segment; it continues the current
			// line.
			paste = append(paste, subSegs[0])
			continue
		}
		result = append(result, append(paste, subSegs[0]))
		for _, seg := range subSegs[1 : len(subSegs)-1] {
			result = append(result, Text{seg})
		}
		paste = Text{subSegs[len(subSegs)-1]}
	}
	result = append(result, paste)
	return result
}

// TrimWcwidth returns the largest prefix of t that does not exceed the given
// visual width.
func (t Text) TrimWcwidth(wmax int) Text {
	var newt Text
	for _, seg := range t {
		w := wcwidth.Of(seg.Text)
		if w >= wmax {
			newt = append(newt,
				&Segment{seg.Style, wcwidth.Trim(seg.Text, wmax)})
			break
		}
		wmax -= w
		newt = append(newt, seg)
	}
	return newt
}

// String returns a string representation of the styled text. It is the same
// as VTString.
func (t Text) String() string {
	return t.VTString()
}

// VTString renders the styled text using VT-style escape sequences.
func (t Text) VTString() string {
	var sb strings.Builder
	for _, seg := range t {
		sb.WriteString(seg.VTString())
	}
	return sb.String()
}
