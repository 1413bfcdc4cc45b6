package ui

import (
	"fmt"
	"strings"
)

// Segment is a run of text under one Style.
type Segment struct {
	Style
	Text string
}

// Clone returns a copy of the Segment.
func (s *Segment) Clone() *Segment {
	value := *s
	return &value
}

// CountRune counts occurrences of r in the Segment's text.
func (s *Segment) CountRune(r rune) int {
	return strings.Count(s.Text, string(r))
}

// SplitByRune splits the Segment around every occurrence of r; each piece
// keeps the Segment's style.
func (s *Segment) SplitByRune(r rune) []*Segment {
	texts := strings.Split(s.Text, string(r))
	segs := make([]*Segment, len(texts))
	for i, text := range texts {
		segs[i] = &Segment{s.Style, text}
	}
	return segs
}

// String is the same as VTString.
func (s *Segment) String() string {
	return s.VTString()
}

// VTString renders the Segment with VT-style escape sequences, resetting any
// SGR state before and after it.
func (s *Segment) VTString() string {
	sgr := s.SGR()
	if sgr == "" {
		return "\033[m" + s.Text
	}
	return fmt.Sprintf("\033[;%sm%s\033[m", sgr, s.Text)
}
