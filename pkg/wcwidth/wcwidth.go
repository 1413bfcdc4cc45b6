// Package wcwidth provides utilities for determining the column width of
// characters and strings on the terminal, sometimes called "wcwidth" after the
// eponymous POSIX function.
package wcwidth

import (
	"sort"
	"strings"
)

// Ranges of runes that take up two cells on the terminal. This table only
// needs to cover the scripts the primer actually renders plus the common East
// Asian wide blocks; it is not a full Unicode EastAsianWidth database.
var wideRanges = [][2]rune{
	{0x1100, 0x115f},   // Hangul Jamo
	{0x2e80, 0x303e},   // CJK Radicals .. CJK Symbols and Punctuation
	{0x3041, 0x33ff},   // Hiragana .. CJK Compatibility
	{0x3400, 0x4dbf},   // CJK Unified Ideographs Extension A
	{0x4e00, 0x9fff},   // CJK Unified Ideographs
	{0xa000, 0xa4cf},   // Yi Syllables, Yi Radicals
	{0xac00, 0xd7a3},   // Hangul Syllables
	{0xf900, 0xfaff},   // CJK Compatibility Ideographs
	{0xfe30, 0xfe4f},   // CJK Compatibility Forms
	{0xff00, 0xff60},   // Fullwidth Forms
	{0xffe0, 0xffe6},   // Fullwidth Signs
	{0x20000, 0x2fffd}, // CJK Unified Ideographs Extensions B..F
	{0x30000, 0x3fffd}, // CJK Unified Ideographs Extension G
}

// OfRune returns the column width of a rune.
func OfRune(r rune) int {
	if r == 0xad {
		// Soft hyphen; not displayed.
		return 0
	}
	if r < 0x20 || (0x7f <= r && r < 0xa0) {
		// Control characters are not displayable; the caller is expected to
		// have transformed them (e.g. into caret notation) already.
		return 0
	}
	i := sort.Search(len(wideRanges), func(i int) bool {
		return r <= wideRanges[i][1]
	})
	if i < len(wideRanges) && wideRanges[i][0] <= r {
		return 2
	}
	return 1
}

// Of returns the column width of a string.
func Of(s string) (w int) {
	for _, r := range s {
		w += OfRune(r)
	}
	return
}

// Trim trims the string to fit within wmax columns.
func Trim(s string, wmax int) string {
	for i, r := range s {
		wmax -= OfRune(r)
		if wmax < 0 {
			return s[:i]
		}
	}
	return s
}

// Force trims the string to fit within wmax columns, and pads it with spaces
// on the right if it is shorter than that.
func Force(s string, wmax int) string {
	s = Trim(s, wmax)
	if w := Of(s); w < wmax {
		return s + strings.Repeat(" ", wmax-w)
	}
	return s
}
