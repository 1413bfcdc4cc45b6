package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStyleText(t *testing.T) {
	tests := []struct {
		name    string
		text    Text
		styling Styling
		want    Text
	}{
		{
			"no styling",
			Text{&Segment{Text: "foo"}},
			nil,
			Text{&Segment{Text: "foo"}},
		},
		{
			"bold and fg",
			T("foo"),
			Stylings(Bold, FgRed),
			Text{&Segment{Style{Fg: Red, Bold: true}, "foo"}},
		},
		{
			"no-bold turns off bold",
			T("foo", Bold),
			NoBold,
			Text{&Segment{Text: "foo"}},
		},
		{
			"toggle-inverse",
			T("foo", Inverse),
			ToggleInverse,
			Text{&Segment{Text: "foo"}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := StyleText(test.text, test.styling)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("StyleText (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStylings_IgnoresNilMembers(t *testing.T) {
	got := ApplyStyling(Style{}, Stylings(nil, Bold, nil))
	if want := (Style{Bold: true}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

var parseStylingTests = []struct {
	s    string
	want Style
}{
	{"default", Style{}},
	{"bold", Style{Bold: true}},
	{"red", Style{Fg: Red}},
	{"fg-red", Style{Fg: Red}},
	{"bg-red", Style{Bg: Red}},
	{"bright-cyan", Style{Fg: BrightCyan}},
	{"color42", Style{Fg: XTerm256Color(42)}},
	{"#334455", Style{Fg: TrueColor(0x33, 0x44, 0x55)}},
	{"bold underlined fg-green", Style{Fg: Green, Bold: true, Underlined: true}},
}

func TestParseStyling(t *testing.T) {
	for _, test := range parseStylingTests {
		styling := ParseStyling(test.s)
		if styling == nil {
			t.Errorf("ParseStyling(%q) = nil", test.s)
			continue
		}
		if got := ApplyStyling(Style{}, styling); got != test.want {
			t.Errorf("ParseStyling(%q) applies to %v, want %v", test.s, got, test.want)
		}
	}
}

func TestParseStyling_Invalid(t *testing.T) {
	for _, s := range []string{"brown", "fg-brown", "no-color", "bold brown"} {
		if styling := ParseStyling(s); styling != nil {
			t.Errorf("ParseStyling(%q) = %v, want nil", s, styling)
		}
	}
}
