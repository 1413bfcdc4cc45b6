package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestT(t *testing.T) {
	tests := []struct {
		name string
		got  Text
		want Text
	}{
		{"plain", T("foo"), Text{&Segment{Text: "foo"}}},
		{"styled", T("foo", Bold), Text{&Segment{Style{Bold: true}, "foo"}}},
		{
			"concat",
			Concat(T("foo", Bold), T("bar")),
			Text{&Segment{Style{Bold: true}, "foo"}, &Segment{Text: "bar"}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.want, test.got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		t    Text
		want int
	}{
		{T("foo"), 1},
		{T("foo\nbar"), 2},
		{Concat(T("foo\n"), T("bar\n")), 3},
	}
	for _, test := range tests {
		if got := test.t.CountLines(); got != test.want {
			t.Errorf("CountLines(%s) = %d, want %d", test.t, got, test.want)
		}
	}
}

func TestSplitByRune(t *testing.T) {
	tests := []struct {
		name string
		t    Text
		r    rune
		want []Text
	}{
		{"empty", Text{}, '\n', nil},
		{"no match", T("foo"), '\n', []Text{T("foo")}},
		{
			"match in middle segment",
			Concat(T("a", Bold), T("b\nc"), T("d", Inverse)),
			'\n',
			[]Text{
				Concat(T("a", Bold), T("b")),
				Concat(T("c"), T("d", Inverse)),
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.t.SplitByRune(test.r)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("SplitByRune (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTrimWcwidth(t *testing.T) {
	tests := []struct {
		t    Text
		wmax int
		want Text
	}{
		{T("foobar"), 3, T("foo")},
		{Concat(T("a", Bold), T("bc")), 2, Concat(T("a", Bold), T("b"))},
		{T("你好"), 3, T("你")},
	}
	for _, test := range tests {
		got := test.t.TrimWcwidth(test.wmax)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("TrimWcwidth(%s, %d) (-want +got):\n%s",
				test.t, test.wmax, diff)
		}
	}
}

func TestVTString(t *testing.T) {
	tests := []struct {
		t    Text
		want string
	}{
		{T("foo"), "\033[mfoo"},
		{T("foo", Bold), "\033[;1mfoo\033[m"},
		{T("foo", FgRed, BgGreen), "\033[;31;42mfoo\033[m"},
		{T("foo", Fg(XTerm256Color(30))), "\033[;38;5;30mfoo\033[m"},
		{T("foo", Bg(TrueColor(30, 40, 50))), "\033[;48;2;30;40;50mfoo\033[m"},
	}
	for _, test := range tests {
		if got := test.t.VTString(); got != test.want {
			t.Errorf("VTString(%v) = %q, want %q", test.t, got, test.want)
		}
	}
}
