package ui

import "testing"

var kTests = []struct {
	k1 Key
	k2 Key
}{
	{K('a'), Key{'a', 0}},
	{K('a', Alt), Key{'a', Alt}},
	{K('a', Alt, Ctrl), Key{'a', Alt | Ctrl}},
}

func TestK(t *testing.T) {
	for _, test := range kTests {
		if test.k1 != test.k2 {
			t.Errorf("%v != %v", test.k1, test.k2)
		}
	}
}

var parseKeyTests = []struct {
	s       string
	wantKey Key
	wantErr string
}{
	{s: "x", wantKey: K('x')},
	{s: "Tab", wantKey: K(Tab)},
	{s: "F1", wantKey: K(F1)},

	// Alt- keys are case-sensitive.
	{s: "a-x", wantKey: Key{'x', Alt}},
	{s: "a-X", wantKey: Key{'X', Alt}},

	// Ctrl- keys are case-insensitive.
	{s: "C-x", wantKey: Key{'X', Ctrl}},
	{s: "C-X", wantKey: Key{'X', Ctrl}},

	// + is the same as -.
	{s: "C+X", wantKey: Key{'X', Ctrl}},

	// Full names and alternative names can also be used.
	{s: "M-x", wantKey: Key{'x', Alt}},
	{s: "Meta-x", wantKey: Key{'x', Alt}},

	// Multiple modifiers can appear in any order.
	{s: "Alt-Ctrl-Delete", wantKey: Key{Delete, Alt | Ctrl}},
	{s: "Ctrl-Alt-Delete", wantKey: Key{Delete, Alt | Ctrl}},

	// Ctrl-I and Ctrl-J are normalized to Tab and Enter.
	{s: "Ctrl-I", wantKey: K(Tab)},
	{s: "Ctrl-J", wantKey: K(Enter)},

	// Errors.
	{s: "F123", wantErr: "bad key: F123"},
	{s: "Super-X", wantErr: "bad modifier: super"},
}

func TestParseKey(t *testing.T) {
	for _, test := range parseKeyTests {
		key, err := ParseKey(test.s)
		if key != test.wantKey {
			t.Errorf("ParseKey(%q) => %v, want %v", test.s, key, test.wantKey)
		}
		if test.wantErr == "" {
			if err != nil {
				t.Errorf("ParseKey(%q) => error %v, want nil", test.s, err)
			}
		} else if err == nil || err.Error() != test.wantErr {
			t.Errorf("ParseKey(%q) => error %v, want error %q", test.s, err, test.wantErr)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{K('a'), "a"},
		{K('a', Ctrl, Alt), "Ctrl-Alt-a"},
		{K(F1, Shift), "Shift-F1"},
		{K(Tab), "Tab"},
		{K(-100), "(bad function key -100)"},
	}
	for _, test := range tests {
		if got := test.k.String(); got != test.want {
			t.Errorf("%#v.String() = %q, want %q", test.k, got, test.want)
		}
	}
}
