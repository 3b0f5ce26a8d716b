package ident

import "testing"

func TestUnderscores(t *testing.T) {
	cases := map[string]string{
		"addi":   "addi",
		"c.addi": "c_addi",
		"1x":     "_1x",
	}
	for in, want := range cases {
		if got := Underscores(in); got != want {
			t.Errorf("Underscores(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	cases := map[string]string{
		"addi":   "Addi",
		"c.addi": "CAddi",
	}
	for in, want := range cases {
		if got := Title(in); got != want {
			t.Errorf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}
