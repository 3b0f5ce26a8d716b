package bitnum

import (
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{`addi rd rs1 simm12 0..14=0x13`, []string{"addi", "rd", "rs1", "simm12", "0..14=0x13"}},
		{`name "Floating-Point Accrued Exceptions"`, []string{"name", "Floating-Point Accrued Exceptions"}},
		{`  leading   spaces`, []string{"leading", "spaces"}},
		{``, nil},
	}
	for _, c := range cases {
		got := ParseLine(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseLine(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestParseLinePreservesHashInsideQuotes(t *testing.T) {
	// ParseLine in isolation does not treat "#" as a comment start while
	// inside a quoted token; the quote-blind strip that creates the
	// documented quirk happens one layer up, in the metadata loader's
	// file reader.
	got := ParseLine(`a "b#c" d`)
	want := []string{"a", "b#c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseLine with embedded # = %#v, want %#v", got, want)
	}
}
