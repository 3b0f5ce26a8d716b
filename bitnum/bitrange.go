package bitnum

import (
	"fmt"
	"strconv"
	"strings"
)

// BitRange is a closed interval [MSB, LSB] naming bit positions in an
// encoded instruction, with MSB >= LSB.
type BitRange struct {
	MSB int
	LSB int
}

// ParseBitRange parses "msb:lsb" or "n" (the latter yields MSB == LSB ==
// n). Any other shape is a fatal error, matching the original's
// unconditional panic on a malformed bit-range.
func ParseBitRange(s string) BitRange {
	comps := strings.Split(s, ":")
	switch len(comps) {
	case 1:
		n := mustAtoi(comps[0], s)
		return BitRange{MSB: n, LSB: n}
	case 2:
		msb := mustAtoi(comps[0], s)
		lsb := mustAtoi(comps[1], s)
		return BitRange{MSB: msb, LSB: lsb}
	default:
		panic(fmt.Sprintf("invalid bitrange: %s", s))
	}
}

func mustAtoi(s, orig string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		panic(fmt.Sprintf("invalid bitrange: %s", orig))
	}
	return n
}

// String renders the bit-range using sep between MSB and LSB, collapsing
// single-bit ranges ("n" instead of "n<sep>n") when collapse is true.
func (r BitRange) String(sep string, collapse bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", r.MSB)
	if !collapse || r.MSB != r.LSB {
		b.WriteString(sep)
		fmt.Fprintf(&b, "%d", r.LSB)
	}
	return b.String()
}

// Contains reports whether bit is within [LSB, MSB] inclusive.
func (r BitRange) Contains(bit int) bool {
	return bit <= r.MSB && bit >= r.LSB
}
