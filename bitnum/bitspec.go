package bitnum

import (
	"fmt"
	"strings"
)

// BitSegment is one comma-separated segment of a BitSpec: a gather range
// in the encoding, and an optional ordered list of scatter ranges that
// the gathered bits are spread across in the logical (decoded) value.
// When Scatter is empty, the segment is a right-justified placement
// starting at logical bit 0.
type BitSegment struct {
	Gather  BitRange
	Scatter []BitRange
}

// BitSpec is an ordered list of segments describing how bits gathered
// from an encoded instruction scatter into a logical immediate value.
//
// Grammar:
//
//	bitspec  := segment ("," segment)*
//	segment  := gather ( "[" scatter ("|" scatter)* "]" )?
//	gather   := bitrange
//	scatter  := bitrange
type BitSpec struct {
	Segments []BitSegment
}

// ParseBitSpec parses the bitspec grammar described above. Malformed
// input panics, matching the original's unconditional panics on
// malformed bit-ranges (there is no bitspec-specific validation beyond
// what BitRange parsing already enforces).
func ParseBitSpec(s string) BitSpec {
	var spec BitSpec
	for _, comp := range strings.Split(s, ",") {
		bopen := strings.IndexByte(comp, '[')
		bclose := strings.IndexByte(comp, ']')
		if bopen >= 0 && bclose >= 0 {
			gather := ParseBitRange(comp[:bopen])
			scatterSpec := comp[bopen+1 : bclose]
			var scatter []BitRange
			for _, s := range strings.Split(scatterSpec, "|") {
				scatter = append(scatter, ParseBitRange(s))
			}
			spec.Segments = append(spec.Segments, BitSegment{Gather: gather, Scatter: scatter})
		} else {
			spec.Segments = append(spec.Segments, BitSegment{Gather: ParseBitRange(comp)})
		}
	}
	return spec
}

// MatchesBit reports whether some segment's gather range contains bit.
func (s BitSpec) MatchesBit(bit int) bool {
	for _, seg := range s.Segments {
		if seg.Gather.Contains(bit) {
			return true
		}
	}
	return false
}

// String renders the canonical form "gather[s1|s2|…],…" for every
// segment, comma-joined, with single-bit ranges collapsed to "n".
func (s BitSpec) String() string {
	var b strings.Builder
	for i, seg := range s.Segments {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(seg.Gather.String(":", true))
		b.WriteByte('[')
		for j, sc := range seg.Scatter {
			if j > 0 {
				b.WriteByte('|')
			}
			b.WriteString(sc.String(":", true))
		}
		b.WriteByte(']')
	}
	return b.String()
}

// Template renders the code-generator projection
// "imm_t<W, S<msb,lsb, B<b1>,B<b2>,…>, …>" where W is one plus the
// maximum scatter MSB across all segments.
func (s BitSpec) Template() string {
	msb := 0
	for _, seg := range s.Segments {
		for _, sc := range seg.Scatter {
			if sc.MSB > msb {
				msb = sc.MSB
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "imm_t<%d, ", msb+1)
	for i, seg := range s.Segments {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "S<%s, ", seg.Gather.String(",", false))
		for j, sc := range seg.Scatter {
			if j > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "B<%s>", sc.String(",", false))
		}
		b.WriteByte('>')
	}
	b.WriteByte('>')
	return b.String()
}
