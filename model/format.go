package model

import (
	"fmt"
	"strings"

	"github.com/apparentlymart/riscv-isa-meta/bitnum"
)

// codecTypeName derives a Type's name from a Codec's name prefix up to
// the first "_" (or, when there is no "_", up to the first "+"), falling
// back to the full codec name if neither character appears.
func codecTypeName(c *Codec) string {
	if o := strings.IndexByte(c.Name, '_'); o >= 0 {
		return c.Name[:o]
	}
	if o := strings.IndexByte(c.Name, '+'); o >= 0 {
		return c.Name[:o]
	}
	return c.Name
}

// OpcodeMask renders an opcode's masks as a sequence of "msb..lsb=value"
// fields, matching riscv_meta_model::opcode_mask.
func OpcodeMask(op *Opcode) string {
	var b strings.Builder
	for _, mask := range op.Masks {
		fmt.Fprintf(&b, " %d..%d=%d", mask.Bits.MSB, mask.Bits.LSB, mask.Value)
	}
	return b.String()
}

// OpcodeFormat renders either the opcode's key or its name, with "."
// replaced by dot, and any leading "@" marker stripped.
func OpcodeFormat(prefix string, op *Opcode, dot byte, key bool) string {
	name := op.Name
	if key {
		name = op.Key
	}
	name = strings.TrimPrefix(name, "@")
	name = strings.ReplaceAll(name, ".", string(dot))
	return prefix + name
}

// OpcodeISAShortName renders an opcode's owning extension's short name
// ("rv64i", for example) — taken from the opcode's first extension.
func OpcodeISAShortName(op *Opcode) string {
	ext := op.Extensions[0]
	return ext.Prefix + ext.Width + ext.Alpha
}

// CodecTypeName is the exported form of codecTypeName, for callers that
// need to resolve a codec's type prefix without a full Model in hand.
func CodecTypeName(c *Codec) string {
	return codecTypeName(c)
}

// BitmaskToBitRanges compresses a descending list of set bit positions
// into contiguous-run bit-ranges.
func BitmaskToBitRanges(bits []int) []bitnum.BitRange {
	var ranges []bitnum.BitRange
	for _, b := range bits {
		if len(ranges) > 0 && b+1 == ranges[len(ranges)-1].LSB {
			ranges[len(ranges)-1].LSB = b
		} else {
			ranges = append(ranges, bitnum.BitRange{MSB: b, LSB: b})
		}
	}
	return ranges
}

// FormatBitmask renders a C-style big-bitboard extraction expression
// "((var >> shift) & 0b…) | …" for the given descending bit positions,
// optionally appended with a "/* var[a|b:c] */" comment.
func FormatBitmask(bits []int, varName string, comment bool) string {
	ranges := BitmaskToBitRanges(bits)

	totalLength := len(bits)
	rangeStart := len(bits)

	var b strings.Builder
	for i, r := range ranges {
		rangeEnd := rangeStart - (r.MSB - r.LSB)
		shift := r.MSB - rangeStart + 1
		if i > 0 {
			b.WriteString(" | ")
		}
		fmt.Fprintf(&b, "((%s >> %d) & 0b", varName, shift)
		for k := totalLength; k > 0; k-- {
			if k <= rangeStart && k >= rangeEnd {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte(')')
		rangeStart -= (r.MSB - r.LSB) + 1
	}

	if comment {
		b.WriteString(" /* ")
		b.WriteString(varName)
		b.WriteByte('[')
		for i, r := range ranges {
			if i > 0 {
				b.WriteByte('|')
			}
			if r.MSB == r.LSB {
				fmt.Fprintf(&b, "%d", r.MSB)
			} else {
				fmt.Fprintf(&b, "%d:%d", r.MSB, r.LSB)
			}
		}
		b.WriteString("] */")
	}

	return b.String()
}
