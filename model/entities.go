// Package model builds the cross-linked in-memory representation of a
// RISC-V ISA metadata directory: arguments, enums, types, formats,
// codecs, extensions, registers, CSRs, opcodes, constraints, and
// compression rules, all resolved against one another by Load.
package model

import "github.com/apparentlymart/riscv-isa-meta/bitnum"

// Argument describes one named operand kind: how it's labeled, what
// conceptual type it has, where its bits live in the encoding, how it
// should be formatted, and what default value a disassembler should use
// when the argument is absent.
type Argument struct {
	Name       string
	Label      string
	Type       string
	BitSpec    bitnum.BitSpec
	Formatter  string
	Default    string
	FuncName   string
	TypeName   string
}

// Enum is one named value within a group of related enumerations (for
// example, rounding modes or fence predecessor/successor bits).
type Enum struct {
	Name        string
	Group       string
	Value       string
	Description string
}

// NamedBitSpec pairs a bit-spec with an optional label, used to describe
// the named sub-fields that make up a Type.
type NamedBitSpec struct {
	Spec  bitnum.BitSpec
	Label string
}

// Type is the conceptual encoded-instruction shape a Codec is derived
// from — inferred from a codec's name prefix up to "_" or "+".
type Type struct {
	Name        string
	Description string
	Parts       []NamedBitSpec
}

// Format is a symbolic operand layout, e.g. "R-type" or "I-type".
type Format struct {
	Name   string
	Layout string
}

// Codec is a named encoding shape that determines which operands appear
// on an opcode and how they're packed. Its Format field names a Format
// by Name; resolution to the *Format happens during opcode linking.
type Codec struct {
	Name     string
	Format   string
	FuncName string
	TypeName string
}

// Extension is a RISC-V ISA extension identified by prefix+width+alpha,
// e.g. "rv" + "64" + "i" = "rv64i".
type Extension struct {
	Prefix      string
	Width       string
	Alpha       string
	Description string
	Extra       string

	// Opcodes lists, in encounter order, the opcodes that name this
	// extension as their first (owning) extension.
	Opcodes []*Opcode
}

// ISA returns the extension's identity key: prefix+width+alpha.
func (e *Extension) ISA() string {
	return e.Prefix + e.Width + e.Alpha
}

// Register is an architectural register: an integer or floating-point
// register with a canonical name, ABI alias, type tag, and description.
type Register struct {
	Name        string
	Number      string
	Alias       string
	Type        string
	Description string
}

// Mask is a "bits == value" equality that must hold in the encoded
// instruction for an opcode to match it.
type Mask struct {
	Bits  bitnum.BitRange
	Value int64
}

// Opcode is one instruction mnemonic, fully cross-linked to its codec,
// format, type, extensions, and arguments.
type Opcode struct {
	Key  string // unique; equal to Name unless disambiguated
	Name string // mnemonic; not necessarily unique
	Num  int    // 1-based insertion index

	Args       []*Argument
	Masks      []Mask
	Codec      *Codec
	Format     *Format
	Type       *Type
	Extensions []*Extension

	LongName    string
	Pseudocode  string
	Description string

	Compressed   *Compression
	Compressions []*Compression

	FuncName string
	TypeName string
}

// Constraint is a named predicate over operands, referenced by
// compression rules.
type Constraint struct {
	Name       string
	Expression string
}

// Compression records that Compressed, under the listed constraints,
// encodes the same operation as Expanded.
type Compression struct {
	Compressed  *Opcode
	Expanded    *Opcode
	Constraints []*Constraint
}
