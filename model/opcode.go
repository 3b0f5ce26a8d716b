package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apparentlymart/riscv-isa-meta/bitnum"
	"github.com/apparentlymart/riscv-isa-meta/internal/ident"
	"github.com/apparentlymart/riscv-isa-meta/internal/logging"
)

// DecodeMask parses the opcode mask syntax "msb..lsb=value" or
// "n=value". The value uses the §4.1 prefix rules but is limited to
// base 10 and 0x-hex — no octal or binary — matching the original's
// direct strtoul/0x-prefix check rather than the general ParseValue.
// Malformed masks panic.
func DecodeMask(spec string) Mask {
	rangePart, valPart, ok := strings.Cut(spec, "=")
	if !ok {
		panic(fmt.Sprintf("bit range %s must be in form n..m=v", spec))
	}

	var msb, lsb int
	if top, bottom, ok := strings.Cut(rangePart, ".."); ok {
		msb = mustAtoiMask(top, spec)
		lsb = mustAtoiMask(bottom, spec)
	} else {
		msb = mustAtoiMask(rangePart, spec)
		lsb = msb
	}

	var val int64
	if strings.HasPrefix(valPart, "0x") {
		v, err := strconv.ParseInt(valPart[2:], 16, 64)
		if err != nil {
			panic(fmt.Sprintf("bit range %s must be in form n..m=v", spec))
		}
		val = v
	} else {
		v, err := strconv.ParseInt(valPart, 10, 64)
		if err != nil {
			panic(fmt.Sprintf("bit range %s must be in form n..m=v", spec))
		}
		val = v
	}

	return Mask{Bits: bitnum.BitRange{MSB: msb, LSB: lsb}, Value: val}
}

func mustAtoiMask(s, orig string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		panic(fmt.Sprintf("bit range %s must be in form n..m=v", orig))
	}
	return n
}

// createOpcode implements the key-disambiguation algorithm: if no opcode
// with this mnemonic exists yet, it's inserted keyed by the mnemonic
// itself. Otherwise, a record still keyed by the bare mnemonic is renamed
// to "mnemonic.<first-extension-of-old>" and the new one is inserted under
// "mnemonic.<first-extension-of-new>"; a collision between the two is
// fatal. All variants remain reachable via OpcodesByName.
func (m *Model) createOpcode(name, extension string) *Opcode {
	var opcode *Opcode

	if existing := m.LookupOpcodeByKey(name); existing != nil {
		oldKey := name + "." + existing.Extensions[0].ISA()
		delete(m.OpcodesByKey, name)
		existing.Key = oldKey
		m.OpcodesByKey[oldKey] = existing
	}

	if len(m.OpcodesByName[name]) > 0 {
		newKey := name + "." + extension
		if _, exists := m.OpcodesByKey[newKey]; exists {
			panic(fmt.Sprintf("opcode with same extension already exists: %s", newKey))
		}
		opcode = &Opcode{Key: newKey, Name: name}
		m.OpcodesByKey[newKey] = opcode
	} else {
		opcode = &Opcode{Key: name, Name: name}
		m.OpcodesByKey[name] = opcode
	}

	opcode.FuncName = ident.Underscores(name)
	opcode.TypeName = ident.Title(name)

	m.Opcodes = append(m.Opcodes, opcode)
	opcode.Num = len(m.Opcodes)

	m.OpcodesByName[name] = append(m.OpcodesByName[name], opcode)

	return opcode
}

// parseOpcode implements §4.6: the first token is the mnemonic; the
// remaining tokens are, in any order, extension names, argument names,
// codec names, mask expressions, or the literal "=ignore" marker
// (accepted for parser symmetry, otherwise discarded). Unrecognized
// tokens are logged at debug level and discarded.
func (m *Model) parseOpcode(part []string, log *logging.Logger) {
	name := part[0]
	rest := make([]string, len(part)-1)
	for i, tok := range part[1:] {
		rest[i] = strings.ToLower(tok)
	}

	var extensions []string
	for _, tok := range rest {
		if _, ok := m.ExtensionsByName[tok]; ok {
			extensions = append(extensions, tok)
		}
	}
	if len(extensions) == 0 {
		panic(fmt.Sprintf("no extension assigned for opcode: %s", name))
	}

	opcode := m.createOpcode(name, extensions[0])

	for _, tok := range rest {
		switch {
		case tok == "=ignore":
			// presently we ignore masks labeled as ignore
		case m.ArgsByName[tok] != nil:
			opcode.Args = append(opcode.Args, m.ArgsByName[tok])
		case strings.Contains(tok, "="):
			opcode.Masks = append(opcode.Masks, DecodeMask(tok))
		case m.CodecsByName[tok] != nil:
			codec := m.CodecsByName[tok]
			opcode.Codec = codec
			format := m.FormatsByName[codec.Format]
			if format == nil {
				panic(fmt.Sprintf("opcode %s codec %s has unknown format: %s", name, codec.Name, codec.Format))
			}
			opcode.Format = format

			typeName := codecTypeName(codec)
			typ := m.TypesByName[typeName]
			if typ == nil {
				panic(fmt.Sprintf("opcode %s codec %s has unknown type: %s", name, codec.Name, typeName))
			}
			opcode.Type = typ
		case m.ExtensionsByName[tok] != nil:
			ext := m.ExtensionsByName[tok]
			opcode.Extensions = append(opcode.Extensions, ext)
			if len(opcode.Extensions) == 1 {
				ext.Opcodes = append(ext.Opcodes, opcode)
			}
		default:
			log.Debugf("opcode %s: unknown arg: %s", name, tok)
		}
	}

	if opcode.Codec == nil {
		panic(fmt.Sprintf("opcode has no codec: %s", name))
	}
	if len(opcode.Extensions) == 0 {
		panic(fmt.Sprintf("opcode has no extensions: %s", name))
	}
}

// parseCompression implements §4.7: a Cartesian product across the
// overloaded-mnemonic opcode sets for "compressed" and "expanded",
// resolving each listed constraint by name (unknown name is fatal).
func (m *Model) parseCompression(part []string) {
	if len(part) < 2 {
		panic(fmt.Sprintf("invalid compression file requires at least 2 parameters: %s", strings.Join(part, " ")))
	}

	for _, compOpcode := range m.LookupOpcodeByName(part[0]) {
		for _, opcode := range m.LookupOpcodeByName(part[1]) {
			var constraints []*Constraint
			for _, name := range part[2:] {
				c, ok := m.ConstraintsByName[name]
				if !ok {
					panic(fmt.Sprintf("compressed opcode %s references unknown constraint %s", part[0], name))
				}
				constraints = append(constraints, c)
			}
			comp := &Compression{
				Compressed:  compOpcode,
				Expanded:    opcode,
				Constraints: constraints,
			}
			compOpcode.Compressed = comp
			opcode.Compressions = append(opcode.Compressions, comp)
			m.Compressions = append(m.Compressions, comp)
		}
	}
}
