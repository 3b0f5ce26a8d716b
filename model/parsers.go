package model

import (
	"fmt"
	"strings"

	"github.com/apparentlymart/riscv-isa-meta/bitnum"
	"github.com/apparentlymart/riscv-isa-meta/internal/ident"
)

// Each entity-building parseX function validates arity for one metadata
// file's schema and builds one entity record, registering it in both the
// model's insertion-ordered slice and its name-keyed index. Insufficient
// token counts panic with a message naming the file type, matching the
// original's unconditional panic("... requires N parameters: %s", ...).
// parseInstruction and parseDescription instead attach text to existing
// opcodes; they skip a line with too few tokens rather than panicking.

func (m *Model) parseArg(part []string) {
	if len(part) < 6 {
		panic(fmt.Sprintf("args requires 6 parameters: %s", strings.Join(part, " ")))
	}
	arg := &Argument{
		Name:      part[0],
		Label:     part[1],
		Type:      part[2],
		BitSpec:   bitnum.ParseBitSpec(part[3]),
		Formatter: part[4],
		Default:   part[5],
		FuncName:  ident.Underscores(part[0]),
		TypeName:  ident.Title(part[0]),
	}
	m.Args = append(m.Args, arg)
	m.ArgsByName[arg.Name] = arg
}

func (m *Model) parseEnum(part []string) {
	if len(part) < 4 {
		panic(fmt.Sprintf("enums requires 4 parameters: %s", strings.Join(part, " ")))
	}
	e := &Enum{
		Name:        part[0],
		Group:       part[1],
		Value:       part[2],
		Description: part[3],
	}
	m.Enums = append(m.Enums, e)
	m.EnumsByName[e.Name] = e
}

func (m *Model) parseType(part []string) {
	if len(part) < 2 {
		panic(fmt.Sprintf("types requires 2 or more parameters: %s", strings.Join(part, " ")))
	}
	t := &Type{
		Name:        part[0],
		Description: part[1],
	}
	for _, raw := range part[2:] {
		spec, label, _ := strings.Cut(raw, "=")
		t.Parts = append(t.Parts, NamedBitSpec{Spec: bitnum.ParseBitSpec(spec), Label: label})
	}
	m.Types = append(m.Types, t)
	m.TypesByName[t.Name] = t
}

func (m *Model) parseFormat(part []string) {
	if len(part) < 1 {
		panic(fmt.Sprintf("formats requires at least 1 parameter: %s", strings.Join(part, " ")))
	}
	f := &Format{Name: part[0]}
	if len(part) > 1 {
		f.Layout = part[1]
	}
	m.Formats = append(m.Formats, f)
	m.FormatsByName[f.Name] = f
}

func (m *Model) parseCodec(part []string) {
	if len(part) < 2 {
		panic(fmt.Sprintf("codecs requires 2 parameters: %s", strings.Join(part, " ")))
	}
	c := &Codec{
		Name:     part[0],
		Format:   part[1],
		FuncName: ident.Underscores(part[0]),
		TypeName: ident.Title(part[0]),
	}
	m.Codecs = append(m.Codecs, c)
	m.CodecsByName[c.Name] = c
}

func (m *Model) parseExtension(part []string) {
	if len(part) < 5 {
		panic(fmt.Sprintf("extensions requires 5 parameters: %s", strings.Join(part, " ")))
	}
	e := &Extension{
		Prefix:      part[0],
		Width:       part[1],
		Alpha:       part[2],
		Description: part[3],
		Extra:       part[4],
	}
	m.Extensions = append(m.Extensions, e)
	m.ExtensionsByName[e.ISA()] = e
}

func (m *Model) parseRegister(part []string) {
	if len(part) < 5 {
		panic(fmt.Sprintf("registers requires 5 parameters: %s", strings.Join(part, " ")))
	}
	r := &Register{
		Name:        part[0],
		Number:      part[1],
		Alias:       part[2],
		Type:        part[3],
		Description: part[4],
	}
	m.Registers = append(m.Registers, r)
	m.RegistersByName[r.Name] = r
}

func (m *Model) parseCSR(part []string) {
	if len(part) < 4 {
		panic(fmt.Sprintf("csrs requires 4 parameters: %s", strings.Join(part, " ")))
	}
	c := &CSRMeta{
		Number:      part[0],
		Permission:  part[1],
		Name:        part[2],
		Description: part[3],
	}
	m.CSRs = append(m.CSRs, c)
	m.CSRsByName[c.Name] = c
}

func (m *Model) parseConstraint(part []string) {
	if len(part) < 2 {
		panic(fmt.Sprintf("constraints requires 2 parameters: %s", strings.Join(part, " ")))
	}
	c := &Constraint{
		Name:       part[0],
		Expression: part[1],
	}
	m.Constraints = append(m.Constraints, c)
	m.ConstraintsByName[c.Name] = c
}

func (m *Model) parseInstruction(part []string) {
	if len(part) < 2 {
		return
	}
	name, longName := part[0], part[1]
	pseudocode := ""
	if len(part) > 2 {
		pseudocode = part[2]
	}
	for _, op := range m.LookupOpcodeByName(name) {
		op.LongName = longName
		op.Pseudocode = pseudocode
	}
}

func (m *Model) parseDescription(part []string) {
	if len(part) < 1 {
		return
	}
	name := part[0]
	desc := ""
	if len(part) > 1 {
		desc = part[1]
	}
	for _, op := range m.LookupOpcodeByName(name) {
		op.Description = desc
	}
}
