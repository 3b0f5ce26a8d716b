package model

import (
	"fmt"

	"github.com/apparentlymart/riscv-isa-meta/internal/logging"
)

// FileOrder is the fixed load order: later files may reference names
// introduced by earlier ones. This is a hard contract, not an
// implementation detail — callers that need to regenerate or validate a
// metadata directory from scratch must read files in this order.
func FileOrder() []string {
	return []string{
		"args", "enums", "types", "formats", "codecs", "extensions",
		"registers", "csrs", "opcodes", "constraints", "compression",
		"instructions", "descriptions",
	}
}

// LoadError wraps the single fatal diagnostic produced by a failed
// Load: a malformed line, an unresolved cross-reference, a structural
// violation, or an I/O failure. There is no partial model on error.
type LoadError struct {
	msg string
}

func (e *LoadError) Error() string { return e.msg }

// Load reads a metadata directory and builds the fully cross-linked
// Model. Every schema violation is fatal: Load returns a single
// *LoadError and no partial model, matching the original's
// panic-everywhere policy translated to Go's error-return idiom. Pass a
// nil *logging.Logger to use the package default (discard); pass one
// from logging.New to observe debug-level warnings about unrecognized
// opcode-line tokens.
func Load(dir string, log *logging.Logger) (m *Model, err error) {
	if log == nil {
		log = logging.Discard
	}

	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = &LoadError{msg: fmt.Sprint(r)}
		}
	}()

	mdl := newModel()

	for _, part := range mustRead(dir, "args") {
		mdl.parseArg(part)
	}
	for _, part := range mustRead(dir, "enums") {
		mdl.parseEnum(part)
	}
	for _, part := range mustRead(dir, "types") {
		mdl.parseType(part)
	}
	for _, part := range mustRead(dir, "formats") {
		mdl.parseFormat(part)
	}
	for _, part := range mustRead(dir, "codecs") {
		mdl.parseCodec(part)
	}
	for _, part := range mustRead(dir, "extensions") {
		mdl.parseExtension(part)
	}
	for _, part := range mustRead(dir, "registers") {
		mdl.parseRegister(part)
	}
	for _, part := range mustRead(dir, "csrs") {
		mdl.parseCSR(part)
	}
	for _, part := range mustRead(dir, "opcodes") {
		mdl.parseOpcode(part, log)
	}
	for _, part := range mustRead(dir, "constraints") {
		mdl.parseConstraint(part)
	}
	for _, part := range mustRead(dir, "compression") {
		mdl.parseCompression(part)
	}
	for _, part := range mustRead(dir, "instructions") {
		mdl.parseInstruction(part)
	}
	for _, part := range mustRead(dir, "descriptions") {
		mdl.parseDescription(part)
	}

	return mdl, nil
}

// mustRead reads one metadata file and panics (to be recovered by Load)
// if it can't be opened or read — there is no useful partial model to
// return from a directory that can't even be fully read, so an I/O
// failure is treated exactly like a syntactic one.
func mustRead(dir, name string) [][]string {
	lines, err := readFile(dir, name)
	if err != nil {
		panic(err.Error())
	}
	return lines
}
