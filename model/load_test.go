package model

import (
	"strings"
	"testing"
)

const testdataDir = "../testdata/meta"

func loadTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := Load(testdataDir, nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return m
}

func TestLoadBasicCounts(t *testing.T) {
	m := loadTestModel(t)
	if len(m.Args) != 5 {
		t.Errorf("len(Args) = %d, want 5", len(m.Args))
	}
	if len(m.Extensions) != 11 {
		t.Errorf("len(Extensions) = %d, want 11", len(m.Extensions))
	}
	// 5 opcode lines: addi(rv32i), addi(rv64i), add, sw, c.addi
	if len(m.Opcodes) != 5 {
		t.Errorf("len(Opcodes) = %d, want 5", len(m.Opcodes))
	}
}

// P5: every opcode has one codec, one format (= codec's format), one
// type (= codec name prefix), >=1 extension, a globally unique key, and
// Num equal to its 1-based insertion index.
func TestOpcodeInvariants(t *testing.T) {
	m := loadTestModel(t)
	seenKeys := make(map[string]bool)
	for i, op := range m.Opcodes {
		if op.Codec == nil {
			t.Errorf("opcode %s has no codec", op.Key)
		}
		if op.Format == nil || op.Format.Name != op.Codec.Format {
			t.Errorf("opcode %s format mismatch: %+v vs codec format %q", op.Key, op.Format, op.Codec.Format)
		}
		if op.Type == nil || op.Type.Name != codecTypeName(op.Codec) {
			t.Errorf("opcode %s type mismatch: %+v vs codec type %q", op.Key, op.Type, codecTypeName(op.Codec))
		}
		if len(op.Extensions) == 0 {
			t.Errorf("opcode %s has no extensions", op.Key)
		}
		if seenKeys[op.Key] {
			t.Errorf("duplicate opcode key: %s", op.Key)
		}
		seenKeys[op.Key] = true
		if op.Num != i+1 {
			t.Errorf("opcode %s Num = %d, want %d", op.Key, op.Num, i+1)
		}
	}
}

// P6 / S5: addi appears in two extensions and must be disambiguated.
func TestOpcodeKeyDisambiguation(t *testing.T) {
	m := loadTestModel(t)

	if op := m.LookupOpcodeByKey("addi"); op != nil {
		t.Errorf("expected no opcode keyed bare \"addi\", got %+v", op)
	}
	rv32 := m.LookupOpcodeByKey("addi.rv32i")
	rv64 := m.LookupOpcodeByKey("addi.rv64i")
	if rv32 == nil || rv64 == nil {
		t.Fatalf("expected both addi.rv32i and addi.rv64i, got %v %v", rv32, rv64)
	}
	if rv32.Key == rv64.Key {
		t.Error("disambiguated keys must differ")
	}

	byName := m.LookupOpcodeByName("addi")
	if len(byName) != 2 {
		t.Fatalf("LookupOpcodeByName(addi) = %d opcodes, want 2", len(byName))
	}
}

// P7: every compression is on its expanded opcode's Compressions list,
// and the compressed opcode's singleton Compressed field holds the last
// compression recorded for it (c.addi pairs with both addi variants, so
// the second pairing overwrites the first). The unknown-constraint case
// is TestCompressionUnknownConstraintFatal.
func TestCompression(t *testing.T) {
	m := loadTestModel(t)

	if len(m.Compressions) != 2 {
		t.Fatalf("len(Compressions) = %d, want 2 (c.addi x {addi.rv32i, addi.rv64i})", len(m.Compressions))
	}
	last := make(map[*Opcode]*Compression)
	for _, c := range m.Compressions {
		last[c.Compressed] = c
	}
	for _, c := range m.Compressions {
		if c.Compressed.Compressed != last[c.Compressed] {
			t.Errorf("compressed opcode %s back-reference mismatch", c.Compressed.Key)
		}
		found := false
		for _, cc := range c.Expanded.Compressions {
			if cc == c {
				found = true
			}
		}
		if !found {
			t.Errorf("expanded opcode %s compressions list missing back-reference", c.Expanded.Key)
		}
		if len(c.Constraints) != 2 {
			t.Errorf("expected 2 constraints, got %d", len(c.Constraints))
		}
	}
}

func TestCompressionUnknownConstraintFatal(t *testing.T) {
	m := newModel()
	m.parseConstraint([]string{"rd_ne_zero", "rd!=0"})
	op1 := m.createOpcode("c.addi", "rv32c")
	op2 := m.createOpcode("addi", "rv32i")
	_ = op1
	_ = op2

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unknown constraint")
		}
	}()
	m.parseCompression([]string{"c.addi", "addi", "no_such_constraint"})
}

// P8 / S4: ISA-spec decoding expands "g" and produces extensions in
// encounter order with no duplicates.
func TestDecodeISAExtensionsG(t *testing.T) {
	m := loadTestModel(t)
	exts := m.DecodeISAExtensions("rv64g")
	want := []string{"rv64i", "rv64m", "rv64a", "rv64f", "rv64d"}
	if len(exts) != len(want) {
		t.Fatalf("got %d extensions, want %d", len(exts), len(want))
	}
	for i, ext := range exts {
		if ext.ISA() != want[i] {
			t.Errorf("extension[%d] = %s, want %s", i, ext.ISA(), want[i])
		}
	}
}

func TestDecodeISAExtensionsDuplicateFatal(t *testing.T) {
	m := loadTestModel(t)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate extension")
		}
	}()
	m.DecodeISAExtensions("rv32ii")
}

func TestDecodeISAExtensionsUnknownFatal(t *testing.T) {
	m := loadTestModel(t)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unknown extension letter")
		}
	}()
	m.DecodeISAExtensions("rv32x")
}

func TestDecodeMask(t *testing.T) {
	mask := DecodeMask("6..2=0x1b")
	if mask.Bits.MSB != 6 || mask.Bits.LSB != 2 || mask.Value != 27 {
		t.Errorf("DecodeMask = %+v, want msb=6 lsb=2 value=27", mask)
	}
}

func TestOpcodeWithNoExtensionFatal(t *testing.T) {
	m := newModel()
	m.parseCodec([]string{"i_rd_rs1_simm12", "i-type"})
	m.parseFormat([]string{"i-type", "rd,rs1,simm12"})
	m.parseType([]string{"i", "I-type"})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for opcode with no extension")
		}
	}()
	m.parseOpcode([]string{"addi", "rd", "rs1", "simm12", "i_rd_rs1_simm12"}, nil)
}

func TestOpcodeWithNoCodecFatal(t *testing.T) {
	m := newModel()
	m.parseExtension([]string{"rv", "32", "i", "desc1", "desc2"})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for opcode with no codec")
		}
	}()
	m.parseOpcode([]string{"addi", "rv32i", "rd", "rs1"}, nil)
}

func TestUnknownFormatErrorNamesBothOpcodeAndFormat(t *testing.T) {
	m := newModel()
	m.parseExtension([]string{"rv", "32", "i", "desc1", "desc2"})
	m.parseCodec([]string{"i_rd_rs1_simm12", "no-such-format"})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unknown format")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("recovered value is not a string: %#v", r)
		}
		if !strings.Contains(msg, "addi") || !strings.Contains(msg, "no-such-format") {
			t.Errorf("panic message %q should name both opcode and format", msg)
		}
	}()
	m.parseOpcode([]string{"addi", "rv32i", "i_rd_rs1_simm12"}, nil)
}
