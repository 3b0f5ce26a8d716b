// Package csr holds the static control-and-status-register metadata
// table: a fixed list of 16-bit CSR numbers with permission tags, short
// names, and descriptions. It is a simple static lookup, external to the
// cross-linked ISA model but used by downstream consumers the same way
// the original's riscv_lookup_csr_metadata is.
package csr

import "sync"

// Permission is the access-permission tag attached to a CSR record: who
// may read/write it and at what privilege level.
type Permission string

const (
	PermNone Permission = ""
	PermURO  Permission = "uro" // user read-only
	PermURW  Permission = "urw" // user read-write
	PermSRO  Permission = "sro" // supervisor read-only
	PermSRW  Permission = "srw" // supervisor read-write
	PermHRO  Permission = "hro" // hypervisor read-only
	PermHRW  Permission = "hrw" // hypervisor read-write
	PermMRO  Permission = "mro" // machine read-only
	PermMRW  Permission = "mrw" // machine read-write
)

// Record is one entry of the static CSR metadata table.
type Record struct {
	Number      uint16
	Permission  Permission
	Name        string
	Description string
}

// table transcribes riscv-csr.cc's riscv_csr_table, including its
// documented duplicate entries (mstatus, mtvec, mtdeleg, mie, mtimecmp
// each appear twice at the same CSR number); the lookup map construction
// below lets later entries win, per the documented "later entries
// overwrite earlier ones" behavior.
var table = []Record{
	{0x001, PermURW, "fflags", "Floating-Point Accrued Exceptions"},
	{0x002, PermURW, "frm", "Floating-Point Dynamic Rounding Mode"},
	{0x003, PermURW, "fcsr", "Floating-Point Control and Status Register (frm + fflags)"},
	{0xC00, PermURO, "cycle", "Cycle counter for RDCYCLE instruction"},
	{0xC01, PermURO, "time", "Timer for RDTIME instruction"},
	{0xC02, PermURO, "instret", "Instructions-retired counter for RDINSTRET instruction"},
	{0xC80, PermURO, "cycleh", "Upper 32 bits of cycle, RV32I only"},
	{0xC81, PermURO, "timeh", "Upper 32 bits of time, RV32I only"},
	{0xC82, PermURO, "instreth", "Upper 32 bits of instret, RV32I only"},
	{0x100, PermSRW, "sstatus", "Supervisor status register"},
	{0x101, PermSRW, "stvec", "Supervisor trap handler base address"},
	{0x104, PermSRW, "sie", "Supervisor interrupt-enable register"},
	{0x121, PermSRW, "stimecmp", "Wall-clock timer compare value"},
	{0xD01, PermSRO, "stime", "Supervisor wall-clock time register"},
	{0xD81, PermSRO, "stimeh", "Upper 32 bits of stime, RV32I only"},
	{0x140, PermSRW, "sscratch", "Scratch register for supervisor trap handlers"},
	{0x141, PermSRW, "sepc", "Supervisor exception program counter"},
	{0xD42, PermSRO, "scause", "Supervisor trap cause"},
	{0xD43, PermSRO, "sbadaddr", "Supervisor bad address"},
	{0x144, PermSRW, "sip", "Supervisor interrupt pending"},
	{0x180, PermSRW, "sptbr", "Page-table base register"},
	{0x181, PermSRW, "sasid", "Address-space ID"},
	{0x900, PermSRW, "cyclew", "Cycle counter for RDCYCLE instruction"},
	{0x901, PermSRW, "timew", "Timer for RDTIME instruction"},
	{0x902, PermSRW, "instretw", "Instructions-retired counter for RDINSTRET instruction"},
	{0x980, PermSRW, "cyclehw", "Upper 32 bits of cycle, RV32I only"},
	{0x981, PermSRW, "timehw", "Upper 32 bits of time, RV32I only"},
	{0x982, PermSRW, "instrethw", "Upper 32 bits of instret, RV32I only"},
	{0x200, PermHRW, "hstatus", "Hypervisor status register"},
	{0x201, PermHRW, "htvec", "Hypervisor trap handler base address"},
	{0x202, PermHRW, "htdeleg", "Hypervisor trap delegation register"},
	{0x221, PermHRW, "htimecmp", "Hypervisor wall-clock timer compare value"},
	{0xE01, PermHRO, "htime", "Hypervisor wall-clock time register"},
	{0xE81, PermHRO, "htimeh", "Upper 32 bits of htime, RV32I only"},
	{0x240, PermHRW, "hscratch", "Scratch register for hypervisor trap handlers"},
	{0x241, PermHRW, "hepc", "Hypervisor exception program counter"},
	{0x242, PermHRW, "hcause", "Hypervisor trap cause"},
	{0x243, PermHRW, "hbadaddr", "Hypervisor bad address"},
	{0xA01, PermHRW, "stimew", "Supervisor wall-clock timer"},
	{0xA81, PermHRW, "stimehw", "Upper 32 bits of supervisor wall-clock timer, RV32I only"},
	{0xF00, PermMRO, "mcpuid", "CPU description"},
	{0xF01, PermMRO, "mimpid", "Vendor ID and version number"},
	{0xF10, PermMRO, "mhartid", "Hardware thread ID"},
	{0x300, PermMRW, "mstatus", "Machine status register"},
	{0x301, PermMRW, "mtvec", "Machine trap-handler base address"},
	{0x302, PermMRW, "mtdeleg", "Machine trap delegation register"},
	{0x304, PermMRW, "mie", "Machine interrupt-enable register"},
	{0x321, PermMRW, "mtimecmp", "Machine wall-clock timer compare value"},
	{0x300, PermMRW, "mstatus", "Machine status register"},
	{0x301, PermMRW, "mtvec", "Machine trap-handler base address"},
	{0x302, PermMRW, "mtdeleg", "Machine trap delegation register"},
	{0x304, PermMRW, "mie", "Machine interrupt-enable register"},
	{0x321, PermMRW, "mtimecmp", "Machine wall-clock timer compare value"},
	{0x340, PermMRW, "mscratch", "Scratch register for machine trap handlers"},
	{0x341, PermMRW, "mepc", "Machine exception program counter"},
	{0x342, PermMRW, "mcause", "Machine trap cause"},
	{0x343, PermMRW, "mbadaddr", "Machine bad address"},
	{0x344, PermMRW, "mip", "Machine interrupt pending"},
	{0x380, PermMRW, "mbase", "Base register"},
	{0x381, PermMRW, "mbound", "Bound register"},
	{0x382, PermMRW, "mibase", "Instruction base register"},
	{0x383, PermMRW, "mibound", "Instruction bound register"},
	{0x384, PermMRW, "mdbase", "Data base register"},
	{0x385, PermMRW, "mdbound", "Data bound register"},
	{0xB01, PermMRW, "htimew", "Hypervisor wall-clock timer"},
	{0xB81, PermMRW, "htimehw", "Upper 32 bits of hypervisor wall-clock timer, RV32I only"},
	{0x780, PermMRW, "mtohost", "Output register to host"},
	{0x781, PermMRW, "mfromhost", "Input register from host"},
}

var (
	once sync.Once
	byNo map[uint16]Record
)

func index() map[uint16]Record {
	once.Do(func() {
		byNo = make(map[uint16]Record, len(table))
		for _, rec := range table {
			byNo[rec.Number] = rec
		}
	})
	return byNo
}

// Lookup returns the CSR record for number, and false if there is no
// record — "no record" in spec terms.
func Lookup(number uint16) (Record, bool) {
	rec, ok := index()[number]
	return rec, ok
}
