package arch

import "fmt"

// Format is the bit layout template governing operand field placement
// within a machine word.
type Format int

// Instruction formats.
const (
	FormatRegister Format = iota
	FormatImmediate
	FormatBranchRegister
	FormatBranchImmediate
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatRegister:
		return "R"
	case FormatImmediate:
		return "I"
	case FormatBranchRegister:
		return "J"
	case FormatBranchImmediate:
		return "JI"
	default:
		return "unknown"
	}
}

// Category groups instructions by execution unit behavior.
type Category int

// Instruction categories.
const (
	CategoryALU Category = iota
	CategoryFPU          // reserved, no operations defined yet
	CategoryMove
	CategoryCompare
	CategoryBranch
	CategoryMemoryRead
	CategoryMemoryWrite
	CategoryPrintReg   // screen write with register data
	CategoryPrintConst // screen write with constant data
	CategoryService
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case CategoryALU:
		return "alu"
	case CategoryFPU:
		return "fpu"
	case CategoryMove:
		return "move"
	case CategoryCompare:
		return "compare"
	case CategoryBranch:
		return "branch"
	case CategoryMemoryRead:
		return "memory read"
	case CategoryMemoryWrite:
		return "memory write"
	case CategoryPrintReg:
		return "print register"
	case CategoryPrintConst:
		return "print constant"
	case CategoryService:
		return "service"
	default:
		return "unknown"
	}
}

// Flags describes how the execution units treat one instruction.
// A decoder flag ROM can be derived from the same rows, so reserved
// opcode slots carry complete flag sets as well.
type Flags struct {
	Valid          bool // row describes a decodable instruction
	Immediate      bool // row is the immediate variant of its mnemonic
	OverridesWrite bool // result write target is taken from the immediate
	OverridesB     bool // B operand is taken from the immediate
	ReadsA         bool // instruction reads the A register field
	ReadsB         bool // instruction reads the B register field
	WritesResult   bool // instruction writes a destination register
}

// Named flag set constructors, used by the table generators so that no row
// relies on positional initialization.

// ComputeFlags returns the flag set for operations that read sources and
// write a result (ALU and reserved FPU rows).
func ComputeFlags(immediate bool) Flags {
	return Flags{
		Valid:        true,
		Immediate:    immediate,
		OverridesB:   immediate,
		ReadsA:       true,
		ReadsB:       !immediate,
		WritesResult: true,
	}
}

// MoveFlags returns the flag set for register moves.
func MoveFlags(immediate bool) Flags {
	f := ComputeFlags(immediate)
	f.OverridesWrite = immediate
	return f
}

// CompareFlags returns the flag set for flag-only comparisons.
func CompareFlags(immediate bool) Flags {
	f := ComputeFlags(immediate)
	f.WritesResult = false
	return f
}

// BranchFlags returns the flag set for branches.
func BranchFlags(immediate bool) Flags {
	return Flags{
		Valid:      true,
		Immediate:  immediate,
		OverridesB: immediate,
		ReadsB:     !immediate,
	}
}

// MemoryReadFlags returns the flag set for memory loads.
func MemoryReadFlags(immediate bool) Flags {
	return Flags{
		Valid:        true,
		Immediate:    immediate,
		OverridesB:   immediate,
		ReadsB:       !immediate,
		WritesResult: true,
	}
}

// MemoryWriteFlags returns the flag set for memory stores.
func MemoryWriteFlags(immediate bool) Flags {
	return Flags{
		Valid:      true,
		Immediate:  immediate,
		OverridesB: immediate,
		ReadsA:     true,
		ReadsB:     !immediate,
	}
}

// PrintRegFlags returns the flag set for screen writes of register data.
func PrintRegFlags(immediate bool) Flags {
	return Flags{
		Valid:      true,
		Immediate:  immediate,
		OverridesB: immediate,
		ReadsA:     true,
		ReadsB:     !immediate,
	}
}

// PrintConstFlags returns the flag set for screen writes of constant data.
func PrintConstFlags(immediate bool) Flags {
	return Flags{
		Valid:          true,
		Immediate:      immediate,
		OverridesB:     immediate,
		OverridesWrite: true,
		ReadsB:         !immediate,
	}
}

// ServiceFlags returns the flag set for service operations.
func ServiceFlags() Flags {
	return Flags{Valid: true}
}

// Instruction is one row of an ISA specification table.
type Instruction struct {
	TechnicalName string // unique row name, e.g. "ALU_ADD_I"
	Mnemonic      string // assembly mnemonic, e.g. "ADD"
	Opcode        uint8
	Format        Format
	Category      Category
	Flags         Flags
}

// Spec is the immutable instruction specification table of one ISA.
// It is built once per run by a pure generator and only queried afterwards.
type Spec struct {
	instructions []Instruction
	byOpcode     map[uint8]int
	mnemonics    map[string]struct{}
}

// NewSpec builds a specification table from the given rows.
// It panics on duplicate opcodes or technical names since the tables are
// static program data and a collision is a programming error.
func NewSpec(instructions []Instruction) *Spec {
	s := &Spec{
		instructions: instructions,
		byOpcode:     make(map[uint8]int, len(instructions)),
		mnemonics:    make(map[string]struct{}, len(instructions)),
	}
	names := make(map[string]struct{}, len(instructions))
	for i, ins := range instructions {
		if _, ok := s.byOpcode[ins.Opcode]; ok {
			panic(fmt.Sprintf("arch: duplicate opcode %#02x", ins.Opcode))
		}
		if _, ok := names[ins.TechnicalName]; ok {
			panic(fmt.Sprintf("arch: duplicate technical name %s", ins.TechnicalName))
		}
		s.byOpcode[ins.Opcode] = i
		names[ins.TechnicalName] = struct{}{}
		s.mnemonics[ins.Mnemonic] = struct{}{}
	}
	return s
}

// Instructions returns all rows of the table in definition order.
func (s *Spec) Instructions() []Instruction {
	return s.instructions
}

// ByOpcode returns the row for an opcode.
func (s *Spec) ByOpcode(opcode uint8) (Instruction, bool) {
	i, ok := s.byOpcode[opcode]
	if !ok {
		return Instruction{}, false
	}
	return s.instructions[i], true
}

// ByMnemonic returns the first row matching a mnemonic and immediate flag.
// Mnemonics that span two categories need ByMnemonicCategory instead.
func (s *Spec) ByMnemonic(mnemonic string, immediate bool) (Instruction, bool) {
	for _, ins := range s.instructions {
		if ins.Mnemonic == mnemonic && ins.Flags.Immediate == immediate {
			return ins, true
		}
	}
	return Instruction{}, false
}

// ByMnemonicCategory returns the row matching a mnemonic, category and
// immediate flag.
func (s *Spec) ByMnemonicCategory(mnemonic string, category Category, immediate bool) (Instruction, bool) {
	for _, ins := range s.instructions {
		if ins.Mnemonic == mnemonic && ins.Category == category && ins.Flags.Immediate == immediate {
			return ins, true
		}
	}
	return Instruction{}, false
}

// HasMnemonic returns whether any row uses the given mnemonic.
func (s *Spec) HasMnemonic(mnemonic string) bool {
	_, ok := s.mnemonics[mnemonic]
	return ok
}
