package gc16

import (
	"github.com/mvparker810/gate-computer-compiler/internal/arch"
)

// aluMnemonics in opcode nibble order. NOT is dispatched separately but
// shares the ALU opcode space.
var aluMnemonics = []string{"AND", "OR", "XOR", "NOT", "ADD", "SUB", "LSL", "LSR"}

// newSpec builds the 16-bit instruction table. The table key is the opcode
// nibble combined with the ALT marker, so both variants of a mnemonic get
// distinct rows. Immediate ALU rows exist for every nibble to keep derived
// decoder tables dense, including the unreachable immediate NOT slot.
func newSpec() *arch.Spec {
	instructions := make([]arch.Instruction, 0, 20)

	for i, mnemonic := range aluMnemonics {
		instructions = append(instructions,
			arch.Instruction{
				TechnicalName: "ALU_" + mnemonic,
				Mnemonic:      mnemonic,
				Opcode:        uint8(i),
				Format:        arch.FormatRegister,
				Category:      arch.CategoryALU,
				Flags:         arch.ComputeFlags(false),
			},
			arch.Instruction{
				TechnicalName: "ALU_" + mnemonic + "_I",
				Mnemonic:      mnemonic,
				Opcode:        uint8(i) | altBit,
				Format:        arch.FormatImmediate,
				Category:      arch.CategoryALU,
				Flags:         arch.ComputeFlags(true),
			},
		)
	}

	instructions = append(instructions,
		arch.Instruction{
			TechnicalName: "MOVE",
			Mnemonic:      "MOV",
			Opcode:        opMOVE,
			Format:        arch.FormatRegister,
			Category:      arch.CategoryMove,
			Flags:         arch.MoveFlags(false),
		},
		arch.Instruction{
			TechnicalName: "MOVE_I",
			Mnemonic:      "MOV",
			Opcode:        opMOVE | altBit,
			Format:        arch.FormatImmediate,
			Category:      arch.CategoryMove,
			Flags:         arch.MoveFlags(true),
		},
		arch.Instruction{
			TechnicalName: "READ_I",
			Mnemonic:      "READ",
			Opcode:        opMEM,
			Format:        arch.FormatImmediate,
			Category:      arch.CategoryMemoryRead,
			Flags:         arch.MemoryReadFlags(true),
		},
		arch.Instruction{
			TechnicalName: "WRITE_I",
			Mnemonic:      "WRITE",
			Opcode:        opMEM | altBit,
			Format:        arch.FormatImmediate,
			Category:      arch.CategoryMemoryWrite,
			Flags:         arch.MemoryWriteFlags(true),
		},
		arch.Instruction{
			TechnicalName: "BRANCH",
			Mnemonic:      "B",
			Opcode:        opB,
			Format:        arch.FormatBranchImmediate,
			Category:      arch.CategoryBranch,
			Flags:         arch.BranchFlags(true),
		},
		arch.Instruction{
			TechnicalName: "CMP",
			Mnemonic:      "CMP",
			Opcode:        opCMP,
			Format:        arch.FormatRegister,
			Category:      arch.CategoryCompare,
			Flags:         arch.CompareFlags(false),
		},
		arch.Instruction{
			TechnicalName: "CMP_I",
			Mnemonic:      "CMP",
			Opcode:        opCMP | altBit,
			Format:        arch.FormatImmediate,
			Category:      arch.CategoryCompare,
			Flags:         arch.CompareFlags(true),
		},
		arch.Instruction{
			TechnicalName: "READ",
			Mnemonic:      "READ",
			Opcode:        opMEMI,
			Format:        arch.FormatRegister,
			Category:      arch.CategoryMemoryRead,
			Flags:         arch.MemoryReadFlags(false),
		},
		arch.Instruction{
			TechnicalName: "WRITE",
			Mnemonic:      "WRITE",
			Opcode:        opMEMI | altBit,
			Format:        arch.FormatRegister,
			Category:      arch.CategoryMemoryWrite,
			Flags:         arch.MemoryWriteFlags(false),
		},
		arch.Instruction{
			TechnicalName: "EXIT",
			Mnemonic:      "EXIT",
			Opcode:        opEXIT,
			Format:        arch.FormatRegister,
			Category:      arch.CategoryService,
			Flags:         arch.ServiceFlags(),
		},
	)

	return arch.NewSpec(instructions)
}
