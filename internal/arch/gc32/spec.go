package gc32

import (
	"fmt"

	"github.com/mvparker810/gate-computer-compiler/internal/arch"
)

// aluMnemonics in opcode order. The two NUL slots are reserved but carry
// complete rows so decoder tables derived from the spec stay dense.
var aluMnemonics = []string{
	"AND", "OR", "XOR", "NOT", "ADD", "SUB", "LSL", "LSR",
	"BCDL", "BCDH", "UMUL_L", "UMUL_H", "MUL_L", "MUL_H", "NUL0E", "NUL0F",
}

// newSpec builds the 32-bit instruction table. ALU and FPU blocks are
// generated, the rest is written out row by row.
func newSpec() *arch.Spec {
	instructions := make([]arch.Instruction, 0, 80)

	for i, mnemonic := range aluMnemonics {
		instructions = append(instructions,
			arch.Instruction{
				TechnicalName: "ALU_" + mnemonic,
				Mnemonic:      mnemonic,
				Opcode:        uint8(opALUBase + i),
				Format:        arch.FormatRegister,
				Category:      arch.CategoryALU,
				Flags:         arch.ComputeFlags(false),
			},
			arch.Instruction{
				TechnicalName: "ALU_" + mnemonic + "_I",
				Mnemonic:      mnemonic,
				Opcode:        uint8(opALUImmBase + i),
				Format:        arch.FormatImmediate,
				Category:      arch.CategoryALU,
				Flags:         arch.ComputeFlags(true),
			},
		)
	}

	// reserved floating point block
	for i := range 16 {
		instructions = append(instructions,
			arch.Instruction{
				TechnicalName: fmt.Sprintf("FPU_NUL%d", opFPUBase+i),
				Mnemonic:      fmt.Sprintf("FNUL%d", i),
				Opcode:        uint8(opFPUBase + i),
				Format:        arch.FormatRegister,
				Category:      arch.CategoryFPU,
				Flags:         arch.ComputeFlags(false),
			},
			arch.Instruction{
				TechnicalName: fmt.Sprintf("FPU_NUL%d_I", opFPUImmBase+i),
				Mnemonic:      fmt.Sprintf("FNUL%d", i),
				Opcode:        uint8(opFPUImmBase + i),
				Format:        arch.FormatImmediate,
				Category:      arch.CategoryFPU,
				Flags:         arch.ComputeFlags(true),
			},
		)
	}

	instructions = append(instructions,
		arch.Instruction{
			TechnicalName: "MOVE",
			Mnemonic:      "MOV",
			Opcode:        opMove,
			Format:        arch.FormatRegister,
			Category:      arch.CategoryMove,
			Flags:         arch.MoveFlags(false),
		},
		arch.Instruction{
			TechnicalName: "MOVE_I",
			Mnemonic:      "MOV",
			Opcode:        opMoveI,
			Format:        arch.FormatImmediate,
			Category:      arch.CategoryMove,
			Flags:         arch.MoveFlags(true),
		},
		arch.Instruction{
			TechnicalName: "CMP",
			Mnemonic:      "CMP",
			Opcode:        opCmp,
			Format:        arch.FormatRegister,
			Category:      arch.CategoryCompare,
			Flags:         arch.CompareFlags(false),
		},
		arch.Instruction{
			TechnicalName: "CMP_I",
			Mnemonic:      "CMP",
			Opcode:        opCmpI,
			Format:        arch.FormatImmediate,
			Category:      arch.CategoryCompare,
			Flags:         arch.CompareFlags(true),
		},
		arch.Instruction{
			TechnicalName: "BRANCH",
			Mnemonic:      "B",
			Opcode:        opBranch,
			Format:        arch.FormatBranchRegister,
			Category:      arch.CategoryBranch,
			Flags:         arch.BranchFlags(false),
		},
		arch.Instruction{
			TechnicalName: "BRANCH_I",
			Mnemonic:      "B",
			Opcode:        opBranchI,
			Format:        arch.FormatBranchImmediate,
			Category:      arch.CategoryBranch,
			Flags:         arch.BranchFlags(true),
		},
		arch.Instruction{
			TechnicalName: "READ",
			Mnemonic:      "READ",
			Opcode:        opRead,
			Format:        arch.FormatRegister,
			Category:      arch.CategoryMemoryRead,
			Flags:         arch.MemoryReadFlags(false),
		},
		arch.Instruction{
			TechnicalName: "READ_I",
			Mnemonic:      "READ",
			Opcode:        opReadI,
			Format:        arch.FormatImmediate,
			Category:      arch.CategoryMemoryRead,
			Flags:         arch.MemoryReadFlags(true),
		},
		arch.Instruction{
			TechnicalName: "WRITE",
			Mnemonic:      "WRITE",
			Opcode:        opWrite,
			Format:        arch.FormatRegister,
			Category:      arch.CategoryMemoryWrite,
			Flags:         arch.MemoryWriteFlags(false),
		},
		arch.Instruction{
			TechnicalName: "WRITE_I",
			Mnemonic:      "WRITE",
			Opcode:        opWriteI,
			Format:        arch.FormatImmediate,
			Category:      arch.CategoryMemoryWrite,
			Flags:         arch.MemoryWriteFlags(true),
		},
		arch.Instruction{
			TechnicalName: "PRINT_REG",
			Mnemonic:      "PRINT",
			Opcode:        opPrintReg,
			Format:        arch.FormatRegister,
			Category:      arch.CategoryPrintReg,
			Flags:         arch.PrintRegFlags(false),
		},
		arch.Instruction{
			TechnicalName: "PRINT_REG_I",
			Mnemonic:      "PRINT",
			Opcode:        opPrintRegI,
			Format:        arch.FormatImmediate,
			Category:      arch.CategoryPrintReg,
			Flags:         arch.PrintRegFlags(true),
		},
		arch.Instruction{
			TechnicalName: "PRINT_CNS",
			Mnemonic:      "PRINT",
			Opcode:        opPrintCns,
			Format:        arch.FormatRegister,
			Category:      arch.CategoryPrintConst,
			Flags:         arch.PrintConstFlags(false),
		},
		arch.Instruction{
			TechnicalName: "PRINT_CNS_I",
			Mnemonic:      "PRINT",
			Opcode:        opPrintCnsI,
			Format:        arch.FormatImmediate,
			Category:      arch.CategoryPrintConst,
			Flags:         arch.PrintConstFlags(true),
		},
		arch.Instruction{
			TechnicalName: "EXIT",
			Mnemonic:      "EXIT",
			Opcode:        opExit,
			Format:        arch.FormatRegister,
			Category:      arch.CategoryService,
			Flags:         arch.ServiceFlags(),
		},
	)

	return arch.NewSpec(instructions)
}
