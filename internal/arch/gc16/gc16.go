// Package gc16 implements the encoder for the 16-bit gate computer ISA.
package gc16

import (
	"fmt"

	"github.com/mvparker810/gate-computer-compiler/internal/arch"
	"github.com/mvparker810/gate-computer-compiler/internal/parser"
)

// Name is the ISA selector used on the command line.
const Name = "gc16"

// instruction word field offsets and limits
const (
	altBit          = 0x80 // immediate or write variant marker in the opcode byte
	exitWord        = 0xFFFF
	maxImmediate    = 0xFF // all payload fields are one byte wide
	programCapacity = 256
	labelCapacity   = 128
)

// opcode nibbles of the machine word
const (
	opAND  = 0x0
	opOR   = 0x1
	opXOR  = 0x2
	opNOT  = 0x3
	opADD  = 0x4
	opSUB  = 0x5
	opLSL  = 0x6
	opLSR  = 0x7
	opMOVE = 0x8
	opMEM  = 0x9 // memory access with constant address
	opB    = 0xA
	opCMP  = 0xB
	opMEMI = 0xC // memory access with register address
	opEXIT = 0xF
)

// Arch implements the architecture descriptor for the 16-bit machine.
type Arch struct {
	spec *arch.Spec
}

var _ arch.Architecture = &Arch{}

// New returns the 16-bit architecture descriptor.
func New() *Arch {
	return &Arch{spec: newSpec()}
}

// Name returns the ISA name.
func (a *Arch) Name() string {
	return Name
}

// WordWidth returns the machine word width in bits.
func (a *Arch) WordWidth() int {
	return 16
}

// ProgramCapacity returns the number of program memory slots.
func (a *Arch) ProgramCapacity() int {
	return programCapacity
}

// LabelCapacity returns the maximum number of labels per unit.
func (a *Arch) LabelCapacity() int {
	return labelCapacity
}

// HasAliases returns whether the register alias directive is supported.
// The 16-bit toolchain predates it, a '#' line is a plain comment here.
func (a *Arch) HasAliases() bool {
	return false
}

// Spec returns the instruction specification table.
func (a *Arch) Spec() *arch.Spec {
	return a.spec
}

// Encode turns one statement into a 16-bit machine word, returned in the
// low half of the result.
func (a *Arch) Encode(res arch.Resolver, st arch.Statement) (uint32, error) {
	if st.Mnemonic == "" {
		return 0, nil
	}

	if cond, ok := arch.ConditionByMnemonic(st.Mnemonic); ok {
		return a.encodeBranch(res, cond, st.Operands)
	}

	switch st.Mnemonic {
	case "EXIT":
		if len(st.Operands) != 0 {
			return 0, fmt.Errorf("%w: EXIT takes no operands", arch.ErrBadOperandCount)
		}
		return exitWord, nil

	case "NOT":
		return a.encodeNot(res, st.Operands)

	case "MOV":
		return a.encodeMove(res, st.Operands)

	case "CMP":
		return a.encodeCompare(res, st.Operands)

	case "READ":
		return a.encodeMemory(res, st.Operands, false)

	case "WRITE":
		return a.encodeMemory(res, st.Operands, true)
	}

	if _, ok := a.spec.ByMnemonicCategory(st.Mnemonic, arch.CategoryALU, false); ok {
		return a.encodeALU(res, st)
	}
	return 0, fmt.Errorf("%w: %s", arch.ErrUnknownMnemonic, st.Mnemonic)
}

// word assembles the common field layout: opcode nibble in bits 0-3,
// destination in bits 4-6, ALT marker in bit 7, payload in bits 8-15.
func word(opcode uint8, alt bool, dst uint8, payload uint8) uint32 {
	w := uint32(opcode & 0xF)
	w |= uint32(dst&0x7) << 4
	if alt {
		w |= 1 << 7
	}
	w |= uint32(payload) << 8
	return w
}

// constant parses an operand token as a one-byte payload constant.
func constant(token string) (uint8, error) {
	value, err := parser.ParseConstant(token)
	if err != nil {
		return 0, err
	}
	if value > maxImmediate {
		return 0, fmt.Errorf("%w: %d does not fit in 8 bits", arch.ErrValueOutOfRange, value)
	}
	return uint8(value), nil
}

func (a *Arch) encodeALU(res arch.Resolver, st arch.Statement) (uint32, error) {
	row, _ := a.spec.ByMnemonicCategory(st.Mnemonic, arch.CategoryALU, false)
	opcode := row.Opcode & 0xF

	switch len(st.Operands) {
	case 3:
		dst, err := res.Register(st.Operands[0])
		if err != nil {
			return 0, err
		}
		src1, err := res.Register(st.Operands[1])
		if err != nil {
			return 0, err
		}
		src2, err := res.Register(st.Operands[2])
		if err != nil {
			// the immediate form has no room for a second source register
			return 0, fmt.Errorf("%w: three operand %s needs a register source",
				arch.ErrNoEncoding, st.Mnemonic)
		}
		return word(opcode, false, dst, src1&0x7|src2<<4), nil

	case 2:
		dst, err := res.Register(st.Operands[0])
		if err != nil {
			return 0, err
		}
		if src, err := res.Register(st.Operands[1]); err == nil {
			// destination doubles as the implicit first source
			return word(opcode, false, dst, dst&0x7|src<<4), nil
		}
		value, err := constant(st.Operands[1])
		if err != nil {
			return 0, err
		}
		return word(opcode, true, dst, value), nil

	default:
		return 0, fmt.Errorf("%w: %s takes 2 or 3 operands", arch.ErrBadOperandCount, st.Mnemonic)
	}
}

func (a *Arch) encodeNot(res arch.Resolver, operands []string) (uint32, error) {
	if len(operands) != 1 {
		return 0, fmt.Errorf("%w: NOT takes 1 operand", arch.ErrBadOperandCount)
	}
	dst, err := res.Register(operands[0])
	if err != nil {
		return 0, err
	}
	// destination is the implicit source, the second source field stays zero
	return word(opNOT, false, dst, dst&0x7), nil
}

func (a *Arch) encodeMove(res arch.Resolver, operands []string) (uint32, error) {
	if len(operands) != 2 {
		return 0, fmt.Errorf("%w: MOV takes 2 operands", arch.ErrBadOperandCount)
	}
	dst, err := res.Register(operands[0])
	if err != nil {
		return 0, err
	}
	if src, err := res.Register(operands[1]); err == nil {
		return word(opMOVE, false, dst, src&0x7), nil
	}
	value, err := constant(operands[1])
	if err != nil {
		return 0, err
	}
	return word(opMOVE, true, dst, value), nil
}

func (a *Arch) encodeCompare(res arch.Resolver, operands []string) (uint32, error) {
	if len(operands) != 2 {
		return 0, fmt.Errorf("%w: CMP takes 2 operands", arch.ErrBadOperandCount)
	}
	src1, err := res.Register(operands[0])
	if err != nil {
		return 0, err
	}
	if src2, err := res.Register(operands[1]); err == nil {
		return word(opCMP, false, src1, src2&0x7), nil
	}
	value, err := constant(operands[1])
	if err != nil {
		return 0, err
	}
	return word(opCMP, true, src1, value), nil
}

// encodeMemory handles READ and WRITE. A register address selects the
// register addressed opcode, a constant the direct addressed one.
func (a *Arch) encodeMemory(res arch.Resolver, operands []string, write bool) (uint32, error) {
	mnemonic := "READ"
	if write {
		mnemonic = "WRITE"
	}
	if len(operands) != 2 {
		return 0, fmt.Errorf("%w: %s takes 2 operands", arch.ErrBadOperandCount, mnemonic)
	}
	reg, err := res.Register(operands[0])
	if err != nil {
		return 0, err
	}
	if addrReg, err := res.Register(operands[1]); err == nil {
		return word(opMEMI, write, reg, addrReg&0x7), nil
	}
	addr, err := constant(operands[1])
	if err != nil {
		return 0, err
	}
	return word(opMEM, write, reg, addr), nil
}

func (a *Arch) encodeBranch(res arch.Resolver, cond arch.Condition, operands []string) (uint32, error) {
	if len(operands) != 1 {
		return 0, fmt.Errorf("%w: %s takes 1 operand", arch.ErrBadOperandCount, cond.Mnemonic)
	}
	target := operands[0]

	if _, err := res.Register(target); err == nil {
		return 0, fmt.Errorf("%w: branch to register is not available on %s",
			arch.ErrNoEncoding, Name)
	}

	var address uint8
	if parser.LooksLikeConstant(target) {
		value, err := constant(target)
		if err != nil {
			return 0, err
		}
		address = value
	} else {
		value, ok := res.Label(target)
		if !ok {
			return 0, fmt.Errorf("%w: %s", arch.ErrUnknownSymbol, target)
		}
		address = value
	}

	w := uint32(opB)
	w |= uint32(cond.Code&0xF) << 4
	w |= uint32(address) << 8
	return w, nil
}
