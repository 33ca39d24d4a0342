// Package gc32 implements the encoder for the 32-bit gate computer ISA,
// the second machine generation with a widened opcode byte, a reserved
// floating point block, screen output and register aliasing.
package gc32

import (
	"fmt"

	"github.com/mvparker810/gate-computer-compiler/internal/arch"
	"github.com/mvparker810/gate-computer-compiler/internal/parser"
)

// Name is the ISA selector used on the command line.
const Name = "gc32"

const (
	exitWord        = 0xFFFFFFFF
	maxImmediate    = 0xFFFF
	maxScreenPos    = 0xFF
	maxScreenData   = 0xFF
	programCapacity = 256
	labelCapacity   = 256
)

// opcode bytes and block bases
const (
	opALUBase    = 0x00
	opALUImmBase = 0x10
	opFPUBase    = 0x20
	opFPUImmBase = 0x30
	opMove       = 0x40
	opMoveI      = 0x41
	opCmp        = 0x42
	opCmpI       = 0x43
	opBranch     = 0x44
	opBranchI    = 0x45
	opRead       = 0x46
	opReadI      = 0x47
	opWrite      = 0x48
	opWriteI     = 0x49
	opPrintReg   = 0x4A
	opPrintRegI  = 0x4B
	opPrintCns   = 0x4C
	opPrintCnsI  = 0x4D
	opExit       = 0xFF
)

// machine word field offsets
const (
	shiftDst  = 8  // destination register, 3 bits
	shiftCond = 8  // branch condition, 4 bits
	shiftA    = 12 // A source register, 3 bits
	shiftB    = 16 // B source register, 3 bits
	shiftImm  = 16 // immediate payload, 16 bits
	shiftY    = 24 // high byte of the immediate payload
)

// Arch implements the architecture descriptor for the 32-bit machine.
type Arch struct {
	spec *arch.Spec
}

var _ arch.Architecture = &Arch{}

// New returns the 32-bit architecture descriptor.
func New() *Arch {
	return &Arch{spec: newSpec()}
}

// Name returns the ISA name.
func (a *Arch) Name() string {
	return Name
}

// WordWidth returns the machine word width in bits.
func (a *Arch) WordWidth() int {
	return 32
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
func (a *Arch) HasAliases() bool {
	return true
}

// Spec returns the instruction specification table.
func (a *Arch) Spec() *arch.Spec {
	return a.spec
}

// Encode turns one statement into a 32-bit machine word.
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

	case "LR":
		return a.encodeLoadSlot(res, st)

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

	case "PRINT":
		return a.encodePrint(res, st.Operands)
	}

	if _, ok := a.spec.ByMnemonicCategory(st.Mnemonic, arch.CategoryALU, false); ok {
		return a.encodeALU(res, st)
	}
	return 0, fmt.Errorf("%w: %s", arch.ErrUnknownMnemonic, st.Mnemonic)
}

// immediate parses an operand token as a 16-bit payload constant.
func immediate(token string) (uint32, error) {
	value, err := parser.ParseConstant(token)
	if err != nil {
		return 0, err
	}
	if value > maxImmediate {
		return 0, fmt.Errorf("%w: %d does not fit in 16 bits", arch.ErrValueOutOfRange, value)
	}
	return value, nil
}

func (a *Arch) encodeALU(res arch.Resolver, st arch.Statement) (uint32, error) {
	regRow, _ := a.spec.ByMnemonicCategory(st.Mnemonic, arch.CategoryALU, false)
	immRow, _ := a.spec.ByMnemonicCategory(st.Mnemonic, arch.CategoryALU, true)

	var dst, src1 uint8
	var last string

	switch len(st.Operands) {
	case 3:
		var err error
		if dst, err = res.Register(st.Operands[0]); err != nil {
			return 0, err
		}
		if src1, err = res.Register(st.Operands[1]); err != nil {
			return 0, err
		}
		last = st.Operands[2]

	case 2:
		var err error
		if dst, err = res.Register(st.Operands[0]); err != nil {
			return 0, err
		}
		// destination doubles as the implicit first source
		src1 = dst
		last = st.Operands[1]

	default:
		return 0, fmt.Errorf("%w: %s takes 2 or 3 operands", arch.ErrBadOperandCount, st.Mnemonic)
	}

	if src2, err := res.Register(last); err == nil {
		w := uint32(regRow.Opcode)
		w |= uint32(dst&0x7) << shiftDst
		w |= uint32(src1&0x7) << shiftA
		w |= uint32(src2&0x7) << shiftB
		return w, nil
	}

	value, err := immediate(last)
	if err != nil {
		return 0, err
	}
	w := uint32(immRow.Opcode)
	w |= uint32(dst&0x7) << shiftDst
	w |= uint32(src1&0x7) << shiftA
	w |= value << shiftImm
	return w, nil
}

func (a *Arch) encodeNot(res arch.Resolver, operands []string) (uint32, error) {
	if len(operands) != 1 {
		return 0, fmt.Errorf("%w: NOT takes 1 operand", arch.ErrBadOperandCount)
	}
	dst, err := res.Register(operands[0])
	if err != nil {
		return 0, err
	}
	row, _ := a.spec.ByMnemonicCategory("NOT", arch.CategoryALU, false)
	w := uint32(row.Opcode)
	w |= uint32(dst&0x7) << shiftDst
	w |= uint32(dst&0x7) << shiftA
	return w, nil
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
		return uint32(opMove) | uint32(dst&0x7)<<shiftDst | uint32(src&0x7)<<shiftA, nil
	}
	value, err := immediate(operands[1])
	if err != nil {
		return 0, err
	}
	return uint32(opMoveI) | uint32(dst&0x7)<<shiftDst | value<<shiftImm, nil
}

// encodeLoadSlot handles the LR pseudo instruction: a move immediate of
// the statement's own program slot, used for computed branch targets.
func (a *Arch) encodeLoadSlot(res arch.Resolver, st arch.Statement) (uint32, error) {
	if len(st.Operands) != 1 {
		return 0, fmt.Errorf("%w: LR takes 1 operand", arch.ErrBadOperandCount)
	}
	dst, err := res.Register(st.Operands[0])
	if err != nil {
		return 0, err
	}
	return uint32(opMoveI) | uint32(dst&0x7)<<shiftDst | uint32(st.Index)<<shiftImm, nil
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
		return uint32(opCmp) | uint32(src1&0x7)<<shiftA | uint32(src2&0x7)<<shiftB, nil
	}
	value, err := immediate(operands[1])
	if err != nil {
		return 0, err
	}
	return uint32(opCmpI) | uint32(src1&0x7)<<shiftA | value<<shiftImm, nil
}

func (a *Arch) encodeBranch(res arch.Resolver, cond arch.Condition, operands []string) (uint32, error) {
	if len(operands) != 1 {
		return 0, fmt.Errorf("%w: %s takes 1 operand", arch.ErrBadOperandCount, cond.Mnemonic)
	}
	target := operands[0]

	if reg, err := res.Register(target); err == nil {
		w := uint32(opBranch)
		w |= uint32(cond.Code&0xF) << shiftCond
		w |= uint32(reg&0xF) << shiftB
		return w, nil
	}

	var address uint32
	if parser.LooksLikeConstant(target) {
		value, err := immediate(target)
		if err != nil {
			return 0, err
		}
		address = value
	} else {
		value, ok := res.Label(target)
		if !ok {
			return 0, fmt.Errorf("%w: %s", arch.ErrUnknownSymbol, target)
		}
		address = uint32(value)
	}

	w := uint32(opBranchI)
	w |= uint32(cond.Code&0xF) << shiftCond
	w |= address << shiftImm
	return w, nil
}

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

	// READ carries its register in the destination field, WRITE carries
	// the data source in the A field.
	var regField uint32
	if write {
		regField = uint32(reg&0x7) << shiftA
	} else {
		regField = uint32(reg&0x7) << shiftDst
	}

	if addrReg, err := res.Register(operands[1]); err == nil {
		opcode := uint32(opRead)
		if write {
			opcode = opWrite
		}
		return opcode | regField | uint32(addrReg&0x7)<<shiftB, nil
	}

	addr, err := immediate(operands[1])
	if err != nil {
		return 0, err
	}
	opcode := uint32(opReadI)
	if write {
		opcode = opWriteI
	}
	return opcode | regField | addr<<shiftImm, nil
}

// encodePrint handles the four screen output forms, selected by whether
// the position and data operands are registers or constants.
func (a *Arch) encodePrint(res arch.Resolver, operands []string) (uint32, error) {
	if len(operands) != 2 {
		return 0, fmt.Errorf("%w: PRINT takes 2 operands", arch.ErrBadOperandCount)
	}
	posReg, posErr := res.Register(operands[0])
	dataReg, dataErr := res.Register(operands[1])

	switch {
	case posErr == nil && dataErr == nil:
		return uint32(opPrintReg) |
			uint32(dataReg&0x7)<<shiftA |
			uint32(posReg&0x7)<<shiftB, nil

	case posErr != nil && dataErr == nil:
		pos, err := screenValue(operands[0], maxScreenPos)
		if err != nil {
			return 0, err
		}
		return uint32(opPrintRegI) |
			uint32(dataReg&0x7)<<shiftA |
			pos<<shiftImm, nil

	case posErr == nil && dataErr != nil:
		data, err := parser.ParseConstant(operands[1])
		if err != nil {
			return 0, err
		}
		// constant data shares the Y byte with nothing, but wider
		// values have no opcode when the position is a register
		if data > maxScreenData {
			return 0, fmt.Errorf("%w: constant %d with a register position", arch.ErrNoEncoding, data)
		}
		return uint32(opPrintCns) |
			uint32(posReg&0x7)<<shiftB |
			data<<shiftY, nil

	default:
		pos, err := screenValue(operands[0], maxScreenPos)
		if err != nil {
			return 0, err
		}
		data, err := screenValue(operands[1], maxScreenData)
		if err != nil {
			return 0, err
		}
		return uint32(opPrintCnsI) | pos<<shiftImm | data<<shiftY, nil
	}
}

// screenValue parses a one-byte screen position or character constant.
func screenValue(token string, limit uint32) (uint32, error) {
	value, err := parser.ParseConstant(token)
	if err != nil {
		return 0, err
	}
	if value > limit {
		return 0, fmt.Errorf("%w: %d does not fit in 8 bits", arch.ErrValueOutOfRange, value)
	}
	return value, nil
}
