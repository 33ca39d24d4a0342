// Package arch contains the shared instruction set model and the descriptor
// interface that parameterizes the assembler. It acts as a bridge between the
// generic two-pass driver and the ISA specific encoder packages.
package arch

// Statement is one tokenized instruction line handed to an encoder.
type Statement struct {
	// Mnemonic is the first token of the line, canonicalized to upper case.
	Mnemonic string
	// Operands are the remaining tokens with commas already removed.
	Operands []string
	// Index is the program slot that will receive the encoded word. It is
	// the only position-dependent input an encoder may use.
	Index int
}

// Resolver provides symbol and register resolution during encoding.
// It is implemented by the assembler driver, which owns the tables that
// are frozen after pass 1.
type Resolver interface {
	// Label returns the address a label resolves to.
	Label(name string) (uint8, bool)
	// Register resolves a raw operand token to a register number,
	// applying register aliases before the register grammar.
	Register(token string) (uint8, error)
}

// Architecture describes one ISA generation of the gate computer.
// The assembler driver is parameterized by this interface; everything
// that differs between the 16-bit and the 32-bit machine lives behind it.
type Architecture interface {
	// Name returns the ISA name used for selection on the command line.
	Name() string
	// WordWidth returns the machine word width in bits.
	WordWidth() int
	// ProgramCapacity returns the number of program memory slots.
	ProgramCapacity() int
	// LabelCapacity returns the maximum number of labels per unit.
	LabelCapacity() int
	// HasAliases returns whether the ISA toolchain supports the register
	// alias directive.
	HasAliases() bool
	// Spec returns the instruction specification table.
	Spec() *Spec
	// Encode turns one statement into a machine word. Encoding a
	// statement with an empty mnemonic is a safe no-op returning zero.
	Encode(res Resolver, st Statement) (uint32, error)
}
