package arch

import "errors"

// Encoding errors shared by the ISA packages. The assembler driver recovers
// from all of them at line granularity; none of them aborts a run.
var (
	// ErrUnknownMnemonic is returned for a mnemonic no spec row matches.
	ErrUnknownMnemonic = errors.New("unknown mnemonic")
	// ErrBadOperandCount is returned when the operand count does not match
	// any form of the instruction.
	ErrBadOperandCount = errors.New("wrong operand count")
	// ErrUnknownSymbol is returned for a branch target label that is not
	// in the symbol table.
	ErrUnknownSymbol = errors.New("unknown label")
	// ErrValueOutOfRange is returned when a literal or address exceeds the
	// width of its instruction field.
	ErrValueOutOfRange = errors.New("value exceeds field width")
	// ErrNoEncoding is returned when a combination of operand kinds has no
	// corresponding opcode in the ISA.
	ErrNoEncoding = errors.New("operand combination has no encoding")
)
