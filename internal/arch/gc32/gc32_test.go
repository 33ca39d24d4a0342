package gc32

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/mvparker810/gate-computer-compiler/internal/arch"
	"github.com/mvparker810/gate-computer-compiler/internal/parser"
	"github.com/mvparker810/gate-computer-compiler/internal/symbols"
)

type testResolver struct {
	labels  map[string]uint8
	aliases *symbols.Aliases
}

func (r testResolver) Label(name string) (uint8, bool) {
	address, ok := r.labels[name]
	return address, ok
}

func (r testResolver) Register(token string) (uint8, error) {
	if r.aliases != nil {
		token = r.aliases.Resolve(token)
	}
	return parser.ParseRegister(token)
}

func encode(t *testing.T, mnemonic string, operands ...string) (uint32, error) {
	t.Helper()

	a := New()
	res := testResolver{labels: map[string]uint8{"loop": 4, "end": 9}}
	return a.Encode(res, arch.Statement{Mnemonic: mnemonic, Operands: operands})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mnemonic string
		operands []string
		expected uint32
	}{
		{"move immediate", "MOV", []string{"X0", "5"}, 0x00050041},
		{"move register", "MOV", []string{"X1", "X2"}, 0x00002140},
		{"alu immediate", "ADD", []string{"X1", "X0", "3"}, 0x00030114},
		{"alu registers", "ADD", []string{"X0", "X1", "X2"}, 0x00021004},
		{"alu implicit source", "ADD", []string{"X1", "X2"}, 0x00021104},
		{"alu implicit immediate", "SUB", []string{"X1", "10"}, 0x000A1115},
		{"not", "NOT", []string{"X2"}, 0x00002203},
		{"multiply", "UMUL_L", []string{"X0", "X1", "X2"}, 0x0002100A},
		{"compare registers", "CMP", []string{"X1", "X2"}, 0x00021042},
		{"compare immediate", "CMP", []string{"X1", "7"}, 0x00071043},
		{"branch to label", "B", []string{"loop"}, 0x00040045},
		{"branch to address", "BNE", []string{"0x20"}, 0x00200245},
		{"branch to register", "BEQ", []string{"X1"}, 0x00010144},
		{"read indirect", "READ", []string{"X1", "X2"}, 0x00020146},
		{"read direct", "READ", []string{"X1", "0x30"}, 0x00300147},
		{"write indirect", "WRITE", []string{"X1", "X2"}, 0x00021048},
		{"write direct", "WRITE", []string{"X1", "0x30"}, 0x00301049},
		{"print register at register", "PRINT", []string{"X0", "X1"}, 0x0000104A},
		{"print register at constant", "PRINT", []string{"5", "X1"}, 0x0005104B},
		{"print constant at register", "PRINT", []string{"X0", "3"}, 0x0300004C},
		{"print char at register", "PRINT", []string{"X2", "'A'"}, 0x4102004C},
		{"print constant at constant", "PRINT", []string{"5", "'A'"}, 0x4105004D},
		{"halt", "EXIT", nil, 0xFFFFFFFF},
		{"empty", "", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := encode(t, tt.mnemonic, tt.operands...)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, w)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mnemonic string
		operands []string
		expected error
	}{
		{"unknown mnemonic", "FOO", []string{"X0"}, arch.ErrUnknownMnemonic},
		{"halt with operand", "EXIT", []string{"X0"}, arch.ErrBadOperandCount},
		{"unknown label", "BEQ", []string{"nowhere"}, arch.ErrUnknownSymbol},
		{"move out of range", "MOV", []string{"X0", "0x10000"}, arch.ErrValueOutOfRange},
		{"wide constant at register position", "PRINT", []string{"X0", "300"}, arch.ErrNoEncoding},
		{"print position out of range", "PRINT", []string{"300", "X1"}, arch.ErrValueOutOfRange},
		{"bad register", "ADD", []string{"X9", "X0", "X1"}, parser.ErrBadRegister},
		{"bad literal", "MOV", []string{"X0", "12ab"}, parser.ErrBadLiteral},
		{"missing operand", "MOV", []string{"X0"}, arch.ErrBadOperandCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := encode(t, tt.mnemonic, tt.operands...)
			assert.True(t, errors.Is(err, tt.expected))
		})
	}
}

func TestEncodeLoadSlot(t *testing.T) {
	t.Parallel()

	a := New()
	res := testResolver{}

	w, err := a.Encode(res, arch.Statement{Mnemonic: "LR", Operands: []string{"X2"}, Index: 7})
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x00070241), w)

	// the loaded value tracks the statement's own slot
	w, err = a.Encode(res, arch.Statement{Mnemonic: "LR", Operands: []string{"X2"}, Index: 200})
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x00C80241), w)
}

func TestEncodeWithAliases(t *testing.T) {
	t.Parallel()

	aliases := symbols.NewAliases()
	aliases.Define("counter", "X3")

	a := New()
	res := testResolver{aliases: aliases}

	w, err := a.Encode(res, arch.Statement{Mnemonic: "MOV", Operands: []string{"counter", "5"}})
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x00050341), w)

	// an unaliased name is not a register, so it parses as a literal and fails
	_, err = a.Encode(res, arch.Statement{Mnemonic: "MOV", Operands: []string{"other", "5"}})
	assert.True(t, errors.Is(err, parser.ErrBadRegister))
}

func TestSpecOpcodeRoundTrip(t *testing.T) {
	t.Parallel()

	spec := New().Spec()
	assert.Len(t, spec.Instructions(), 79)

	for _, ins := range spec.Instructions() {
		found, ok := spec.ByOpcode(ins.Opcode)
		assert.True(t, ok, ins.TechnicalName)
		assert.Equal(t, ins.TechnicalName, found.TechnicalName)

		derived, ok := spec.ByMnemonicCategory(ins.Mnemonic, ins.Category, ins.Flags.Immediate)
		assert.True(t, ok, ins.TechnicalName)
		assert.Equal(t, ins.Opcode, derived.Opcode, ins.TechnicalName)
	}
}

func TestArchDescriptor(t *testing.T) {
	t.Parallel()

	a := New()
	assert.Equal(t, "gc32", a.Name())
	assert.Equal(t, 32, a.WordWidth())
	assert.Equal(t, 256, a.ProgramCapacity())
	assert.Equal(t, 256, a.LabelCapacity())
	assert.True(t, a.HasAliases())
}
