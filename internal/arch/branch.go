package arch

// NZCV holds the four condition flags tested by branch conditions.
type NZCV struct {
	N bool // negative
	Z bool // zero
	C bool // carry
	V bool // overflow
}

// Condition codes. Code 15 is reserved and never branches.
const (
	CondAlways       uint8 = 0
	CondEqual        uint8 = 1
	CondNotEqual     uint8 = 2
	CondLessThan     uint8 = 3
	CondLessEqual    uint8 = 4
	CondGreaterThan  uint8 = 5
	CondGreaterEqual uint8 = 6
	CondCarrySet     uint8 = 7
	CondCarryClear   uint8 = 8
	CondMinus        uint8 = 9
	CondPlus         uint8 = 10
	CondOverflowSet  uint8 = 11
	CondOverflowClr  uint8 = 12
	CondHigher       uint8 = 13
	CondLowerSame    uint8 = 14
	CondReserved     uint8 = 15
)

// Condition is one branch condition of the ISA.
type Condition struct {
	Mnemonic string
	Code     uint8
	Name     string
}

// Taken reports whether a branch with this condition is taken for the
// given flag state.
func (c Condition) Taken(f NZCV) bool {
	switch c.Code {
	case CondAlways:
		return true
	case CondEqual:
		return f.Z
	case CondNotEqual:
		return !f.Z
	case CondLessThan:
		return f.N != f.V
	case CondLessEqual:
		return f.Z || f.N != f.V
	case CondGreaterThan:
		return !f.Z && f.N == f.V
	case CondGreaterEqual:
		return f.N == f.V
	case CondCarrySet:
		return f.C
	case CondCarryClear:
		return !f.C
	case CondMinus:
		return f.N
	case CondPlus:
		return !f.N
	case CondOverflowSet:
		return f.V
	case CondOverflowClr:
		return !f.V
	case CondHigher:
		return f.C && !f.Z
	case CondLowerSame:
		return !f.C || f.Z
	default:
		return false
	}
}

// conditions is the branch condition table, shared by both ISA generations.
var conditions = []Condition{
	{Mnemonic: "B", Code: CondAlways, Name: "Unconditional"},
	{Mnemonic: "BEQ", Code: CondEqual, Name: "Equal"},
	{Mnemonic: "BNE", Code: CondNotEqual, Name: "Not Equal"},
	{Mnemonic: "BLT", Code: CondLessThan, Name: "Less Than"},
	{Mnemonic: "BLE", Code: CondLessEqual, Name: "Less or Equal"},
	{Mnemonic: "BGT", Code: CondGreaterThan, Name: "Greater Than"},
	{Mnemonic: "BGE", Code: CondGreaterEqual, Name: "Greater or Equal"},
	{Mnemonic: "BCS", Code: CondCarrySet, Name: "Carry Set"},
	{Mnemonic: "BCC", Code: CondCarryClear, Name: "Carry Clear"},
	{Mnemonic: "BMI", Code: CondMinus, Name: "Minus"},
	{Mnemonic: "BPL", Code: CondPlus, Name: "Plus"},
	{Mnemonic: "BVS", Code: CondOverflowSet, Name: "Overflow Set"},
	{Mnemonic: "BVC", Code: CondOverflowClr, Name: "Overflow Clear"},
	{Mnemonic: "BHI", Code: CondHigher, Name: "Higher"},
	{Mnemonic: "BLS", Code: CondLowerSame, Name: "Lower or Same"},
}

// conditionsByMnemonic is the explicit lookup registry, built at start-up.
var conditionsByMnemonic = func() map[string]Condition {
	m := make(map[string]Condition, len(conditions))
	for _, c := range conditions {
		m[c.Mnemonic] = c
	}
	return m
}()

// Conditions returns all defined branch conditions in code order.
func Conditions() []Condition {
	return conditions
}

// ConditionByMnemonic returns the branch condition selected by a mnemonic.
func ConditionByMnemonic(mnemonic string) (Condition, bool) {
	c, ok := conditionsByMnemonic[mnemonic]
	return c, ok
}
