package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Token errors. Both are recovered at line granularity by the assembler.
var (
	// ErrBadLiteral is returned for a malformed numeric or character literal.
	ErrBadLiteral = errors.New("malformed literal")
	// ErrBadRegister is returned for a token that is not a register name.
	ErrBadRegister = errors.New("not a register")
)

// RegisterCount is the number of general purpose registers, X0 to X7.
const RegisterCount = 8

// ParseRegister parses a canonical register token such as "X3".
// Alias resolution happens before this grammar is applied.
func ParseRegister(token string) (uint8, error) {
	if len(token) < 2 || (token[0] != 'X' && token[0] != 'x') {
		return 0, fmt.Errorf("%w: %q", ErrBadRegister, token)
	}
	n, err := strconv.Atoi(token[1:])
	if err != nil || n < 0 || n >= RegisterCount {
		return 0, fmt.Errorf("%w: %q", ErrBadRegister, token)
	}
	return uint8(n), nil
}

// ParseConstant parses a numeric or character literal. Decimal is the
// default base, 0x selects hexadecimal, 0b selects binary and a single
// character in single quotes yields its character code. Field width checks
// are left to the encoders.
func ParseConstant(token string) (uint32, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: empty token", ErrBadLiteral)
	}

	if len(token) == 3 && token[0] == '\'' && token[2] == '\'' {
		return uint32(token[1]), nil
	}

	base := 10
	digits := token
	if len(token) > 2 && token[0] == '0' {
		switch token[1] {
		case 'x', 'X':
			base = 16
			digits = token[2:]
		case 'b', 'B':
			base = 2
			digits = token[2:]
		}
	}

	value, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadLiteral, token)
	}
	return uint32(value), nil
}

// LooksLikeConstant reports whether a token starts like a numeric or
// character literal. Branch targets that are neither registers nor
// constants are treated as labels.
func LooksLikeConstant(token string) bool {
	if token == "" {
		return false
	}
	if token[0] >= '0' && token[0] <= '9' {
		return true
	}
	return strings.HasPrefix(token, "'")
}
