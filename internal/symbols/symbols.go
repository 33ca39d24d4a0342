// Package symbols holds the label and register alias tables built during
// pass 1 and consumed read-only during pass 2.
package symbols

import (
	"errors"
	"fmt"
)

// ErrTableFull is returned when a table exceeds its capacity.
var ErrTableFull = errors.New("symbol table full")

// Table maps label names to program addresses. Capacity differs per ISA
// generation, so it is fixed at construction.
type Table struct {
	capacity int
	labels   map[string]uint8
}

// NewTable returns an empty label table bounded to the given capacity.
func NewTable(capacity int) *Table {
	return &Table{
		capacity: capacity,
		labels:   make(map[string]uint8),
	}
}

// Add registers a label at an address. A duplicate name keeps the first
// definition. This permissiveness matches the established source grammar
// and is deliberate, a redefinition is not an error.
func (t *Table) Add(name string, address uint8) error {
	if _, ok := t.labels[name]; ok {
		return nil
	}
	if len(t.labels) >= t.capacity {
		return fmt.Errorf("%w: capacity %d reached", ErrTableFull, t.capacity)
	}
	t.labels[name] = address
	return nil
}

// Lookup returns the address a label resolves to.
func (t *Table) Lookup(name string) (uint8, bool) {
	address, ok := t.labels[name]
	return address, ok
}

// Len returns the number of registered labels.
func (t *Table) Len() int {
	return len(t.labels)
}

// Aliases maps user-chosen register names to canonical register tokens.
// Redefining an alias overwrites the prior mapping.
type Aliases struct {
	names map[string]string
}

// NewAliases returns an empty alias table.
func NewAliases() *Aliases {
	return &Aliases{names: make(map[string]string)}
}

// Define maps an alias name to a canonical register token such as "X0".
func (a *Aliases) Define(name, register string) {
	a.names[name] = register
}

// Resolve returns the canonical register token for a raw operand token.
// Tokens that are not aliases pass through unchanged.
func (a *Aliases) Resolve(token string) string {
	if register, ok := a.names[token]; ok {
		return register
	}
	return token
}

// Len returns the number of defined aliases.
func (a *Aliases) Len() int {
	return len(a.names)
}
