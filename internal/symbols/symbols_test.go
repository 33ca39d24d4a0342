package symbols

import (
	"errors"
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTableAddLookup(t *testing.T) {
	t.Parallel()

	table := NewTable(128)
	assert.NoError(t, table.Add("loop", 4))
	assert.NoError(t, table.Add("end", 9))

	address, ok := table.Lookup("loop")
	assert.True(t, ok)
	assert.Equal(t, uint8(4), address)

	_, ok = table.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, table.Len())
}

func TestTableDuplicateKeepsFirst(t *testing.T) {
	t.Parallel()

	table := NewTable(128)
	assert.NoError(t, table.Add("loop", 4))
	assert.NoError(t, table.Add("loop", 20))

	address, ok := table.Lookup("loop")
	assert.True(t, ok)
	assert.Equal(t, uint8(4), address)
	assert.Equal(t, 1, table.Len())
}

func TestTableCapacity(t *testing.T) {
	t.Parallel()

	table := NewTable(2)
	assert.NoError(t, table.Add("a", 0))
	assert.NoError(t, table.Add("b", 1))

	err := table.Add("c", 2)
	assert.True(t, errors.Is(err, ErrTableFull))

	// duplicates of existing names never count against capacity
	assert.NoError(t, table.Add("a", 5))
}

func TestAliases(t *testing.T) {
	t.Parallel()

	aliases := NewAliases()
	aliases.Define("counter", "X0")
	aliases.Define("sum", "X1")

	assert.Equal(t, "X0", aliases.Resolve("counter"))
	assert.Equal(t, "X1", aliases.Resolve("sum"))
	assert.Equal(t, "X3", aliases.Resolve("X3"))
	assert.Equal(t, "other", aliases.Resolve("other"))
	assert.Equal(t, 2, aliases.Len())
}

func TestAliasesRedefine(t *testing.T) {
	t.Parallel()

	aliases := NewAliases()
	aliases.Define("counter", "X0")
	aliases.Define("counter", "X5")

	assert.Equal(t, "X5", aliases.Resolve("counter"))
	assert.Equal(t, 1, aliases.Len())
}

func TestTableManyLabels(t *testing.T) {
	t.Parallel()

	table := NewTable(256)
	for i := range 256 {
		assert.NoError(t, table.Add(fmt.Sprintf("l%d", i), uint8(i)))
	}
	err := table.Add("overflow", 0)
	assert.True(t, errors.Is(err, ErrTableFull))
}
