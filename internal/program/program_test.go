package program

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/mvparker810/gate-computer-compiler/internal/rom"
)

func TestAppendBounded(t *testing.T) {
	t.Parallel()

	p := New(16)
	for i := range rom.Size {
		assert.True(t, p.Append(uint32(i)))
	}
	assert.True(t, p.Full())
	assert.False(t, p.Append(0xDEAD))
	assert.Equal(t, rom.Size, p.Len())
}

func TestImagesSingle(t *testing.T) {
	t.Parallel()

	p := New(16)
	assert.True(t, p.Append(0x0588))
	assert.True(t, p.Append(0xFFFF))

	images := p.Images()
	assert.Len(t, images, 1)
	assert.Equal(t, "", images[0].Suffix)
	assert.Equal(t, uint16(0x0588), images[0].Image[0])
	assert.Equal(t, uint16(0xFFFF), images[0].Image[1])
	assert.Equal(t, uint16(0), images[0].Image[2])
}

func TestImagesSplit(t *testing.T) {
	t.Parallel()

	p := New(32)
	assert.True(t, p.Append(0x00050041))
	assert.True(t, p.Append(0x00030114))
	assert.True(t, p.Append(0xFFFFFFFF))

	images := p.Images()
	assert.Len(t, images, 2)
	assert.Equal(t, "_ALPHA", images[0].Suffix)
	assert.Equal(t, "_BETA", images[1].Suffix)

	alpha, beta := images[0].Image, images[1].Image
	assert.Equal(t, uint16(0x0005), alpha[0])
	assert.Equal(t, uint16(0x0041), beta[0])
	assert.Equal(t, uint16(0x0003), alpha[1])
	assert.Equal(t, uint16(0x0114), beta[1])
	assert.Equal(t, uint16(0xFFFF), alpha[2])
	assert.Equal(t, uint16(0xFFFF), beta[2])

	// zero padding past the instruction count
	assert.Equal(t, uint16(0), alpha[3])
	assert.Equal(t, uint16(0), beta[rom.Size-1])
}
