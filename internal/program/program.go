// Package program holds the ordered machine words produced by pass 2 and
// packs them into the fixed size memory images handed to the ROM writer.
package program

import (
	"github.com/mvparker810/gate-computer-compiler/internal/rom"
)

// Program is the ordered sequence of encoded machine words of one
// assembly unit. The slot index is the program counter.
type Program struct {
	wordWidth int
	capacity  int
	words     []uint32
}

// New returns an empty program for the given machine word width.
func New(wordWidth int) *Program {
	return &Program{
		wordWidth: wordWidth,
		capacity:  rom.Size,
		words:     make([]uint32, 0, rom.Size),
	}
}

// Append adds a word at the next program counter slot. It reports whether
// the word was stored, a full program silently drops further words.
func (p *Program) Append(word uint32) bool {
	if len(p.words) >= p.capacity {
		return false
	}
	p.words = append(p.words, word)
	return true
}

// Len returns the number of stored words.
func (p *Program) Len() int {
	return len(p.words)
}

// Full returns whether the program memory is exhausted.
func (p *Program) Full() bool {
	return len(p.words) >= p.capacity
}

// Words returns the stored words in program order.
func (p *Program) Words() []uint32 {
	return p.words
}

// NamedImage is one ROM image together with the file name suffix that
// distinguishes it from its siblings.
type NamedImage struct {
	Suffix string
	Image  rom.Image
}

// Images packs the program into its memory images, zero padded to the
// full address space. A 16-bit program yields a single image, a 32-bit
// program is split into the parallel ALPHA (upper half) and BETA (lower
// half) streams.
func (p *Program) Images() []NamedImage {
	if p.wordWidth <= 16 {
		var image rom.Image
		for i, word := range p.words {
			image[i] = uint16(word)
		}
		return []NamedImage{{Suffix: "", Image: image}}
	}

	var alpha, beta rom.Image
	for i, word := range p.words {
		alpha[i] = uint16(word >> 16)
		beta[i] = uint16(word)
	}
	return []NamedImage{
		{Suffix: "_ALPHA", Image: alpha},
		{Suffix: "_BETA", Image: beta},
	}
}
