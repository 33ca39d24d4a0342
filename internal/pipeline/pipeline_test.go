package pipeline

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"

	"github.com/mvparker810/gate-computer-compiler/internal/options"
	"github.com/mvparker810/gate-computer-compiler/internal/rom"
)

const testSource = `
#ALIAS X0 counter

MOV counter, 5
loop:
SUB counter, 1
CMP counter, 0
BNE loop
EXIT
`

func writeTestSource(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.asm")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readWords(t *testing.T, path string, format rom.Format) []uint16 {
	t.Helper()

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer func() {
		assert.NoError(t, f.Close())
	}()

	var words []uint16
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word, err := rom.ParseWord(scanner.Text(), format)
		assert.NoError(t, err)
		words = append(words, word)
	}
	assert.NoError(t, scanner.Err())
	return words
}

func TestExecuteWritesSplitImages(t *testing.T) {
	logger := log.NewTestLogger(t)
	outputBase := filepath.Join(t.TempDir(), "rom")

	opts := options.Program{
		Input:  writeTestSource(t, testSource),
		Output: outputBase,
		Format: "hex",
		ISA:    "gc32",
	}

	assert.NoError(t, New(logger).Execute(opts, os.Stdout))

	alpha := readWords(t, outputBase+"_ALPHA.out", rom.FormatHex)
	beta := readWords(t, outputBase+"_BETA.out", rom.FormatHex)
	assert.Len(t, alpha, rom.Size)
	assert.Len(t, beta, rom.Size)

	// MOV counter, 5 with counter aliased to X0
	assert.Equal(t, uint16(0x0005), alpha[0])
	assert.Equal(t, uint16(0x0041), beta[0])
	// BNE loop branches back to slot 1
	assert.Equal(t, uint16(0x0001), alpha[3])
	assert.Equal(t, uint16(0x0245), beta[3])
	// EXIT sentinel and zero padding
	assert.Equal(t, uint16(0xFFFF), alpha[4])
	assert.Equal(t, uint16(0xFFFF), beta[4])
	assert.Equal(t, uint16(0), alpha[5])
}

func TestExecuteWritesSingleImage(t *testing.T) {
	logger := log.NewTestLogger(t)
	outputBase := filepath.Join(t.TempDir(), "rom")

	opts := options.Program{
		Input:  writeTestSource(t, "MOV X0, 5\nEXIT\n"),
		Output: outputBase,
		Format: "binary",
		ISA:    "gc16",
	}

	assert.NoError(t, New(logger).Execute(opts, os.Stdout))

	words := readWords(t, outputBase+".out", rom.FormatBinary)
	assert.Len(t, words, rom.Size)
	assert.Equal(t, uint16(0x0588), words[0])
	assert.Equal(t, uint16(0xFFFF), words[1])
}

func TestExecuteRendersToConsole(t *testing.T) {
	logger := log.NewTestLogger(t)

	opts := options.Program{
		Input:  writeTestSource(t, "EXIT\n"),
		Format: "hex",
		ISA:    "gc16",
	}

	var console bytes.Buffer
	assert.NoError(t, New(logger).Execute(opts, &console))

	lines := strings.Split(strings.TrimRight(console.String(), "\n"), "\n")
	assert.Len(t, lines, rom.Size)
	assert.Equal(t, "FFFF", lines[0])
}

func TestExecuteContinuesPastBadLines(t *testing.T) {
	logger := log.NewTestLogger(t)
	outputBase := filepath.Join(t.TempDir(), "rom")

	opts := options.Program{
		Input:  writeTestSource(t, "MOV X0, 1\nMOV X9, 2\nEXIT\n"),
		Output: outputBase,
		Format: "hex",
		ISA:    "gc16",
	}

	// bad lines are reported but never fail the run
	assert.NoError(t, New(logger).Execute(opts, os.Stdout))

	words := readWords(t, outputBase+".out", rom.FormatHex)
	assert.Equal(t, uint16(0x0188), words[0])
	assert.Equal(t, uint16(0xFFFF), words[1])
}

func TestExecuteMissingInput(t *testing.T) {
	logger := log.NewTestLogger(t)

	opts := options.Program{
		Input:  filepath.Join(t.TempDir(), "missing.asm"),
		Format: "hex",
		ISA:    "gc32",
	}

	assert.Error(t, New(logger).Execute(opts, os.Stdout))
}
