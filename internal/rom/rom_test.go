package rom

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestRenderWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word     uint16
		format   Format
		expected string
	}{
		{0x0588, FormatHex, "0588"},
		{0xFFFF, FormatHex, "FFFF"},
		{0, FormatHex, "0000"},
		{1416, FormatUint, "1416"},
		{0xFFFF, FormatUint, "65535"},
		{0xFFFF, FormatInt, "-1"},
		{0x8000, FormatInt, "-32768"},
		{5, FormatInt, "5"},
		{5, FormatBinary, "0000000000000101"},
		{0xFFFF, FormatBinary, "1111111111111111"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RenderWord(tt.word, tt.format), tt.expected)
	}
}

func TestParseWordRoundTrip(t *testing.T) {
	t.Parallel()

	words := []uint16{0, 1, 5, 0x0588, 0x7FFF, 0x8000, 0xFFFE, 0xFFFF}
	formats := []Format{FormatHex, FormatUint, FormatInt, FormatBinary}

	for _, format := range formats {
		for _, word := range words {
			parsed, err := ParseWord(RenderWord(word, format), format)
			assert.NoError(t, err, format.String())
			assert.Equal(t, word, parsed, format.String())
		}
	}
}

func TestParseWordErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseWord("xyz", FormatHex)
	assert.Error(t, err)
	_, err = ParseWord("65536", FormatUint)
	assert.Error(t, err)
	_, err = ParseWord("2", FormatBinary)
	assert.Error(t, err)
}

func TestFormatFromString(t *testing.T) {
	t.Parallel()

	for _, name := range FormatNames() {
		format, err := FormatFromString(name)
		assert.NoError(t, err, name)
		assert.Equal(t, name, format.String())
	}

	_, err := FormatFromString("base64")
	assert.True(t, errors.Is(err, ErrBadFormat))
}

func TestRender(t *testing.T) {
	t.Parallel()

	var image Image
	image[0] = 0x0588
	image[1] = 0xFFFF

	var buf bytes.Buffer
	assert.NoError(t, Render(&buf, image, FormatHex))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	assert.Len(t, lines, Size)
	assert.Equal(t, "0588", string(lines[0]))
	assert.Equal(t, "FFFF", string(lines[1]))
	assert.Equal(t, "0000", string(lines[2]))
	assert.Equal(t, "0000", string(lines[Size-1]))
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	var image Image
	image[0] = 0x1234

	path := filepath.Join(t.TempDir(), "out", "test_ALPHA.out")
	assert.NoError(t, WriteFile(path, image, FormatHex))

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer func() {
		assert.NoError(t, f.Close())
	}()

	scanner := bufio.NewScanner(f)
	count := 0
	for scanner.Scan() {
		word, err := ParseWord(scanner.Text(), FormatHex)
		assert.NoError(t, err)
		assert.Equal(t, image[count], word)
		count++
	}
	assert.NoError(t, scanner.Err())
	assert.Equal(t, Size, count)
}
