// Package rom renders fixed size memory images into the textual formats
// understood by the hardware simulator ROM loader.
package rom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Size is the number of addressable entries in one image.
const Size = 256

// Image is one complete ROM content, one 16-bit word per address.
type Image [Size]uint16

// ErrBadFormat is returned for an unknown format selector.
var ErrBadFormat = errors.New("unknown rom format")

// Format selects the textual rendering of a word.
type Format int

// Output formats.
const (
	FormatHex Format = iota
	FormatUint
	FormatInt
	FormatBinary
)

var formatNames = map[Format]string{
	FormatHex:    "hex",
	FormatUint:   "uint",
	FormatInt:    "int",
	FormatBinary: "binary",
}

// String implements fmt.Stringer.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// FormatFromString returns the format selected by a command line name.
func FormatFromString(name string) (Format, error) {
	for format, formatName := range formatNames {
		if formatName == name {
			return format, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, name)
}

// FormatNames returns all format selector names.
func FormatNames() []string {
	return []string{"hex", "uint", "int", "binary"}
}

// RenderWord returns the textual form of one word.
func RenderWord(word uint16, format Format) string {
	switch format {
	case FormatUint:
		return strconv.FormatUint(uint64(word), 10)
	case FormatInt:
		return strconv.FormatInt(int64(int16(word)), 10)
	case FormatBinary:
		return fmt.Sprintf("%016b", word)
	default:
		return fmt.Sprintf("%04X", word)
	}
}

// ParseWord is the inverse of RenderWord and recovers the word from its
// textual form.
func ParseWord(line string, format Format) (uint16, error) {
	switch format {
	case FormatUint:
		value, err := strconv.ParseUint(line, 10, 16)
		if err != nil {
			return 0, fmt.Errorf("parsing unsigned word %q: %w", line, err)
		}
		return uint16(value), nil

	case FormatInt:
		value, err := strconv.ParseInt(line, 10, 16)
		if err != nil {
			return 0, fmt.Errorf("parsing signed word %q: %w", line, err)
		}
		return uint16(value), nil

	case FormatBinary:
		value, err := strconv.ParseUint(line, 2, 16)
		if err != nil {
			return 0, fmt.Errorf("parsing binary word %q: %w", line, err)
		}
		return uint16(value), nil

	default:
		value, err := strconv.ParseUint(line, 16, 16)
		if err != nil {
			return 0, fmt.Errorf("parsing hex word %q: %w", line, err)
		}
		return uint16(value), nil
	}
}

// Render writes the image to a writer, one word per line in address order.
func Render(w io.Writer, image Image, format Format) error {
	buf := bufio.NewWriter(w)
	for _, word := range image {
		if _, err := buf.WriteString(RenderWord(word, format)); err != nil {
			return fmt.Errorf("writing rom word: %w", err)
		}
		if err := buf.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing rom word: %w", err)
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flushing rom image: %w", err)
	}
	return nil
}

// WriteFile renders the image into a file, creating parent directories
// as needed.
func WriteFile(path string, image Image, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating rom file %s: %w", path, err)
	}
	if err := Render(f, image, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing rom file %s: %w", path, err)
	}
	return nil
}
