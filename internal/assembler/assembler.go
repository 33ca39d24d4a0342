// Package assembler implements the two-pass assembler driver. Pass 1
// collects labels and register aliases, pass 2 encodes every instruction
// line against the frozen tables. All line level errors are collected and
// reported, a bad line drops its program slot instead of aborting the run.
package assembler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"

	"github.com/mvparker810/gate-computer-compiler/internal/arch"
	"github.com/mvparker810/gate-computer-compiler/internal/parser"
	"github.com/mvparker810/gate-computer-compiler/internal/program"
	"github.com/mvparker810/gate-computer-compiler/internal/symbols"
)

// ErrBadAlias is returned for a malformed alias directive.
var ErrBadAlias = errors.New("invalid alias directive")

// LineError is one diagnosed source line. The slot the line would have
// filled is omitted from the program, so later addresses shift.
type LineError struct {
	Line int // 1-based source line number
	Text string
	Err  error
}

// Error implements the error interface.
func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Text, e.Err)
}

// Unwrap returns the underlying diagnosis.
func (e LineError) Unwrap() error {
	return e.Err
}

// Result is the outcome of assembling one source unit.
type Result struct {
	Program *program.Program
	Labels  *symbols.Table
	Aliases *symbols.Aliases

	// Errors holds all diagnosed lines. A partial image is still
	// produced, callers must treat it as not trustworthy when this
	// is non-empty.
	Errors []LineError

	// Truncated counts instruction lines dropped past the program
	// memory capacity.
	Truncated int
}

// Assembler drives the two passes for one ISA.
type Assembler struct {
	arch   arch.Architecture
	logger *log.Logger

	// reserved holds all names that register aliases must not shadow.
	reserved set.Set[string]
}

// New creates an assembler for the given architecture.
func New(architecture arch.Architecture, logger *log.Logger) *Assembler {
	reserved := set.New[string]()
	for _, ins := range architecture.Spec().Instructions() {
		reserved[ins.Mnemonic] = struct{}{}
	}
	for _, cond := range arch.Conditions() {
		reserved[cond.Mnemonic] = struct{}{}
	}
	reserved["LR"] = struct{}{}

	return &Assembler{
		arch:     architecture,
		logger:   logger,
		reserved: reserved,
	}
}

// Assemble runs both passes over the source text and returns the encoded
// program. Only a read failure on the input is returned as an error, all
// source level problems are collected in the result.
func (a *Assembler) Assemble(r io.Reader) (*Result, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	result := &Result{
		Program: program.New(a.arch.WordWidth()),
		Labels:  symbols.NewTable(a.arch.LabelCapacity()),
		Aliases: symbols.NewAliases(),
	}

	a.collectSymbols(lines, result)
	a.logger.Debug("symbol pass complete",
		log.String("arch", a.arch.Name()),
		log.Int("labels", result.Labels.Len()),
		log.Int("aliases", result.Aliases.Len()))

	a.encodeLines(lines, result)
	a.logger.Debug("encoding pass complete",
		log.Int("instructions", result.Program.Len()),
		log.Int("errors", len(result.Errors)))

	return result, nil
}

// collectSymbols is pass 1: it registers labels at the address of the next
// real instruction and defines register aliases. The encoder is never
// invoked here.
func (a *Assembler) collectSymbols(lines []string, result *Result) {
	stripper := parser.NewCommentStripper()
	pc := 0

	for i, raw := range lines {
		if pc >= a.arch.ProgramCapacity() {
			break
		}

		line := strings.TrimSpace(stripper.Strip(raw))
		if line == "" {
			continue
		}

		switch {
		case a.arch.HasAliases() && parser.IsDirective(line):
			if err := a.defineAlias(line, result.Aliases); err != nil {
				result.Errors = append(result.Errors, LineError{Line: i + 1, Text: line, Err: err})
			}

		case parser.IsComment(line):

		case parser.IsLabel(line):
			name := parser.LabelName(line)
			if !parser.IsValidName(name) {
				result.Errors = append(result.Errors, LineError{
					Line: i + 1, Text: line,
					Err: fmt.Errorf("%w: label %q", parser.ErrBadLiteral, name),
				})
				continue
			}
			if err := result.Labels.Add(name, uint8(pc)); err != nil {
				result.Errors = append(result.Errors, LineError{Line: i + 1, Text: line, Err: err})
			}

		default:
			pc++
		}
	}
}

// defineAlias handles one alias directive line. Redefinition overwrites
// the prior mapping.
func (a *Assembler) defineAlias(line string, aliases *symbols.Aliases) error {
	tokens := parser.SplitDirective(line)
	if len(tokens) != 2 {
		return fmt.Errorf("%w: expected register and name", ErrBadAlias)
	}
	register, name := tokens[0], tokens[1]

	if _, err := parser.ParseRegister(register); err != nil {
		return fmt.Errorf("%w: %q is not a register", ErrBadAlias, register)
	}
	if !parser.IsValidName(name) {
		return fmt.Errorf("%w: name %q must be alphanumeric with underscores", ErrBadAlias, name)
	}
	if _, ok := a.reserved[name]; ok {
		return fmt.Errorf("%w: name %q shadows a mnemonic", ErrBadAlias, name)
	}

	aliases.Define(name, register)
	return nil
}

// encodeLines is pass 2: every line that is neither blank, a label, a
// comment nor a directive is encoded and appended to the program.
func (a *Assembler) encodeLines(lines []string, result *Result) {
	stripper := parser.NewCommentStripper()
	res := resolver{labels: result.Labels, arch: a.arch, aliases: result.Aliases}

	for i, raw := range lines {
		line := strings.TrimSpace(stripper.Strip(raw))
		if line == "" || parser.IsComment(line) || parser.IsLabel(line) {
			continue
		}

		mnemonic, operands := parser.Split(line)
		statement := arch.Statement{
			Mnemonic: mnemonic,
			Operands: operands,
			Index:    result.Program.Len(),
		}

		word, err := a.arch.Encode(res, statement)
		if err != nil {
			result.Errors = append(result.Errors, LineError{Line: i + 1, Text: line, Err: err})
			continue
		}

		if !result.Program.Append(word) {
			result.Truncated++
		}
	}
}

// resolver exposes the frozen pass 1 tables to the encoders.
type resolver struct {
	labels  *symbols.Table
	aliases *symbols.Aliases
	arch    arch.Architecture
}

// Label returns the address a label resolves to.
func (r resolver) Label(name string) (uint8, bool) {
	return r.labels.Lookup(name)
}

// Register resolves an operand token to a register number, applying
// aliases first on architectures that support them.
func (r resolver) Register(token string) (uint8, error) {
	if r.arch.HasAliases() {
		token = r.aliases.Resolve(token)
	}
	return parser.ParseRegister(token)
}
