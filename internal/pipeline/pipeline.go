// Package pipeline orchestrates the assembly workflow stages.
package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"

	"github.com/mvparker810/gate-computer-compiler/internal/arch"
	"github.com/mvparker810/gate-computer-compiler/internal/arch/gc16"
	"github.com/mvparker810/gate-computer-compiler/internal/arch/gc32"
	"github.com/mvparker810/gate-computer-compiler/internal/assembler"
	"github.com/mvparker810/gate-computer-compiler/internal/options"
	"github.com/mvparker810/gate-computer-compiler/internal/rom"
)

// architectures is the explicit registry of selectable instruction sets,
// built at start-up.
var architectures = map[string]func() arch.Architecture{
	gc16.Name: func() arch.Architecture { return gc16.New() },
	gc32.Name: func() arch.Architecture { return gc32.New() },
}

// Pipeline orchestrates the complete assembly workflow.
type Pipeline struct {
	logger *log.Logger
}

// New creates a new assembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{logger: logger}
}

// Execute runs the complete assembly pipeline: select the architecture,
// assemble the source and write one ROM image file per output stream.
// Source level errors are reported but do not fail the run, a partial
// image is still written.
func (p *Pipeline) Execute(opts options.Program, console io.Writer) error {
	factory, ok := architectures[opts.ISA]
	if !ok {
		return fmt.Errorf("unsupported instruction set: %s", opts.ISA)
	}
	architecture := factory()

	format, err := rom.FormatFromString(opts.Format)
	if err != nil {
		return err
	}

	source, err := os.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer func() {
		_ = source.Close()
	}()

	p.logger.Info("Assembling",
		log.String("file", opts.Input),
		log.String("isa", architecture.Name()),
		log.String("format", format.String()))

	result, err := assembler.New(architecture, p.logger).Assemble(source)
	if err != nil {
		return err
	}

	p.reportDiagnostics(result)

	for _, image := range result.Program.Images() {
		if opts.Output == "" {
			if err := rom.Render(console, image.Image, format); err != nil {
				return err
			}
			continue
		}

		path := opts.Output + image.Suffix + ".out"
		if err := rom.WriteFile(path, image.Image, format); err != nil {
			return err
		}
		p.logger.Info("Generated ROM image", log.String("file", path))
	}

	p.logger.Info("Assembly finished",
		log.Int("instructions", result.Program.Len()),
		log.Int("labels", result.Labels.Len()),
		log.Int("errors", len(result.Errors)))
	return nil
}

// reportDiagnostics logs every diagnosed line. Skipped lines shift the
// addresses of everything behind them, so any error makes the produced
// image unreliable.
func (p *Pipeline) reportDiagnostics(result *assembler.Result) {
	for _, lineErr := range result.Errors {
		p.logger.Warn("Failed to parse line",
			log.Int("line", lineErr.Line),
			log.String("text", lineErr.Text),
			log.Err(lineErr.Err))
	}
	if len(result.Errors) > 0 {
		p.logger.Warn("Source has errors, output image is not trustworthy",
			log.Int("errors", len(result.Errors)))
	}
	if result.Truncated > 0 {
		p.logger.Warn("Program memory exceeded, input truncated",
			log.Int("dropped", result.Truncated),
			log.Int("capacity", result.Program.Len()))
	}
}
