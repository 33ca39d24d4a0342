// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mvparker810/gate-computer-compiler/internal/arch/gc16"
	"github.com/mvparker810/gate-computer-compiler/internal/arch/gc32"
	"github.com/mvparker810/gate-computer-compiler/internal/options"
	"github.com/mvparker810/gate-computer-compiler/internal/rom"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: gccasm [options] <file to assemble>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to assemble, please pass the file to assemble as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = strings.ToLower(opts.Format)
	if _, err := rom.FormatFromString(opts.Format); err != nil {
		return fmt.Errorf("unsupported format: %s. Valid options: %s",
			opts.Format, strings.Join(rom.FormatNames(), ", "))
	}

	opts.ISA = strings.ToLower(opts.ISA)
	validISAs := []string{gc16.Name, gc32.Name}
	for _, valid := range validISAs {
		if opts.ISA == valid {
			return nil
		}
	}
	return fmt.Errorf("unsupported instruction set: %s. Valid options: %s",
		opts.ISA, strings.Join(validISAs, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "base name of the output ROM files, printed on console if no name given")
	flags.StringVar(&opts.Format, "f", "hex", "textual ROM format (hex/uint/int/binary)")
	flags.StringVar(&opts.ISA, "s", gc32.Name, "instruction set to assemble for (gc16/gc32)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
