// Package options contains the program options.
package options

// Program options of the assembler.
type Program struct {
	Input  string // assembly source file
	Output string // output base name, printed on console if no name given

	Format string // textual ROM format
	ISA    string // target instruction set

	Debug bool
	Quiet bool
}
