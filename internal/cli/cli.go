// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/bin2bas/internal/basic"
	"github.com/retroenv/bin2bas/internal/loader"
	"github.com/retroenv/bin2bas/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "" && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, err
	}

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
	fmt.Printf("usage: bin2bas [options] <file to convert>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to convert, please pass the file to convert as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions parses and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Format != "" {
		format, err := loader.FormatFromString(opts.Format)
		if err != nil {
			return fmt.Errorf("%w. Valid options: raw, prg, hex", err)
		}
		opts.Format = string(format)
	}

	if opts.Address != "" {
		address, err := options.ParseAddress(opts.Address)
		if err != nil {
			return fmt.Errorf("parsing load address: %w", err)
		}
		opts.LoadAddress = &address
	}

	if opts.Entry != "" {
		entry, err := options.ParseAddress(opts.Entry)
		if err != nil {
			return fmt.Errorf("parsing entry point: %w", err)
		}
		opts.EntryPoint = &entry
	}

	// petcat reads upper case letters as shifted characters
	if opts.PRG != "" {
		opts.Lowercase = true
	}

	return nil
}

// validateOptionCombinations rejects options that can not be used together
func validateOptionCombinations(opts options.Program) error {
	if opts.PRG == "" {
		return nil
	}
	if opts.Batch != "" {
		return errors.New("the -prg option can not be used in batch mode")
	}
	if opts.Output == "" {
		return errors.New("the -prg option requires an output file set with -o")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input binary file")
	flags.StringVar(&opts.Output, "o", "", "name of the output .bas file, printed on console if no name given")
	flags.StringVar(&opts.PRG, "prg", "", "tokenize the listing into this .prg file using the petcat tool of VICE")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .bas file naming, for example *.prg")

	flags.StringVar(&opts.Address, "a", "", "load address as decimal, $hex or 0xhex, read from .prg and .hex files if not given")
	flags.StringVar(&opts.Entry, "e", "", "entry point to SYS to after loading, must be inside the payload (default: load address)")
	flags.StringVar(&opts.Format, "f", "", "input format (raw, prg, hex) - if not auto-detected from file extension")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the generated listing by simulating the loader and comparing the memory with the input")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.IntVar(&opts.Width, "w", basic.DefaultLineWidth, "maximum characters per listing line including the line number")
	flags.IntVar(&opts.StartLine, "start", basic.DefaultStartLine, "first line number of the listing")
	flags.IntVar(&opts.LineStep, "step", basic.DefaultLineStep, "increment between line numbers")
	flags.BoolVar(&opts.Checksum, "checksum", false, "verify the sum of the loaded bytes before starting the program")
	flags.BoolVar(&opts.Lowercase, "lowercase", false, "output lower case text as expected by petcat")
	flags.BoolVar(&opts.CRLF, "crlf", false, "terminate listing lines with CR LF")
}
