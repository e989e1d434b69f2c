// Package converter turns a binary payload into a self-loading BASIC
// listing that pokes the payload into memory and jumps to it.
package converter

import (
	"fmt"

	"github.com/retroenv/bin2bas/internal/basic"
	"github.com/retroenv/bin2bas/internal/encoder"
	"github.com/retroenv/bin2bas/internal/memmap"
)

// Config controls the generated listing.
type Config struct {
	MaxLineWidth int // characters of a rendered line including its line number
	StartLine    int
	LineStep     int

	Checksum  bool
	Lowercase bool
	Newline   string

	Memory memmap.Map // reserved regions the payload must not overlap
}

// DefaultConfig returns the configuration for a stock C64.
func DefaultConfig() Config {
	return Config{
		MaxLineWidth: basic.DefaultLineWidth,
		StartLine:    basic.DefaultStartLine,
		LineStep:     basic.DefaultLineStep,
		Newline:      "\n",
		Memory:       memmap.C64(),
	}
}

// Result is a converted listing and its metadata.
type Result struct {
	Listing string

	LoadAddress uint16
	EndAddress  uint16
	EntryPoint  uint16
	DataLines   int
	LastLine    int
	Footprint   int // bytes of BASIC RAM used by the loader and its variables

	Program *basic.Program
}

// Convert returns the BASIC listing that loads payload at the load address
// and starts it at entry, or at the load address if entry is nil.
// No listing is returned if any check fails.
func Convert(payload []byte, load uint16, entry *uint16, cfg Config) (*Result, error) {
	minWidth := basic.MinLineWidth(cfg.Checksum)
	if cfg.MaxLineWidth < minWidth {
		return nil, &encoder.InvalidLineWidthError{Width: cfg.MaxLineWidth, Min: minWidth}
	}

	enc, err := encoder.New(payload, cfg.MaxLineWidth-basic.DataPrefixWidth)
	if err != nil {
		return nil, fmt.Errorf("creating encoder: %w", err)
	}

	addresses, err := ValidateAddress(cfg.Memory, load, len(payload), entry)
	if err != nil {
		return nil, fmt.Errorf("validating address: %w", err)
	}

	program, err := basic.Synthesize(basic.SynthesisConfig{
		LoadAddress: addresses.Load,
		EntryPoint:  addresses.Entry,
		Length:      len(payload),
		StartLine:   cfg.StartLine,
		LineStep:    cfg.LineStep,
		Checksum:    cfg.Checksum,
		Lowercase:   cfg.Lowercase,
	}, enc.Next)
	if err != nil {
		return nil, fmt.Errorf("synthesizing loader: %w", err)
	}

	footprint, err := checkFootprint(program, addresses)
	if err != nil {
		return nil, err
	}

	listing, err := basic.Render(program, cfg.MaxLineWidth, cfg.Newline)
	if err != nil {
		return nil, fmt.Errorf("rendering listing: %w", err)
	}

	return &Result{
		Listing:     listing,
		LoadAddress: addresses.Load,
		EndAddress:  addresses.End,
		EntryPoint:  addresses.Entry,
		DataLines:   len(program.DataLines()),
		LastLine:    program.LastLine(),
		Footprint:   footprint,
		Program:     program,
	}, nil
}

// checkFootprint verifies that the loader program fits into BASIC RAM and
// that the payload does not overwrite it while it is running.
func checkFootprint(program *basic.Program, addresses Addresses) (int, error) {
	footprint := basic.Footprint(program)
	programEnd := basic.ProgramStart + footprint - 1

	if programEnd > basic.ProgramEnd {
		return 0, &ProgramTooLargeError{
			Size: footprint,
			Max:  basic.ProgramEnd - basic.ProgramStart + 1,
		}
	}

	loader := memmap.Region{
		Start: basic.ProgramStart,
		End:   uint16(programEnd),
	}
	if loader.Overlaps(int(addresses.Load), int(addresses.End)) {
		return 0, &LoaderOverlapError{
			ProgramStart: basic.ProgramStart,
			ProgramEnd:   programEnd,
			Start:        addresses.Load,
			End:          addresses.End,
		}
	}

	return footprint, nil
}
