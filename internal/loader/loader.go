// Package loader handles binary file loading operations.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/marcinbor85/gohex"
	"github.com/retroenv/bin2bas/internal/memmap"
	"github.com/retroenv/bin2bas/internal/options"
)

// Format is an input file format.
type Format string

// Supported input formats.
const (
	Raw      Format = "raw" // plain bytes without load address
	PRG      Format = "prg" // two byte little endian load address followed by the bytes
	IntelHex Format = "hex" // Intel HEX records with a single contiguous segment
)

const prgHeaderSize = 2

var errNoSegment = errors.New("no data segment")

// FormatFromString returns the format matching the given name.
func FormatFromString(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case Raw, "bin":
		return Raw, nil
	case PRG:
		return PRG, nil
	case IntelHex, "ihx", "ihex":
		return IntelHex, nil
	default:
		return "", fmt.Errorf("unsupported format '%s'", name)
	}
}

// Payload is a loaded binary and the load address the file specified.
type Payload struct {
	Data       []byte
	Format     Format
	Address    uint16
	HasAddress bool // Address was read from the file
}

// Loader handles loading binary files from disk.
type Loader struct{}

// New creates a new loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input file of the options and parses it in the given format.
func (l *Loader) Load(opts options.Program, format Format) (Payload, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return Payload{}, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	payload, err := l.LoadFromBytes(data, format)
	if err != nil {
		return Payload{}, fmt.Errorf("loading %s file %s: %w", format, opts.Input, err)
	}
	return payload, nil
}

// LoadFromBytes parses the file content in the given format.
func (l *Loader) LoadFromBytes(data []byte, format Format) (Payload, error) {
	switch format {
	case Raw:
		return Payload{Data: data, Format: Raw}, nil

	case PRG:
		if len(data) < prgHeaderSize {
			return Payload{}, fmt.Errorf("file of %d bytes is missing the load address header", len(data))
		}
		return Payload{
			Data:       data[prgHeaderSize:],
			Format:     PRG,
			Address:    uint16(data[0]) | uint16(data[1])<<8,
			HasAddress: true,
		}, nil

	case IntelHex:
		return loadIntelHex(data)

	default:
		return Payload{}, fmt.Errorf("unsupported format '%s'", format)
	}
}

func loadIntelHex(data []byte) (Payload, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(bytes.NewReader(data)); err != nil {
		return Payload{}, fmt.Errorf("parsing intel hex: %w", err)
	}

	segments := mem.GetDataSegments()
	switch {
	case len(segments) == 0:
		return Payload{}, errNoSegment
	case len(segments) > 1:
		return Payload{}, fmt.Errorf("found %d data segments, only a single contiguous segment is supported", len(segments))
	}

	segment := segments[0]
	end := uint64(segment.Address) + uint64(len(segment.Data)) - 1
	if end > memmap.MaxAddress {
		return Payload{}, fmt.Errorf("segment at $%X with %d bytes exceeds the 16 bit address space",
			segment.Address, len(segment.Data))
	}

	return Payload{
		Data:       segment.Data,
		Format:     IntelHex,
		Address:    uint16(segment.Address),
		HasAddress: true,
	}, nil
}
