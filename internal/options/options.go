// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input binary file"`
	Output string `flag:"o" usage:"output .bas listing (default: stdout)"`
	PRG    string `flag:"prg" usage:"tokenize the listing into this .prg file using petcat"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.bin)"`
}

// Flags contains behavior options.
type Flags struct {
	Address string `flag:"a" usage:"load address, decimal, $hex or 0xhex (default: from .prg or .hex input)"`
	Entry   string `flag:"e" usage:"entry point inside the payload (default: load address)"`
	Format  string `flag:"f" usage:"input format: raw, prg, hex (default: auto-detect)"`
	Verify  bool   `flag:"verify" usage:"verify the listing by simulating the loader"`
	Debug   bool   `flag:"debug" usage:"enable debug logging"`
	Quiet   bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains listing formatting options.
type OutputFlags struct {
	Width     int  `flag:"w" usage:"maximum characters per listing line" default:"80"`
	StartLine int  `flag:"start" usage:"first line number" default:"10"`
	LineStep  int  `flag:"step" usage:"increment between line numbers" default:"10"`
	Checksum  bool `flag:"checksum" usage:"verify the sum of the loaded bytes before starting"`
	Lowercase bool `flag:"lowercase" usage:"emit lower case text as expected by petcat"`
	CRLF      bool `flag:"crlf" usage:"terminate lines with CR LF"`
}

// Program options of the converter.
type Program struct {
	Parameters
	Flags
	OutputFlags

	LoadAddress *uint16 // parsed Address, nil if not given
	EntryPoint  *uint16 // parsed Entry, nil if not given
}
