package basic

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/retroenv/bin2bas/internal/encoder"
)

// Variables used by the loader prologue.
const (
	varAddress = "A"
	varByte    = "B"
	varSum     = "C"
	varIndex   = "I"
	varCount   = "N"
)

const checksumMessage = "CHECKSUM ERROR"

// Line is a single numbered program line.
type Line struct {
	Number int
	Text   string
}

// String returns the line as it appears in a listing.
func (l Line) String() string {
	return strconv.Itoa(l.Number) + " " + l.Text
}

// Program is a loader program: a constant size prologue that pokes the
// payload into memory followed by one DATA line per encoded group.
type Program struct {
	Lines          []Line
	PrologueLength int // number of leading lines that are not DATA lines
	TripCount      int // iterations of the read loop, equal to the payload length
	Checksum       int // sum of all payload bytes
	Variables      int // number of numeric variables the prologue creates
}

// Prologue returns the loader lines that precede the data lines.
func (p *Program) Prologue() []Line {
	return p.Lines[:p.PrologueLength]
}

// DataLines returns the DATA lines of the program.
func (p *Program) DataLines() []Line {
	return p.Lines[p.PrologueLength:]
}

// LastLine returns the highest line number of the program.
func (p *Program) LastLine() int {
	if len(p.Lines) == 0 {
		return 0
	}
	return p.Lines[len(p.Lines)-1].Number
}

// SynthesisConfig contains the validated addresses and the numbering
// settings of a program to synthesize.
type SynthesisConfig struct {
	LoadAddress uint16
	EntryPoint  uint16
	Length      int // payload length in bytes

	StartLine int
	LineStep  int

	Checksum  bool // verify the sum of all read bytes before jumping to the entry point
	Lowercase bool // emit lower case text as expected by petcat
}

// GroupSource returns the next encoded group and true, or false when all
// groups have been returned.
type GroupSource func() (encoder.Group, bool)

// PrologueLength returns the number of prologue lines, which does not
// depend on the payload.
func PrologueLength(checksum bool) int {
	if checksum {
		return 4
	}
	return 3
}

// Synthesize builds the loader program for the groups returned by next.
// The groups must cover exactly cfg.Length bytes.
func Synthesize(cfg SynthesisConfig, next GroupSource) (*Program, error) {
	if cfg.StartLine < 0 || cfg.LineStep < 1 {
		return nil, &InvalidLineNumberingError{StartLine: cfg.StartLine, LineStep: cfg.LineStep}
	}
	if cfg.Length < 1 {
		return nil, invariantViolation("payload length %d", cfg.Length)
	}

	prologueLength := PrologueLength(cfg.Checksum)
	lines := make([]Line, prologueLength)
	var count, sum int

	for {
		group, ok := next()
		if !ok {
			break
		}
		if len(group) == 0 {
			return nil, invariantViolation("empty group after %d bytes", count)
		}
		for _, b := range group {
			sum += int(b)
		}
		count += len(group)
		lines = append(lines, Line{Text: dataText(group)})
	}

	if count != cfg.Length {
		return nil, invariantViolation("data lines hold %d bytes but the loop reads %d", count, cfg.Length)
	}

	if err := numberLines(lines, cfg.StartLine, cfg.LineStep); err != nil {
		return nil, err
	}

	for i, text := range prologueTexts(cfg, sum) {
		lines[i].Text = text
	}

	if cfg.Lowercase {
		for i := range lines {
			lines[i].Text = strings.ToLower(lines[i].Text)
		}
	}

	variables := 4
	if cfg.Checksum {
		variables++
	}

	return &Program{
		Lines:          lines,
		PrologueLength: prologueLength,
		TripCount:      cfg.Length,
		Checksum:       sum,
		Variables:      variables,
	}, nil
}

// numberLines assigns start + k*step to the k-th line.
func numberLines(lines []Line, start, step int) error {
	steps := len(lines) - 1
	if start > MaxLineNumber || steps > (MaxLineNumber-start)/step {
		return &LineNumberOverflowError{
			Last:  lastLineNumber(start, steps, step),
			Lines: len(lines),
			Max:   MaxLineNumber,
		}
	}

	for i := range lines {
		lines[i].Number = start + i*step
	}
	return nil
}

// lastLineNumber returns start + steps*step, saturated at math.MaxInt.
// start, steps and step are not negative.
func lastLineNumber(start, steps, step int) int {
	if steps > 0 && step > (math.MaxInt-start)/steps {
		return math.MaxInt
	}
	return start + steps*step
}

func prologueTexts(cfg SynthesisConfig, sum int) []string {
	setup := fmt.Sprintf("%s=%d:%s=%d", varAddress, cfg.LoadAddress, varCount, cfg.Length)
	loop := fmt.Sprintf("%s %s=1 %s %s:%s %s:%s %s,%s:%s=%s+1",
		KeywordFor, varIndex, KeywordTo, varCount,
		KeywordRead, varByte,
		KeywordPoke, varAddress, varByte,
		varAddress, varAddress)
	jump := fmt.Sprintf("%s %d:%s", KeywordSys, cfg.EntryPoint, KeywordEnd)

	if !cfg.Checksum {
		return []string{
			setup,
			loop + ":" + KeywordNext,
			jump,
		}
	}

	check := fmt.Sprintf(`%s %s<>%d %s %s "%s":%s`,
		KeywordIf, varSum, sum, KeywordThen, KeywordPrint, checksumMessage, KeywordEnd)
	return []string{
		setup + ":" + varSum + "=0",
		loop + ":" + varSum + "=" + varSum + "+" + varByte + ":" + KeywordNext,
		check,
		jump,
	}
}

func dataText(group encoder.Group) string {
	return KeywordData + " " + group.Text()
}

// MinLineWidth returns the smallest line width that can hold every
// prologue line and a data line with the widest token, for any payload.
func MinLineWidth(checksum bool) int {
	worst := SynthesisConfig{
		LoadAddress: 0xFFFF,
		EntryPoint:  0xFFFF,
		Length:      0x10000,
		Checksum:    checksum,
	}

	width := DataPrefixWidth + encoder.MinWidth
	for _, text := range prologueTexts(worst, 0xFF*0x10000) {
		width = max(width, lineNumberWidth+1+len(text))
	}
	return width
}
