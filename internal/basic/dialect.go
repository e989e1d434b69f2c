// Package basic builds and renders Commodore 64 BASIC V2 loader programs.
package basic

import (
	"strconv"
	"strings"
)

// Dialect limits of Commodore BASIC V2.
const (
	// MaxLineNumber is the highest line number the interpreter accepts.
	MaxLineNumber = 63999
	// DefaultLineWidth is the logical line length of the screen editor,
	// two rows of 40 columns.
	DefaultLineWidth = 80
	// ProgramStart is the address the first program line is stored at.
	ProgramStart = 0x0801
	// ProgramEnd is the last byte of BASIC RAM.
	ProgramEnd = 0x9FFF
)

// Default line numbering of generated programs.
const (
	DefaultStartLine = 10
	DefaultLineStep  = 10
)

// Keywords emitted by the synthesizer. They are tokenized to a single byte
// when the listing is converted to a program file.
const (
	KeywordData  = "DATA"
	KeywordEnd   = "END"
	KeywordFor   = "FOR"
	KeywordIf    = "IF"
	KeywordNext  = "NEXT"
	KeywordPoke  = "POKE"
	KeywordPrint = "PRINT"
	KeywordRead  = "READ"
	KeywordSys   = "SYS"
	KeywordThen  = "THEN"
	KeywordTo    = "TO"
)

var keywords = []string{
	KeywordData, KeywordEnd, KeywordFor, KeywordIf, KeywordNext, KeywordPoke,
	KeywordPrint, KeywordRead, KeywordSys, KeywordThen, KeywordTo,
}

// simpleVariableSize is the number of bytes a numeric variable occupies in
// the variable table: two bytes name and five bytes float.
const simpleVariableSize = 7

// lineNumberWidth is the number of digits of the highest line number.
var lineNumberWidth = len(strconv.Itoa(MaxLineNumber))

// DataPrefixWidth is the widest possible prefix of a rendered data line,
// the line number, a space, the DATA keyword and another space.
var DataPrefixWidth = lineNumberWidth + 1 + len(KeywordData) + 1

// tokenizedLength returns the number of bytes the statement text occupies
// once keywords outside of string literals are replaced by their tokens.
func tokenizedLength(text string) int {
	upper := strings.ToUpper(text)
	length := 0
	inString := false

	for i := 0; i < len(upper); {
		if upper[i] == '"' {
			inString = !inString
		}
		if !inString {
			if kw := keywordAt(upper, i); kw != "" {
				length++
				i += len(kw)
				if kw == KeywordData {
					// the remainder of a DATA statement is stored verbatim
					return length + len(upper) - i
				}
				continue
			}
		}
		length++
		i++
	}
	return length
}

func keywordAt(s string, i int) string {
	for _, kw := range keywords {
		if strings.HasPrefix(s[i:], kw) {
			return kw
		}
	}
	return ""
}
