package basic

import (
	"strings"
)

// Render returns the listing of the program, one "<number> <text>" line per
// program line, each terminated by newline. A line longer than maxWidth or
// out of order is reported as an internal invariant violation since the
// synthesizer never produces one.
func Render(p *Program, maxWidth int, newline string) (string, error) {
	if p == nil || len(p.Lines) == 0 {
		return "", invariantViolation("program has no lines")
	}

	var sb strings.Builder
	previous := -1

	for _, line := range p.Lines {
		if line.Number > MaxLineNumber {
			return "", invariantViolation("line number %d exceeds %d", line.Number, MaxLineNumber)
		}
		if line.Number <= previous {
			return "", invariantViolation("line number %d follows %d", line.Number, previous)
		}
		previous = line.Number

		rendered := line.String()
		if len(rendered) > maxWidth {
			return "", invariantViolation("line %d is %d characters wide, maximum is %d",
				line.Number, len(rendered), maxWidth)
		}

		sb.WriteString(rendered)
		sb.WriteString(newline)
	}

	return sb.String(), nil
}
