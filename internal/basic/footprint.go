package basic

// Footprint returns the number of bytes the tokenized program and its
// variables occupy in BASIC RAM when loaded at ProgramStart.
//
// Each stored line consists of a two byte link to the next line, the two
// byte line number, the tokenized text and a terminating zero. The program
// ends with a null link.
func Footprint(p *Program) int {
	size := 2
	for _, line := range p.Lines {
		size += 2 + 2 + tokenizedLength(line.Text) + 1
	}
	return size + p.Variables*simpleVariableSize
}
