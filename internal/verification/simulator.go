package verification

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/bin2bas/internal/basic"
	"github.com/retroenv/retrogolib/set"
)

// maxSteps bounds the number of executed statements, a full 64 KiB payload
// needs about six statements per byte.
const maxSteps = 1 << 22

var errStepLimit = errors.New("step limit exceeded")

// Simulation is the machine state after running a loader listing up to the
// point where it transfers control to machine code or ends.
type Simulation struct {
	Memory  []byte // 64 KiB
	Written set.Set[uint16]
	Writes  int

	TripCount  int // completed iterations of the read loop
	UnreadData int // DATA values left after the program stopped

	Jumped    bool
	SysTarget uint16
	Printed   []string
}

type statement struct {
	line int // index of the program line
	text string
}

type forLoop struct {
	variable string
	end      int
	body     int // index of the first statement after FOR
}

type interpreter struct {
	sim        *Simulation
	statements []statement
	data       []int
	variables  map[string]int
	loop       *forLoop
}

// Simulate parses the listing and executes the subset of BASIC that loader
// programs consist of.
func Simulate(listing string) (*Simulation, error) {
	statements, data, err := parseListing(listing)
	if err != nil {
		return nil, err
	}

	ip := &interpreter{
		sim: &Simulation{
			Memory:  make([]byte, 0x10000),
			Written: set.New[uint16](),
		},
		statements: statements,
		data:       data,
		variables:  map[string]int{},
	}
	if err := ip.run(); err != nil {
		return nil, err
	}

	ip.sim.UnreadData = len(ip.data)
	return ip.sim, nil
}

// parseListing splits the listing into executable statements and the
// values of all DATA statements in program order.
func parseListing(listing string) ([]statement, []int, error) {
	var statements []statement
	var data []int
	previous := -1

	lines := strings.Split(strings.TrimRight(listing, "\r\n"), "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		numberText, text, ok := strings.Cut(line, " ")
		if !ok {
			return nil, nil, fmt.Errorf("line %d: missing statement", i+1)
		}

		number, err := strconv.Atoi(numberText)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: invalid line number '%s'", i+1, numberText)
		}
		if number <= previous || number > basic.MaxLineNumber {
			return nil, nil, fmt.Errorf("line %d: line number %d does not follow %d", i+1, number, previous)
		}
		previous = number

		text = strings.ToUpper(text)
		if values, ok := strings.CutPrefix(text, basic.KeywordData+" "); ok {
			parsed, err := parseData(values)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", number, err)
			}
			data = append(data, parsed...)
			continue
		}

		for _, s := range splitStatements(text) {
			statements = append(statements, statement{line: i, text: s})
		}
	}

	return statements, data, nil
}

func parseData(values string) ([]int, error) {
	fields := strings.Split(values, ",")
	parsed := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil || value < 0 || value > 0xFF {
			return nil, fmt.Errorf("invalid data value '%s'", field)
		}
		parsed = append(parsed, value)
	}
	return parsed, nil
}

// splitStatements splits a line at colons outside of string literals.
func splitStatements(text string) []string {
	var statements []string
	inString := false
	start := 0

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			inString = !inString
		case ':':
			if !inString {
				statements = append(statements, text[start:i])
				start = i + 1
			}
		}
	}
	return append(statements, text[start:])
}

func (ip *interpreter) run() error {
	pc := 0
	for steps := 0; pc < len(ip.statements); steps++ {
		if steps >= maxSteps {
			return errStepLimit
		}

		next, stop, err := ip.execute(pc, ip.statements[pc].text)
		if err != nil {
			return fmt.Errorf("line %d: %w", ip.statements[pc].line+1, err)
		}
		if stop {
			return nil
		}
		pc = next
	}
	return nil
}

// execute runs one statement and returns the index of the next statement
// and whether the program stopped.
func (ip *interpreter) execute(pc int, text string) (int, bool, error) {
	keyword, args, _ := strings.Cut(text, " ")

	switch keyword {
	case basic.KeywordFor:
		return pc + 1, false, ip.executeFor(pc, args)

	case basic.KeywordNext:
		return ip.executeNext(pc)

	case basic.KeywordRead:
		if len(ip.data) == 0 {
			return 0, false, errors.New("out of data")
		}
		ip.variables[args] = ip.data[0]
		ip.data = ip.data[1:]
		return pc + 1, false, nil

	case basic.KeywordPoke:
		return pc + 1, false, ip.executePoke(args)

	case basic.KeywordIf:
		return ip.executeIf(pc, args)

	case basic.KeywordPrint:
		ip.sim.Printed = append(ip.sim.Printed, strings.Trim(args, `"`))
		return pc + 1, false, nil

	case basic.KeywordSys:
		target, err := ip.eval(args)
		if err != nil {
			return 0, false, err
		}
		if target < 0 || target > 0xFFFF {
			return 0, false, fmt.Errorf("sys target %d out of range", target)
		}
		ip.sim.Jumped = true
		ip.sim.SysTarget = uint16(target)
		return 0, true, nil

	case basic.KeywordEnd:
		return 0, true, nil
	}

	if variable, expression, ok := strings.Cut(text, "="); ok {
		value, err := ip.eval(expression)
		if err != nil {
			return 0, false, err
		}
		ip.variables[variable] = value
		return pc + 1, false, nil
	}

	return 0, false, fmt.Errorf("unsupported statement '%s'", text)
}

// executeFor handles FOR <var>=<start> TO <end>.
func (ip *interpreter) executeFor(pc int, args string) error {
	assignment, endExpression, ok := strings.Cut(args, " "+basic.KeywordTo+" ")
	if !ok {
		return fmt.Errorf("malformed FOR '%s'", args)
	}
	variable, startExpression, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("malformed FOR '%s'", args)
	}

	start, err := ip.eval(startExpression)
	if err != nil {
		return err
	}
	end, err := ip.eval(endExpression)
	if err != nil {
		return err
	}

	ip.variables[variable] = start
	ip.loop = &forLoop{variable: variable, end: end, body: pc + 1}
	return nil
}

// executeNext ends a loop iteration. Like BASIC V2 the body of a FOR loop
// runs at least once.
func (ip *interpreter) executeNext(pc int) (int, bool, error) {
	if ip.loop == nil {
		return 0, false, errors.New("NEXT without FOR")
	}

	ip.sim.TripCount++
	ip.variables[ip.loop.variable]++
	if ip.variables[ip.loop.variable] <= ip.loop.end {
		return ip.loop.body, false, nil
	}
	ip.loop = nil
	return pc + 1, false, nil
}

func (ip *interpreter) executePoke(args string) error {
	addressExpression, valueExpression, ok := strings.Cut(args, ",")
	if !ok {
		return fmt.Errorf("malformed POKE '%s'", args)
	}

	address, err := ip.eval(addressExpression)
	if err != nil {
		return err
	}
	value, err := ip.eval(valueExpression)
	if err != nil {
		return err
	}
	if address < 0 || address > 0xFFFF || value < 0 || value > 0xFF {
		return fmt.Errorf("illegal quantity POKE %d,%d", address, value)
	}

	ip.sim.Memory[address] = byte(value)
	ip.sim.Written.Add(uint16(address))
	ip.sim.Writes++
	return nil
}

// executeIf handles IF <a><><b> THEN <statement>. A false condition skips
// the rest of the line.
func (ip *interpreter) executeIf(pc int, args string) (int, bool, error) {
	condition, then, ok := strings.Cut(args, " "+basic.KeywordThen+" ")
	if !ok {
		return 0, false, fmt.Errorf("malformed IF '%s'", args)
	}
	left, right, ok := strings.Cut(condition, "<>")
	if !ok {
		return 0, false, fmt.Errorf("unsupported condition '%s'", condition)
	}

	a, err := ip.eval(left)
	if err != nil {
		return 0, false, err
	}
	b, err := ip.eval(right)
	if err != nil {
		return 0, false, err
	}

	if a != b {
		return ip.execute(pc, then)
	}

	line := ip.statements[pc].line
	next := pc + 1
	for next < len(ip.statements) && ip.statements[next].line == line {
		next++
	}
	return next, false, nil
}

// eval evaluates a sum of numbers and variables.
func (ip *interpreter) eval(expression string) (int, error) {
	sum := 0
	for _, term := range strings.Split(expression, "+") {
		term = strings.TrimSpace(term)
		if value, err := strconv.Atoi(term); err == nil {
			sum += value
			continue
		}
		value, ok := ip.variables[term]
		if !ok {
			return 0, fmt.Errorf("undefined variable '%s'", term)
		}
		sum += value
	}
	return sum, nil
}
