// Package inspect decodes the instruction at the entry point of a payload
// to detect entry points that are unlikely to start code.
package inspect

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/m6502"
)

const brkOpcode = 0x00

// Instruction is the decoded first instruction at an entry point.
type Instruction struct {
	Address    uint16
	Opcode     byte
	Name       string
	Known      bool // opcode exists in the 6502 instruction set
	Unofficial bool
}

// String returns the instruction in the form $C000: lda ($A9).
func (i Instruction) String() string {
	if !i.Known {
		return fmt.Sprintf("$%04X: unknown opcode $%02X", i.Address, i.Opcode)
	}
	return fmt.Sprintf("$%04X: %s ($%02X)", i.Address, i.Name, i.Opcode)
}

// Suspicious returns whether the instruction makes a poor entry point:
// an unknown or unofficial opcode, or a BRK which is what unused memory
// usually contains.
func (i Instruction) Suspicious() bool {
	return !i.Known || i.Unofficial || i.Opcode == brkOpcode
}

// EntryInstruction decodes the opcode of the payload byte that is loaded
// to entry. The entry point has to be within the payload.
func EntryInstruction(payload []byte, load, entry uint16) (Instruction, error) {
	offset := int(entry) - int(load)
	if offset < 0 || offset >= len(payload) {
		return Instruction{}, fmt.Errorf("entry point $%04X is outside of payload at $%04X", entry, load)
	}

	b := payload[offset]
	ins := Instruction{
		Address: entry,
		Opcode:  b,
	}

	opcode := m6502.Opcodes[b]
	if opcode.Instruction == nil {
		return ins, nil
	}

	ins.Known = true
	ins.Name = opcode.Instruction.Name
	ins.Unofficial = opcode.Instruction.Unofficial
	return ins, nil
}
