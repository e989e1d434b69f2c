package memmap

import (
	"github.com/retroenv/retrogolib/arch/cpu/m6502"
)

const vectorStart = uint16(m6502.InterruptVectorStartAddress)

// c64Regions lists the areas of a stock C64 with BASIC and KERNAL banked in.
// The cassette buffer at $033C-$03FF, BASIC RAM at $0800-$9FFF and the
// free RAM at $C000-$CFFF are not listed.
var c64Regions = []Region{
	{Start: 0x0000, End: 0x00FF, Reason: "zero page"},
	{Start: 0x0100, End: 0x01FF, Reason: "processor stack"},
	{Start: 0x0200, End: 0x033B, Reason: "BASIC/KERNAL work area"},
	{Start: 0x0400, End: 0x07FF, Reason: "screen memory"},
	{Start: 0xA000, End: 0xBFFF, Reason: "BASIC ROM"},
	{Start: 0xD000, End: 0xDFFF, Reason: "I/O area"},
	{Start: 0xE000, End: vectorStart - 1, Reason: "KERNAL ROM"},
	{Start: vectorStart, End: MaxAddress, Reason: "hardware vectors"},
}

// C64 returns the reserved region table of the Commodore 64.
func C64() Map {
	m, err := New(c64Regions...)
	if err != nil {
		panic(err) // the table is constant
	}
	return m
}
