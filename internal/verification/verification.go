// Package verification verifies that a generated listing recreates the input
// in memory and starts it at the expected address.
package verification

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

var errNoJump = errors.New("loader does not transfer control to the payload")

// VerifyListing runs the listing in the loader simulator and checks that the
// payload ends up at the load address, that nothing outside of it is written
// and that the program jumps to entry.
func VerifyListing(logger *log.Logger, listing string, payload []byte, load, entry uint16) error {
	sim, err := Simulate(listing)
	if err != nil {
		return fmt.Errorf("simulating listing: %w", err)
	}

	if len(sim.Printed) > 0 {
		return fmt.Errorf("loader printed '%s'", sim.Printed[0])
	}
	if !sim.Jumped {
		return errNoJump
	}
	if sim.SysTarget != entry {
		return fmt.Errorf("entry point mismatch, expected $%04X but got $%04X", entry, sim.SysTarget)
	}

	if sim.TripCount != len(payload) {
		return fmt.Errorf("read loop ran %d times for %d bytes", sim.TripCount, len(payload))
	}
	if sim.UnreadData != 0 {
		return fmt.Errorf("%d data values were not read", sim.UnreadData)
	}
	if sim.Writes != len(payload) {
		return fmt.Errorf("loader wrote %d bytes for %d bytes", sim.Writes, len(payload))
	}

	end := int(load) + len(payload)
	if end > len(sim.Memory) {
		return fmt.Errorf("payload of %d bytes at $%04X exceeds memory", len(payload), load)
	}
	for address := int(load); address < end; address++ {
		if !sim.Written.Contains(uint16(address)) {
			return fmt.Errorf("address $%04X was not written", address)
		}
	}

	if err := checkBufferEqual(logger, load, payload, sim.Memory[load:end]); err != nil {
		return fmt.Errorf("memory mismatch: %w", err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, load uint16, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Address mismatch",
				log.Hex("address", int(load)+i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d address mismatches", diffs)
}
