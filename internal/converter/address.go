package converter

import (
	"github.com/retroenv/bin2bas/internal/memmap"
)

// Addresses is an approved load range and entry point.
type Addresses struct {
	Load  uint16
	End   uint16
	Entry uint16
}

// ValidateAddress checks that length bytes loaded at load stay within the
// address space and outside of every reserved region of m. A nil entry
// defaults to the load address, otherwise it has to point into the payload.
func ValidateAddress(m memmap.Map, load uint16, length int, entry *uint16) (Addresses, error) {
	end := int(load) + length - 1
	if length <= 0 || end > memmap.MaxAddress {
		return Addresses{}, &AddressOutOfRangeError{
			Load:   load,
			Length: length,
			End:    end,
		}
	}

	if region, ok := m.FirstConflict(int(load), end); ok {
		return Addresses{}, &ReservedRegionConflictError{
			Region: region,
			Start:  load,
			End:    uint16(end),
		}
	}

	addresses := Addresses{
		Load:  load,
		End:   uint16(end),
		Entry: load,
	}
	if entry == nil {
		return addresses, nil
	}

	if *entry < addresses.Load || *entry > addresses.End {
		return Addresses{}, &EntryPointOutOfPayloadError{
			Entry: *entry,
			Start: addresses.Load,
			End:   addresses.End,
		}
	}
	addresses.Entry = *entry
	return addresses, nil
}
