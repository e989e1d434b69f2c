// Package memmap describes the memory regions of the target machine that a
// loaded payload must not overwrite.
package memmap

import (
	"errors"
	"fmt"
	"slices"
)

// MaxAddress is the highest addressable memory location.
const MaxAddress = 0xFFFF

var errRegionOverlap = errors.New("overlapping regions")

// Region is a closed address interval that is unsafe to overwrite.
type Region struct {
	Start  uint16
	End    uint16
	Reason string
}

// String returns the region in the form $0000-$00FF (zero page).
func (r Region) String() string {
	return fmt.Sprintf("$%04X-$%04X (%s)", r.Start, r.End, r.Reason)
}

// Overlaps returns whether the interval [start, end] intersects the region.
func (r Region) Overlaps(start, end int) bool {
	return start <= int(r.End) && end >= int(r.Start)
}

// Map is an immutable table of reserved regions sorted by start address.
// The zero value is an empty map that reserves nothing.
type Map struct {
	regions []Region
}

// New returns a map of the given regions. The regions are sorted by their
// start address and must not overlap each other.
func New(regions ...Region) (Map, error) {
	sorted := slices.Clone(regions)
	slices.SortFunc(sorted, func(a, b Region) int {
		return int(a.Start) - int(b.Start)
	})

	for i, region := range sorted {
		if region.Start > region.End {
			return Map{}, fmt.Errorf("region %s starts after its end", region)
		}
		if i > 0 && sorted[i-1].End >= region.Start {
			return Map{}, fmt.Errorf("region %s and %s: %w", sorted[i-1], region, errRegionOverlap)
		}
	}

	return Map{regions: sorted}, nil
}

// Regions returns a copy of all regions of the map.
func (m Map) Regions() []Region {
	return slices.Clone(m.regions)
}

// FirstConflict returns the region with the lowest start address that
// intersects the interval [start, end].
func (m Map) FirstConflict(start, end int) (Region, bool) {
	for _, region := range m.regions {
		if region.Overlaps(start, end) {
			return region, true
		}
		if int(region.Start) > end {
			break
		}
	}
	return Region{}, false
}
