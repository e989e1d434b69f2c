package converter

import (
	"errors"
	"fmt"

	"github.com/retroenv/bin2bas/internal/basic"
	"github.com/retroenv/bin2bas/internal/encoder"
	"github.com/retroenv/bin2bas/internal/memmap"
)

// Errors returned by Convert. None of them is transient, converting the
// same input again fails the same way.
var (
	ErrEmptyPayload               = encoder.ErrEmptyPayload
	ErrInvalidLineWidth           = encoder.ErrInvalidLineWidth
	ErrLineNumberOverflow         = basic.ErrLineNumberOverflow
	ErrInvalidLineNumbering       = basic.ErrInvalidLineNumbering
	ErrInternalInvariantViolation = basic.ErrInternalInvariantViolation

	ErrAddressOutOfRange      = errors.New("address out of range")
	ErrReservedRegionConflict = errors.New("reserved region conflict")
	ErrEntryPointOutOfPayload = errors.New("entry point outside of payload")
	ErrLoaderOverlap          = errors.New("payload overlaps loader program")
	ErrProgramTooLarge        = errors.New("loader program exceeds BASIC memory")
)

// AddressOutOfRangeError reports a payload that does not fit below the
// top of the address space.
type AddressOutOfRangeError struct {
	Load   uint16
	Length int
	End    int
}

func (e *AddressOutOfRangeError) Error() string {
	if e.Length == 0 {
		return fmt.Sprintf("%s: empty payload at $%04X", ErrAddressOutOfRange, e.Load)
	}
	return fmt.Sprintf("%s: %d bytes at $%04X end at $%X, maximum is $%04X",
		ErrAddressOutOfRange, e.Length, e.Load, e.End, memmap.MaxAddress)
}

func (e *AddressOutOfRangeError) Unwrap() error {
	return ErrAddressOutOfRange
}

// ReservedRegionConflictError reports the first reserved region the
// payload would overwrite.
type ReservedRegionConflictError struct {
	Region memmap.Region
	Start  uint16
	End    uint16
}

func (e *ReservedRegionConflictError) Error() string {
	return fmt.Sprintf("%s: payload $%04X-$%04X overlaps %s", ErrReservedRegionConflict, e.Start, e.End, e.Region)
}

func (e *ReservedRegionConflictError) Unwrap() error {
	return ErrReservedRegionConflict
}

// EntryPointOutOfPayloadError reports an entry point outside of the loaded bytes.
type EntryPointOutOfPayloadError struct {
	Entry uint16
	Start uint16
	End   uint16
}

func (e *EntryPointOutOfPayloadError) Error() string {
	return fmt.Sprintf("%s: $%04X is not within $%04X-$%04X", ErrEntryPointOutOfPayload, e.Entry, e.Start, e.End)
}

func (e *EntryPointOutOfPayloadError) Unwrap() error {
	return ErrEntryPointOutOfPayload
}

// LoaderOverlapError reports a payload that would overwrite the running
// loader program or its variables.
type LoaderOverlapError struct {
	ProgramStart int
	ProgramEnd   int
	Start        uint16
	End          uint16
}

func (e *LoaderOverlapError) Error() string {
	return fmt.Sprintf("%s: payload $%04X-$%04X, loader occupies $%04X-$%04X",
		ErrLoaderOverlap, e.Start, e.End, e.ProgramStart, e.ProgramEnd)
}

func (e *LoaderOverlapError) Unwrap() error {
	return ErrLoaderOverlap
}

// ProgramTooLargeError reports a loader program that does not fit into BASIC RAM.
type ProgramTooLargeError struct {
	Size int
	Max  int
}

func (e *ProgramTooLargeError) Error() string {
	return fmt.Sprintf("%s: %d bytes, maximum is %d", ErrProgramTooLarge, e.Size, e.Max)
}

func (e *ProgramTooLargeError) Unwrap() error {
	return ErrProgramTooLarge
}
