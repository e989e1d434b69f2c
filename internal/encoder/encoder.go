// Package encoder partitions a binary payload into groups of decimal byte
// tokens that each fit into a single BASIC DATA statement.
package encoder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinWidth is the width of the widest possible token, the value 255.
const MinWidth = 3

const separator = ','

var (
	// ErrEmptyPayload is returned when a payload without any bytes is encoded.
	ErrEmptyPayload = errors.New("empty payload")
	// ErrInvalidLineWidth is returned when a line width budget can not hold
	// the widest token.
	ErrInvalidLineWidth = errors.New("invalid line width")
)

// InvalidLineWidthError reports a configured width below the required minimum.
type InvalidLineWidthError struct {
	Width int
	Min   int
}

func (e *InvalidLineWidthError) Error() string {
	return fmt.Sprintf("%s: %d is below the minimum of %d", ErrInvalidLineWidth, e.Width, e.Min)
}

func (e *InvalidLineWidthError) Unwrap() error {
	return ErrInvalidLineWidth
}

// Group is an ordered run of payload bytes that is rendered as one
// comma separated list of decimal tokens.
type Group []byte

// Text returns the tokens of the group separated by commas, for example 1,2,255.
func (g Group) Text() string {
	var sb strings.Builder
	sb.Grow(g.Width())
	for i, b := range g {
		if i > 0 {
			sb.WriteByte(separator)
		}
		sb.WriteString(strconv.Itoa(int(b)))
	}
	return sb.String()
}

// Width returns the character length of the rendered group text.
func (g Group) Width() int {
	if len(g) == 0 {
		return 0
	}
	width := len(g) - 1 // separators
	for _, b := range g {
		width += TokenWidth(b)
	}
	return width
}

// TokenWidth returns the number of decimal digits of a byte value.
func TokenWidth(b byte) int {
	switch {
	case b >= 100:
		return 3
	case b >= 10:
		return 2
	default:
		return 1
	}
}

// Encoder lazily produces the groups of a payload. Groups are filled
// greedily: a token is appended as long as the group text stays within the
// width, which yields the minimal number of groups for the fixed byte order.
type Encoder struct {
	payload []byte
	width   int
	pos     int
}

// New returns an encoder for the payload. The payload is not copied and
// must not be modified while the encoder is in use.
func New(payload []byte, width int) (*Encoder, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	if width < MinWidth {
		return nil, &InvalidLineWidthError{Width: width, Min: MinWidth}
	}

	return &Encoder{
		payload: payload,
		width:   width,
	}, nil
}

// Next returns the next group and true, or false once all bytes have been
// returned.
func (e *Encoder) Next() (Group, bool) {
	if e.pos >= len(e.payload) {
		return nil, false
	}

	start := e.pos
	used := TokenWidth(e.payload[e.pos])
	e.pos++

	for e.pos < len(e.payload) {
		next := 1 + TokenWidth(e.payload[e.pos])
		if used+next > e.width {
			break
		}
		used += next
		e.pos++
	}

	return Group(e.payload[start:e.pos:e.pos]), true
}

// Encode returns all groups of the payload.
func Encode(payload []byte, width int) ([]Group, error) {
	enc, err := New(payload, width)
	if err != nil {
		return nil, err
	}

	var groups []Group
	for {
		group, ok := enc.Next()
		if !ok {
			return groups, nil
		}
		groups = append(groups, group)
	}
}
