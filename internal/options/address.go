package options

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAddress parses a 16 bit address given as decimal, $hex or 0xhex.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	base := 10
	digits := s

	switch {
	case strings.HasPrefix(s, "$"):
		base = 16
		digits = s[1:]
	case strings.HasPrefix(strings.ToLower(s), "0x"):
		base = 16
		digits = s[2:]
	}

	value, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address '%s': %w", s, err)
	}
	return uint16(value), nil
}
