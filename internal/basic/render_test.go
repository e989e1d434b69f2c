package basic

import (
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/bin2bas/internal/encoder"
	"github.com/retroenv/retrogolib/assert"
)

func TestRender(t *testing.T) {
	p, err := Synthesize(defaultConfig(3), groupSource(encoder.Group{1, 2, 3}))
	assert.NoError(t, err)

	listing, err := Render(p, DefaultLineWidth, "\n")
	assert.NoError(t, err)

	want := "10 A=49152:N=3\n" +
		"20 FOR I=1 TO N:READ B:POKE A,B:A=A+1:NEXT\n" +
		"30 SYS 49152:END\n" +
		"40 DATA 1,2,3\n"
	assert.Equal(t, want, listing)
}

func TestRenderIsIdempotent(t *testing.T) {
	payload := make([]byte, 300)
	for i := range payload {
		payload[i] = byte(255 - i%256)
	}
	enc, err := encoder.New(payload, DefaultLineWidth-DataPrefixWidth)
	assert.NoError(t, err)

	p, err := Synthesize(defaultConfig(len(payload)), enc.Next)
	assert.NoError(t, err)

	first, err := Render(p, DefaultLineWidth, "\r\n")
	assert.NoError(t, err)
	second, err := Render(p, DefaultLineWidth, "\r\n")
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	assert.True(t, strings.HasSuffix(first, "\r\n"))
	assert.False(t, strings.HasSuffix(first, "\r\n\r\n"))
	assert.Equal(t, len(p.Lines), strings.Count(first, "\r\n"))
}

func TestRenderDataLinesFitWidth(t *testing.T) {
	payload := make([]byte, 2000)
	for i := range payload {
		payload[i] = byte(i * 13)
	}

	for _, width := range []int{MinLineWidth(false), 60, DefaultLineWidth, 120} {
		enc, err := encoder.New(payload, width-DataPrefixWidth)
		assert.NoError(t, err)

		p, err := Synthesize(defaultConfig(len(payload)), enc.Next)
		assert.NoError(t, err)

		listing, err := Render(p, width, "\n")
		assert.NoError(t, err)
		for _, line := range strings.Split(strings.TrimSuffix(listing, "\n"), "\n") {
			assert.True(t, len(line) <= width)
		}
	}
}

func TestRenderInvariantViolations(t *testing.T) {
	tests := []struct {
		name     string
		program  *Program
		width    int
		contains string
	}{
		{
			name:    "nil program",
			program:  nil,
			width:    DefaultLineWidth,
			contains: "no lines",
		},
		{
			name:    "line too wide",
			program:  &Program{Lines: []Line{{Number: 10, Text: strings.Repeat("X", 80)}}},
			width:    DefaultLineWidth,
			contains: "83 characters wide",
		},
		{
			name:    "unsorted lines",
			program:  &Program{Lines: []Line{{Number: 20, Text: "END"}, {Number: 10, Text: "END"}}},
			width:    DefaultLineWidth,
			contains: "line number 10 follows 20",
		},
		{
			name:    "duplicate lines",
			program:  &Program{Lines: []Line{{Number: 10, Text: "END"}, {Number: 10, Text: "END"}}},
			width:    DefaultLineWidth,
			contains: "line number 10 follows 10",
		},
		{
			name:     "line number above maximum",
			program:  &Program{Lines: []Line{{Number: 10, Text: "END"}, {Number: MaxLineNumber + 1, Text: "END"}}},
			width:    DefaultLineWidth,
			contains: "line number 64000 exceeds 63999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := Render(tt.program, tt.width, "\n")
			assert.True(t, errors.Is(err, ErrInternalInvariantViolation))
			assert.ErrorContains(t, err, tt.contains)
			assert.Equal(t, "", listing)
		})
	}
}
