package encoder

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestEncodeSingleGroup(t *testing.T) {
	groups, err := Encode([]byte{1, 2, 3}, 69)
	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "1,2,3", groups[0].Text())
	assert.Equal(t, 5, groups[0].Width())
}

func TestEncodeGreedy(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		width   int
		want    []string
	}{
		{
			name:    "exact fit",
			payload: []byte{255, 255, 255},
			width:   11,
			want:    []string{"255,255,255"},
		},
		{
			name:    "one char short",
			payload: []byte{255, 255, 255},
			width:   10,
			want:    []string{"255,255", "255"},
		},
		{
			name:    "minimum width",
			payload: []byte{0, 10, 200},
			width:   MinWidth,
			want:    []string{"0", "10", "200"},
		},
		{
			name:    "mixed widths",
			payload: []byte{1, 22, 133, 4, 5},
			width:   6,
			want:    []string{"1,22", "133,4", "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, err := Encode(tt.payload, tt.width)
			assert.NoError(t, err)

			var got []string
			for _, g := range groups {
				got = append(got, g.Text())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodePreservesOrder(t *testing.T) {
	payload := make([]byte, 1000)
	for i := range payload {
		payload[i] = byte(i * 7)
	}

	for _, width := range []int{MinWidth, 4, 10, 37, 69, 250} {
		t.Run(strconv.Itoa(width), func(t *testing.T) {
			groups, err := Encode(payload, width)
			assert.NoError(t, err)

			var tokens []string
			var joined []byte
			for _, g := range groups {
				assert.True(t, g.Width() <= width)
				assert.Equal(t, len(g.Text()), g.Width())
				tokens = append(tokens, g.Text())
				joined = append(joined, g...)
			}
			assert.Equal(t, payload, joined)

			var parsed []byte
			for _, field := range strings.Split(strings.Join(tokens, ","), ",") {
				v, err := strconv.Atoi(field)
				assert.NoError(t, err)
				parsed = append(parsed, byte(v))
			}
			assert.Equal(t, payload, parsed)
		})
	}
}

func TestEncoderIsLazy(t *testing.T) {
	payload := []byte{100, 101, 102, 103}
	enc, err := New(payload, 7)
	assert.NoError(t, err)

	g, ok := enc.Next()
	assert.True(t, ok)
	assert.Equal(t, "100,101", g.Text())

	g, ok = enc.Next()
	assert.True(t, ok)
	assert.Equal(t, "102,103", g.Text())

	_, ok = enc.Next()
	assert.False(t, ok)
}

func TestGroupDoesNotAliasFollowingBytes(t *testing.T) {
	enc, err := New([]byte{1, 2, 3, 4}, 3)
	assert.NoError(t, err)

	g, _ := enc.Next()
	assert.Equal(t, 2, len(g))
	assert.Equal(t, 2, cap(g))
}

func TestEncodeErrors(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		_, err := Encode(nil, 80)
		assert.True(t, errors.Is(err, ErrEmptyPayload))
	})

	t.Run("width below widest token", func(t *testing.T) {
		_, err := Encode([]byte{1}, MinWidth-1)
		assert.True(t, errors.Is(err, ErrInvalidLineWidth))

		var widthErr *InvalidLineWidthError
		assert.True(t, errors.As(err, &widthErr))
		assert.Equal(t, MinWidth, widthErr.Min)
		assert.Equal(t, MinWidth-1, widthErr.Width)
	})

	t.Run("empty payload is reported before width", func(t *testing.T) {
		_, err := Encode([]byte{}, 0)
		assert.True(t, errors.Is(err, ErrEmptyPayload))
	})
}

func TestTokenWidth(t *testing.T) {
	assert.Equal(t, 1, TokenWidth(0))
	assert.Equal(t, 1, TokenWidth(9))
	assert.Equal(t, 2, TokenWidth(10))
	assert.Equal(t, 2, TokenWidth(99))
	assert.Equal(t, 3, TokenWidth(100))
	assert.Equal(t, 3, TokenWidth(255))
}
