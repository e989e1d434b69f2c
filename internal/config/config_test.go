package config

import (
	"testing"

	"github.com/retroenv/bin2bas/internal/memmap"
	"github.com/retroenv/bin2bas/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateConverterConfig(t *testing.T) {
	opts := options.Program{
		OutputFlags: options.OutputFlags{
			Width:     60,
			StartLine: 100,
			LineStep:  5,
			Checksum:  true,
			Lowercase: true,
			CRLF:      true,
		},
	}

	cfg := CreateConverterConfig(opts)
	assert.Equal(t, 60, cfg.MaxLineWidth)
	assert.Equal(t, 100, cfg.StartLine)
	assert.Equal(t, 5, cfg.LineStep)
	assert.True(t, cfg.Checksum)
	assert.True(t, cfg.Lowercase)
	assert.Equal(t, "\r\n", cfg.Newline)
	assert.Equal(t, memmap.C64().Regions(), cfg.Memory.Regions())
}

func TestCreateConverterConfigKeepsValues(t *testing.T) {
	// invalid values are passed on unchanged and rejected by the converter
	cfg := CreateConverterConfig(options.Program{})
	assert.Equal(t, 0, cfg.MaxLineWidth)
	assert.Equal(t, 0, cfg.LineStep)
	assert.Equal(t, "\n", cfg.Newline)
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
	assert.NotNil(t, CreateLogger(false, false))
}
