package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/bin2bas/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load raw file", func(t *testing.T) {
		tmpFile := createTempFile(t, "test.bin", []byte{0x01, 0x02, 0x03, 0x04})

		payload, err := New().Load(options.Program{Parameters: options.Parameters{Input: tmpFile}}, Raw)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, payload.Data)
		assert.False(t, payload.HasAddress)
	})

	t.Run("load prg file", func(t *testing.T) {
		tmpFile := createTempFile(t, "test.prg", []byte{0x00, 0xC0, 0xA9, 0x01, 0x60})

		payload, err := New().Load(options.Program{Parameters: options.Parameters{Input: tmpFile}}, PRG)
		assert.NoError(t, err)
		assert.True(t, payload.HasAddress)
		assert.Equal(t, uint16(0xC000), payload.Address)
		assert.Equal(t, []byte{0xA9, 0x01, 0x60}, payload.Data)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load(options.Program{Parameters: options.Parameters{Input: "/nonexistent/file.bin"}}, Raw)
		assert.Error(t, err)
	})
}

func TestLoadFromBytes(t *testing.T) {
	t.Run("prg without payload", func(t *testing.T) {
		payload, err := New().LoadFromBytes([]byte{0x01, 0x08}, PRG)
		assert.NoError(t, err)
		assert.Equal(t, uint16(0x0801), payload.Address)
		assert.Equal(t, 0, len(payload.Data))
	})

	t.Run("prg missing header", func(t *testing.T) {
		_, err := New().LoadFromBytes([]byte{0x01}, PRG)
		assert.ErrorContains(t, err, "missing the load address")
	})

	t.Run("intel hex single segment", func(t *testing.T) {
		hex := ":03C00000A9016033\n:00000001FF\n"

		payload, err := New().LoadFromBytes([]byte(hex), IntelHex)
		assert.NoError(t, err)
		assert.True(t, payload.HasAddress)
		assert.Equal(t, uint16(0xC000), payload.Address)
		assert.Equal(t, []byte{0xA9, 0x01, 0x60}, payload.Data)
	})

	t.Run("intel hex with two segments", func(t *testing.T) {
		hex := ":01C00000EA55\n:01C10000EA54\n:00000001FF\n"

		_, err := New().LoadFromBytes([]byte(hex), IntelHex)
		assert.ErrorContains(t, err, "2 data segments")
	})

	t.Run("intel hex without data", func(t *testing.T) {
		_, err := New().LoadFromBytes([]byte(":00000001FF\n"), IntelHex)
		assert.Error(t, err)
	})

	t.Run("invalid intel hex", func(t *testing.T) {
		_, err := New().LoadFromBytes([]byte("not a hex file"), IntelHex)
		assert.Error(t, err)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := New().LoadFromBytes([]byte{1}, Format("d64"))
		assert.Error(t, err)
	})
}

func TestFormatFromString(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{name: "raw", want: Raw},
		{name: "BIN", want: Raw},
		{name: "prg", want: PRG},
		{name: "hex", want: IntelHex},
		{name: "ihx", want: IntelHex},
		{name: "d64", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatFromString(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
