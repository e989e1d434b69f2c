package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCreateConsole(t *testing.T) {
	var console bytes.Buffer
	w, err := create("", &console)
	assert.NoError(t, err)

	_, err = w.Write([]byte("10 END\n"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.Equal(t, "10 END\n", console.String())
}

func TestCreateFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "demo.bas")
	w, err := Create(name)
	assert.NoError(t, err)

	_, err = w.Write([]byte("10 END\n"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	data, err := os.ReadFile(name)
	assert.NoError(t, err)
	assert.Equal(t, "10 END\n", string(data))
}

func TestCreateInvalidPath(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "demo.bas"))
	assert.ErrorContains(t, err, "creating output file")
}
