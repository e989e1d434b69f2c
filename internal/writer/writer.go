// Package writer creates the destinations that listings are written to.
package writer

import (
	"fmt"
	"io"
	"os"
)

// Create returns a writer for the listing file. An empty name selects the
// console, closing that writer does not close stdout.
func Create(name string) (io.WriteCloser, error) {
	return create(name, os.Stdout)
}

func create(name string, console io.Writer) (io.WriteCloser, error) {
	if name == "" {
		return &nopCloser{console}, nil
	}

	file, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", name, err)
	}
	return file, nil
}

// nopCloser wraps an io.Writer to add a no-op Close method.
type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
