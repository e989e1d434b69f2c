// Package detector handles input format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/bin2bas/internal/loader"
	"github.com/retroenv/bin2bas/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles input format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the input format from options or file auto-detection.
// An explicitly specified format takes precedence over the filename extension.
func (d *Detector) Detect(opts options.Program) (loader.Format, error) {
	if opts.Format != "" {
		return loader.FormatFromString(opts.Format)
	}

	format := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected format",
		log.String("format", string(format)),
		log.String("file", opts.Input))
	return format, nil
}

// detectFromFile determines the format based on file extension.
func (d *Detector) detectFromFile(filename string) loader.Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".prg":
		return loader.PRG
	case ".hex", ".ihx", ".ihex":
		return loader.IntelHex
	default:
		return loader.Raw
	}
}
