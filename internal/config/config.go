// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/bin2bas/internal/converter"
	"github.com/retroenv/bin2bas/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateConverterConfig returns the converter configuration for the C64
// with the listing settings of the program options applied.
func CreateConverterConfig(opts options.Program) converter.Config {
	cfg := converter.DefaultConfig()
	cfg.MaxLineWidth = opts.Width
	cfg.StartLine = opts.StartLine
	cfg.LineStep = opts.LineStep
	cfg.Checksum = opts.Checksum
	cfg.Lowercase = opts.Lowercase
	if opts.CRLF {
		cfg.Newline = "\r\n"
	}
	return cfg
}
