// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/retroenv/bin2bas/internal/options"
	"github.com/retroenv/bin2bas/internal/pipeline"
	"github.com/retroenv/bin2bas/internal/tokenizer"
	"github.com/retroenv/bin2bas/internal/writer"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("processing file: %w", err)
	}

	// the output file is only created after a successful conversion
	var listing bytes.Buffer
	pipe := pipeline.New(logger)
	if _, err := pipe.Execute(ctx, opts, &listing); err != nil {
		return err
	}

	if err := writeListing(opts.Output, listing.Bytes()); err != nil {
		return err
	}

	if opts.PRG == "" {
		return nil
	}
	return tokenize(ctx, logger, opts)
}

func writeListing(output string, listing []byte) error {
	w, err := writer.Create(output)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}

	_, err = w.Write(listing)
	if closeErr := w.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

func tokenize(ctx context.Context, logger *log.Logger, opts options.Program) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("tokenizing: %w", err)
	}

	if err := tokenizer.TokenizeUsingExternalApp(ctx, opts.Output, opts.PRG); err != nil {
		return fmt.Errorf("creating .prg file: %w", err)
	}

	logger.Info("Tokenized listing", log.String("file", opts.PRG))
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".bas"
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("bin2bas", log.String("version", buildinfo.Version(version, commit, date)))
}
