// Package pipeline orchestrates the conversion workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/bin2bas/internal/config"
	"github.com/retroenv/bin2bas/internal/converter"
	"github.com/retroenv/bin2bas/internal/detector"
	"github.com/retroenv/bin2bas/internal/inspect"
	"github.com/retroenv/bin2bas/internal/loader"
	"github.com/retroenv/bin2bas/internal/options"
	"github.com/retroenv/bin2bas/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

var errMissingLoadAddress = errors.New("input has no load address, specify one with -a")

// Pipeline orchestrates the complete conversion workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new conversion pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete conversion pipeline for the input file of the
// options and writes the listing to writer.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) (*converter.Result, error) {
	format, err := p.detector.Detect(opts)
	if err != nil {
		return nil, fmt.Errorf("detecting format: %w", err)
	}

	payload, err := p.loader.Load(opts, format)
	if err != nil {
		return nil, fmt.Errorf("loading input: %w", err)
	}

	return p.ExecuteWithPayload(ctx, payload, opts, writer)
}

// ExecuteWithPayload runs the conversion pipeline with a pre-loaded payload.
// This is useful for testing and programmatic usage where the payload is already in memory.
func (p *Pipeline) ExecuteWithPayload(ctx context.Context, payload loader.Payload, opts options.Program,
	writer io.Writer) (*converter.Result, error) {

	load, err := resolveLoadAddress(payload, opts)
	if err != nil {
		return nil, err
	}

	p.printInfo(opts, payload, load)

	result, err := converter.Convert(payload.Data, load, opts.EntryPoint, config.CreateConverterConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("converting: %w", err)
	}

	p.inspectEntryPoint(payload.Data, result)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}
	if _, err := io.WriteString(writer, result.Listing); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}

	if opts.Verify {
		err := verification.VerifyListing(p.logger, result.Listing, payload.Data, result.LoadAddress, result.EntryPoint)
		if err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	p.printResult(opts, result)
	return result, nil
}

// resolveLoadAddress returns the load address given on the command line or
// the one that is stored in the input file. The command line takes precedence.
func resolveLoadAddress(payload loader.Payload, opts options.Program) (uint16, error) {
	if opts.LoadAddress != nil {
		return *opts.LoadAddress, nil
	}
	if payload.HasAddress {
		return payload.Address, nil
	}
	return 0, errMissingLoadAddress
}

// inspectEntryPoint warns about entry points that do not start with a
// regular 6502 instruction.
func (p *Pipeline) inspectEntryPoint(data []byte, result *converter.Result) {
	ins, err := inspect.EntryInstruction(data, result.LoadAddress, result.EntryPoint)
	if err != nil {
		p.logger.Warn("Inspecting entry point failed", log.Err(err))
		return
	}

	p.logger.Debug("Entry point instruction", log.String("instruction", ins.String()))
	if ins.Suspicious() {
		p.logger.Warn("Entry point does not look like the start of code",
			log.String("instruction", ins.String()))
	}
}

// printInfo prints information about the input being processed.
func (p *Pipeline) printInfo(opts options.Program, payload loader.Payload, load uint16) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing binary",
		log.String("file", opts.Input),
		log.String("format", string(payload.Format)),
		log.Int("size", len(payload.Data)),
		log.Hex("load", load),
	)
	if payload.HasAddress && opts.LoadAddress != nil && *opts.LoadAddress != payload.Address {
		p.logger.Warn("Overriding load address of input file",
			log.Hex("file", payload.Address),
			log.Hex("load", *opts.LoadAddress))
	}
}

// printResult prints the metadata of the generated listing.
func (p *Pipeline) printResult(opts options.Program, result *converter.Result) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Listing generated",
		log.Hex("load", result.LoadAddress),
		log.Hex("end", result.EndAddress),
		log.Hex("entry", result.EntryPoint),
		log.Int("data_lines", result.DataLines),
		log.Int("last_line", result.LastLine),
		log.Int("footprint", result.Footprint),
	)
}
