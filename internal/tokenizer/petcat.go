// Package tokenizer converts BASIC listings into tokenized program files
// using the petcat tool of the VICE emulator.
package tokenizer

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

const (
	toolName = "petcat"
	// basicV2 selects Commodore BASIC V2 as used by the C64.
	basicV2 = "-w2"
)

// Arguments returns the petcat arguments to tokenize listingFile into prgFile.
func Arguments(listingFile, prgFile string) []string {
	return []string{basicV2, "-o", prgFile, "--", listingFile}
}

// ToolName returns the name of the petcat executable for the current OS.
func ToolName() string {
	if runtime.GOOS == "windows" {
		return toolName + ".exe"
	}
	return toolName
}

// TokenizeUsingExternalApp calls petcat to create a .prg file from the
// listing file. petcat expects keywords in lower case.
func TokenizeUsingExternalApp(ctx context.Context, listingFile, prgFile string) error {
	tool := ToolName()
	if _, err := exec.LookPath(tool); err != nil {
		return fmt.Errorf("%s is not installed", tool)
	}

	cmd := exec.CommandContext(ctx, tool, Arguments(listingFile, prgFile)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("tokenizing file: %s: %w", strings.TrimSpace(string(out)), err)
	}

	return nil
}
