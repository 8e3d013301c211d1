// Package converters provides adapters that delegate provenance document
// conversion to external command-line tools.
package converters

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/GabrielNunesIT/prov-converter/internal/component"
	"github.com/GabrielNunesIT/prov-converter/internal/standards"
)

// Configuration keys understood by Base.
const (
	InputFormatsKey  = "input-formats"
	OutputFormatsKey = "output-formats"
)

// ConversionError reports a failed conversion attempt: a missing input
// file, an unsupported format pair, a non-zero tool exit, or a missing
// output file. Configuration problems are never reported as
// ConversionError.
type ConversionError struct {
	Reason string
}

func (e *ConversionError) Error() string {
	return "conversion error: " + e.Reason
}

// Base carries the declared input and output format sets shared by all
// converters. Both sets are stored as configured: order preserved,
// duplicates kept.
type Base struct {
	inputFormats  []string
	outputFormats []string
}

// InputFormats returns the formats the converter accepts as input.
func (b *Base) InputFormats() []string {
	return slices.Clone(b.inputFormats)
}

// OutputFormats returns the formats the converter can produce.
func (b *Base) OutputFormats() []string {
	return slices.Clone(b.outputFormats)
}

// Configure reads the "input-formats" and "output-formats" entries of cfg.
// Every listed format must belong to the standards registry.
func (b *Base) Configure(cfg component.Config) error {
	if err := cfg.Require(InputFormatsKey, OutputFormatsKey); err != nil {
		return err
	}
	sets := make(map[string][]string, 2)
	for _, key := range []string{InputFormatsKey, OutputFormatsKey} {
		formats, err := cfg.StringList(key)
		if err != nil {
			return err
		}
		for _, format := range formats {
			if !standards.IsFormat(format) {
				return &component.ConfigError{
					Reason: fmt.Sprintf("unrecognized format in %s: %s", key, format),
				}
			}
		}
		sets[key] = formats
	}
	b.inputFormats = sets[InputFormatsKey]
	b.outputFormats = sets[OutputFormatsKey]
	return nil
}

// CheckFormats verifies that inFormat is a declared input format and
// outFormat a declared output format.
func (b *Base) CheckFormats(inFormat, outFormat string) error {
	if !slices.Contains(b.inputFormats, inFormat) {
		return &ConversionError{Reason: "unsupported input format: " + inFormat}
	}
	if !slices.Contains(b.outputFormats, outFormat) {
		return &ConversionError{Reason: "unsupported output format: " + outFormat}
	}
	return nil
}

// CheckInputFile verifies that inFile names an existing regular file. All
// converters apply this check before doing any work.
func (b *Base) CheckInputFile(inFile string) error {
	if !isRegularFile(inFile) {
		return &ConversionError{Reason: "input file not found: " + inFile}
	}
	return nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// formatOf derives a file's format identifier from its extension: the
// substring after the last dot of the base name, compared as-is.
func formatOf(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	return ext[1:]
}
