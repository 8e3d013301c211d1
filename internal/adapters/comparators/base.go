// Package comparators provides adapters that delegate provenance document
// comparison to external command-line tools.
package comparators

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/GabrielNunesIT/prov-converter/internal/component"
	"github.com/GabrielNunesIT/prov-converter/internal/standards"
)

// FormatsKey is the configuration key naming the formats a comparator can
// compare.
const FormatsKey = "formats"

// ComparisonError reports a failed comparison attempt: a missing file, an
// unsupported format, or an unexpected tool exit status. A clean
// not-equivalent verdict is not an error.
type ComparisonError struct {
	Reason string
}

func (e *ComparisonError) Error() string {
	return "comparison error: " + e.Reason
}

// Base carries the declared format set shared by all comparators.
type Base struct {
	formats []string
}

// Formats returns the formats the comparator can compare.
func (b *Base) Formats() []string {
	return slices.Clone(b.formats)
}

// Configure reads the "formats" entry of cfg. Every listed format must
// belong to the standards registry.
func (b *Base) Configure(cfg component.Config) error {
	if err := cfg.Require(FormatsKey); err != nil {
		return err
	}
	formats, err := cfg.StringList(FormatsKey)
	if err != nil {
		return err
	}
	for _, format := range formats {
		if !standards.IsFormat(format) {
			return &component.ConfigError{
				Reason: fmt.Sprintf("unrecognized format in %s: %s", FormatsKey, format),
			}
		}
	}
	b.formats = formats
	return nil
}

// CheckFormat verifies that format is one the comparator can compare.
func (b *Base) CheckFormat(format string) error {
	if !slices.Contains(b.formats, format) {
		return &ComparisonError{Reason: "unsupported format: " + format}
	}
	return nil
}

// CheckFiles verifies that both files name existing regular files. All
// comparators apply this check before doing any work.
func (b *Base) CheckFiles(file1, file2 string) error {
	for _, file := range []string{file1, file2} {
		if !isRegularFile(file) {
			return &ComparisonError{Reason: "file not found: " + file}
		}
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
