// Package domain provides the core interfaces for provenance document
// converters and comparators.
package domain

import "github.com/GabrielNunesIT/prov-converter/internal/component"

// Converter maps a provenance document in one format to an equivalent
// document in another format by delegating to an external tool.
type Converter interface {
	component.Configurable

	// Convert transforms inFile into outFile. The input and output formats
	// are derived from the files' extensions. On success outFile holds the
	// converted document.
	Convert(inFile, outFile string) error

	// InputFormats returns the formats the converter accepts as input.
	InputFormats() []string

	// OutputFormats returns the formats the converter can produce.
	OutputFormats() []string

	// Name returns the converter's identifier (e.g., "provpy").
	Name() string
}

// Comparator judges whether two provenance documents are equivalent by
// delegating to an external tool.
type Comparator interface {
	component.Configurable

	// Compare reports whether file1 and file2 hold equivalent documents.
	// The files' formats are derived from their extensions.
	Compare(file1, file2 string) (bool, error)

	// Formats returns the formats the comparator can compare.
	Formats() []string

	// Name returns the comparator's identifier (e.g., "provpy").
	Name() string
}
