// Package standards defines the closed set of recognized provenance
// document formats. The set is fixed; converters and comparators validate
// their configured format lists against it.
package standards

import "slices"

// Recognized format identifiers. Each doubles as the canonical file
// extension for documents in that format.
const (
	PROVN = "provn"
	TTL   = "ttl"
	TRIG  = "trig"
	PROVX = "provx"
	JSON  = "json"
)

var formats = []string{PROVN, TTL, TRIG, PROVX, JSON}

// Formats returns every recognized format identifier.
func Formats() []string {
	return slices.Clone(formats)
}

// IsFormat reports whether id is a recognized format identifier.
func IsFormat(id string) bool {
	return slices.Contains(formats, id)
}
