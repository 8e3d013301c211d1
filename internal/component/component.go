// Package component provides the configuration building blocks shared by
// converters and comparators: a generic configuration mapping with
// required-key checks, and the command-line shape of an external tool
// invocation.
package component

import (
	"fmt"
	"strings"
)

// Config is an externally supplied configuration mapping. Components read
// the keys they need during Configure and copy the values into their own
// state; the mapping itself stays owned by the caller.
type Config map[string]any

// Configurable is implemented by components that must be configured
// before use.
type Configurable interface {
	// Configure prepares the component from cfg. A failed Configure leaves
	// the component unusable until it is configured again successfully.
	Configure(cfg Config) error
}

// ConfigError reports an invalid or incomplete configuration. It is only
// returned by Configure; a configured component never produces it.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// Require checks that cfg contains every key in keys, returning a
// ConfigError naming the first missing one.
func (c Config) Require(keys ...string) error {
	for _, key := range keys {
		if _, ok := c[key]; !ok {
			return &ConfigError{Reason: fmt.Sprintf("missing key %q", key)}
		}
	}
	return nil
}

// StringList returns the value at key as a list of string tokens. A scalar
// string is split at whitespace boundaries; a list of strings is returned
// verbatim. Any other shape is a ConfigError.
func (c Config) StringList(key string) ([]string, error) {
	switch v := c[key].(type) {
	case string:
		return strings.Fields(v), nil
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &ConfigError{
					Reason: fmt.Sprintf("key %q holds a non-string entry: %v", key, item),
				}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &ConfigError{
			Reason: fmt.Sprintf("key %q must be a string or a list of strings", key),
		}
	}
}
