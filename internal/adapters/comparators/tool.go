package comparators

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"strings"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/prov-converter/internal/component"
	"github.com/GabrielNunesIT/prov-converter/internal/domain"
	"github.com/GabrielNunesIT/prov-converter/internal/standards"
)

var _ domain.Comparator = (*ToolComparator)(nil)

// Placeholder tokens that must appear in a tool comparator's argument
// template. They are substituted with the two files' formats and paths
// when the invocation is built.
const (
	Format1Token = "FORMAT1"
	Format2Token = "FORMAT2"
	File1Token   = "FILE1"
	File2Token   = "FILE2"
)

// ToolComparator compares provenance documents by invoking an external
// command-line tool. The tool's exit status carries the verdict: 0 means
// equivalent, 1 means not equivalent, anything else is an error.
type ToolComparator struct {
	Base
	component.CommandLine

	name    string
	aliases map[string]string
	log     logger.ILogger
}

// NewToolComparator creates a comparator for the named tool. aliases maps
// registry format identifiers to the spelling the tool expects on its
// command line; it may be nil. log receives the invocation string on each
// comparison and may be nil.
func NewToolComparator(name string, aliases map[string]string, log logger.ILogger) *ToolComparator {
	return &ToolComparator{
		name:    name,
		aliases: maps.Clone(aliases),
		log:     log,
	}
}

// NewProvPyComparator creates a comparator that invokes ProvPy's
// prov-compare script. prov-compare does not recognize the "provx"
// identifier, so it is passed as "xml".
func NewProvPyComparator(log logger.ILogger) *ToolComparator {
	return NewToolComparator("provpy", map[string]string{standards.PROVX: "xml"}, log)
}

// Name returns the comparator's identifier.
func (c *ToolComparator) Name() string {
	return c.name
}

// Configure prepares the comparator. cfg must satisfy both the format-set
// configuration (formats) and the command-line configuration (executable,
// arguments), and the argument template must contain the FORMAT1, FORMAT2,
// FILE1 and FILE2 tokens.
func (c *ToolComparator) Configure(cfg component.Config) error {
	if err := c.Base.Configure(cfg); err != nil {
		return err
	}
	if err := c.CommandLine.Configure(cfg); err != nil {
		return err
	}
	for _, tok := range []string{Format1Token, Format2Token, File1Token, File2Token} {
		if !c.HasToken(tok) {
			return &component.ConfigError{
				Reason: fmt.Sprintf("missing token %s in arguments", tok),
			}
		}
	}
	return nil
}

// Compare reports whether file1 and file2 hold equivalent documents. The
// files' formats are derived from their extensions and must both be
// declared in the comparator's format set. The call blocks until the tool
// exits; the tool inherits this process's standard streams. An exit status
// other than 0 or 1 is a ComparisonError; a failure to launch the tool at
// all is returned as the underlying error.
func (c *ToolComparator) Compare(file1, file2 string) (bool, error) {
	if err := c.CheckFiles(file1, file2); err != nil {
		return false, err
	}
	format1 := formatOf(file1)
	format2 := formatOf(file2)
	for _, format := range []string{format1, format2} {
		if err := c.CheckFormat(format); err != nil {
			return false, err
		}
	}
	invocation := c.Render(map[string]string{
		Format1Token: c.localFormat(format1),
		Format2Token: c.localFormat(format2),
		File1Token:   file1,
		File2Token:   file2,
	})
	if c.log != nil {
		c.log.Infof("Invoking: %s", strings.Join(invocation, " "))
	}
	cmd := exec.Command(invocation[0], invocation[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode() == 1 {
			return false, nil
		}
		return false, &ComparisonError{
			Reason: fmt.Sprintf("%s returned %d", strings.Join(invocation, " "), exitErr.ExitCode()),
		}
	}
	// Launch failure: an environment problem, not a comparison failure.
	return false, err
}

func (c *ToolComparator) localFormat(format string) string {
	if alias, ok := c.aliases[format]; ok {
		return alias
	}
	return format
}
