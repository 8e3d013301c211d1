package converters

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

var _ domain.Converter = (*ToolConverter)(nil)

// Placeholder tokens that must appear in a tool converter's argument
// template. They are substituted with the output format, input file and
// output file when the invocation is built.
const (
	FormatToken = "FORMAT"
	InputToken  = "INPUT"
	OutputToken = "OUTPUT"
)

// ToolConverter converts provenance documents by invoking an external
// command-line tool. A configured ToolConverter holds no per-conversion
// state; Convert may be called any number of times.
type ToolConverter struct {
	Base
	component.CommandLine

	name    string
	aliases map[string]string
	log     logger.ILogger
}

// NewToolConverter creates a converter for the named tool. aliases maps
// registry format identifiers to the spelling the tool expects on its
// command line; it may be nil. log receives the invocation string on each
// conversion and may be nil.
func NewToolConverter(name string, aliases map[string]string, log logger.ILogger) *ToolConverter {
	return &ToolConverter{
		name:    name,
		aliases: maps.Clone(aliases),
		log:     log,
	}
}

// NewProvPyConverter creates a converter that invokes ProvPy's
// prov-convert script. prov-convert does not recognize the "provx"
// identifier, so it is passed as "xml".
func NewProvPyConverter(log logger.ILogger) *ToolConverter {
	return NewToolConverter("provpy", map[string]string{standards.PROVX: "xml"}, log)
}

// Name returns the converter's identifier.
func (c *ToolConverter) Name() string {
	return c.name
}

// Configure prepares the converter. cfg must satisfy both the format-set
// configuration (input-formats, output-formats) and the command-line
// configuration (executable, arguments), and the argument template must
// contain the FORMAT, INPUT and OUTPUT tokens.
func (c *ToolConverter) Configure(cfg component.Config) error {
	if err := c.Base.Configure(cfg); err != nil {
		return err
	}
	if err := c.CommandLine.Configure(cfg); err != nil {
		return err
	}
	for _, tok := range []string{FormatToken, InputToken, OutputToken} {
		if !c.HasToken(tok) {
			return &component.ConfigError{
				Reason: fmt.Sprintf("missing token %s in arguments", tok),
			}
		}
	}
	return nil
}

// Convert transforms inFile into outFile by running the configured tool.
// The input and output formats are derived from the files' extensions and
// must be declared in the converter's format sets. The call blocks until
// the tool exits; the tool inherits this process's standard streams. A
// non-zero exit, or a zero exit that leaves no output file behind, is a
// ConversionError. A failure to launch the tool at all (e.g. the
// executable does not exist) is returned as the underlying error.
func (c *ToolConverter) Convert(inFile, outFile string) error {
	if err := c.CheckInputFile(inFile); err != nil {
		return err
	}
	inFormat := formatOf(inFile)
	outFormat := formatOf(outFile)
	if err := c.CheckFormats(inFormat, outFormat); err != nil {
		return err
	}
	localFormat := outFormat
	if alias, ok := c.aliases[outFormat]; ok {
		localFormat = alias
	}
	invocation := c.Render(map[string]string{
		FormatToken: localFormat,
		InputToken:  inFile,
		OutputToken: outFile,
	})
	if c.log != nil {
		c.log.Infof("Invoking: %s", strings.Join(invocation, " "))
	}
	cmd := exec.Command(invocation[0], invocation[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ConversionError{
			Reason: fmt.Sprintf("%s returned %d", strings.Join(invocation, " "), exitErr.ExitCode()),
		}
	}
	if err != nil {
		// Launch failure: an environment problem, not a conversion failure.
		return err
	}
	if !isRegularFile(outFile) {
		return &ConversionError{Reason: "output file not found: " + outFile}
	}
	return nil
}
