// Package cli provides the command-line interface for the provenance
// converter.
package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/GabrielNunesIT/prov-converter/internal/adapters/comparators"
	"github.com/GabrielNunesIT/prov-converter/internal/adapters/converters"
	"github.com/GabrielNunesIT/prov-converter/internal/config"
	"github.com/GabrielNunesIT/prov-converter/internal/domain"
	"github.com/GabrielNunesIT/prov-converter/internal/standards"
)

// Version is set at build time.
var Version = "0.1.0"

// ConfigFileEnv is the environment variable naming the configuration file,
// consulted when the --config flag is not given.
const ConfigFileEnv = "PROV_CONVERTER_CONFIGURATION"

const defaultConfigFile = "config.yaml"

// CLI holds the command-line interface configuration.
type CLI struct {
	log        logger.ILogger
	rootCmd    *cobra.Command
	configFile string
	inputFile  string
	outputFile string
}

// New creates a new CLI instance.
func New(log logger.ILogger) *CLI {
	cli := &CLI{
		log: log,
	}

	cli.rootCmd = &cobra.Command{
		Use:   "prov-converter",
		Short: "Convert and compare provenance documents via external tools",
		Long: `A CLI tool that converts provenance documents between formats
(PROV-N, Turtle, TriG, PROV-XML, PROV-JSON) by invoking an external
conversion tool such as ProvPy's prov-convert, and compares documents for
equivalence via prov-compare. The tool invocations are described in a YAML
configuration file.`,
		SilenceUsage: true,
	}

	cli.rootCmd.PersistentFlags().StringVarP(&cli.configFile, "config", "c", "",
		"Path to the configuration file (default $"+ConfigFileEnv+" or "+defaultConfigFile+")")

	cli.rootCmd.AddCommand(cli.convertCommand())
	cli.rootCmd.AddCommand(cli.compareCommand())
	cli.rootCmd.AddCommand(cli.formatsCommand())
	cli.rootCmd.AddCommand(cli.configCommand())
	cli.rootCmd.AddCommand(cli.versionCommand())

	return cli
}

// Execute runs the CLI.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

func (c *CLI) convertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a provenance document to another format",
		Long: `Convert a provenance document into another format. The input and
output formats are derived from the file extensions.`,
		RunE: c.runConvert,
	}

	cmd.Flags().StringVarP(&c.inputFile, "input", "i", "", "Path to the input document (required)")
	cmd.Flags().StringVarP(&c.outputFile, "output", "o", "", "Path for the output document (required)")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare FILE1 FILE2",
		Short: "Compare two provenance documents for equivalence",
		Long: `Compare two provenance documents. The files' formats are derived
from their extensions. The command fails when the documents are not
equivalent.`,
		Args: cobra.ExactArgs(2),
		RunE: c.runCompare,
	}
}

func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List recognized and configured formats",
		RunE:  c.runFormats,
	}
}

func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE:  c.runConfig,
	}
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "prov-converter %s %s/%s\n",
				Version, runtime.GOOS, runtime.GOARCH)
		},
	}
}

func (c *CLI) runConvert(_ *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	converter, err := c.getConverter(cfg)
	if err != nil {
		return err
	}

	c.log.Infof("Converting %s to %s", c.inputFile, c.outputFile)

	if err := converter.Convert(c.inputFile, c.outputFile); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	c.log.Infof("Successfully created: %s", c.outputFile)

	return nil
}

func (c *CLI) runCompare(_ *cobra.Command, args []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	comparator, err := c.getComparator(cfg)
	if err != nil {
		return err
	}

	equivalent, err := comparator.Compare(args[0], args[1])
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	if !equivalent {
		return fmt.Errorf("documents are not equivalent: %s, %s", args[0], args[1])
	}

	c.log.Infof("Documents are equivalent: %s, %s", args[0], args[1])

	return nil
}

func (c *CLI) runFormats(cmd *cobra.Command, _ []string) error {
	out := struct {
		Registry []string `yaml:"registry"`
		Input    []string `yaml:"input-formats,omitempty"`
		Output   []string `yaml:"output-formats,omitempty"`
	}{
		Registry: standards.Formats(),
	}

	// The converter's declared sets are included when a configuration is
	// available; the registry listing works without one.
	if cfg, err := c.loadConfig(); err == nil {
		if converter, err := c.getConverter(cfg); err == nil {
			out.Input = converter.InputFormats()
			out.Output = converter.OutputFormats()
		}
	}

	return printYAML(cmd, out)
}

func (c *CLI) runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	return printYAML(cmd, cfg)
}

func (c *CLI) getConverter(cfg *config.Config) (domain.Converter, error) {
	converter := converters.NewProvPyConverter(c.log)
	if err := converter.Configure(cfg.Converter); err != nil {
		return nil, fmt.Errorf("failed to configure converter: %w", err)
	}

	return converter, nil
}

func (c *CLI) getComparator(cfg *config.Config) (domain.Comparator, error) {
	comparator := comparators.NewProvPyComparator(c.log)
	if err := comparator.Configure(cfg.Comparator); err != nil {
		return nil, fmt.Errorf("failed to configure comparator: %w", err)
	}

	return comparator, nil
}

func (c *CLI) loadConfig() (*config.Config, error) {
	path := c.configFile
	if path == "" {
		path = os.Getenv(ConfigFileEnv)
	}
	if path == "" {
		path = defaultConfigFile
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration from %s: %w", path, err)
	}

	return cfg, nil
}

func printYAML(cmd *cobra.Command, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
