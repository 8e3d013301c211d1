package converters_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielNunesIT/prov-converter/internal/adapters/converters"
	"github.com/GabrielNunesIT/prov-converter/internal/component"
)

// writeScript writes a fake conversion tool to dir and returns its path.
// Tests invoke it through /bin/sh, the way the real converter would run an
// interpreter plus script.
func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "prov-convert-dummy.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

// toolConfig returns a valid configuration invoking script via /bin/sh with
// the standard prov-convert argument shape.
func toolConfig(script string) component.Config {
	return component.Config{
		"executable":     []string{"/bin/sh", script},
		"arguments":      "-f FORMAT INPUT OUTPUT",
		"input-formats":  []string{"json"},
		"output-formats": []string{"provn", "provx", "json"},
	}
}

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	inFile := filepath.Join(dir, "testcase.json")
	require.NoError(t, os.WriteFile(inFile, []byte(`{"prefix": {}}`), 0o644))
	return inFile
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	// Copies the input to the output, like a well-behaved tool.
	script := writeScript(t, dir, `cp "$3" "$4"`)
	inFile := writeInput(t, dir)
	outFile := filepath.Join(dir, "testcase.provn")

	converter := converters.NewProvPyConverter(nil)
	require.NoError(t, converter.Configure(toolConfig(script)))

	require.NoError(t, converter.Convert(inFile, outFile))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, `{"prefix": {}}`, string(data))
}

func TestConvertAppliesLocalFormatAlias(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	// Records its arguments and produces the output.
	script := writeScript(t, dir, `printf '%s\n' "$@" > `+argsFile+`; cp "$3" "$4"`)
	inFile := writeInput(t, dir)
	outFile := filepath.Join(dir, "testcase.provx")

	converter := converters.NewProvPyConverter(nil)
	require.NoError(t, converter.Configure(toolConfig(script)))

	require.NoError(t, converter.Convert(inFile, outFile))

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	// provx is spelled xml on the prov-convert command line.
	assert.Equal(t, []string{"-f", "xml", inFile, outFile}, strings.Fields(string(data)))
}

func TestConvertPassesRegistryFormatWhenNoAlias(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	script := writeScript(t, dir, `printf '%s\n' "$@" > `+argsFile+`; cp "$3" "$4"`)
	inFile := writeInput(t, dir)
	outFile := filepath.Join(dir, "testcase.provn")

	converter := converters.NewProvPyConverter(nil)
	require.NoError(t, converter.Configure(toolConfig(script)))

	require.NoError(t, converter.Convert(inFile, outFile))

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"-f", "provn", inFile, outFile}, strings.Fields(string(data)))
}

func TestConvertIsRepeatable(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, `cp "$3" "$4"`)
	inFile := writeInput(t, dir)
	outFile := filepath.Join(dir, "testcase.provn")

	converter := converters.NewProvPyConverter(nil)
	require.NoError(t, converter.Configure(toolConfig(script)))

	for range 2 {
		require.NoError(t, converter.Convert(inFile, outFile))

		data, err := os.ReadFile(outFile)
		require.NoError(t, err)
		assert.Equal(t, `{"prefix": {}}`, string(data))
	}
}

func TestConvertMissingInputFileSpawnsNoProcess(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "ran")
	script := writeScript(t, dir, `touch `+marker)
	missing := filepath.Join(dir, "nosuchfile.json")
	outFile := filepath.Join(dir, "testcase.provn")

	converter := converters.NewProvPyConverter(nil)
	require.NoError(t, converter.Configure(toolConfig(script)))

	err := converter.Convert(missing, outFile)

	var convErr *converters.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, convErr.Error(), missing)
	assert.NoFileExists(t, marker)
}

func TestConvertUnsupportedFormats(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "ran")
	script := writeScript(t, dir, `touch `+marker)
	inFile := writeInput(t, dir)

	converter := converters.NewProvPyConverter(nil)
	require.NoError(t, converter.Configure(toolConfig(script)))

	// json is the only declared input format; ttl is not a declared output.
	ttlFile := filepath.Join(dir, "testcase.ttl")
	require.NoError(t, os.WriteFile(ttlFile, []byte("@prefix"), 0o644))

	var convErr *converters.ConversionError

	err := converter.Convert(ttlFile, filepath.Join(dir, "out.provn"))
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, convErr.Error(), "unsupported input format: ttl")

	err = converter.Convert(inFile, filepath.Join(dir, "out.ttl"))
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, convErr.Error(), "unsupported output format: ttl")

	assert.NoFileExists(t, marker)
}

func TestConvertNonZeroExit(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, `exit 2`)
	inFile := writeInput(t, dir)
	outFile := filepath.Join(dir, "testcase.provn")

	converter := converters.NewProvPyConverter(nil)
	require.NoError(t, converter.Configure(toolConfig(script)))

	err := converter.Convert(inFile, outFile)

	var convErr *converters.ConversionError
	require.ErrorAs(t, err, &convErr)
	// The message carries the full invocation and the exit status.
	assert.Contains(t, convErr.Error(), "returned 2")
	assert.Contains(t, convErr.Error(), script)
	assert.Contains(t, convErr.Error(), inFile)
	assert.Contains(t, convErr.Error(), outFile)
}

func TestConvertMissingOutputFile(t *testing.T) {
	dir := t.TempDir()
	// Exits cleanly without producing anything.
	script := writeScript(t, dir, `exit 0`)
	inFile := writeInput(t, dir)
	outFile := filepath.Join(dir, "testcase.provn")

	converter := converters.NewProvPyConverter(nil)
	require.NoError(t, converter.Configure(toolConfig(script)))

	err := converter.Convert(inFile, outFile)

	var convErr *converters.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, convErr.Error(), "output file not found")
	assert.Contains(t, convErr.Error(), outFile)
}

func TestConvertLaunchFailureIsNotConversionError(t *testing.T) {
	dir := t.TempDir()
	inFile := writeInput(t, dir)
	outFile := filepath.Join(dir, "testcase.provn")

	converter := converters.NewProvPyConverter(nil)
	cfg := component.Config{
		"executable":     filepath.Join(dir, "nosuchtool"),
		"arguments":      "-f FORMAT INPUT OUTPUT",
		"input-formats":  []string{"json"},
		"output-formats": []string{"provn"},
	}
	require.NoError(t, converter.Configure(cfg))

	err := converter.Convert(inFile, outFile)
	require.Error(t, err)

	var convErr *converters.ConversionError
	assert.False(t, errors.As(err, &convErr))
}

func TestConfigureMissingToken(t *testing.T) {
	tests := []struct {
		name      string
		arguments string
		want      string
	}{
		{name: "missing FORMAT", arguments: "INPUT OUTPUT", want: "FORMAT"},
		{name: "missing INPUT", arguments: "-f FORMAT OUTPUT", want: "INPUT"},
		{name: "missing OUTPUT", arguments: "-f FORMAT INPUT", want: "OUTPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converter := converters.NewProvPyConverter(nil)
			err := converter.Configure(component.Config{
				"executable":     "prov-convert",
				"arguments":      tt.arguments,
				"input-formats":  []string{"json"},
				"output-formats": []string{"provn"},
			})

			var cfgErr *component.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, cfgErr.Error(), "missing token "+tt.want)
		})
	}
}

func TestConfigureMissingCommandLineKeys(t *testing.T) {
	converter := converters.NewProvPyConverter(nil)
	err := converter.Configure(component.Config{
		"input-formats":  []string{"json"},
		"output-formats": []string{"provn"},
	})

	var cfgErr *component.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestName(t *testing.T) {
	assert.Equal(t, "provpy", converters.NewProvPyConverter(nil).Name())

	custom := converters.NewToolConverter("provtoolbox", nil, nil)
	assert.Equal(t, "provtoolbox", custom.Name())
}
