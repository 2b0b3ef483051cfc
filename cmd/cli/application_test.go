package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/temirov/utilkit/cmd/cli"
)

const (
	applicationBinaryNameConstant = "utilkit"
	logFileFlagConstant           = "--log-file"
)

func decodeEmbeddedDefaults(testInstance *testing.T) cli.ApplicationConfiguration {
	viperInstance := viper.New()
	viperInstance.SetConfigType("yaml")
	require.NoError(testInstance, viperInstance.ReadConfig(bytes.NewReader(cli.EmbeddedDefaultConfiguration())))

	var decodedConfiguration cli.ApplicationConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "mapstructure", Result: &decodedConfiguration})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(viperInstance.AllSettings()))
	return decodedConfiguration
}

func TestEmbeddedDefaultConfigurationValues(testInstance *testing.T) {
	decodedConfiguration := decodeEmbeddedDefaults(testInstance)

	require.Equal(testInstance, "info", decodedConfiguration.Common.LogLevel)
	require.Equal(testInstance, "app.log", decodedConfiguration.Common.LogFile)
	require.Equal(testInstance, 10, decodedConfiguration.Tools.HTTPFetch.TimeoutSeconds)
	require.Equal(testInstance, "Unknown", decodedConfiguration.Tools.CSVFill.FillValue)
}

func executeApplication(testInstance *testing.T, arguments []string) error {
	originalArguments := os.Args
	defer func() { os.Args = originalArguments }()
	os.Args = append([]string{applicationBinaryNameConstant}, arguments...)
	return cli.Execute()
}

func TestExecuteWritesConfiguredLogFile(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	logFilePath := filepath.Join(temporaryDirectory, "utilkit.log")

	executionError := executeApplication(testInstance, []string{"random-string", logFileFlagConstant, logFilePath})
	require.NoError(testInstance, executionError)

	logContents, readError := os.ReadFile(logFilePath)
	require.NoError(testInstance, readError)
	require.Contains(testInstance, string(logContents), "configuration initialized")
}

func TestExecuteDateConvertCommand(testInstance *testing.T) {
	logFilePath := filepath.Join(testInstance.TempDir(), "utilkit.log")

	executionError := executeApplication(testInstance, []string{"date-convert", "2024-01-15", logFileFlagConstant, logFilePath})
	require.NoError(testInstance, executionError)
}

func TestExecuteReportsUnknownCommand(testInstance *testing.T) {
	logFilePath := filepath.Join(testInstance.TempDir(), "utilkit.log")

	executionError := executeApplication(testInstance, []string{"no-such-command", logFileFlagConstant, logFilePath})
	require.Error(testInstance, executionError)
}
