package tabular_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/utilkit/internal/tabular"
)

func executeFillCommand(testInstance *testing.T, configuration tabular.Configuration, arguments []string) error {
	builder := tabular.CommandBuilder{
		LoggerProvider:        func() *zap.Logger { return zap.NewNop() },
		ConfigurationProvider: func() tabular.Configuration { return configuration },
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs(arguments)
	return command.Execute()
}

func TestCSVFillCommandFillsColumnInPlace(testInstance *testing.T) {
	datasetPath := filepath.Join(testInstance.TempDir(), "dataset.csv")
	require.NoError(testInstance, os.WriteFile(datasetPath, []byte("name,status\nalpha,active\nbeta,\n"), 0o644))

	executionError := executeFillCommand(testInstance,
		tabular.Configuration{FillValue: tabular.DefaultFillValue},
		[]string{"--column", "status", datasetPath})
	require.NoError(testInstance, executionError)

	updatedContents, readError := os.ReadFile(datasetPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, "name,status\nalpha,active\nbeta,Unknown\n", string(updatedContents))
}

func TestCSVFillCommandWritesToSeparateOutput(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	inputPath := filepath.Join(temporaryDirectory, "input.csv")
	outputPath := filepath.Join(temporaryDirectory, "output.csv")
	require.NoError(testInstance, os.WriteFile(inputPath, []byte("name,status\nbeta,\n"), 0o644))

	executionError := executeFillCommand(testInstance,
		tabular.Configuration{},
		[]string{"--column", "status", "--fill-value", "pending", "--output", outputPath, inputPath})
	require.NoError(testInstance, executionError)

	originalContents, _ := os.ReadFile(inputPath)
	require.Equal(testInstance, "name,status\nbeta,\n", string(originalContents))

	rewrittenContents, readError := os.ReadFile(outputPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, "name,status\nbeta,pending\n", string(rewrittenContents))
}

func TestCSVFillCommandRequiresColumnFlag(testInstance *testing.T) {
	datasetPath := filepath.Join(testInstance.TempDir(), "dataset.csv")
	require.NoError(testInstance, os.WriteFile(datasetPath, []byte("name,status\nbeta,\n"), 0o644))

	executionError := executeFillCommand(testInstance, tabular.Configuration{}, []string{datasetPath})
	require.Error(testInstance, executionError)
}

func TestCSVFillCommandSurfacesReadFailure(testInstance *testing.T) {
	executionError := executeFillCommand(testInstance, tabular.Configuration{},
		[]string{"--column", "status", filepath.Join(testInstance.TempDir(), "absent.csv")})
	require.Error(testInstance, executionError)
}
