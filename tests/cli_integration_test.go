package tests

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var randomStringOutputPattern = regexp.MustCompile(`^[A-Za-z0-9]{12}$`)

func TestRandomStringCommandIntegration(testInstance *testing.T) {
	arguments := append([]string{"random-string", "--length", "12"}, temporaryLogFlag(testInstance)...)
	commandOutput, runError := runCLICommand(testInstance, arguments)
	require.NoError(testInstance, runError, commandOutput)

	outputLines := strings.Split(strings.TrimSpace(commandOutput), "\n")
	generatedValue := outputLines[len(outputLines)-1]
	require.Regexp(testInstance, randomStringOutputPattern, generatedValue)
}

func TestDateConvertCommandIntegration(testInstance *testing.T) {
	arguments := append([]string{"date-convert", "2024-01-15"}, temporaryLogFlag(testInstance)...)
	commandOutput, runError := runCLICommand(testInstance, arguments)
	require.NoError(testInstance, runError, commandOutput)
	require.Contains(testInstance, commandOutput, "15-01-2024")
}

func TestDateConvertCommandIntegrationFailure(testInstance *testing.T) {
	arguments := append([]string{"date-convert", "not-a-date"}, temporaryLogFlag(testInstance)...)
	commandOutput, runError := runCLICommand(testInstance, arguments)
	require.Error(testInstance, runError, commandOutput)
}

func TestCSVFillCommandIntegration(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	datasetPath := filepath.Join(temporaryDirectory, "dataset.csv")
	require.NoError(testInstance, os.WriteFile(datasetPath, []byte("name,status\nalpha,active\nbeta,\n"), 0o644))

	arguments := append([]string{"csv-fill", "--column", "status", datasetPath}, temporaryLogFlag(testInstance)...)
	commandOutput, runError := runCLICommand(testInstance, arguments)
	require.NoError(testInstance, runError, commandOutput)

	updatedContents, readError := os.ReadFile(datasetPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, "name,status\nalpha,active\nbeta,Unknown\n", string(updatedContents))
}

func TestWorkflowCommandIntegration(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	datasetPath := filepath.Join(temporaryDirectory, "dataset.csv")
	require.NoError(testInstance, os.WriteFile(datasetPath, []byte("name,status\nbeta,\n"), 0o644))

	workflowPath := filepath.Join(temporaryDirectory, "workflow.yaml")
	workflowDocument := "steps:\n" +
		"  - operation: csv-fill\n" +
		"    with:\n" +
		"      path: " + datasetPath + "\n" +
		"      column: status\n" +
		"      fill_value: pending\n" +
		"  - operation: date-convert\n" +
		"    with:\n" +
		"      value: \"2024-01-15\"\n"
	require.NoError(testInstance, os.WriteFile(workflowPath, []byte(workflowDocument), 0o644))

	arguments := append([]string{"workflow", workflowPath}, temporaryLogFlag(testInstance)...)
	commandOutput, runError := runCLICommand(testInstance, arguments)
	require.NoError(testInstance, runError, commandOutput)

	updatedContents, readError := os.ReadFile(datasetPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, "name,status\nbeta,pending\n", string(updatedContents))
}
