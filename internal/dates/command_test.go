package dates_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/utilkit/internal/dates"
)

func executeConvertCommand(testInstance *testing.T, arguments []string) (string, error) {
	builder := dates.CommandBuilder{
		LoggerProvider: func() *zap.Logger { return zap.NewNop() },
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs(arguments)
	executionError := command.Execute()
	return outputBuffer.String(), executionError
}

func TestDateConvertCommandUsesDefaultFormats(testInstance *testing.T) {
	commandOutput, executionError := executeConvertCommand(testInstance, []string{"2024-01-15"})
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "15-01-2024\n", commandOutput)
}

func TestDateConvertCommandHonorsExplicitFormats(testInstance *testing.T) {
	commandOutput, executionError := executeConvertCommand(testInstance, []string{
		"--input-format", "%d/%m/%Y",
		"--output-format", "%Y-%m-%d",
		"15/01/2024",
	})
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "2024-01-15\n", commandOutput)
}

func TestDateConvertCommandSurfacesParseFailure(testInstance *testing.T) {
	_, executionError := executeConvertCommand(testInstance, []string{"not-a-date"})
	require.Error(testInstance, executionError)
}
