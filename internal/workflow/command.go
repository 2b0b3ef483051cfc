package workflow

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/utilkit/internal/httpapi"
	"github.com/temirov/utilkit/internal/toolkit"
)

const (
	commandNameConstant             = "workflow"
	commandShortDescriptionConstant = "Run helper operations from a workflow file"
	commandLongDescriptionConstant  = "workflow executes the steps declared in a YAML or JSON workflow document one at a time, stopping at the first failure."
	workflowArgumentMissingMessage  = "exactly one workflow file argument is required"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// HTTPConfigurationProvider supplies the HTTP fetch configuration applied to
// workflow http-fetch steps.
type HTTPConfigurationProvider func() httpapi.Configuration

// CommandBuilder assembles the workflow cobra command.
type CommandBuilder struct {
	LoggerProvider            LoggerProvider
	HTTPConfigurationProvider HTTPConfigurationProvider
	Transport                 httpapi.Transport
}

// Build constructs the cobra command for workflow execution.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) != 1 {
		return fmt.Errorf(workflowArgumentMissingMessage)
	}

	configuration, configurationError := LoadConfiguration(arguments[0])
	if configurationError != nil {
		return configurationError
	}

	logger := builder.resolveLogger()
	helperToolkit := toolkit.New(toolkit.Dependencies{Logger: logger, Transport: builder.resolveTransport()})
	runner := NewRunner(helperToolkit, logger)
	return runner.Run(command.Context(), configuration)
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveTransport() httpapi.Transport {
	if builder.Transport != nil {
		return builder.Transport
	}
	if builder.HTTPConfigurationProvider == nil {
		return nil
	}
	configuredTimeout := builder.HTTPConfigurationProvider().TimeoutSeconds
	if configuredTimeout <= 0 {
		return nil
	}
	return &http.Client{Timeout: time.Duration(configuredTimeout) * time.Second}
}
