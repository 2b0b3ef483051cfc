package dates

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	commandNameConstant             = "date-convert"
	commandShortDescriptionConstant = "Convert a date between directive formats"
	commandLongDescriptionConstant  = "date-convert parses a date against an input format expressed with percent directives and re-renders it using an output format."
	inputFormatFlagNameConstant     = "input-format"
	inputFormatFlagUsageConstant    = "Directive format the date argument is parsed against."
	outputFormatFlagNameConstant    = "output-format"
	outputFormatFlagUsageConstant   = "Directive format used to render the result."
	defaultInputFormatConstant      = "%Y-%m-%d"
	defaultOutputFormatConstant     = "%d-%m-%Y"
	dateArgumentMissingMessage      = "exactly one date argument is required"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the date-convert cobra command.
type CommandBuilder struct {
	LoggerProvider LoggerProvider
	Clock          Clock
}

// Build constructs the cobra command for date format conversion.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(inputFormatFlagNameConstant, defaultInputFormatConstant, inputFormatFlagUsageConstant)
	command.Flags().String(outputFormatFlagNameConstant, defaultOutputFormatConstant, outputFormatFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) != 1 {
		return fmt.Errorf(dateArgumentMissingMessage)
	}

	inputFormat, _ := command.Flags().GetString(inputFormatFlagNameConstant)
	outputFormat, _ := command.Flags().GetString(outputFormatFlagNameConstant)

	service := NewService(builder.resolveLogger(), builder.Clock)
	convertedDate, convertError := service.ConvertFormat(arguments[0], inputFormat, outputFormat)
	if convertError != nil {
		return convertError
	}

	fmt.Fprintln(command.OutOrStdout(), convertedDate)
	return nil
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
