package tabular

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	commandNameConstant             = "csv-fill"
	commandShortDescriptionConstant = "Fill missing values in a CSV column"
	commandLongDescriptionConstant  = "csv-fill loads a CSV file, substitutes a fill value for empty cells in the named column, and writes the table back without an index column."
	columnFlagNameConstant          = "column"
	columnFlagUsageConstant         = "Column whose empty cells receive the fill value."
	fillValueFlagNameConstant       = "fill-value"
	fillValueFlagUsageConstant      = "Value substituted for empty cells."
	outputFlagNameConstant          = "output"
	outputFlagUsageConstant         = "Destination path; defaults to overwriting the input file."
	pathArgumentMissingMessage      = "exactly one CSV path argument is required"
	columnRequiredMessageConstant   = "a column name is required"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the csv-fill configuration at run time.
type ConfigurationProvider func() Configuration

// Configuration captures csv-fill settings sourced from the application
// configuration.
type Configuration struct {
	FillValue string `mapstructure:"fill_value"`
}

// DefaultConfigurationValues supplies embedded defaults for the csv-fill command.
func DefaultConfigurationValues() map[string]any {
	return map[string]any{
		"tools.csv_fill.fill_value": DefaultFillValue,
	}
}

// CommandBuilder assembles the csv-fill cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
}

// Build constructs the cobra command for missing-value substitution.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(columnFlagNameConstant, "", columnFlagUsageConstant)
	command.Flags().String(fillValueFlagNameConstant, "", fillValueFlagUsageConstant)
	command.Flags().String(outputFlagNameConstant, "", outputFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) != 1 {
		return fmt.Errorf(pathArgumentMissingMessage)
	}
	datasetPath := arguments[0]

	columnName, _ := command.Flags().GetString(columnFlagNameConstant)
	if len(columnName) == 0 {
		return fmt.Errorf(columnRequiredMessageConstant)
	}

	fillValue, _ := command.Flags().GetString(fillValueFlagNameConstant)
	if len(fillValue) == 0 && builder.ConfigurationProvider != nil {
		fillValue = builder.ConfigurationProvider().FillValue
	}

	outputPath, _ := command.Flags().GetString(outputFlagNameConstant)
	if len(outputPath) == 0 {
		outputPath = datasetPath
	}

	store := NewStore(builder.resolveLogger())
	dataset, readError := store.Read(datasetPath)
	if readError != nil {
		return readError
	}

	store.FillMissing(dataset, columnName, fillValue)
	return store.Write(outputPath, dataset)
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
