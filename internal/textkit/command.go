package textkit

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	commandNameConstant             = "random-string"
	commandShortDescriptionConstant = "Generate a random alphanumeric string"
	commandLongDescriptionConstant  = "random-string samples alphanumeric characters with replacement; the output is not suitable for secrets."
	lengthFlagNameConstant          = "length"
	lengthFlagUsageConstant         = "Number of characters to generate."
	invalidLengthTemplateConstant   = "length must be positive, got %d"
)

// CommandBuilder assembles the random-string cobra command.
type CommandBuilder struct{}

// Build constructs the cobra command for random string generation.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	command.Flags().Int(lengthFlagNameConstant, DefaultRandomLength, lengthFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	requestedLength, _ := command.Flags().GetInt(lengthFlagNameConstant)
	if requestedLength <= 0 {
		return fmt.Errorf(invalidLengthTemplateConstant, requestedLength)
	}

	fmt.Fprintln(command.OutOrStdout(), RandomString(requestedLength))
	return nil
}
