package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/utilkit/internal/structdata"
)

const (
	commandNameConstant             = "http-fetch"
	commandShortDescriptionConstant = "Fetch a URL and print the JSON response"
	commandLongDescriptionConstant  = "http-fetch issues a single GET or POST request with a bounded timeout and renders the JSON response body with stable indentation."
	methodFlagNameConstant          = "method"
	methodFlagUsageConstant         = "HTTP method to use (get or post)."
	paramFlagNameConstant           = "param"
	paramFlagUsageConstant          = "Query parameter as key=value; repeatable."
	headerFlagNameConstant          = "header"
	headerFlagUsageConstant         = "Request header as key=value; repeatable."
	bodyFlagNameConstant            = "body"
	bodyFlagUsageConstant           = "Inline JSON request body for POST requests."
	outputFlagNameConstant          = "output"
	outputFlagUsageConstant         = "Write the response to this file instead of standard output."
	methodGetConstant               = "get"
	methodPostConstant              = "post"
	urlArgumentMissingMessage       = "exactly one URL argument is required"
	unsupportedMethodTemplate       = "unsupported method %q: expected get or post"
	malformedPairTemplateConstant   = "malformed key=value pair %q"
	malformedBodyTemplateConstant   = "malformed request body: %v"
	pairSeparatorConstant           = "="
	pairSplitLimitConstant          = 2
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the http-fetch configuration at run time.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the http-fetch cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Transport             Transport
}

// Build constructs the cobra command for single HTTP exchanges.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(methodFlagNameConstant, methodGetConstant, methodFlagUsageConstant)
	command.Flags().StringArray(paramFlagNameConstant, nil, paramFlagUsageConstant)
	command.Flags().StringArray(headerFlagNameConstant, nil, headerFlagUsageConstant)
	command.Flags().String(bodyFlagNameConstant, "", bodyFlagUsageConstant)
	command.Flags().String(outputFlagNameConstant, "", outputFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) != 1 {
		return fmt.Errorf(urlArgumentMissingMessage)
	}
	requestURL := arguments[0]

	methodValue, _ := command.Flags().GetString(methodFlagNameConstant)
	paramPairs, _ := command.Flags().GetStringArray(paramFlagNameConstant)
	headerPairs, _ := command.Flags().GetStringArray(headerFlagNameConstant)
	bodyText, _ := command.Flags().GetString(bodyFlagNameConstant)
	outputPath, _ := command.Flags().GetString(outputFlagNameConstant)

	queryParameters, parameterError := parseKeyValuePairs(paramPairs)
	if parameterError != nil {
		return parameterError
	}
	headers, headerError := parseKeyValuePairs(headerPairs)
	if headerError != nil {
		return headerError
	}

	logger := builder.resolveLogger()
	client := NewClient(logger, builder.resolveTransport())

	var responseValue structdata.Value
	var requestError error
	switch strings.ToLower(methodValue) {
	case methodGetConstant:
		responseValue, requestError = client.Get(command.Context(), requestURL, queryParameters, headers)
	case methodPostConstant:
		requestBody := structdata.Null()
		if len(bodyText) > 0 {
			decodedBody, decodeError := structdata.Decode([]byte(bodyText))
			if decodeError != nil {
				return fmt.Errorf(malformedBodyTemplateConstant, decodeError)
			}
			requestBody = decodedBody
		}
		responseValue, requestError = client.Post(command.Context(), requestURL, requestBody, headers)
	default:
		return fmt.Errorf(unsupportedMethodTemplate, methodValue)
	}
	if requestError != nil {
		return requestError
	}

	if len(outputPath) > 0 {
		return structdata.NewStore(logger).Write(outputPath, responseValue)
	}

	renderedResponse, encodeError := structdata.Encode(responseValue)
	if encodeError != nil {
		return encodeError
	}
	fmt.Fprintln(command.OutOrStdout(), string(renderedResponse))
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

func (builder *CommandBuilder) resolveTransport() Transport {
	if builder.Transport != nil {
		return builder.Transport
	}

	timeoutSeconds := defaultTimeoutSecondsConstant
	if builder.ConfigurationProvider != nil {
		configuredTimeout := builder.ConfigurationProvider().TimeoutSeconds
		if configuredTimeout > 0 {
			timeoutSeconds = configuredTimeout
		}
	}
	return &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second}
}

func parseKeyValuePairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	parsedPairs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		pairParts := strings.SplitN(pair, pairSeparatorConstant, pairSplitLimitConstant)
		if len(pairParts) != pairSplitLimitConstant || len(pairParts[0]) == 0 {
			return nil, fmt.Errorf(malformedPairTemplateConstant, pair)
		}
		parsedPairs[pairParts[0]] = pairParts[1]
	}
	return parsedPairs, nil
}
