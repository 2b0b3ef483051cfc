package workflow

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/utilkit/internal/structdata"
	"github.com/temirov/utilkit/internal/toolkit"
)

const (
	urlOptionKeyConstant              = "url"
	methodOptionKeyConstant           = "method"
	bodyOptionKeyConstant             = "body"
	outputOptionKeyConstant           = "output"
	pathOptionKeyConstant             = "path"
	columnOptionKeyConstant           = "column"
	fillValueOptionKeyConstant        = "fill_value"
	sourceOptionKeyConstant           = "source"
	destinationOptionKeyConstant      = "destination"
	valueOptionKeyConstant            = "value"
	inputFormatOptionKeyConstant      = "input_format"
	outputFormatOptionKeyConstant     = "output_format"
	postMethodValueConstant           = "post"
	getMethodValueConstant            = "get"
	defaultInputFormatConstant        = "%Y-%m-%d"
	defaultOutputFormatConstant       = "%d-%m-%Y"
	missingOptionTemplateConstant     = "workflow step %d (%s) requires option %q"
	unsupportedMethodTemplateConstant = "workflow step %d (%s) has unsupported method %q"
	malformedBodyTemplateConstant     = "workflow step %d (%s) has a malformed body: %w"
	stepFailedTemplateConstant        = "workflow step %d (%s) failed: %w"
	stepCompletedMessageConstant      = "workflow step completed"
	dateConvertedMessageConstant      = "date converted"
	logFieldStepIndexConstant         = "step_index"
	logFieldOperationConstant         = "operation"
	logFieldResultConstant            = "result"
)

// Runner executes workflow steps sequentially against a shared toolkit.
type Runner struct {
	toolkit *toolkit.Toolkit
	logger  *zap.Logger
}

// NewRunner constructs a Runner over the provided toolkit and logger.
func NewRunner(helperToolkit *toolkit.Toolkit, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{toolkit: helperToolkit, logger: logger}
}

// Run executes every configured step in order, stopping at the first failure.
func (runner *Runner) Run(executionContext context.Context, configuration Configuration) error {
	for stepIndex, step := range configuration.Steps {
		if stepError := runner.runStep(executionContext, stepIndex, step); stepError != nil {
			return fmt.Errorf(stepFailedTemplateConstant, stepIndex, step.Operation, stepError)
		}
		runner.logger.Info(stepCompletedMessageConstant,
			zap.Int(logFieldStepIndexConstant, stepIndex),
			zap.String(logFieldOperationConstant, string(step.Operation)))
	}
	return nil
}

func (runner *Runner) runStep(executionContext context.Context, stepIndex int, step StepConfiguration) error {
	switch step.Operation {
	case OperationTypeHTTPFetch:
		return runner.runHTTPFetch(executionContext, stepIndex, step)
	case OperationTypeCSVFill:
		return runner.runCSVFill(stepIndex, step)
	case OperationTypeJSONCopy:
		return runner.runJSONCopy(stepIndex, step)
	case OperationTypeDateConvert:
		return runner.runDateConvert(stepIndex, step)
	default:
		return fmt.Errorf(configurationUnknownOperationTemplateConstant, stepIndex, step.Operation)
	}
}

func (runner *Runner) runHTTPFetch(executionContext context.Context, stepIndex int, step StepConfiguration) error {
	requestURL, urlError := requiredOption(stepIndex, step, urlOptionKeyConstant)
	if urlError != nil {
		return urlError
	}

	methodValue := strings.ToLower(step.Options[methodOptionKeyConstant])
	if len(methodValue) == 0 {
		methodValue = getMethodValueConstant
	}

	var responseValue structdata.Value
	var requestError error
	switch methodValue {
	case getMethodValueConstant:
		responseValue, requestError = runner.toolkit.HTTPClient.Get(executionContext, requestURL, nil, nil)
	case postMethodValueConstant:
		requestBody := structdata.Null()
		if bodyText, bodyProvided := step.Options[bodyOptionKeyConstant]; bodyProvided {
			decodedBody, decodeError := structdata.Decode([]byte(bodyText))
			if decodeError != nil {
				return fmt.Errorf(malformedBodyTemplateConstant, stepIndex, step.Operation, decodeError)
			}
			requestBody = decodedBody
		}
		responseValue, requestError = runner.toolkit.HTTPClient.Post(executionContext, requestURL, requestBody, nil)
	default:
		return fmt.Errorf(unsupportedMethodTemplateConstant, stepIndex, step.Operation, methodValue)
	}
	if requestError != nil {
		return requestError
	}

	if outputPath, outputProvided := step.Options[outputOptionKeyConstant]; outputProvided {
		return runner.toolkit.StructuredStore.Write(outputPath, responseValue)
	}
	return nil
}

func (runner *Runner) runCSVFill(stepIndex int, step StepConfiguration) error {
	datasetPath, pathError := requiredOption(stepIndex, step, pathOptionKeyConstant)
	if pathError != nil {
		return pathError
	}
	columnName, columnError := requiredOption(stepIndex, step, columnOptionKeyConstant)
	if columnError != nil {
		return columnError
	}

	dataset, readError := runner.toolkit.TabularStore.Read(datasetPath)
	if readError != nil {
		return readError
	}

	runner.toolkit.TabularStore.FillMissing(dataset, columnName, step.Options[fillValueOptionKeyConstant])

	outputPath := step.Options[outputOptionKeyConstant]
	if len(outputPath) == 0 {
		outputPath = datasetPath
	}
	return runner.toolkit.TabularStore.Write(outputPath, dataset)
}

func (runner *Runner) runJSONCopy(stepIndex int, step StepConfiguration) error {
	sourcePath, sourceError := requiredOption(stepIndex, step, sourceOptionKeyConstant)
	if sourceError != nil {
		return sourceError
	}
	destinationPath, destinationError := requiredOption(stepIndex, step, destinationOptionKeyConstant)
	if destinationError != nil {
		return destinationError
	}

	documentValue, readError := runner.toolkit.StructuredStore.Read(sourcePath)
	if readError != nil {
		return readError
	}
	return runner.toolkit.StructuredStore.Write(destinationPath, documentValue)
}

func (runner *Runner) runDateConvert(stepIndex int, step StepConfiguration) error {
	dateText, valueError := requiredOption(stepIndex, step, valueOptionKeyConstant)
	if valueError != nil {
		return valueError
	}

	inputFormat := step.Options[inputFormatOptionKeyConstant]
	if len(inputFormat) == 0 {
		inputFormat = defaultInputFormatConstant
	}
	outputFormat := step.Options[outputFormatOptionKeyConstant]
	if len(outputFormat) == 0 {
		outputFormat = defaultOutputFormatConstant
	}

	convertedDate, convertError := runner.toolkit.Dates.ConvertFormat(dateText, inputFormat, outputFormat)
	if convertError != nil {
		return convertError
	}

	runner.logger.Info(dateConvertedMessageConstant,
		zap.Int(logFieldStepIndexConstant, stepIndex),
		zap.String(logFieldResultConstant, convertedDate))
	return nil
}

func requiredOption(stepIndex int, step StepConfiguration, optionKey string) (string, error) {
	optionValue := strings.TrimSpace(step.Options[optionKey])
	if len(optionValue) == 0 {
		return "", fmt.Errorf(missingOptionTemplateConstant, stepIndex, step.Operation, optionKey)
	}
	return optionValue, nil
}
