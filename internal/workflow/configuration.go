package workflow

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configurationLoadErrorTemplateConstant        = "failed to load workflow configuration: %w"
	configurationParseErrorTemplateConstant       = "failed to parse workflow configuration: %w"
	configurationPathRequiredMessageConstant      = "workflow configuration path must be provided"
	configurationEmptyStepsMessageConstant        = "workflow configuration must define at least one step"
	configurationOperationMissingTemplateConstant = "workflow step %d is missing an operation name"
	configurationUnknownOperationTemplateConstant = "workflow step %d names unknown operation %q"
)

// OperationType identifies supported workflow operations.
type OperationType string

// Supported workflow operations.
const (
	OperationTypeHTTPFetch   OperationType = OperationType("http-fetch")
	OperationTypeCSVFill     OperationType = OperationType("csv-fill")
	OperationTypeJSONCopy    OperationType = OperationType("json-copy")
	OperationTypeDateConvert OperationType = OperationType("date-convert")
)

var supportedOperationTypes = map[OperationType]struct{}{
	OperationTypeHTTPFetch:   {},
	OperationTypeCSVFill:     {},
	OperationTypeJSONCopy:    {},
	OperationTypeDateConvert: {},
}

// Configuration describes the ordered workflow steps loaded from YAML or JSON.
type Configuration struct {
	Steps []StepConfiguration `yaml:"steps" json:"steps"`
}

// StepConfiguration associates an operation type with declarative options.
type StepConfiguration struct {
	Operation OperationType     `yaml:"operation" json:"operation"`
	Options   map[string]string `yaml:"with" json:"with"`
}

// LoadConfiguration reads the workflow definition from disk and performs
// basic validation.
func LoadConfiguration(filePath string) (Configuration, error) {
	trimmedPath := strings.TrimSpace(filePath)
	if len(trimmedPath) == 0 {
		return Configuration{}, errors.New(configurationPathRequiredMessageConstant)
	}

	contentBytes, readError := os.ReadFile(trimmedPath)
	if readError != nil {
		return Configuration{}, fmt.Errorf(configurationLoadErrorTemplateConstant, readError)
	}

	var configuration Configuration
	if unmarshalError := yaml.Unmarshal(contentBytes, &configuration); unmarshalError != nil {
		return Configuration{}, fmt.Errorf(configurationParseErrorTemplateConstant, unmarshalError)
	}

	if len(configuration.Steps) == 0 {
		return Configuration{}, errors.New(configurationEmptyStepsMessageConstant)
	}

	for stepIndex := range configuration.Steps {
		trimmedOperation := OperationType(strings.TrimSpace(string(configuration.Steps[stepIndex].Operation)))
		if len(trimmedOperation) == 0 {
			return Configuration{}, fmt.Errorf(configurationOperationMissingTemplateConstant, stepIndex)
		}
		if _, operationSupported := supportedOperationTypes[trimmedOperation]; !operationSupported {
			return Configuration{}, fmt.Errorf(configurationUnknownOperationTemplateConstant, stepIndex, trimmedOperation)
		}
		configuration.Steps[stepIndex].Operation = trimmedOperation
	}

	return configuration, nil
}
