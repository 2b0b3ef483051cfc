package structdata

import (
	"os"

	"go.uber.org/zap"

	"github.com/temirov/utilkit/internal/failures"
)

const (
	readOperationNameConstant        = "ReadStructuredData"
	writeOperationNameConstant       = "WriteStructuredData"
	readFailureMessageConstant       = "unable to read structured data file"
	parseFailureMessageConstant      = "unable to parse structured data file"
	encodeFailureMessageConstant     = "unable to encode structured data"
	writeFailureMessageConstant      = "unable to write structured data file"
	writeSuccessMessageConstant      = "structured data file saved"
	logFieldPathConstant             = "path"
	structuredFilePermissionConstant = 0o644
)

// Store reads and writes structured data files through a shared logger.
type Store struct {
	logger *zap.Logger
}

// NewStore constructs a Store writing diagnostics to the provided logger.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// Read loads and parses the structured data file at filePath.
func (store *Store) Read(filePath string) (Value, error) {
	documentBytes, readError := os.ReadFile(filePath)
	if readError != nil {
		store.logger.Error(readFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(readError))
		return Value{}, failures.NewFileIO(readOperationNameConstant, readError)
	}

	decodedValue, decodeError := Decode(documentBytes)
	if decodeError != nil {
		store.logger.Error(parseFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(decodeError))
		return Value{}, failures.NewParse(readOperationNameConstant, decodeError)
	}

	return decodedValue, nil
}

// Write serializes value with four-space indentation and overwrites filePath.
func (store *Store) Write(filePath string, value Value) error {
	documentBytes, encodeError := Encode(value)
	if encodeError != nil {
		store.logger.Error(encodeFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(encodeError))
		return failures.NewParse(writeOperationNameConstant, encodeError)
	}

	if writeError := os.WriteFile(filePath, documentBytes, structuredFilePermissionConstant); writeError != nil {
		store.logger.Error(writeFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(writeError))
		return failures.NewFileIO(writeOperationNameConstant, writeError)
	}

	store.logger.Info(writeSuccessMessageConstant, zap.String(logFieldPathConstant, filePath))
	return nil
}
