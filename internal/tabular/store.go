package tabular

import (
	"encoding/csv"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/temirov/utilkit/internal/failures"
)

const (
	readOperationNameConstant    = "ReadTabularData"
	writeOperationNameConstant   = "WriteTabularData"
	openFailureMessageConstant   = "unable to open tabular data file"
	parseFailureMessageConstant  = "unable to parse tabular data file"
	headerMissingMessageConstant = "tabular data file has no header row"
	createFailureMessageConstant = "unable to create tabular data file"
	flushFailureMessageConstant  = "unable to flush tabular data file"
	writeSuccessMessageConstant  = "tabular data file saved"
	fillAppliedMessageConstant   = "missing values filled"
	logFieldPathConstant         = "path"
	logFieldColumnConstant       = "column"
	logFieldFillValueConstant    = "fill_value"
	defaultFillValueConstant     = "Unknown"
)

// DefaultFillValue substitutes for missing cells when callers do not choose one.
const DefaultFillValue = defaultFillValueConstant

// Store reads and writes CSV files through a shared logger.
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

// Read parses the CSV file at filePath into a dataset, treating the first
// record as the header row.
func (store *Store) Read(filePath string) (*Dataset, error) {
	fileHandle, openError := os.Open(filePath)
	if openError != nil {
		store.logger.Error(openFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(openError))
		return nil, failures.NewFileIO(readOperationNameConstant, openError)
	}
	defer fileHandle.Close()

	csvReader := csv.NewReader(fileHandle)
	records, readError := csvReader.ReadAll()
	if readError != nil {
		store.logger.Error(parseFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(readError))
		return nil, failures.NewParse(readOperationNameConstant, readError)
	}
	if len(records) == 0 {
		headerError := fmt.Errorf(headerMissingMessageConstant)
		store.logger.Error(parseFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(headerError))
		return nil, failures.NewParse(readOperationNameConstant, headerError)
	}

	dataset, datasetError := NewDataset(records[0], records[1:])
	if datasetError != nil {
		store.logger.Error(parseFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(datasetError))
		return nil, failures.NewParse(readOperationNameConstant, datasetError)
	}

	return dataset, nil
}

// Write serializes the dataset to filePath as CSV with a header row and no
// index column.
func (store *Store) Write(filePath string, dataset *Dataset) error {
	fileHandle, createError := os.Create(filePath)
	if createError != nil {
		store.logger.Error(createFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(createError))
		return failures.NewFileIO(writeOperationNameConstant, createError)
	}
	defer fileHandle.Close()

	csvWriter := csv.NewWriter(fileHandle)
	records := append([][]string{dataset.ColumnNames()}, dataset.Rows()...)
	for _, record := range records {
		if writeError := csvWriter.Write(record); writeError != nil {
			store.logger.Error(flushFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(writeError))
			return failures.NewFileIO(writeOperationNameConstant, writeError)
		}
	}

	csvWriter.Flush()
	if flushError := csvWriter.Error(); flushError != nil {
		store.logger.Error(flushFailureMessageConstant, zap.String(logFieldPathConstant, filePath), zap.Error(flushError))
		return failures.NewFileIO(writeOperationNameConstant, flushError)
	}

	store.logger.Info(writeSuccessMessageConstant, zap.String(logFieldPathConstant, filePath))
	return nil
}

// FillMissing substitutes fillValue for empty cells in the named column and
// logs the substitution. Unknown columns leave the dataset unchanged.
func (store *Store) FillMissing(dataset *Dataset, columnName string, fillValue string) *Dataset {
	if len(fillValue) == 0 {
		fillValue = DefaultFillValue
	}
	if dataset.FillMissing(columnName, fillValue) {
		store.logger.Info(fillAppliedMessageConstant,
			zap.String(logFieldColumnConstant, columnName),
			zap.String(logFieldFillValueConstant, fillValue))
	}
	return dataset
}
