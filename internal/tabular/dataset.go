package tabular

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	rowWidthMismatchTemplateConstant = "row %d has %d cells, expected %d"
	integerTypeNameConstant          = "integer"
	floatTypeNameConstant            = "float"
	booleanTypeNameConstant          = "boolean"
	textTypeNameConstant             = "text"
	emptyTypeNameConstant            = "empty"
	trueLiteralLowerConstant         = "true"
	falseLiteralLowerConstant        = "false"
)

// ColumnType describes the narrowest scalar type a column's populated cells share.
type ColumnType int

// Column types resolved at dataset construction and load time.
const (
	ColumnTypeEmpty ColumnType = iota
	ColumnTypeInteger
	ColumnTypeFloat
	ColumnTypeBoolean
	ColumnTypeText
)

var columnTypeNameMapping = map[ColumnType]string{
	ColumnTypeEmpty:   emptyTypeNameConstant,
	ColumnTypeInteger: integerTypeNameConstant,
	ColumnTypeFloat:   floatTypeNameConstant,
	ColumnTypeBoolean: booleanTypeNameConstant,
	ColumnTypeText:    textTypeNameConstant,
}

// String names the column type for diagnostics.
func (columnType ColumnType) String() string {
	typeName, typeKnown := columnTypeNameMapping[columnType]
	if !typeKnown {
		return textTypeNameConstant
	}
	return typeName
}

// Dataset is an in-memory table with named columns and ordered rows of text cells.
type Dataset struct {
	columnNames []string
	columnTypes []ColumnType
	rows        [][]string
}

// NewDataset builds a dataset from a header and rows, resolving column types.
func NewDataset(columnNames []string, rows [][]string) (*Dataset, error) {
	duplicatedColumnNames := make([]string, len(columnNames))
	copy(duplicatedColumnNames, columnNames)

	duplicatedRows := make([][]string, len(rows))
	for rowIndex, row := range rows {
		if len(row) != len(columnNames) {
			return nil, fmt.Errorf(rowWidthMismatchTemplateConstant, rowIndex, len(row), len(columnNames))
		}
		duplicatedRow := make([]string, len(row))
		copy(duplicatedRow, row)
		duplicatedRows[rowIndex] = duplicatedRow
	}

	dataset := &Dataset{columnNames: duplicatedColumnNames, rows: duplicatedRows}
	dataset.resolveColumnTypes()
	return dataset, nil
}

// ColumnNames returns the header in column order.
func (dataset *Dataset) ColumnNames() []string {
	duplicatedColumnNames := make([]string, len(dataset.columnNames))
	copy(duplicatedColumnNames, dataset.columnNames)
	return duplicatedColumnNames
}

// ColumnTypes returns the resolved type of each column in header order.
func (dataset *Dataset) ColumnTypes() []ColumnType {
	duplicatedColumnTypes := make([]ColumnType, len(dataset.columnTypes))
	copy(duplicatedColumnTypes, dataset.columnTypes)
	return duplicatedColumnTypes
}

// RowCount reports the number of data rows.
func (dataset *Dataset) RowCount() int {
	return len(dataset.rows)
}

// Rows returns a copy of every data row in order.
func (dataset *Dataset) Rows() [][]string {
	duplicatedRows := make([][]string, len(dataset.rows))
	for rowIndex, row := range dataset.rows {
		duplicatedRow := make([]string, len(row))
		copy(duplicatedRow, row)
		duplicatedRows[rowIndex] = duplicatedRow
	}
	return duplicatedRows
}

// Cell returns the cell at rowIndex in the named column.
func (dataset *Dataset) Cell(rowIndex int, columnName string) (string, bool) {
	columnIndex, columnExists := dataset.columnIndex(columnName)
	if !columnExists || rowIndex < 0 || rowIndex >= len(dataset.rows) {
		return "", false
	}
	return dataset.rows[rowIndex][columnIndex], true
}

// FillMissing replaces empty cells in the named column with fillValue in
// place and reports whether the column exists. Unknown columns leave the
// dataset unchanged.
func (dataset *Dataset) FillMissing(columnName string, fillValue string) bool {
	columnIndex, columnExists := dataset.columnIndex(columnName)
	if !columnExists {
		return false
	}

	cellsChanged := false
	for _, row := range dataset.rows {
		if len(row[columnIndex]) == 0 {
			row[columnIndex] = fillValue
			cellsChanged = true
		}
	}
	if cellsChanged {
		dataset.resolveColumnTypes()
	}
	return true
}

func (dataset *Dataset) columnIndex(columnName string) (int, bool) {
	for candidateIndex, candidateName := range dataset.columnNames {
		if candidateName == columnName {
			return candidateIndex, true
		}
	}
	return 0, false
}

func (dataset *Dataset) resolveColumnTypes() {
	dataset.columnTypes = make([]ColumnType, len(dataset.columnNames))
	for columnIndex := range dataset.columnNames {
		dataset.columnTypes[columnIndex] = dataset.resolveColumnType(columnIndex)
	}
}

func (dataset *Dataset) resolveColumnType(columnIndex int) ColumnType {
	populatedCellSeen := false
	integerPossible := true
	floatPossible := true
	booleanPossible := true

	for _, row := range dataset.rows {
		cellValue := row[columnIndex]
		if len(cellValue) == 0 {
			continue
		}
		populatedCellSeen = true

		if integerPossible {
			if _, parseError := strconv.ParseInt(cellValue, 10, 64); parseError != nil {
				integerPossible = false
			}
		}
		if floatPossible {
			if _, parseError := strconv.ParseFloat(cellValue, 64); parseError != nil {
				floatPossible = false
			}
		}
		if booleanPossible {
			loweredCell := strings.ToLower(cellValue)
			if loweredCell != trueLiteralLowerConstant && loweredCell != falseLiteralLowerConstant {
				booleanPossible = false
			}
		}
	}

	switch {
	case !populatedCellSeen:
		return ColumnTypeEmpty
	case integerPossible:
		return ColumnTypeInteger
	case floatPossible:
		return ColumnTypeFloat
	case booleanPossible:
		return ColumnTypeBoolean
	default:
		return ColumnTypeText
	}
}
