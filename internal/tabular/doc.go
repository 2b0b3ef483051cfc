// Package tabular models CSV-backed tables with named columns, ordered
// rows, and column types resolved when a dataset is loaded or built.
//
// Cells are stored as text; the resolved column types describe the
// narrowest scalar interpretation every populated cell of a column
// satisfies. Missing values are empty cells and can be substituted per
// column without touching the rest of the table.
package tabular
