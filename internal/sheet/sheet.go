// Package sheet implements the row validation, mapping, and filtering
// engine that turns parsed workbook tables into canonical records.
package sheet

// Spreadsheet rows are 1-based: row 1 is the header, data rows begin at
// row 2. The processor and the import filter share this offset so
// error-row numbers and data-row positions stay aligned: the row number
// of data index i is i + DataStartRow.
const (
	HeaderRow    = 1
	DataStartRow = 2
)
