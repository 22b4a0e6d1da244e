package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Row is a raw spreadsheet row keyed by header cell text. Values are
// whatever the parser or the request body produced: strings for cells
// read from a workbook, string/float64/bool for JSON payloads.
type Row map[string]any

// MappedRow is a canonical record produced by the row mapper. Keys are
// the schema's canonical field names; values are best-effort coerced
// (float64 for numbers, time.Time for dates) with the raw value kept
// where coercion failed.
type MappedRow map[string]any

// String returns the value under key as a string, or "" when the key
// is absent or not textual.
func (m MappedRow) String(key string) string {
	s, _ := m[key].(string)
	return s
}

// Float returns the value under key as a float64 plus whether it was one.
func (m MappedRow) Float(key string) (float64, bool) {
	f, ok := m[key].(float64)
	return f, ok
}

// RowError describes one validation failure on one spreadsheet row.
// Row numbers are 1-based spreadsheet coordinates (header = row 1).
type RowError struct {
	Row   int    `json:"row" example:"2"`
	Error string `json:"error" example:"Row 2: \"Name\" is required."`
}

// SheetTable is the raw parse product of a single worksheet: the header
// row plus every data row beneath it, in sheet order.
type SheetTable struct {
	Name   string
	Header []string
	Rows   [][]string
}

// WorkbookResult is the outcome of validating a whole workbook.
// SheetNames preserves workbook sheet order. ValidationErrors only
// carries keys for sheets that produced at least one error.
type WorkbookResult struct {
	SheetNames       []string               `json:"sheetNames"`
	SheetData        map[string][]MappedRow `json:"sheetData"`
	ValidationErrors map[string][]RowError  `json:"validationErrors"`
}

// ImportRequest is the client's round-tripped validation output: the
// mapped rows per sheet plus the errors previously reported for them.
type ImportRequest struct {
	Data   map[string][]MappedRow `json:"data"`
	Errors map[string][]RowError  `json:"errors"`
	Source string                 `json:"source"`
}

// ImportSummary reports the result of one import call.
type ImportSummary struct {
	BatchID  uuid.UUID `json:"batch_id"`
	Imported int       `json:"imported"`
	Skipped  int       `json:"skipped"`
	Message  string    `json:"message"`
}

// ExportRequest carries previously validated data to render back into
// a workbook download.
type ExportRequest struct {
	SheetNames []string               `json:"sheetNames"`
	SheetData  map[string][]MappedRow `json:"sheetData"`
}

// Record is a persisted canonical row. Well-known fields are extracted
// into columns for querying; Fields keeps the complete mapped row as
// JSON so schema additions survive without a migration.
type Record struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	BatchID   uuid.UUID       `db:"batch_id" json:"batch_id"`
	SheetName string          `db:"sheet_name" json:"sheet_name"`
	RowNumber int             `db:"row_number" json:"row_number"`
	Name      string          `db:"name" json:"name"`
	Amount    *float64        `db:"amount" json:"amount,omitempty"`
	EntryDate *time.Time      `db:"entry_date" json:"entry_date,omitempty"`
	Verified  string          `db:"verified" json:"verified,omitempty"`
	Fields    json.RawMessage `db:"fields" json:"fields"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// ImportBatch groups the records inserted by a single import call.
type ImportBatch struct {
	ID          uuid.UUID `db:"id" json:"id"`
	SourceName  string    `db:"source_name" json:"source_name"`
	RecordCount int       `db:"record_count" json:"record_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
