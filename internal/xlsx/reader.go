// Package xlsx adapts excelize workbooks to the flat sheet tables the
// processing pipeline consumes, and renders mapped rows back into
// downloadable workbooks.
package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"sheetvet/internal/domain"
	"sheetvet/internal/port"
)

type xlsxReader struct{}

// NewReader creates an excelize-backed WorkbookReader.
func NewReader() port.WorkbookReader {
	return &xlsxReader{}
}

// Read opens a workbook from src and flattens every sheet into a header row
// plus data rows, preserving workbook sheet order. A sheet without any rows
// comes back with a nil header and no data rows. Input that excelize cannot
// open is reported as domain.ErrWorkbookUnreadable.
func (r *xlsxReader) Read(src io.Reader) ([]domain.SheetTable, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWorkbookUnreadable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	tables := make([]domain.SheetTable, 0, len(sheets))
	for _, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("xlsx read sheet %q: %w", name, err)
		}
		table := domain.SheetTable{Name: name}
		if len(rows) > 0 {
			table.Header = rows[0]
			table.Rows = rows[1:]
		}
		tables = append(tables, table)
	}
	return tables, nil
}
