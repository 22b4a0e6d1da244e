package xlsx

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"sheetvet/internal/domain"
	"sheetvet/internal/port"
	"sheetvet/internal/schema"
	"sheetvet/internal/sheet"
)

// placeholderCell is written to sheets that have no rows so the exported
// workbook never contains a silently blank tab.
const placeholderCell = "No data"

type xlsxWriter struct {
	registry *schema.Registry
}

// NewWriter creates an excelize-backed WorkbookWriter. Column order per sheet
// follows the resolved schema's canonical order, with any extra keys sorted
// alphabetically after it.
func NewWriter(reg *schema.Registry) port.WorkbookWriter {
	return &xlsxWriter{registry: reg}
}

// Write builds a workbook with one worksheet per entry of sheetNames, in the
// given order. Entries of sheetData without a matching name are ignored;
// names without data produce a placeholder sheet.
func (w *xlsxWriter) Write(sheetNames []string, sheetData map[string][]domain.MappedRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	initial := f.GetSheetName(f.GetActiveSheetIndex())

	requested := make(map[string]bool, len(sheetNames))
	for _, name := range sheetNames {
		requested[name] = true
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("xlsx new sheet %q: %w", name, err)
		}
		if err := w.writeSheet(f, name, sheetData[name]); err != nil {
			return nil, err
		}
	}

	// Drop the workbook's default sheet unless the export asked for it.
	if len(sheetNames) > 0 && !requested[initial] {
		if err := f.DeleteSheet(initial); err != nil {
			return nil, fmt.Errorf("xlsx delete sheet %q: %w", initial, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *xlsxWriter) writeSheet(f *excelize.File, name string, rows []domain.MappedRow) error {
	if len(rows) == 0 {
		if err := f.SetSheetRow(name, "A1", &[]any{placeholderCell}); err != nil {
			return fmt.Errorf("xlsx sheet %q placeholder: %w", name, err)
		}
		return nil
	}

	header := w.headerFor(name, rows)
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := f.SetSheetRow(name, fmt.Sprintf("A%d", sheet.HeaderRow), &cells); err != nil {
		return fmt.Errorf("xlsx sheet %q header: %w", name, err)
	}

	for i, row := range rows {
		out := make([]any, len(header))
		for j, key := range header {
			out[j] = cellValue(row[key])
		}
		axis := fmt.Sprintf("A%d", i+sheet.DataStartRow)
		if err := f.SetSheetRow(name, axis, &out); err != nil {
			return fmt.Errorf("xlsx sheet %q row %d: %w", name, i+sheet.DataStartRow, err)
		}
	}
	return nil
}

// headerFor orders the union of row keys: canonical columns of the sheet's
// schema first, in schema order, then anything else alphabetically.
func (w *xlsxWriter) headerFor(name string, rows []domain.MappedRow) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		for key := range row {
			seen[key] = true
		}
	}

	header := make([]string, 0, len(seen))
	for _, canonical := range w.registry.Resolve(name).Canonicals() {
		if seen[canonical] {
			header = append(header, canonical)
			delete(seen, canonical)
		}
	}

	extras := make([]string, 0, len(seen))
	for key := range seen {
		extras = append(extras, key)
	}
	sort.Strings(extras)
	return append(header, extras...)
}

// cellValue converts a mapped value to what the worksheet should store:
// dates as plain yyyy-mm-dd text, numbers as numbers, anything else as its
// string form.
func cellValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		return t.Format("2006-01-02")
	case float64:
		return t
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
