package sheet

import (
	"strings"
	"time"

	"sheetvet/internal/domain"
	"sheetvet/internal/schema"
)

// Processor validates and maps every sheet of a parsed workbook.
type Processor struct {
	registry *schema.Registry
}

// NewProcessor creates a Processor resolving schemas from registry.
func NewProcessor(registry *schema.Registry) *Processor {
	return &Processor{registry: registry}
}

// Process runs validation and mapping over the given tables, in table
// order. See ProcessAt for the per-sheet behavior.
func (p *Processor) Process(tables []domain.SheetTable) *domain.WorkbookResult {
	return p.ProcessAt(tables, time.Now())
}

// ProcessAt is Process with an explicit evaluation instant. Per sheet:
// resolve the schema; if any schema column is missing from the header,
// emit a single row-1 error and skip the sheet's rows; otherwise
// validate and map every data row. Invalid rows are still mapped —
// filtering happens downstream in the import filter. Sheets without
// errors get no ValidationErrors entry.
func (p *Processor) ProcessAt(tables []domain.SheetTable, now time.Time) *domain.WorkbookResult {
	result := &domain.WorkbookResult{
		SheetNames:       make([]string, 0, len(tables)),
		SheetData:        make(map[string][]domain.MappedRow, len(tables)),
		ValidationErrors: make(map[string][]domain.RowError),
	}

	for _, table := range tables {
		result.SheetNames = append(result.SheetNames, table.Name)
		s := p.registry.Resolve(table.Name)

		header := make([]string, len(table.Header))
		for i, cell := range table.Header {
			header[i] = strings.TrimSpace(cell)
		}
		if missing := missingColumns(s, header); len(missing) > 0 {
			result.ValidationErrors[table.Name] = []domain.RowError{{
				Row:   HeaderRow,
				Error: "Missing required columns: " + strings.Join(missing, ", "),
			}}
			continue
		}

		validator := NewRowValidator(s)
		rows := make([]domain.MappedRow, 0, len(table.Rows))
		var errs []domain.RowError
		for i, cells := range table.Rows {
			rowNum := i + DataStartRow
			row := rowFromCells(header, cells)
			errs = append(errs, validator.ValidateAt(row, rowNum, now)...)
			rows = append(rows, MapRow(row, s))
		}

		result.SheetData[table.Name] = rows
		if len(errs) > 0 {
			result.ValidationErrors[table.Name] = errs
		}
	}
	return result
}

// missingColumns returns the schema sources absent from the header, in
// schema column order.
func missingColumns(s *schema.Schema, header []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		if name != "" {
			present[name] = struct{}{}
		}
	}
	var missing []string
	for _, col := range s.Columns() {
		if _, ok := present[col.Source]; !ok {
			missing = append(missing, col.Source)
		}
	}
	return missing
}

// rowFromCells keys a data row by header cell text. Cells beyond the
// header width and cells under an empty header are dropped; rows
// shorter than the header leave the trailing columns absent.
func rowFromCells(header []string, cells []string) domain.Row {
	row := make(domain.Row, len(header))
	for i, name := range header {
		if name == "" || i >= len(cells) {
			continue
		}
		row[name] = cells[i]
	}
	return row
}
