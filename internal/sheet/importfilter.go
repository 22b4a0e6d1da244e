package sheet

import (
	"sort"

	"sheetvet/internal/domain"
	"sheetvet/internal/schema"
)

// ImportableIndexes returns the indexes of rows safe to import from
// one sheet: the row's spreadsheet number (index + DataStartRow) has
// no recorded error, and the schema's key field is non-empty. Order is
// preserved.
func ImportableIndexes(rows []domain.MappedRow, errs []domain.RowError, keyField string) []int {
	errRows := make(map[int]struct{}, len(errs))
	for _, e := range errs {
		errRows[e.Row] = struct{}{}
	}

	var idxs []int
	for i, row := range rows {
		if _, bad := errRows[i+DataStartRow]; bad {
			continue
		}
		if isBlank(row[keyField]) {
			continue
		}
		idxs = append(idxs, i)
	}
	return idxs
}

// SelectImportable flattens the importable rows of every sheet into one
// sequence. Sheets are visited in sorted name order (request payloads
// carry no sheet order); row order within a sheet is preserved.
func SelectImportable(data map[string][]domain.MappedRow, errs map[string][]domain.RowError, registry *schema.Registry) []domain.MappedRow {
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []domain.MappedRow
	for _, name := range names {
		rows := data[name]
		s := registry.Resolve(name)
		for _, i := range ImportableIndexes(rows, errs[name], s.KeyField()) {
			out = append(out, rows[i])
		}
	}
	return out
}
