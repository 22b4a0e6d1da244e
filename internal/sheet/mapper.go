package sheet

import (
	"sheetvet/internal/domain"
	"sheetvet/internal/schema"
)

// MapRow transforms a raw row into its canonical shape: every schema
// column contributes a key named by its canonical field, coercing
// number and date values best-effort. Coercion failures keep the raw
// value untouched — the validator has already reported them, and a
// sentinel would be indistinguishable from data after a JSON round
// trip. MapRow is pure: it never fails and never mutates row.
func MapRow(row domain.Row, s *schema.Schema) domain.MappedRow {
	cols := s.Columns()
	out := make(domain.MappedRow, len(cols))
	for _, col := range cols {
		value := row[col.Source]
		if !isBlank(value) {
			switch col.Rule.Type {
			case schema.TypeNumber:
				if n, ok := parseNumber(value); ok {
					value = n
				}
			case schema.TypeDate:
				if t, ok := ParseDate(value); ok {
					value = t
				}
			}
		}
		out[col.Canonical] = value
	}
	return out
}
