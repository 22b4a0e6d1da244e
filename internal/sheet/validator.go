package sheet

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"sheetvet/internal/domain"
	"sheetvet/internal/schema"
)

// RowValidator applies one schema's rules to raw rows. Errors are data,
// never control flow: a row with failures is still mapped and returned
// downstream.
type RowValidator struct {
	schema *schema.Schema
}

// NewRowValidator creates a RowValidator for the given schema.
func NewRowValidator(s *schema.Schema) *RowValidator {
	return &RowValidator{schema: s}
}

// Validate checks one row against every schema column and returns the
// failures in column declaration order. rowNum is the 1-based
// spreadsheet row number used in messages.
func (v *RowValidator) Validate(row domain.Row, rowNum int) []domain.RowError {
	return v.ValidateAt(row, rowNum, time.Now())
}

// ValidateAt is Validate with an explicit evaluation instant for the
// current-month rule.
func (v *RowValidator) ValidateAt(row domain.Row, rowNum int, now time.Time) []domain.RowError {
	var errs []domain.RowError
	add := func(format string, args ...any) {
		errs = append(errs, domain.RowError{Row: rowNum, Error: fmt.Sprintf(format, args...)})
	}

	for _, col := range v.schema.Columns() {
		value := row[col.Source]
		rule := col.Rule

		// A blank cell is either a required-field failure or simply
		// not there; either way no further checks apply to the column.
		if isBlank(value) {
			if rule.Required {
				add("Row %d: %q is required.", rowNum, col.Source)
			}
			continue
		}

		switch rule.Type {
		case schema.TypeNumber:
			n, ok := parseNumber(value)
			if !ok {
				add("Row %d: %q must be numeric.", rowNum, col.Source)
			} else if rule.Min != nil && n < *rule.Min {
				add("Row %d: %q must be greater than %s.", rowNum, col.Source, formatNumber(*rule.Min))
			}
		case schema.TypeDate:
			t, ok := ParseDate(value)
			if !ok {
				add("Row %d: %q must be a valid date.", rowNum, col.Source)
			} else if rule.CurrentMonth && !sameMonth(t, now) {
				add("Row %d: %q must be within the current month.", rowNum, col.Source)
			}
		case schema.TypeString:
			if _, ok := value.(string); !ok {
				add("Row %d: %q must be a string.", rowNum, col.Source)
			}
		}

		if len(rule.AllowedValues) > 0 && !slices.Contains(rule.AllowedValues, stringify(value)) {
			add("Row %d: %q must be one of %s.", rowNum, col.Source, strings.Join(rule.AllowedValues, ", "))
		}
	}
	return errs
}
