package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetvet/internal/domain"
	"sheetvet/internal/schema"
	"sheetvet/internal/sheet"
)

func defaultRegistry() *schema.Registry {
	return schema.NewRegistry(schema.Default())
}

func TestSelectImportable_SkipsErrorRowsAndEmptyNames(t *testing.T) {
	// Three mapped rows at indices 0,1,2 → spreadsheet rows 2,3,4.
	// Row 3 carries an error, row 4 has an empty name.
	data := map[string][]domain.MappedRow{
		"Sheet1": {
			{"name": "Alice", "amount": 5.0},
			{"name": "Bob", "amount": -1.0},
			{"name": "", "amount": 9.0},
		},
	}
	errs := map[string][]domain.RowError{
		"Sheet1": {{Row: 3, Error: `Row 3: "Amount" must be greater than 0.01.`}},
	}

	rows := sheet.SelectImportable(data, errs, defaultRegistry())

	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0]["name"])
}

func TestSelectImportable_NoErrorsKeepsNamedRows(t *testing.T) {
	data := map[string][]domain.MappedRow{
		"Sheet1": {
			{"name": "Alice"},
			{"name": "Bob"},
		},
	}

	rows := sheet.SelectImportable(data, nil, defaultRegistry())

	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0]["name"])
	assert.Equal(t, "Bob", rows[1]["name"])
}

func TestSelectImportable_HeaderErrorRowDoesNotMaskData(t *testing.T) {
	// A row-1 header error can never collide with a data row number.
	data := map[string][]domain.MappedRow{
		"Sheet1": {{"name": "Alice"}},
	}
	errs := map[string][]domain.RowError{
		"Other": {{Row: 1, Error: "Missing required columns: Amount"}},
	}

	rows := sheet.SelectImportable(data, errs, defaultRegistry())

	require.Len(t, rows, 1)
}

func TestSelectImportable_SheetsVisitedInSortedOrder(t *testing.T) {
	data := map[string][]domain.MappedRow{
		"Zebra": {{"name": "Zoe"}},
		"Apple": {{"name": "Ann"}},
	}

	rows := sheet.SelectImportable(data, nil, defaultRegistry())

	require.Len(t, rows, 2)
	assert.Equal(t, "Ann", rows[0]["name"])
	assert.Equal(t, "Zoe", rows[1]["name"])
}

func TestSelectImportable_NilNameIsSkipped(t *testing.T) {
	data := map[string][]domain.MappedRow{
		"Sheet1": {
			{"name": nil, "amount": 4.0},
			{"amount": 4.0},
		},
	}

	rows := sheet.SelectImportable(data, nil, defaultRegistry())

	assert.Empty(t, rows)
}

func TestSelectImportable_KeyFieldFollowsResolvedSchema(t *testing.T) {
	other, err := schema.New("codes", "code", []schema.Column{
		{Source: "Code", Canonical: "code", Rule: schema.Rule{Type: schema.TypeString, Required: true}},
	})
	require.NoError(t, err)

	reg := defaultRegistry()
	reg.Register("Codes", other)

	data := map[string][]domain.MappedRow{
		"Codes": {
			{"code": "X1"},
			{"code": ""},
		},
	}

	rows := sheet.SelectImportable(data, nil, reg)

	require.Len(t, rows, 1)
	assert.Equal(t, "X1", rows[0]["code"])
}

func TestImportableIndexes(t *testing.T) {
	rows := []domain.MappedRow{
		{"name": "Alice"}, // row 2
		{"name": "Bob"},   // row 3, error below
		{"name": ""},      // row 4, blank key
		{"name": "Dave"},  // row 5
	}
	errs := []domain.RowError{{Row: 3, Error: "x"}}

	idxs := sheet.ImportableIndexes(rows, errs, "name")

	assert.Equal(t, []int{0, 3}, idxs)
}

func TestImportableIndexes_Empty(t *testing.T) {
	assert.Empty(t, sheet.ImportableIndexes(nil, nil, "name"))
}
