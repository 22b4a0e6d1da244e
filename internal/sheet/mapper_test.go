package sheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetvet/internal/domain"
	"sheetvet/internal/schema"
	"sheetvet/internal/sheet"
)

func TestMapRow_CoercesNumberAndDate(t *testing.T) {
	s := schema.Default()

	row := domain.Row{"Name": "Alice", "Amount": "12.50", "Date": "2024-01-15", "Verified": "Yes"}
	mapped := sheet.MapRow(row, s)

	assert.Equal(t, "Alice", mapped["name"])
	assert.Equal(t, 12.5, mapped["amount"])
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), mapped["date"])
	assert.Equal(t, "Yes", mapped["verified"])
}

func TestMapRow_KeepsRawValueWhenCoercionFails(t *testing.T) {
	s := schema.Default()

	row := domain.Row{"Name": "Alice", "Amount": "abc", "Date": "someday"}
	mapped := sheet.MapRow(row, s)

	// The validator reports these; the mapper just carries them through.
	assert.Equal(t, "abc", mapped["amount"])
	assert.Equal(t, "someday", mapped["date"])
}

func TestMapRow_KeySetEqualsCanonicals(t *testing.T) {
	s := schema.Default()

	mapped := sheet.MapRow(domain.Row{"Name": "Alice"}, s)

	require.Len(t, mapped, 4)
	for _, field := range s.Canonicals() {
		_, ok := mapped[field]
		assert.True(t, ok, "missing canonical field %q", field)
	}
	assert.Nil(t, mapped["amount"])
	assert.Nil(t, mapped["date"])
	assert.Nil(t, mapped["verified"])
}

func TestMapRow_EmptyStringCarriedForRequiredField(t *testing.T) {
	s := schema.Default()

	mapped := sheet.MapRow(domain.Row{"Name": "", "Amount": "5"}, s)

	// An invalid row is still mapped; the empty name survives as-is.
	assert.Equal(t, "", mapped["name"])
	assert.Equal(t, 5.0, mapped["amount"])
}

func TestMapRow_IgnoresUnmappedColumns(t *testing.T) {
	s := schema.Default()

	mapped := sheet.MapRow(domain.Row{"Name": "Alice", "Comment": "extra"}, s)

	_, ok := mapped["Comment"]
	assert.False(t, ok)
	_, ok = mapped["comment"]
	assert.False(t, ok)
}

func TestMapRow_AlreadyTypedValuesPassThrough(t *testing.T) {
	s := schema.Default()
	when := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)

	row := domain.Row{"Name": "Alice", "Amount": 7.25, "Date": when}
	mapped := sheet.MapRow(row, s)

	assert.Equal(t, 7.25, mapped["amount"])
	assert.Equal(t, when, mapped["date"])
}

func TestMapRow_PureAndDeterministic(t *testing.T) {
	s := schema.Default()
	row := domain.Row{"Name": "Alice", "Amount": "3", "Date": "2024-01-15", "Verified": "No"}

	first := sheet.MapRow(row, s)
	second := sheet.MapRow(row, s)

	assert.Equal(t, first, second)
	assert.Equal(t, domain.Row{"Name": "Alice", "Amount": "3", "Date": "2024-01-15", "Verified": "No"}, row)
}
