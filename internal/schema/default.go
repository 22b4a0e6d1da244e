package schema

// Canonical field names of the default schema. Shared with the
// persistence layer, which extracts these into typed columns.
const (
	FieldName     = "name"
	FieldAmount   = "amount"
	FieldDate     = "date"
	FieldVerified = "verified"
)

// DefaultName is the name of the shipped fallback schema.
const DefaultName = "default"

var minAmount = 0.01

// Default builds the shipped fallback schema: a Name/Amount/Date/Verified
// ledger sheet. Every sheet resolves to it until more schemas are
// registered.
func Default() *Schema {
	s, err := New(DefaultName, FieldName, []Column{
		{Source: "Name", Canonical: FieldName, Rule: Rule{Type: TypeString, Required: true}},
		{Source: "Amount", Canonical: FieldAmount, Rule: Rule{Type: TypeNumber, Min: &minAmount}},
		{Source: "Date", Canonical: FieldDate, Rule: Rule{Type: TypeDate, CurrentMonth: true}},
		{Source: "Verified", Canonical: FieldVerified, Rule: Rule{Type: TypeString, AllowedValues: []string{"Yes", "No"}}},
	})
	if err != nil {
		panic(err)
	}
	return s
}
