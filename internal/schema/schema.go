package schema

import "fmt"

// RuleType identifies the value kind a column rule validates.
type RuleType string

const (
	TypeString RuleType = "string"
	TypeNumber RuleType = "number"
	TypeDate   RuleType = "date"
)

// Rule describes the validation applied to one column. Min applies only
// to number rules, CurrentMonth only to date rules; New rejects any
// other combination so malformed rules cannot reach the validator.
type Rule struct {
	Type          RuleType
	Required      bool
	Min           *float64
	CurrentMonth  bool
	AllowedValues []string
}

// Column binds a spreadsheet header cell (Source) to a canonical output
// field name (Canonical) and the rule validating its values. Keeping
// the mapping and the rule on one entry makes a mapped-but-unvalidated
// column unrepresentable.
type Column struct {
	Source    string
	Canonical string
	Rule      Rule
}

// Schema is an ordered set of columns plus the canonical key field the
// import filter uses to decide whether a row identifies anything worth
// importing. Construct via New; a Schema that exists is valid.
type Schema struct {
	name     string
	keyField string
	columns  []Column
}

// New validates and builds a Schema. It fails on empty or duplicate
// source/canonical names, unknown rule types, options applied to the
// wrong rule kind, and a key field that is not a canonical name.
func New(name, keyField string, columns []Column) (*Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("schema: name is required")
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("schema %q: at least one column is required", name)
	}

	sources := make(map[string]struct{}, len(columns))
	canonicals := make(map[string]struct{}, len(columns))
	for i, col := range columns {
		if col.Source == "" {
			return nil, fmt.Errorf("schema %q: column %d has an empty source name", name, i)
		}
		if col.Canonical == "" {
			return nil, fmt.Errorf("schema %q: column %q has an empty canonical name", name, col.Source)
		}
		if _, dup := sources[col.Source]; dup {
			return nil, fmt.Errorf("schema %q: duplicate source column %q", name, col.Source)
		}
		if _, dup := canonicals[col.Canonical]; dup {
			return nil, fmt.Errorf("schema %q: duplicate canonical field %q", name, col.Canonical)
		}
		sources[col.Source] = struct{}{}
		canonicals[col.Canonical] = struct{}{}

		switch col.Rule.Type {
		case TypeString, TypeNumber, TypeDate:
		default:
			return nil, fmt.Errorf("schema %q: column %q has unknown rule type %q", name, col.Source, col.Rule.Type)
		}
		if col.Rule.Min != nil && col.Rule.Type != TypeNumber {
			return nil, fmt.Errorf("schema %q: column %q sets min on a %s rule", name, col.Source, col.Rule.Type)
		}
		if col.Rule.CurrentMonth && col.Rule.Type != TypeDate {
			return nil, fmt.Errorf("schema %q: column %q sets currentMonth on a %s rule", name, col.Source, col.Rule.Type)
		}
	}

	if _, ok := canonicals[keyField]; !ok {
		return nil, fmt.Errorf("schema %q: key field %q is not a canonical column name", name, keyField)
	}

	cols := make([]Column, len(columns))
	copy(cols, columns)
	return &Schema{name: name, keyField: keyField, columns: cols}, nil
}

// Name returns the schema's name.
func (s *Schema) Name() string { return s.name }

// KeyField returns the canonical name of the identity field.
func (s *Schema) KeyField() string { return s.keyField }

// Columns returns the schema's columns in declaration order.
func (s *Schema) Columns() []Column { return s.columns }

// Canonicals returns the canonical field names in declaration order.
func (s *Schema) Canonicals() []string {
	out := make([]string, len(s.columns))
	for i, col := range s.columns {
		out[i] = col.Canonical
	}
	return out
}
