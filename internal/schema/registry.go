package schema

// Registry resolves sheet names to schemas. Resolution is total: names
// without a registered schema fall back to the registry's default, so
// Resolve never returns nil.
type Registry struct {
	fallback *Schema
	bySheet  map[string]*Schema
}

// NewRegistry creates a Registry with the given fallback schema.
// A nil fallback is a programming error.
func NewRegistry(fallback *Schema) *Registry {
	if fallback == nil {
		panic("schema: registry requires a fallback schema")
	}
	return &Registry{
		fallback: fallback,
		bySheet:  make(map[string]*Schema),
	}
}

// Register binds a schema to an exact sheet name, replacing any
// previous binding for that name.
func (r *Registry) Register(sheetName string, s *Schema) {
	r.bySheet[sheetName] = s
}

// Resolve returns the schema registered for sheetName, or the fallback.
func (r *Registry) Resolve(sheetName string) *Schema {
	if s, ok := r.bySheet[sheetName]; ok {
		return s
	}
	return r.fallback
}
