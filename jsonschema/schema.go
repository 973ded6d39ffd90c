package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Pattern     string `json:"pattern,omitempty"`
	Description string `json:"description,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`

	// Format limits (ajv-formats keywords) for static temporal rule limits.
	FormatMinimum          string `json:"formatMinimum,omitempty"`
	FormatMaximum          string `json:"formatMaximum,omitempty"`
	FormatExclusiveMinimum string `json:"formatExclusiveMinimum,omitempty"`
	FormatExclusiveMaximum string `json:"formatExclusiveMaximum,omitempty"`
}

// Nullable wraps s so that null is also accepted.
func Nullable(s *Schema) *Schema {
	return &Schema{OneOf: []*Schema{s, {Type: "null"}}}
}

// Float returns a pointer to f for Minimum and Maximum.
func Float(f float64) *float64 { return &f }
