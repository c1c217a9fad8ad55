package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeArray   FieldType = "array"
	FieldTypeObject  FieldType = "object"
)

// Field models an individual input inside the settings form. Struct fields
// are annotated so renderers can serialise them directly when needed.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Format      string            `json:"format,omitempty"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Default     any               `json:"default,omitempty"`
	Enum        []any             `json:"enum,omitempty"`
	Nested      []Field           `json:"nested,omitempty"`
	Items       *Field            `json:"items,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Decorator mutates a form model after building but before rendering.
type Decorator interface {
	Decorate(form *FormModel) error
}

// FlatField pairs a field with its dotted binding path (e.g.
// "credentials.access_key").
type FlatField struct {
	Path  string
	Field Field
}

// Flatten walks the field tree depth-first and returns every field keyed by
// its dotted path. Object parents are included ahead of their children.
func (m FormModel) Flatten() []FlatField {
	var out []FlatField
	var walk func(prefix string, fields []Field)
	walk = func(prefix string, fields []Field) {
		for _, field := range fields {
			path := field.Name
			if prefix != "" {
				path = prefix + "." + field.Name
			}
			out = append(out, FlatField{Path: path, Field: field})
			if len(field.Nested) > 0 {
				walk(path, field.Nested)
			}
		}
	}
	walk("", m.Fields)
	return out
}

// FieldByPath returns the field at the given dotted path.
func (m FormModel) FieldByPath(path string) (Field, bool) {
	for _, flat := range m.Flatten() {
		if flat.Path == path {
			return flat.Field, true
		}
	}
	return Field{}, false
}
