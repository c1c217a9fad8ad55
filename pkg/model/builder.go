package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	pkgopenapi "github.com/goliatone/go-awsform/pkg/openapi"
)

// Options configures the builder.
type Options struct {
	// Labeler derives display labels from field names. Defaults to
	// DefaultLabeler.
	Labeler func(name string) string
}

// Builder converts OpenAPI operations into form models.
type Builder struct {
	labeler func(name string) string
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	labeler := options.Labeler
	if labeler == nil {
		labeler = DefaultLabeler
	}
	return &Builder{labeler: labeler}
}

// Build transforms an OpenAPI operation into a FormModel suitable for
// rendering. It focuses on the request body.
func (b *Builder) Build(op pkgopenapi.Operation) (FormModel, error) {
	if op.ID == "" {
		return FormModel{}, errors.New("model builder: operation id is required")
	}
	if err := op.RequestBody.Validate(); err != nil {
		return FormModel{}, fmt.Errorf("model builder: operation %q: %w", op.ID, err)
	}

	form := FormModel{
		OperationID: op.ID,
		Endpoint:    op.Path,
		Method:      strings.ToUpper(op.Method),
		Summary:     op.Summary,
		Description: op.Description,
	}

	fields, err := b.fieldsFromSchema("", op.RequestBody, true)
	if err != nil {
		return FormModel{}, err
	}
	form.Fields = fields
	return form, nil
}

func (b *Builder) fieldsFromSchema(name string, schema pkgopenapi.Schema, required bool) ([]Field, error) {
	switch schema.Type {
	case "object", "":
		return b.fieldsFromObject(name, schema, required)
	case "array":
		field, err := b.fieldFromArray(name, schema, required)
		if err != nil {
			return nil, err
		}
		return []Field{field}, nil
	default:
		return []Field{b.fieldFromPrimitive(name, schema, required)}, nil
	}
}

func (b *Builder) fieldsFromObject(name string, schema pkgopenapi.Schema, required bool) ([]Field, error) {
	requiredSet := make(map[string]struct{}, len(schema.Required))
	for _, item := range schema.Required {
		requiredSet[item] = struct{}{}
	}

	propNames := make([]string, 0, len(schema.Properties))
	for propName := range schema.Properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	var fields []Field
	for _, propName := range propNames {
		_, isRequired := requiredSet[propName]
		converted, err := b.fieldsFromSchema(propName, schema.Properties[propName], isRequired)
		if err != nil {
			return nil, err
		}
		fields = append(fields, converted...)
	}

	if name == "" {
		return fields, nil
	}

	parent := Field{
		Name:        name,
		Type:        FieldTypeObject,
		Label:       b.labeler(name),
		Description: schema.Description,
		Required:    required,
		Nested:      fields,
		Default:     schema.Default,
	}
	return []Field{parent}, nil
}

func (b *Builder) fieldFromArray(name string, schema pkgopenapi.Schema, required bool) (Field, error) {
	if schema.Items == nil {
		return Field{}, fmt.Errorf("model builder: array field %q missing items", name)
	}
	nested, err := b.fieldsFromSchema(name+"Item", *schema.Items, false)
	if err != nil {
		return Field{}, err
	}
	var itemField *Field
	if len(nested) > 0 {
		item := nested[0]
		itemField = &item
	}

	field := Field{
		Name:        name,
		Type:        FieldTypeArray,
		Label:       b.labeler(name),
		Description: schema.Description,
		Required:    required,
		Items:       itemField,
		Default:     schema.Default,
	}
	if len(schema.Enum) > 0 {
		field.Enum = append([]any(nil), schema.Enum...)
	}
	return field, nil
}

func (b *Builder) fieldFromPrimitive(name string, schema pkgopenapi.Schema, required bool) Field {
	field := Field{
		Name:        name,
		Type:        mapType(schema.Type),
		Format:      schema.Format,
		Label:       b.labeler(name),
		Description: schema.Description,
		Required:    required,
		Default:     schema.Default,
	}
	if len(schema.Enum) > 0 {
		field.Enum = append([]any(nil), schema.Enum...)
	}
	if schema.Format == "password" {
		field.Metadata = map[string]string{"widget": "password"}
	}
	return field
}

func mapType(schemaType string) FieldType {
	switch schemaType {
	case "integer":
		return FieldTypeInteger
	case "number":
		return FieldTypeNumber
	case "boolean":
		return FieldTypeBoolean
	case "array":
		return FieldTypeArray
	case "object", "":
		return FieldTypeObject
	default:
		return FieldTypeString
	}
}
