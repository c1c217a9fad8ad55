package html

import (
	"fmt"

	"github.com/goliatone/go-awsform/pkg/content"
	"github.com/goliatone/go-awsform/pkg/layout"
	"github.com/goliatone/go-awsform/pkg/model"
	"github.com/goliatone/go-awsform/pkg/render"
)

// helpView carries a rendered help topic for templates.
type helpView struct {
	ID     string
	Header string
	HTML   string
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type fieldView struct {
	Path        string
	Label       string
	Placeholder string
	Description string
	InputType   string
	Widget      string
	Required    bool
	Value       string
	Options     []optionView
	Errors      []string
	Help        *helpView
}

type sectionView struct {
	ID          string
	Title       string
	Description string
	Help        *helpView
	Fields      []fieldView
}

// buildSections groups the form's leaf fields into the sections the layout
// decorator recorded on the model. Fields without a section end up in a
// trailing anonymous section.
func buildSections(form model.FormModel, options render.RenderOptions) []sectionView {
	declared := layout.Sections(form)
	views := make([]sectionView, 0, len(declared)+1)
	index := make(map[string]int, len(declared))
	for _, section := range declared {
		view := sectionView{
			ID:          section.ID,
			Title:       section.Title,
			Description: section.Description,
			Help:        helpFor(section.Help),
		}
		index[section.ID] = len(views)
		views = append(views, view)
	}

	var rest sectionView
	for _, leaf := range leafFields(form) {
		view := buildFieldView(leaf, options)
		sectionID := leaf.Field.Metadata[layout.MetadataSection]
		if sectionID == "" {
			sectionID = leaf.Section
		}
		if at, ok := index[sectionID]; ok {
			views[at].Fields = append(views[at].Fields, view)
			continue
		}
		rest.Fields = append(rest.Fields, view)
	}
	if len(rest.Fields) > 0 {
		views = append(views, rest)
	}

	out := views[:0]
	for _, view := range views {
		if len(view.Fields) > 0 || view.Help != nil {
			out = append(out, view)
		}
	}
	return out
}

// leaf pairs a renderable field with its dotted path and the section
// inherited from its object parent.
type leaf struct {
	Path    string
	Section string
	Field   model.Field
}

func leafFields(form model.FormModel) []leaf {
	var out []leaf
	var walk func(prefix, section string, fields []model.Field)
	walk = func(prefix, section string, fields []model.Field) {
		for _, field := range fields {
			path := field.Name
			if prefix != "" {
				path = prefix + "." + field.Name
			}
			owned := field.Metadata[layout.MetadataSection]
			if owned == "" {
				owned = section
			}
			if field.Type == model.FieldTypeObject && len(field.Nested) > 0 {
				walk(path, owned, field.Nested)
				continue
			}
			out = append(out, leaf{Path: path, Section: owned, Field: field})
		}
	}
	walk("", "", form.Fields)
	return out
}

func buildFieldView(item leaf, options render.RenderOptions) fieldView {
	field := item.Field
	view := fieldView{
		Path:        item.Path,
		Label:       field.Label,
		Placeholder: field.Placeholder,
		Description: field.Description,
		Widget:      field.Metadata[layout.MetadataWidget],
		Required:    field.Required,
		InputType:   inputType(field),
		Errors:      options.Errors[item.Path],
		Help:        helpFor(field.Metadata[layout.MetadataHelp]),
	}

	value := options.Values[item.Path]
	if value == nil {
		value = field.Default
	}

	switch {
	case len(field.Enum) > 0:
		selected := fmt.Sprintf("%v", value)
		for _, entry := range field.Enum {
			raw := fmt.Sprintf("%v", entry)
			view.Options = append(view.Options, optionView{
				Value:    raw,
				Label:    model.DefaultLabeler(raw),
				Selected: value != nil && raw == selected,
			})
		}
	case field.Type == model.FieldTypeArray:
		for _, raw := range stringSlice(value) {
			view.Options = append(view.Options, optionView{Value: raw, Label: raw, Selected: true})
		}
	default:
		if value != nil {
			view.Value = fmt.Sprintf("%v", value)
		}
	}
	return view
}

func inputType(field model.Field) string {
	if field.Metadata[layout.MetadataWidget] == "password" || field.Format == "password" {
		return "password"
	}
	switch field.Type {
	case model.FieldTypeBoolean:
		return "checkbox"
	case model.FieldTypeInteger, model.FieldTypeNumber:
		return "number"
	default:
		return "text"
	}
}

func helpFor(topicID string) *helpView {
	if topicID == "" {
		return nil
	}
	topic, ok := content.TopicByID(topicID)
	if !ok {
		return nil
	}
	return &helpView{ID: topic.ID, Header: topic.Header, HTML: TopicHTML(topic)}
}

func stringSlice(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}
