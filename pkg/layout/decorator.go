package layout

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/goliatone/go-awsform/pkg/content"
	"github.com/goliatone/go-awsform/pkg/model"
)

// Metadata keys the decorator writes into the form model.
const (
	MetadataTitle    = "layout.title"
	MetadataSubtitle = "layout.subtitle"
	MetadataSections = "layout.sections"
	MetadataSection  = "section"
	MetadataWidget   = "widget"
	MetadataHelp     = "help.topic"
)

// Decorator applies a layout store to form models. It implements
// model.Decorator.
type Decorator struct {
	store *Store
}

// NewDecorator wraps a layout store. A nil or empty store produces a no-op
// decorator.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

var _ model.Decorator = (*Decorator)(nil)

// Decorate overlays labels, widgets, section grouping, and help-topic
// bindings onto the form, then reorders fields per the layout. Help topics
// must exist in the content registry.
func (d *Decorator) Decorate(form *model.FormModel) error {
	if d == nil || form == nil || d.store.Empty() {
		return nil
	}
	op, ok := d.store.Operation(form.OperationID)
	if !ok {
		return nil
	}

	if form.Metadata == nil {
		form.Metadata = make(map[string]string)
	}
	if op.Form.Title != "" {
		form.Metadata[MetadataTitle] = op.Form.Title
	}
	if op.Form.Subtitle != "" {
		form.Metadata[MetadataSubtitle] = op.Form.Subtitle
	}
	if len(op.Sections) > 0 {
		payload, err := json.Marshal(op.Sections)
		if err != nil {
			return fmt.Errorf("layout: encode sections for %q: %w", form.OperationID, err)
		}
		form.Metadata[MetadataSections] = string(payload)
	}

	for _, section := range op.Sections {
		if section.Help == "" {
			continue
		}
		if _, ok := content.TopicByID(section.Help); !ok {
			return fmt.Errorf("layout: operation %q section %q references unknown help topic %q", op.ID, section.ID, section.Help)
		}
	}

	fields, err := d.decorateFields(op, "", form.Fields)
	if err != nil {
		return err
	}
	form.Fields = fields

	sortFields(op, "", form.Fields)
	return nil
}

func (d *Decorator) decorateFields(op Operation, prefix string, fields []model.Field) ([]model.Field, error) {
	decorated := make([]model.Field, len(fields))
	for i, field := range fields {
		path := field.Name
		if prefix != "" {
			path = prefix + "." + field.Name
		}

		if cfg, ok := op.Fields[path]; ok {
			if cfg.Label != "" {
				field.Label = cfg.Label
			}
			if cfg.Placeholder != "" {
				field.Placeholder = cfg.Placeholder
			}
			if cfg.Widget != "" || cfg.Section != "" || cfg.Help != "" {
				if field.Metadata == nil {
					field.Metadata = make(map[string]string)
				}
			}
			if cfg.Widget != "" {
				field.Metadata[MetadataWidget] = cfg.Widget
			}
			if cfg.Section != "" {
				field.Metadata[MetadataSection] = cfg.Section
			}
			if cfg.Help != "" {
				if _, ok := content.TopicByID(cfg.Help); !ok {
					return nil, fmt.Errorf("layout: operation %q field %q references unknown help topic %q", op.ID, path, cfg.Help)
				}
				field.Metadata[MetadataHelp] = cfg.Help
			}
		}

		if len(field.Nested) > 0 {
			nested, err := d.decorateFields(op, path, field.Nested)
			if err != nil {
				return nil, err
			}
			field.Nested = nested
		}
		decorated[i] = field
	}
	return decorated, nil
}

// sortFields orders fields by (section rank, explicit order, name) at every
// nesting level.
func sortFields(op Operation, prefix string, fields []model.Field) {
	sectionRank := make(map[string]int, len(op.Sections))
	for i, section := range op.Sections {
		sectionRank[section.ID] = i
	}

	rank := func(field model.Field) (int, int) {
		path := field.Name
		if prefix != "" {
			path = prefix + "." + field.Name
		}
		section := len(op.Sections)
		if id, ok := field.Metadata[MetadataSection]; ok {
			if r, known := sectionRank[id]; known {
				section = r
			}
		}
		order := 1 << 30
		if cfg, ok := op.Fields[path]; ok && cfg.Order != nil {
			order = *cfg.Order
		}
		return section, order
	}

	sort.SliceStable(fields, func(i, j int) bool {
		si, oi := rank(fields[i])
		sj, oj := rank(fields[j])
		if si != sj {
			return si < sj
		}
		if oi != oj {
			return oi < oj
		}
		return fields[i].Name < fields[j].Name
	})

	for i := range fields {
		if len(fields[i].Nested) > 0 {
			path := fields[i].Name
			if prefix != "" {
				path = prefix + "." + fields[i].Name
			}
			sortFields(op, path, fields[i].Nested)
		}
	}
}

// Sections decodes the section list a decorator stored on a form model.
func Sections(form model.FormModel) []SectionConfig {
	raw, ok := form.Metadata[MetadataSections]
	if !ok || raw == "" {
		return nil
	}
	var sections []SectionConfig
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		return nil
	}
	return sections
}
