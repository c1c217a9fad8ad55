package layout

import "sort"

// Store keeps the parsed operations from layout documents. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	operations map[string]Operation
}

// Operation returns the layout for the supplied operation id.
func (s *Store) Operation(id string) (Operation, bool) {
	if s == nil {
		return Operation{}, false
	}
	op, ok := s.operations[id]
	return op, ok
}

// OperationIDs returns the ids of the stored operations in sorted order.
func (s *Store) OperationIDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.operations))
	for id := range s.operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any operations.
func (s *Store) Empty() bool {
	return s == nil || len(s.operations) == 0
}

// Operation describes the layout overrides for a single form operation.
type Operation struct {
	ID       string
	Source   string
	Form     FormConfig
	Sections []SectionConfig
	Fields   map[string]FieldConfig
}

// FormConfig captures high-level form chrome.
type FormConfig struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
}

// SectionConfig groups related fields into cards/fieldsets. Help names the
// help topic rendered alongside the section.
type SectionConfig struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Help        string `json:"help,omitempty" yaml:"help,omitempty"`
}

// FieldConfig customises how a field is rendered. Paths are dotted binding
// keys ("credentials.access_key").
type FieldConfig struct {
	Section     string `json:"section,omitempty" yaml:"section,omitempty"`
	Order       *int   `json:"order,omitempty" yaml:"order,omitempty"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Widget      string `json:"widget,omitempty" yaml:"widget,omitempty"`
	Help        string `json:"help,omitempty" yaml:"help,omitempty"`
}
