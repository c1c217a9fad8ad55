package layout

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML layout files.
// When fsys is nil or no layout files are present, the returned store is
// empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{operations: make(map[string]Operation)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isLayoutFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("layout: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for opID, raw := range doc.Operations {
			id := strings.TrimSpace(opID)
			if id == "" {
				return fmt.Errorf("layout: file %s defines an empty operation id", path)
			}
			if _, exists := store.operations[id]; exists {
				return fmt.Errorf("layout: duplicate operation %q (file %s)", id, path)
			}
			op, err := normaliseOperation(raw, id, path)
			if err != nil {
				return err
			}
			store.operations[id] = op
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

type documentFile struct {
	Operations map[string]operationFile `json:"operations" yaml:"operations"`
}

type operationFile struct {
	Form     FormConfig             `json:"form" yaml:"form"`
	Sections []SectionConfig        `json:"sections" yaml:"sections"`
	Fields   map[string]FieldConfig `json:"fields" yaml:"fields"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("layout: file %s is empty", source)
	}

	var doc documentFile
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("layout: parse %s: %w", source, err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("layout: parse %s: %w", source, err)
		}
	}
	return doc, nil
}

func normaliseOperation(raw operationFile, id, source string) (Operation, error) {
	op := Operation{
		ID:       id,
		Source:   source,
		Form:     raw.Form,
		Sections: append([]SectionConfig(nil), raw.Sections...),
		Fields:   make(map[string]FieldConfig, len(raw.Fields)),
	}

	seen := make(map[string]struct{}, len(op.Sections))
	for _, section := range op.Sections {
		sid := strings.TrimSpace(section.ID)
		if sid == "" {
			return Operation{}, fmt.Errorf("layout: operation %q has a section without an id (file %s)", id, source)
		}
		if _, dup := seen[sid]; dup {
			return Operation{}, fmt.Errorf("layout: operation %q duplicates section %q (file %s)", id, sid, source)
		}
		seen[sid] = struct{}{}
	}

	for path, cfg := range raw.Fields {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			return Operation{}, fmt.Errorf("layout: operation %q has a field config without a path (file %s)", id, source)
		}
		if cfg.Section != "" {
			if _, ok := seen[cfg.Section]; !ok {
				return Operation{}, fmt.Errorf("layout: operation %q field %q references unknown section %q (file %s)", id, trimmed, cfg.Section, source)
			}
		}
		op.Fields[trimmed] = cfg
	}

	return op, nil
}

func isLayoutFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
