// Command awsform-lint-layout checks layout documents against the OpenAPI
// schema and the help topic registry: every field path must exist on the
// operation, every section reference must resolve, and every help binding
// must name a known topic.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	awsform "github.com/goliatone/go-awsform"
	"github.com/goliatone/go-awsform/pkg/content"
	"github.com/goliatone/go-awsform/pkg/layout"
	"github.com/goliatone/go-awsform/pkg/model"
	pkgopenapi "github.com/goliatone/go-awsform/pkg/openapi"
)

type violation struct {
	operation string
	location  string
	message   string
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-schema file] [layout dirs...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nLint layout documents against the settings schema and help topics.\n")
	}
	schemaPath := flag.String("schema", "", "OpenAPI document path (embedded schema if empty)")
	flag.Parse()

	ctx := context.Background()

	stores, err := loadStores(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	forms := loadForms(ctx, *schemaPath, stores)

	var violations []violation
	for _, store := range stores {
		violations = append(violations, lintStore(store, forms)...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].operation == violations[j].operation {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].operation < violations[j].operation
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.operation, v.location, v.message)
		}
		os.Exit(1)
	}
}

func loadStores(dirs []string) ([]*layout.Store, error) {
	if len(dirs) == 0 {
		store, err := layout.LoadFS(layout.DefaultFS())
		if err != nil {
			return nil, fmt.Errorf("load embedded layouts: %w", err)
		}
		return []*layout.Store{store}, nil
	}

	stores := make([]*layout.Store, 0, len(dirs))
	for _, dir := range dirs {
		store, err := layout.LoadFS(os.DirFS(dir))
		if err != nil {
			return nil, fmt.Errorf("lint %s: %w", dir, err)
		}
		stores = append(stores, store)
	}
	return stores, nil
}

// loadForms builds the undecorated form for every operation the layouts
// reference. Operations missing from the schema are simply absent from the
// result and reported by lintStore.
func loadForms(ctx context.Context, schemaPath string, stores []*layout.Store) map[string]model.FormModel {
	var source pkgopenapi.Source
	if schemaPath != "" {
		source = pkgopenapi.SourceFromFile(schemaPath)
	}

	// Layout decoration is what we are linting, so build the bare form.
	gen := awsform.New(awsform.WithLayoutFS(nil))

	forms := make(map[string]model.FormModel)
	for _, store := range stores {
		for _, id := range store.OperationIDs() {
			if _, done := forms[id]; done {
				continue
			}
			form, err := gen.BuildForm(ctx, awsform.Request{Source: source, OperationID: id})
			if err != nil {
				continue
			}
			forms[id] = form
		}
	}
	return forms
}

func lintStore(store *layout.Store, forms map[string]model.FormModel) []violation {
	var result []violation
	for _, id := range store.OperationIDs() {
		op, _ := store.Operation(id)
		form, known := forms[id]

		sections := map[string]struct{}{}
		for _, section := range op.Sections {
			sections[section.ID] = struct{}{}
			result = append(result, lintHelp(id, "section "+section.ID, section.Help)...)
		}

		paths := make([]string, 0, len(op.Fields))
		for path := range op.Fields {
			paths = append(paths, path)
		}
		sort.Strings(paths)

		for _, path := range paths {
			cfg := op.Fields[path]
			location := "field " + path

			if known {
				if _, ok := form.FieldByPath(path); !ok {
					result = append(result, violation{
						operation: id,
						location:  location,
						message:   "no such field on the operation request body",
					})
				}
			}
			if cfg.Section != "" {
				if _, ok := sections[cfg.Section]; !ok {
					result = append(result, violation{
						operation: id,
						location:  location,
						message:   fmt.Sprintf("references undeclared section %q", cfg.Section),
					})
				}
			}
			result = append(result, lintHelp(id, location, cfg.Help)...)
		}

		if !known {
			result = append(result, violation{
				operation: id,
				location:  "operation",
				message:   "not present in the schema, field paths were not checked",
			})
		}
	}
	return result
}

func lintHelp(operation, location, topicID string) []violation {
	if topicID == "" {
		return nil
	}
	if _, ok := content.TopicByID(topicID); ok {
		return nil
	}
	return []violation{{
		operation: operation,
		location:  location,
		message: fmt.Sprintf("unknown help topic %q (known: %s)",
			topicID, strings.Join(content.TopicIDs(), ", ")),
	}}
}
