// Package layout loads UI layout documents (YAML or JSON) that overlay the
// generated form model: section grouping, display order, labels, widget
// hints, and help-topic bindings per field path.
package layout
