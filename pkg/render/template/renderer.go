// Package template defines the seam between renderers and the underlying
// template engine, mirroring the github.com/goliatone/go-template contract.
package template

import "io"

// TemplateRenderer is the subset of the go-template engine contract the
// renderers rely on.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
