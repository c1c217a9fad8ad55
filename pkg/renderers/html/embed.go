package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl templates/components/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want to
// reuse or extend the built-in markup.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
