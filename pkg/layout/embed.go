package layout

import (
	"embed"
	"io/fs"
)

//go:embed layouts/*.yaml
var embeddedLayouts embed.FS

// DefaultFS exposes the embedded layout documents for the AWS backend
// settings form.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(embeddedLayouts, "layouts")
	if err != nil {
		return embeddedLayouts
	}
	return sub
}
