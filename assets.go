package awsform

import (
	"embed"
	"io/fs"

	pkgopenapi "github.com/goliatone/go-awsform/pkg/openapi"
	"github.com/goliatone/go-awsform/pkg/renderers/html"
)

//go:embed schema/aws_backend.yaml
var embeddedSchema embed.FS

// DefaultOperationID is the operationId of the embedded settings operation.
const DefaultOperationID = "submitAWSBackendConfig"

const embeddedSchemaPath = "schema/aws_backend.yaml"

// SchemaFS exposes the embedded OpenAPI document describing the backend
// settings operation so callers can serve or inspect it directly.
func SchemaFS() fs.FS {
	return embeddedSchema
}

// DefaultSchemaSource returns a Source pointing at the embedded OpenAPI
// document. Pair it with the default loader, which is configured with
// SchemaFS.
func DefaultSchemaSource() pkgopenapi.Source {
	return pkgopenapi.SourceFromFS(embeddedSchemaPath)
}

// EmbeddedTemplates exposes the built-in HTML renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
