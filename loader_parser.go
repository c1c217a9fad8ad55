package awsform

import (
	internalLoader "github.com/goliatone/go-awsform/internal/openapi/loader"
	internalParser "github.com/goliatone/go-awsform/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-awsform/pkg/openapi"
)

// NewLoader constructs the default OpenAPI document loader. Without options
// it resolves file sources only; pass pkgopenapi.WithFileSystem to enable
// fs.FS sources such as DefaultSchemaSource.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalLoader.New(pkgopenapi.NewLoaderOptions(options...))
}

// NewParser constructs the default kin-openapi backed parser.
func NewParser() pkgopenapi.Parser {
	return internalParser.New()
}
