// Package openapi defines the document, schema, and operation wrappers the
// form pipeline consumes, keeping the public API decoupled from kin-openapi.
package openapi
