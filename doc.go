// Package awsform generates the AWS backend settings form from an embedded
// OpenAPI description. It wires the loader, parser, model builder, layout
// decorator, and renderers into a single Generator, and exposes the static
// field name registry and help topics under pkg/content.
package awsform
