// Dumps the decorated form model as JSON so renderer changes can be reviewed
// against a stable snapshot.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	awsform "github.com/goliatone/go-awsform"
	pkgopenapi "github.com/goliatone/go-awsform/pkg/openapi"
)

func main() {
	var (
		schemaPath  = flag.String("schema", "", "OpenAPI schema path (embedded schema if empty)")
		operationID = flag.String("operation", awsform.DefaultOperationID, "operation ID to snapshot")
		outputPath  = flag.String("output", "docs/form_model.json", "output path for the serialized form model")
	)
	flag.Parse()

	ctx := context.Background()

	var source pkgopenapi.Source
	if *schemaPath != "" {
		source = pkgopenapi.SourceFromFile(*schemaPath)
	}

	gen := awsform.New()
	form, err := gen.BuildForm(ctx, awsform.Request{
		Source:      source,
		OperationID: *operationID,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build form model: %v\n", err)
		os.Exit(1)
	}

	payload, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to serialize form model: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Form model snapshot (%d bytes) written to %s\n", len(payload), *outputPath)
}
