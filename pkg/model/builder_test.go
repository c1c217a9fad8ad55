package model

import (
	"testing"

	pkgopenapi "github.com/goliatone/go-awsform/pkg/openapi"
)

func backendConfigOperation() pkgopenapi.Operation {
	schema := pkgopenapi.Schema{
		Type:     "object",
		Required: []string{"credentials", "regions", "s3_bucket_name"},
		Properties: map[string]pkgopenapi.Schema{
			"credentials": {
				Type:     "object",
				Required: []string{"type"},
				Properties: map[string]pkgopenapi.Schema{
					"type":       {Type: "string", Enum: []any{"access_key", "default"}, Default: "access_key"},
					"access_key": {Type: "string"},
					"secret_key": {Type: "string", Format: "password"},
				},
			},
			"regions":        {Type: "array", Items: &pkgopenapi.Schema{Type: "string"}},
			"s3_bucket_name": {Type: "string"},
			"ec2_subnet_id":  {Type: "string"},
		},
	}
	op, err := pkgopenapi.NewOperation("submitAWSBackendConfig", "POST", "/api/backends/aws/config", schema)
	if err != nil {
		panic(err)
	}
	return op
}

func TestBuild_BackendConfigForm(t *testing.T) {
	form, err := New(Options{}).Build(backendConfigOperation())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if form.OperationID != "submitAWSBackendConfig" || form.Method != "POST" {
		t.Fatalf("unexpected form identity: %s %s", form.OperationID, form.Method)
	}
	if len(form.Fields) != 4 {
		t.Fatalf("expected 4 top-level fields, got %d", len(form.Fields))
	}

	creds, ok := form.FieldByPath("credentials")
	if !ok || creds.Type != FieldTypeObject {
		t.Fatalf("credentials object missing: %#v", creds)
	}
	if len(creds.Nested) != 3 {
		t.Fatalf("expected 3 credential fields, got %d", len(creds.Nested))
	}

	kind, ok := form.FieldByPath("credentials.type")
	if !ok {
		t.Fatalf("credentials.type missing")
	}
	if !kind.Required || len(kind.Enum) != 2 || kind.Default != "access_key" {
		t.Fatalf("unexpected credentials.type field: %#v", kind)
	}

	secret, ok := form.FieldByPath("credentials.secret_key")
	if !ok {
		t.Fatalf("credentials.secret_key missing")
	}
	if secret.Metadata["widget"] != "password" {
		t.Fatalf("expected password widget hint, got %#v", secret.Metadata)
	}

	regions, ok := form.FieldByPath("regions")
	if !ok || regions.Type != FieldTypeArray || regions.Items == nil {
		t.Fatalf("unexpected regions field: %#v", regions)
	}
	if !regions.Required {
		t.Fatalf("regions should be required")
	}

	subnet, ok := form.FieldByPath("ec2_subnet_id")
	if !ok {
		t.Fatalf("ec2_subnet_id missing")
	}
	if subnet.Required {
		t.Fatalf("ec2_subnet_id should be optional")
	}
}

func TestBuild_MissingArrayItems(t *testing.T) {
	schema := pkgopenapi.Schema{
		Type: "object",
		Properties: map[string]pkgopenapi.Schema{
			"regions": {Type: "array"},
		},
	}
	op, err := pkgopenapi.NewOperation("broken", "POST", "/broken", schema)
	if err != nil {
		t.Fatalf("operation: %v", err)
	}
	if _, err := New(Options{}).Build(op); err == nil {
		t.Fatalf("expected error for array without items")
	}
}

func TestDefaultLabeler_KeepsAWSAcronyms(t *testing.T) {
	cases := map[string]string{
		"s3_bucket_name": "S3 Bucket Name",
		"ec2_subnet_id":  "EC2 Subnet ID",
		"access_key":     "Access Key",
		"regions":        "Regions",
		"":               "",
	}
	for input, want := range cases {
		if got := DefaultLabeler(input); got != want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", input, got, want)
		}
	}
}
