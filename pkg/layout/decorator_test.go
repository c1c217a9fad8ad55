package layout

import (
	"testing"

	"github.com/goliatone/go-awsform/pkg/model"
)

func backendForm() model.FormModel {
	return model.FormModel{
		OperationID: "submitAWSBackendConfig",
		Endpoint:    "/api/backends/aws/config",
		Method:      "POST",
		Fields: []model.Field{
			{Name: "ec2_subnet_id", Type: model.FieldTypeString, Label: "EC2 Subnet ID"},
			{Name: "regions", Type: model.FieldTypeArray, Required: true},
			{Name: "s3_bucket_name", Type: model.FieldTypeString, Required: true},
			{
				Name: "credentials", Type: model.FieldTypeObject, Required: true,
				Nested: []model.Field{
					{Name: "access_key", Type: model.FieldTypeString},
					{Name: "secret_key", Type: model.FieldTypeString},
					{Name: "type", Type: model.FieldTypeString, Required: true},
				},
			},
		},
	}
}

func TestDecorate_AppliesLayoutAndOrder(t *testing.T) {
	store, err := LoadFS(DefaultFS())
	if err != nil {
		t.Fatalf("load layout: %v", err)
	}

	form := backendForm()
	if err := NewDecorator(store).Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	if form.Metadata[MetadataTitle] != "AWS" {
		t.Fatalf("expected title metadata, got %#v", form.Metadata)
	}

	// Credentials section sorts ahead of placement.
	order := make([]string, len(form.Fields))
	for i, field := range form.Fields {
		order[i] = field.Name
	}
	want := []string{"credentials", "regions", "s3_bucket_name", "ec2_subnet_id"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected field order: %#v", order)
		}
	}

	creds := form.Fields[0]
	nestedOrder := make([]string, len(creds.Nested))
	for i, field := range creds.Nested {
		nestedOrder[i] = field.Name
	}
	for i, name := range []string{"type", "access_key", "secret_key"} {
		if nestedOrder[i] != name {
			t.Fatalf("unexpected credential field order: %#v", nestedOrder)
		}
	}

	bucket, ok := form.FieldByPath("s3_bucket_name")
	if !ok {
		t.Fatalf("bucket field missing")
	}
	if bucket.Label != "Bucket" {
		t.Fatalf("expected relabelled bucket field, got %q", bucket.Label)
	}
	if bucket.Metadata[MetadataHelp] != "bucket" || bucket.Metadata[MetadataSection] != "placement" {
		t.Fatalf("unexpected bucket metadata: %#v", bucket.Metadata)
	}

	secret, _ := form.FieldByPath("credentials.secret_key")
	if secret.Metadata[MetadataWidget] != "password" {
		t.Fatalf("expected password widget, got %#v", secret.Metadata)
	}

	sections := Sections(form)
	if len(sections) != 2 || sections[0].ID != "credentials" {
		t.Fatalf("unexpected decoded sections: %#v", sections)
	}
}

func TestDecorate_UnknownHelpTopic(t *testing.T) {
	store := &Store{operations: map[string]Operation{
		"op": {
			ID:     "op",
			Fields: map[string]FieldConfig{"name": {Help: "nonsense"}},
		},
	}}
	form := model.FormModel{
		OperationID: "op",
		Fields:      []model.Field{{Name: "name", Type: model.FieldTypeString}},
	}
	if err := NewDecorator(store).Decorate(&form); err == nil {
		t.Fatalf("expected unknown help topic error")
	}
}

func TestDecorate_NoLayoutForOperation(t *testing.T) {
	store, err := LoadFS(DefaultFS())
	if err != nil {
		t.Fatalf("load layout: %v", err)
	}
	form := model.FormModel{OperationID: "other", Fields: []model.Field{{Name: "a", Type: model.FieldTypeString}}}
	if err := NewDecorator(store).Decorate(&form); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if form.Metadata != nil {
		t.Fatalf("expected untouched metadata, got %#v", form.Metadata)
	}
}
