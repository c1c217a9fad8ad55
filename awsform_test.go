package awsform

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-awsform/pkg/content"
	"github.com/goliatone/go-awsform/pkg/layout"
	"github.com/goliatone/go-awsform/pkg/model"
)

func TestBuildForm_DefaultPipeline(t *testing.T) {
	gen := New()

	form, err := gen.BuildForm(context.Background(), Request{})
	if err != nil {
		t.Fatalf("build form: %v", err)
	}

	if form.OperationID != DefaultOperationID {
		t.Fatalf("unexpected operation id: %q", form.OperationID)
	}
	if form.Method != "POST" || form.Endpoint != "/api/backends/aws/config" {
		t.Fatalf("unexpected endpoint: %s %s", form.Method, form.Endpoint)
	}

	for _, key := range content.BindingKeys() {
		if _, ok := form.FieldByPath(key); !ok {
			t.Fatalf("form missing field for binding key %q", key)
		}
	}

	if form.Metadata[layout.MetadataTitle] == "" {
		t.Fatalf("layout decorator did not run, metadata: %#v", form.Metadata)
	}

	field, _ := form.FieldByPath(content.FieldNames().Credentials.SecretKey)
	if field.Metadata[layout.MetadataWidget] != "password" {
		t.Fatalf("secret key should carry the password widget, got %#v", field.Metadata)
	}
}

func TestGenerate_HTMLRendersAllFields(t *testing.T) {
	output, err := GenerateHTML(context.Background())
	if err != nil {
		t.Fatalf("generate html: %v", err)
	}
	markup := string(output)

	for _, key := range content.BindingKeys() {
		if !strings.Contains(markup, `name="`+key+`"`) {
			t.Fatalf("markup missing input for %q", key)
		}
	}
	if !strings.Contains(markup, `action="/api/backends/aws/config"`) {
		t.Fatalf("markup missing form action")
	}
}

func TestGenerate_UnknownRenderer(t *testing.T) {
	gen := New()

	if _, err := gen.Generate(context.Background(), Request{Renderer: "pdf"}); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}

func TestGenerate_UnknownOperation(t *testing.T) {
	gen := New()

	if _, err := gen.Generate(context.Background(), Request{OperationID: "nope"}); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
}

type titleSuffixDecorator struct{}

func (titleSuffixDecorator) Decorate(form *model.FormModel) error {
	if form.Metadata == nil {
		return nil
	}
	form.Metadata[layout.MetadataTitle] += " (staging)"
	return nil
}

func TestBuildForm_CallerDecoratorsRunAfterLayout(t *testing.T) {
	gen := New(WithDecorators(titleSuffixDecorator{}))

	form, err := gen.BuildForm(context.Background(), Request{})
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	if got := form.Metadata[layout.MetadataTitle]; got != "AWS (staging)" {
		t.Fatalf("expected suffixed layout title, got %q", got)
	}
}

func TestNew_DisabledLayout(t *testing.T) {
	gen := New(WithLayoutFS(nil))

	form, err := gen.BuildForm(context.Background(), Request{})
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	if form.Metadata[layout.MetadataTitle] != "" {
		t.Fatalf("layout metadata should be absent, got %#v", form.Metadata)
	}
}
