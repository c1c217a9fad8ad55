package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/greeting.tmpl": &fstest.MapFile{
			Data: []byte("Hello {{ name }}{% if env %} ({{ env }}){% endif %}"),
		},
	}
}

func TestNew_RequiresFS(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error when no fs.FS is provided")
	}
}

func TestRenderTemplate_AppendsExtension(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension("tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("templates/greeting", map[string]any{"name": "ops"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if out != "Hello ops" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderTemplate_CachesCompiledTemplates(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.RenderTemplate("templates/greeting.tmpl", map[string]any{"name": "a"}); err != nil {
		t.Fatalf("first render: %v", err)
	}
	if len(engine.templates) != 1 {
		t.Fatalf("expected 1 cached template, got %d", len(engine.templates))
	}
	if _, err := engine.RenderTemplate("templates/greeting.tmpl", map[string]any{"name": "b"}); err != nil {
		t.Fatalf("second render: %v", err)
	}
	if len(engine.templates) != 1 {
		t.Fatalf("cache grew unexpectedly: %d", len(engine.templates))
	}
}

func TestRenderString_UsesGlobalData(t *testing.T) {
	engine, err := New(
		WithFS(testFS()),
		WithGlobalData(map[string]any{"env": "staging"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ env }}", nil)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "staging" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderTemplate_Tee(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var sink strings.Builder
	out, err := engine.RenderTemplate("templates/greeting", map[string]any{"name": "ops"}, &sink)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if sink.String() != out {
		t.Fatalf("tee mismatch: %q vs %q", sink.String(), out)
	}
}

func TestConvertToContext_RejectsUnsupportedTypes(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.RenderString("{{ x }}", 42); err == nil {
		t.Fatalf("expected error for unsupported context type")
	}
}
