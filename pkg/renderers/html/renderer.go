package html

import (
	"context"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-awsform/pkg/content"
	"github.com/goliatone/go-awsform/pkg/layout"
	"github.com/goliatone/go-awsform/pkg/model"
	"github.com/goliatone/go-awsform/pkg/render"
	rendertemplate "github.com/goliatone/go-awsform/pkg/render/template"
	gotemplate "github.com/goliatone/go-awsform/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	themeConfig      *theme.RendererConfig
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme feeds a resolved go-theme renderer configuration (tokens, CSS
// variables) into the rendered markup.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.themeConfig = cfg
	}
}

// Renderer produces the HTML rendition of the settings form plus standalone
// help topic fragments.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	theme     rendererTheme
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		theme:     buildThemeContext(cfg.themeConfig),
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full settings form.
func (r *Renderer) Render(_ context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", map[string]any{
		"form":     form,
		"title":    form.Metadata[layout.MetadataTitle],
		"subtitle": form.Metadata[layout.MetadataSubtitle],
		"sections": buildSections(form, options),
		"theme":    r.theme,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// RenderTopic produces a standalone HTML fragment for one help topic.
func (r *Renderer) RenderTopic(topic content.Topic) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/help_topic.tmpl", map[string]any{
		"topic": helpView{ID: topic.ID, Header: topic.Header, HTML: TopicHTML(topic)},
		"theme": r.theme,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render help topic %q: %w", topic.ID, err)
	}
	return []byte(result), nil
}
