package awsform

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-awsform/components/regions"
	internalLoader "github.com/goliatone/go-awsform/internal/openapi/loader"
	internalParser "github.com/goliatone/go-awsform/internal/openapi/parser"
	"github.com/goliatone/go-awsform/pkg/content"
	"github.com/goliatone/go-awsform/pkg/layout"
	"github.com/goliatone/go-awsform/pkg/model"
	pkgopenapi "github.com/goliatone/go-awsform/pkg/openapi"
	"github.com/goliatone/go-awsform/pkg/render"
	"github.com/goliatone/go-awsform/pkg/renderers/html"
	"github.com/goliatone/go-awsform/pkg/renderers/tui"
)

const defaultRendererName = "html"

// RenderOptions is re-exported so callers prefilling values or surfacing
// validation errors do not need to import pkg/render directly.
type RenderOptions = render.RenderOptions

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(g *Generator) {
		g.parser = parser
	}
}

// WithModelBuilder injects a custom form model builder.
func WithModelBuilder(builder *model.Builder) Option {
	return func(g *Generator) {
		g.builder = builder
	}
}

// WithRegistry injects a renderer registry, replacing the built-in html and
// tui renderers.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// WithDecorators registers decorators that run against the generated form
// model before rendering, after the layout decorator.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(g *Generator) {
		if len(decorators) == 0 {
			return
		}
		g.decorators = append(g.decorators, decorators...)
	}
}

// WithLayoutFS supplies an fs.FS holding layout documents. Pass nil to
// disable the embedded defaults.
func WithLayoutFS(fsys fs.FS) Option {
	return func(g *Generator) {
		g.layoutFS = fsys
		g.layoutSpecified = true
	}
}

// WithSchemaFS supplies the fs.FS consulted by the default loader for fs.FS
// sources. Defaults to the embedded schema bundle.
func WithSchemaFS(fsys fs.FS) Option {
	return func(g *Generator) {
		if fsys != nil {
			g.schemaFS = fsys
		}
	}
}

// WithTheme feeds a resolved go-theme renderer configuration into the
// built-in HTML renderer.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(g *Generator) {
		g.themeConfig = cfg
	}
}

// Generator coordinates the full pipeline from the OpenAPI document to
// rendered output. It applies sensible defaults (embedded schema and layout,
// html renderer) while remaining open to dependency injection.
type Generator struct {
	loader          pkgopenapi.Loader
	parser          pkgopenapi.Parser
	builder         *model.Builder
	registry        *render.Registry
	defaultRenderer string
	decorators      []model.Decorator
	layoutFS        fs.FS
	layoutSpecified bool
	schemaFS        fs.FS
	themeConfig     *theme.RendererConfig

	initialiseErr    error
	defaultsApplied  bool
	layoutConfigured bool
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

// Request describes the inputs required to render the settings form.
type Request struct {
	// Source identifies where the OpenAPI document lives. Defaults to the
	// embedded schema when nil.
	Source pkgopenapi.Source

	// OperationID selects which operation to render. Defaults to
	// DefaultOperationID.
	OperationID string

	// Renderer names the renderer to use. If empty, the generator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request values and validation errors that
	// renderers surface next to the inputs.
	RenderOptions render.RenderOptions
}

// Generate executes the loader, parser, model builder, decorators, and the
// selected renderer, returning the rendered bytes.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	form, err := g.BuildForm(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := g.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("awsform: render output: %w", err)
	}
	return output, nil
}

// BuildForm runs the pipeline up to and including decoration, returning the
// form model without rendering it. Useful for callers driving their own
// renderer.
func (g *Generator) BuildForm(ctx context.Context, req Request) (model.FormModel, error) {
	if ctx == nil {
		return model.FormModel{}, errors.New("awsform: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.FormModel{}, err
	}
	if err := g.initialiseErr; err != nil {
		return model.FormModel{}, err
	}

	source := req.Source
	if source == nil {
		source = DefaultSchemaSource()
	}
	operationID := req.OperationID
	if operationID == "" {
		operationID = DefaultOperationID
	}

	doc, err := g.loader.Load(ctx, source)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("awsform: load document: %w", err)
	}

	operations, err := g.parser.Operations(ctx, doc)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("awsform: parse operations: %w", err)
	}

	op, ok := operations[operationID]
	if !ok {
		return model.FormModel{}, fmt.Errorf("awsform: operation %q not found", operationID)
	}

	form, err := g.builder.Build(op)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("awsform: build form model: %w", err)
	}

	for _, decorator := range g.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&form); err != nil {
			return model.FormModel{}, fmt.Errorf("awsform: decorate form: %w", err)
		}
	}
	return form, nil
}

// GenerateHTML renders the embedded settings form as HTML using the default
// pipeline. It is the simplest entry point for web callers.
func GenerateHTML(ctx context.Context, options ...Option) ([]byte, error) {
	gen := New(options...)
	return gen.Generate(ctx, Request{Renderer: "html"})
}

func (g *Generator) rendererFor(name string) (render.Renderer, error) {
	if g.registry == nil {
		return nil, errors.New("awsform: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = g.defaultRenderer
	}

	if target != "" {
		renderer, err := g.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("awsform: renderer %q: %w", name, err)
		}
	}

	names := g.registry.List()
	if len(names) == 0 {
		return nil, errors.New("awsform: no renderers registered")
	}

	renderer, err := g.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("awsform: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (g *Generator) applyDefaults() {
	if g.defaultsApplied {
		return
	}

	if g.schemaFS == nil {
		g.schemaFS = SchemaFS()
	}
	if g.loader == nil {
		g.loader = internalLoader.New(pkgopenapi.NewLoaderOptions(
			pkgopenapi.WithFileSystem(g.schemaFS),
		))
	}
	if g.parser == nil {
		g.parser = internalParser.New()
	}
	if g.builder == nil {
		g.builder = model.New(model.Options{})
	}
	if g.registry == nil {
		g.registry = render.NewRegistry()
		g.registerDefaultRenderers()
	}
	if g.defaultRenderer == "" {
		g.defaultRenderer = defaultRendererName
	}

	g.ensureLayoutDecorator()

	g.defaultsApplied = true
}

func (g *Generator) registerDefaultRenderers() {
	htmlRenderer, err := html.New(html.WithTheme(g.themeConfig))
	if err != nil {
		g.initialiseErr = fmt.Errorf("awsform: default html renderer: %w", err)
		return
	}
	g.registry.MustRegister(htmlRenderer)

	tuiOptions := []tui.Option{}
	if catalog, err := regions.DefaultRegions(); err == nil {
		tuiOptions = append(tuiOptions, tui.WithArrayOptions(
			content.FieldNames().Regions,
			regions.Codes(catalog),
		))
	}
	g.registry.MustRegister(tui.New(tuiOptions...))
}

func (g *Generator) ensureLayoutDecorator() {
	if g.layoutConfigured {
		return
	}
	g.layoutConfigured = true

	if !g.layoutSpecified && g.layoutFS == nil {
		g.layoutFS = layout.DefaultFS()
	}
	if g.layoutFS == nil {
		return
	}

	store, err := layout.LoadFS(g.layoutFS)
	if err != nil {
		g.initialiseErr = fmt.Errorf("awsform: load layout: %w", err)
		return
	}
	if store.Empty() {
		return
	}

	// The layout decorator runs ahead of any caller-registered decorators.
	g.decorators = append([]model.Decorator{layout.NewDecorator(store)}, g.decorators...)
}
