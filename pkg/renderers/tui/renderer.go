// Package tui renders the settings form as an interactive terminal prompt
// flow backed by survey. The "rendered" output is the collected submission,
// encoded as JSON keyed by dotted binding keys.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-awsform/pkg/content"
	"github.com/goliatone/go-awsform/pkg/layout"
	"github.com/goliatone/go-awsform/pkg/model"
	"github.com/goliatone/go-awsform/pkg/render"
)

type Option func(*Renderer)

// WithDriver swaps the prompt driver. Tests use this to run scripted flows.
func WithDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithArrayOptions supplies choices for an array field (keyed by binding
// key) so it can be prompted as a multi-select.
func WithArrayOptions(path string, options []string) Option {
	return func(r *Renderer) {
		if path == "" || len(options) == 0 {
			return
		}
		if r.arrayOptions == nil {
			r.arrayOptions = make(map[string][]string)
		}
		r.arrayOptions[path] = append([]string(nil), options...)
	}
}

// Renderer walks the form fields and prompts for each value.
type Renderer struct {
	driver       PromptDriver
	arrayOptions map[string][]string
}

// New constructs the TUI renderer, defaulting to the survey-backed driver.
func New(options ...Option) *Renderer {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) ContentType() string {
	return "application/json; charset=utf-8"
}

// Render runs the prompt flow and returns the collected values as JSON.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	values, err := r.Run(ctx, form, options)
	if err != nil {
		return nil, err
	}
	encoded, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui renderer: encode submission: %w", err)
	}
	return encoded, nil
}

// Run prompts for every leaf field and returns the values keyed by dotted
// binding keys.
func (r *Renderer) Run(ctx context.Context, form model.FormModel, options render.RenderOptions) (map[string]any, error) {
	if r == nil || r.driver == nil {
		return nil, fmt.Errorf("tui renderer: prompt driver is nil")
	}

	if title := form.Metadata[layout.MetadataTitle]; title != "" {
		banner := title
		if subtitle := form.Metadata[layout.MetadataSubtitle]; subtitle != "" {
			banner += ": " + subtitle
		}
		if err := r.driver.Info(ctx, banner); err != nil {
			return nil, err
		}
	}

	values := make(map[string]any)
	for _, flat := range form.Flatten() {
		field := flat.Field
		if field.Type == model.FieldTypeObject {
			continue
		}
		value, err := r.promptField(ctx, flat.Path, field, options)
		if err != nil {
			return nil, err
		}
		values[flat.Path] = value
	}
	return values, nil
}

func (r *Renderer) promptField(ctx context.Context, path string, field model.Field, options render.RenderOptions) (any, error) {
	message := field.Label
	if message == "" {
		message = model.DefaultLabeler(field.Name)
	}
	help := helpText(field)

	switch {
	case len(field.Enum) > 0:
		choices := make([]string, len(field.Enum))
		for i, entry := range field.Enum {
			choices[i] = fmt.Sprintf("%v", entry)
		}
		defaultIndex := 0
		if preset := presetString(path, field, options); preset != "" {
			if at := indexOf(choices, preset); at >= 0 {
				defaultIndex = at
			}
		}
		at, err := r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      choices,
			DefaultIndex: defaultIndex,
			Help:         help,
		})
		if err != nil {
			return nil, err
		}
		if at < 0 || at >= len(choices) {
			return nil, fmt.Errorf("tui renderer: field %q: selection out of range", path)
		}
		return choices[at], nil

	case field.Type == model.FieldTypeArray:
		choices := r.arrayOptions[path]
		if len(choices) == 0 {
			// Without a catalog fall back to comma separated input.
			raw, err := r.driver.Input(ctx, InputConfig{Message: message, Help: help})
			if err != nil {
				return nil, err
			}
			return splitList(raw), nil
		}
		return r.driver.MultiSelect(ctx, MultiSelectConfig{
			Message:  message,
			Options:  choices,
			Defaults: presetStrings(path, options),
			Help:     help,
		})

	case field.Format == "password" || field.Metadata[layout.MetadataWidget] == "password":
		return r.driver.Password(ctx, InputConfig{Message: message, Help: help})

	case field.Type == model.FieldTypeBoolean:
		preset := false
		if value, ok := field.Default.(bool); ok {
			preset = value
		}
		if value, ok := options.Values[path].(bool); ok {
			preset = value
		}
		return r.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: preset, Help: help})

	default:
		return r.driver.Input(ctx, InputConfig{
			Message: message,
			Default: presetString(path, field, options),
			Help:    help,
		})
	}
}

func helpText(field model.Field) string {
	if topicID := field.Metadata[layout.MetadataHelp]; topicID != "" {
		if topic, ok := content.TopicByID(topicID); ok {
			return topic.PlainBody()
		}
	}
	return field.Description
}

func presetString(path string, field model.Field, options render.RenderOptions) string {
	if value, ok := options.Values[path]; ok && value != nil {
		return fmt.Sprintf("%v", value)
	}
	if field.Default != nil {
		return fmt.Sprintf("%v", field.Default)
	}
	return ""
}

func presetStrings(path string, options render.RenderOptions) []string {
	value, ok := options.Values[path]
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	default:
		return nil
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
