// Package uikit is the entry point of the UI kit: server-rendered
// components (date picker, modal, toasts, cards and forms), their
// controllers, and the HTTP plumbing the browser runtime talks to.
package uikit

import (
	"context"
	"fmt"

	pickercomponent "github.com/goliatone/go-uikit/components/datepicker"
	"github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/modal"
	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/renderers/vanilla"
	"github.com/goliatone/go-uikit/pkg/toast"
)

// DatePickerConfig describes one date picker widget.
type DatePickerConfig = datepicker.Config

// HiddenField is a hidden form input rendered with forms.
type HiddenField = render.HiddenField

// Component is a renderable piece of markup.
type Component = render.Component

// NewRenderer builds the HTML renderer for every component.
func NewRenderer(options ...vanilla.Option) (*vanilla.Renderer, error) {
	return vanilla.New(options...)
}

// NewRendererRegistry returns a registry holding the HTML renderer built
// from options and the JSON renderer.
func NewRendererRegistry(options ...vanilla.Option) (*render.Registry, error) {
	html, err := vanilla.New(options...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(render.NewJSONRenderer()); err != nil {
		return nil, err
	}
	return registry, nil
}

// NewDatePicker constructs a date picker controller.
func NewDatePicker(cfg DatePickerConfig, options ...datepicker.Option) *datepicker.Picker {
	return datepicker.New(cfg, options...)
}

// NewModal constructs a closed modal.
func NewModal(id, title string) *modal.Modal {
	return modal.New(id, title)
}

// NewNotifier constructs a toast notifier.
func NewNotifier(options ...toast.Option) *toast.Notifier {
	return toast.New(options...)
}

// NewPage constructs an empty widget page.
func NewPage() *page.Page {
	return page.New()
}

// NewDatePickerComponent constructs the HTTP component serving picker
// instances.
func NewDatePickerComponent(options ...pickercomponent.OptionFn) *pickercomponent.Component {
	return pickercomponent.New(options...)
}

// RenderDatePicker renders a fresh picker for cfg with the named renderer
// ("vanilla" or "json"). It is the simplest entry point for callers that
// just want markup.
func RenderDatePicker(ctx context.Context, cfg DatePickerConfig, rendererName string, options ...vanilla.Option) ([]byte, error) {
	registry, err := NewRendererRegistry(options...)
	if err != nil {
		return nil, fmt.Errorf("uikit: build renderers: %w", err)
	}
	renderer, err := registry.Resolve(rendererName, "vanilla")
	if err != nil {
		return nil, fmt.Errorf("uikit: resolve renderer: %w", err)
	}
	return renderer.RenderPicker(ctx, datepicker.New(cfg).Snapshot())
}
