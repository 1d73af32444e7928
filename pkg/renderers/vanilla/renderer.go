package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/render"
	rendertemplate "github.com/goliatone/go-uikit/pkg/render/template"
	gotemplate "github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-uikit/pkg/renderers/vanilla/components"
)

// DefaultAssetBase prefixes asset file names when no theme resolver is set.
const DefaultAssetBase = "/assets/uikit/"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *components.Registry
	theme            *theme.RendererConfig
	clock            datepicker.Clock
	assetBase        string
	endpoint         func(id string) string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
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

// WithRegistry replaces the default component registry.
func WithRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithTheme applies a go-theme renderer configuration: partial overrides,
// CSS variables and asset URL resolution.
func WithTheme(t *theme.RendererConfig) Option {
	return func(cfg *config) {
		cfg.theme = t
	}
}

// WithClock sets the clock used when rendering pickers from a bare config.
func WithClock(clock datepicker.Clock) Option {
	return func(cfg *config) {
		if clock != nil {
			cfg.clock = clock
		}
	}
}

// WithAssetBase sets the URL prefix for stylesheet and script files when the
// theme does not resolve them.
func WithAssetBase(base string) Option {
	return func(cfg *config) {
		if base = strings.TrimSpace(base); base != "" {
			if !strings.HasSuffix(base, "/") {
				base += "/"
			}
			cfg.assetBase = base
		}
	}
}

// WithPickerEndpoint sets the resolver for the data-ac-datepicker-endpoint
// attribute. Pickers without an endpoint are driven entirely client side.
func WithPickerEndpoint(fn func(id string) string) Option {
	return func(cfg *config) {
		cfg.endpoint = fn
	}
}

// Renderer renders the uikit components to HTML.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	registry  *components.Registry
	theme     *theme.RendererConfig
	clock     datepicker.Clock
	assetBase string
	endpoint  func(id string) string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		clock:      datepicker.SystemClock,
		assetBase:  DefaultAssetBase,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.registry == nil {
		cfg.registry = components.NewDefaultRegistry()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		templates: templates,
		registry:  cfg.registry,
		theme:     cfg.theme,
		clock:     cfg.clock,
		assetBase: cfg.assetBase,
		endpoint:  cfg.endpoint,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Registry returns the component registry backing the renderer.
func (r *Renderer) Registry() *components.Registry {
	return r.registry
}

// renderComponent renders a registered component with its payload.
func (r *Renderer) renderComponent(name string, payload any) (string, error) {
	if r.templates == nil {
		return "", fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	descriptor, ok := r.registry.Descriptor(name)
	if !ok {
		return "", fmt.Errorf("vanilla renderer: component %q not registered", name)
	}

	var buf bytes.Buffer
	if err := descriptor.Renderer(&buf, payload, components.ComponentData{
		Template: r.templates,
		Partials: r.partials(),
	}); err != nil {
		return "", fmt.Errorf("vanilla renderer: %s: %w", name, err)
	}
	return buf.String(), nil
}

// component wraps a payload builder into a lazily rendered Component.
func (r *Renderer) component(name string, build func(ctx context.Context) (any, error)) render.Component {
	return render.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		payload, err := build(ctx)
		if err != nil {
			return err
		}
		out, err := r.renderComponent(name, payload)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}

func (r *Renderer) partials() map[string]string {
	if r.theme == nil {
		return nil
	}
	return r.theme.Partials
}

func (r *Renderer) assetURL(name string) string {
	if r.theme != nil && r.theme.AssetURL != nil {
		if resolved := r.theme.AssetURL(name); resolved != "" {
			return resolved
		}
	}
	if strings.HasPrefix(name, "/") || strings.Contains(name, "://") {
		return name
	}
	return r.assetBase + name
}

func (r *Renderer) pickerEndpoint(id string) string {
	if r.endpoint == nil || id == "" {
		return ""
	}
	return r.endpoint(id)
}
