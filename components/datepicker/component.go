package datepicker

import (
	"context"
	"net/http"
	"strings"

	picker "github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/render"
)

// Component is a small, extraction-friendly wrapper around the date picker
// handler, its instance store, and routing helpers.
type Component struct {
	opts  Options
	mount string
}

// New constructs a new component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	return &Component{opts: opts, mount: mountPath("", opts.RoutePath)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Store returns the instance store shared by the handler.
func (c *Component) Store() *Store {
	return c.opts.Store
}

// Handler returns a net/http handler mounted at the route path.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return Handler()
	}
	return newHandler(c.opts, c.mount)
}

// RegisterRoutes registers the component handler under basePath on mux.
// Endpoints handed out afterwards include basePath.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	pattern, err := RegisterRoutesWithOptions(mux, basePath, c.opts)
	if err != nil {
		return "", err
	}
	c.mount = pattern
	return pattern, nil
}

// Create stores a new picker instance.
func (c *Component) Create(cfg picker.Config) *Instance {
	inst := c.opts.Store.Create(cfg)
	c.opts.Metrics.setInstances(c.opts.Store.Len())
	return inst
}

// Endpoint returns the URL the browser runtime posts events for id to.
func (c *Component) Endpoint(id string) string {
	return strings.TrimRight(c.mount, "/") + "/" + id
}

// Context attaches the endpoint of inst so renderers embed it in markup.
func (c *Component) Context(ctx context.Context, inst *Instance) context.Context {
	return render.WithPickerEndpoint(ctx, c.Endpoint(inst.ID()))
}
