package datepicker

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	picker "github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/renderers/vanilla"
)

const (
	HeaderValue   = "X-Datepicker-Value"
	HeaderDisplay = "X-Datepicker-Display"
	HeaderOpen    = "X-Datepicker-Open"

	// FormatParam selects a renderer by name, e.g. ?format=json.
	FormatParam = "format"

	eventsSegment = "events"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

var (
	defaultRenderersOnce sync.Once
	defaultRenderers     *render.Registry
	defaultRenderersErr  error
)

// DefaultRenderers returns a shared registry holding the vanilla HTML and
// JSON renderers.
func DefaultRenderers() (*render.Registry, error) {
	defaultRenderersOnce.Do(func() {
		html, err := vanilla.New()
		if err != nil {
			defaultRenderersErr = fmt.Errorf("datepicker: build vanilla renderer: %w", err)
			return
		}
		registry := render.NewRegistry()
		registry.MustRegister(html)
		registry.MustRegister(render.NewJSONRenderer())
		defaultRenderers = registry
	})
	return defaultRenderers, defaultRenderersErr
}

// Handler builds a net/http handler with default options plus any overrides.
// It is an alias of NewHandler to match the recommended component API surface.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a handler serving paths relative to the route:
//
//	POST   /              create an instance from form fields
//	GET    /{id}          render the instance
//	DELETE /{id}          remove the instance
//	POST   /{id}/events   apply an event and render the result
//
// Event endpoints embedded in the markup are built from opts.RoutePath.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return newHandler(opts, mountPath("", opts.RoutePath))
}

type handler struct {
	opts  Options
	mount string
}

func newHandler(opts Options, mount string) *handler {
	return &handler{opts: opts, mount: strings.TrimRight(mount, "/")}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	id, action, ok := splitPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if h.opts.Guard != nil {
		if err := h.opts.Guard(r); err != nil {
			writeGuardError(w, err)
			return
		}
	}

	switch {
	case id == "":
		if r.Method != http.MethodPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}
		h.create(w, r)
	case action == eventsSegment:
		if r.Method != http.MethodPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}
		h.event(w, r, id)
	case action == "":
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			h.show(w, r, id)
		case http.MethodDelete:
			h.remove(w, id)
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodHead, http.MethodDelete)
		}
	default:
		http.NotFound(w, r)
	}
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	cfg, err := configFromForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if cfg.ID == "" {
		http.Error(w, "datepicker: id is required", http.StatusBadRequest)
		return
	}
	if err := cfg.ValidateYears(h.opts.Clock.Now()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inst := h.opts.Store.Create(cfg)
	h.opts.Metrics.setInstances(h.opts.Store.Len())
	h.opts.Logger.Debug("instance created", "instance", inst.ID(), "widget", cfg.ID)

	w.Header().Set("Location", h.endpoint(inst.ID()))
	h.write(w, r, inst, http.StatusCreated)
}

func (h *handler) show(w http.ResponseWriter, r *http.Request, id string) {
	inst, err := h.opts.Store.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.write(w, r, inst, http.StatusOK)
}

func (h *handler) remove(w http.ResponseWriter, id string) {
	if !h.opts.Store.Remove(id) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	h.opts.Metrics.setInstances(h.opts.Store.Len())
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) event(w http.ResponseWriter, r *http.Request, id string) {
	inst, err := h.opts.Store.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ev, ok := picker.ParseEvent(r.PostForm.Get("action"), r.PostForm.Get("value"))
	if !ok {
		h.opts.Metrics.observeEvent("invalid")
		h.opts.Logger.Warn("rejected event", "instance", id, "action", r.PostForm.Get("action"))
		http.Error(w, "datepicker: unknown action or value", http.StatusBadRequest)
		return
	}

	inst.Do(func(p *picker.Picker) { p.Dispatch(ev) })
	h.opts.Metrics.observeEvent(string(ev.Action))
	h.opts.Logger.Debug("event applied", "instance", id, "action", ev.Action, "value", ev.Value)

	h.write(w, r, inst, http.StatusOK)
}

func (h *handler) write(w http.ResponseWriter, r *http.Request, inst *Instance, status int) {
	renderer, err := h.renderer(r)
	if err != nil {
		h.opts.Logger.Error("resolve renderer", "error", err)
		http.Error(w, http.StatusText(http.StatusNotAcceptable), http.StatusNotAcceptable)
		return
	}

	snap := inst.Snapshot()
	ctx := render.WithPickerEndpoint(r.Context(), h.endpoint(inst.ID()))
	body, err := renderer.RenderPicker(ctx, snap)
	if err != nil {
		h.opts.Logger.Error("render picker", "instance", inst.ID(), "renderer", renderer.Name(), "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	header := w.Header()
	header.Set("Content-Type", renderer.ContentType())
	header.Set("Cache-Control", "no-store")
	header.Set(HeaderValue, snap.Value)
	header.Set(HeaderDisplay, snap.Display)
	header.Set(HeaderOpen, strconv.FormatBool(snap.Open))
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func (h *handler) renderer(r *http.Request) (render.Renderer, error) {
	registry := h.opts.Renderers
	if registry == nil {
		var err error
		if registry, err = DefaultRenderers(); err != nil {
			return nil, err
		}
	}
	name := strings.TrimSpace(r.URL.Query().Get(FormatParam))
	if name == "" && acceptsJSON(r) {
		name = "json"
	}
	return registry.Resolve(name, h.opts.DefaultRenderer)
}

// endpoint returns the URL of an instance under the handler mount.
func (h *handler) endpoint(id string) string {
	return h.mount + "/" + id
}

func configFromForm(r *http.Request) (picker.Config, error) {
	get := func(key string) string { return strings.TrimSpace(r.PostForm.Get(key)) }
	minYear, err := parseYear("min_year", get("min_year"))
	if err != nil {
		return picker.Config{}, err
	}
	maxYear, err := parseYear("max_year", get("max_year"))
	if err != nil {
		return picker.Config{}, err
	}
	return picker.Config{
		ID:          get("id"),
		Name:        get("name"),
		Label:       get("label"),
		Placeholder: get("placeholder"),
		Value:       get("value"),
		MinYear:     minYear,
		MaxYear:     maxYear,
		ErrMsg:      get("err_msg"),
	}, nil
}

// splitPath accepts "", "/", "/{id}" and "/{id}/{action}".
func splitPath(path string) (id, action string, ok bool) {
	path = strings.Trim(path, "/")
	if path == "" {
		return "", "", true
	}
	parts := strings.Split(path, "/")
	switch len(parts) {
	case 1:
		return parts[0], "", true
	case 2:
		return parts[0], parts[1], parts[0] != ""
	default:
		return "", "", false
	}
}

func acceptsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

// parseYear reads an optional year field; empty means the default.
func parseYear(key, raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("datepicker: %s %q is not a year", key, raw)
	}
	return value, nil
}
