package datepicker

import (
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	picker "github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/render"
)

const (
	DefaultRoutePath    = "/api/datepicker"
	DefaultMaxInstances = 1024
	DefaultRenderer     = "vanilla"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath    string
	MaxInstances int
	Clock        picker.Clock
	// Renderers resolves the output format. When nil a registry with the
	// vanilla and JSON renderers is used.
	Renderers       *render.Registry
	DefaultRenderer string
	Logger          *log.Logger
	Guard           GuardFunc
	Metrics         *Metrics

	Store *Store
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       DefaultRoutePath,
		MaxInstances:    DefaultMaxInstances,
		Clock:           picker.SystemClock,
		DefaultRenderer: DefaultRenderer,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = DefaultRoutePath
	}
	if opts.MaxInstances <= 0 {
		opts.MaxInstances = DefaultMaxInstances
	}
	if opts.Clock == nil {
		opts.Clock = picker.SystemClock
	}
	if opts.DefaultRenderer == "" {
		opts.DefaultRenderer = DefaultRenderer
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{Prefix: "datepicker"})
	}
	if opts.Store == nil {
		opts.Store = NewStore(opts.MaxInstances, WithStoreClock(opts.Clock))
	}
	return opts
}

// NewLogger returns a stderr logger prefixed for this component.
func NewLogger(level log.Level) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "datepicker",
		ReportTimestamp: true,
	})
	logger.SetLevel(level)
	return logger
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithMaxInstances(n int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxInstances = n
	}
}

func WithClock(clock picker.Clock) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Clock = clock
	}
}

func WithRenderers(registry *render.Registry, defaultName string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderers = registry
		if defaultName != "" {
			o.DefaultRenderer = defaultName
		}
	}
}

func WithLogger(logger *log.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithMetrics(metrics *Metrics) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Metrics = metrics
	}
}

// WithStore shares a store between handlers. MaxInstances and Clock are
// ignored for a store built elsewhere.
func WithStore(store *Store) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Store = store
	}
}
