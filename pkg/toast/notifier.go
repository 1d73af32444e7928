package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultVisibleFor is how long a toast stays before it starts exiting.
	DefaultVisibleFor = 5 * time.Second
	// DefaultExitAfter is the length of the exit stage.
	DefaultExitAfter = 300 * time.Millisecond
)

// Toast is one notification as seen by renderers.
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
	CreatedAt time.Time `json:"created_at"`
	Exiting   bool      `json:"exiting,omitempty"`
}

// Timer is the part of *time.Timer the notifier needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it once wrapped.
type AfterFunc func(d time.Duration, f func()) Timer

func systemAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithVisibleFor overrides DefaultVisibleFor. Non-positive values are ignored.
func WithVisibleFor(d time.Duration) Option {
	return func(n *Notifier) {
		if d > 0 {
			n.visibleFor = d
		}
	}
}

// WithExitAfter overrides DefaultExitAfter. Non-positive values are ignored.
func WithExitAfter(d time.Duration) Option {
	return func(n *Notifier) {
		if d > 0 {
			n.exitAfter = d
		}
	}
}

// WithOnChange registers a callback invoked with the active toasts after
// every change. It runs outside the notifier lock.
func WithOnChange(fn func([]Toast)) Option {
	return func(n *Notifier) {
		n.onChange = fn
	}
}

// WithAfterFunc replaces the timer source, mainly for tests.
func WithAfterFunc(fn AfterFunc) Option {
	return func(n *Notifier) {
		if fn != nil {
			n.afterFunc = fn
		}
	}
}

// WithIDGenerator replaces the uuid id source.
func WithIDGenerator(fn func() string) Option {
	return func(n *Notifier) {
		if fn != nil {
			n.newID = fn
		}
	}
}

// WithNow replaces the clock used for CreatedAt.
func WithNow(fn func() time.Time) Option {
	return func(n *Notifier) {
		if fn != nil {
			n.now = fn
		}
	}
}

type entry struct {
	toast Toast
	timer Timer
}

// Notifier owns a list of toasts and their removal timers. It is safe for
// concurrent use.
type Notifier struct {
	mu      sync.Mutex
	entries []*entry
	closed  bool

	visibleFor time.Duration
	exitAfter  time.Duration
	afterFunc  AfterFunc
	onChange   func([]Toast)
	newID      func() string
	now        func() time.Time
}

// New builds a Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		visibleFor: DefaultVisibleFor,
		exitAfter:  DefaultExitAfter,
		afterFunc:  systemAfterFunc,
		newID:      uuid.NewString,
		now:        time.Now,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(n)
	}
	return n
}

// Show appends a toast and schedules its removal. After Close it returns
// the toast without tracking it.
func (n *Notifier) Show(message string, level Level) Toast {
	if !level.Valid() {
		level = ParseLevel(string(level))
	}

	n.mu.Lock()
	t := Toast{
		ID:        n.newID(),
		Message:   message,
		Level:     level,
		CreatedAt: n.now(),
	}
	if n.closed {
		n.mu.Unlock()
		return t
	}
	e := &entry{toast: t}
	n.entries = append(n.entries, e)
	id := t.ID
	e.timer = n.afterFunc(n.visibleFor, func() { n.beginExit(id) })
	n.mu.Unlock()

	n.notify()
	return t
}

// Dismiss moves a toast into its exit stage immediately. It returns false
// if the toast is unknown or already exiting.
func (n *Notifier) Dismiss(id string) bool {
	return n.beginExit(id)
}

func (n *Notifier) beginExit(id string) bool {
	n.mu.Lock()
	e := n.find(id)
	if e == nil || e.toast.Exiting || n.closed {
		n.mu.Unlock()
		return false
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	e.toast.Exiting = true
	e.timer = n.afterFunc(n.exitAfter, func() { n.remove(id) })
	n.mu.Unlock()

	n.notify()
	return true
}

func (n *Notifier) remove(id string) {
	n.mu.Lock()
	removed := false
	for i, e := range n.entries {
		if e.toast.ID == id {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			removed = true
			break
		}
	}
	n.mu.Unlock()

	if removed {
		n.notify()
	}
}

// Active returns a copy of the current toasts in display order.
func (n *Notifier) Active() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.snapshot()
}

// Len returns the number of tracked toasts.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.entries)
}

// Close stops every pending timer and drops all toasts.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	for _, e := range n.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
	n.entries = nil
	n.mu.Unlock()

	n.notify()
}

func (n *Notifier) find(id string) *entry {
	for _, e := range n.entries {
		if e.toast.ID == id {
			return e
		}
	}
	return nil
}

func (n *Notifier) snapshot() []Toast {
	out := make([]Toast, len(n.entries))
	for i, e := range n.entries {
		out[i] = e.toast
	}
	return out
}

func (n *Notifier) notify() {
	if n.onChange == nil {
		return
	}
	n.mu.Lock()
	toasts := n.snapshot()
	n.mu.Unlock()
	n.onChange(toasts)
}
