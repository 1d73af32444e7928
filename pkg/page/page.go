// Package page groups the widgets rendered on one page. Widgets are looked
// up by their markup id, and each id is bound to a single widget kind so a
// modal id never opens a date picker and vice versa.
package page

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-uikit/pkg/datepicker"
	"github.com/goliatone/go-uikit/pkg/modal"
)

// KeyEscape is the key name that dismisses open widgets.
const KeyEscape = "Escape"

// Kind tags which widget type an id belongs to.
type Kind string

const (
	KindModal      Kind = "modal"
	KindDatePicker Kind = "datepicker"
)

// Dismisser is implemented by widgets that close on Escape.
type Dismisser interface {
	IsOpen() bool
	Dismiss()
}

var (
	// ErrEmptyID is returned when a widget has no id.
	ErrEmptyID = errors.New("page: widget id is required")
	// ErrDuplicateID is returned when an id is already registered.
	ErrDuplicateID = errors.New("page: widget id already registered")
)

type widget struct {
	kind   Kind
	modal  *modal.Modal
	picker *datepicker.Picker
}

func (w widget) dismisser() Dismisser {
	if w.modal != nil {
		return w.modal
	}
	return w.picker
}

// Page owns the widgets of one rendered page. It is safe for concurrent use.
type Page struct {
	mu      sync.Mutex
	widgets map[string]widget
	order   []string
}

// New returns an empty page.
func New() *Page {
	return &Page{widgets: make(map[string]widget)}
}

// AddModal registers a modal under its id.
func (p *Page) AddModal(m *modal.Modal) error {
	if m == nil {
		return fmt.Errorf("page: modal is nil")
	}
	return p.add(m.ID(), widget{kind: KindModal, modal: m})
}

// AddDatePicker registers a date picker under its id.
func (p *Page) AddDatePicker(dp *datepicker.Picker) error {
	if dp == nil {
		return fmt.Errorf("page: date picker is nil")
	}
	return p.add(dp.ID(), widget{kind: KindDatePicker, picker: dp})
}

func (p *Page) add(id string, w widget) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrEmptyID
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.widgets[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	p.widgets[id] = w
	p.order = append(p.order, id)
	return nil
}

// Modal returns the modal registered under id.
func (p *Page) Modal(id string) (*modal.Modal, bool) {
	w, ok := p.lookup(id, KindModal)
	return w.modal, ok
}

// DatePicker returns the date picker registered under id.
func (p *Page) DatePicker(id string) (*datepicker.Picker, bool) {
	w, ok := p.lookup(id, KindDatePicker)
	return w.picker, ok
}

// Kind reports the kind registered under id.
func (p *Page) Kind(id string) (Kind, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w, ok := p.widgets[id]
	return w.kind, ok
}

// OpenModal opens the modal with the given id. It returns false when the id
// is unknown or belongs to another kind of widget.
func (p *Page) OpenModal(id string) bool {
	m, ok := p.Modal(id)
	if !ok {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	m.Open()
	return true
}

// CloseModal closes the modal with the given id.
func (p *Page) CloseModal(id string) bool {
	m, ok := p.Modal(id)
	if !ok {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	m.Close()
	return true
}

// OpenDatePicker opens the date picker with the given id.
func (p *Page) OpenDatePicker(id string) bool {
	dp, ok := p.DatePicker(id)
	if !ok {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	dp.Open()
	return true
}

// CloseDatePicker closes the date picker with the given id.
func (p *Page) CloseDatePicker(id string) bool {
	dp, ok := p.DatePicker(id)
	if !ok {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	dp.Close()
	return true
}

// KeyDown routes a page-level key press. Escape dismisses every open widget
// and returns how many were closed.
func (p *Page) KeyDown(key string) int {
	if key != KeyEscape {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	closed := 0
	for _, id := range p.order {
		d := p.widgets[id].dismisser()
		if d.IsOpen() {
			d.Dismiss()
			closed++
		}
	}
	return closed
}

// Remove forgets a widget. It returns false if id was not registered.
func (p *Page) Remove(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.widgets[id]; !ok {
		return false
	}
	delete(p.widgets, id)
	for i, existing := range p.order {
		if existing == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return true
}

// IDs lists the registered widget ids in registration order.
func (p *Page) IDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.order...)
}

// Open lists the ids of the widgets currently open.
func (p *Page) Open() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, id := range p.order {
		if p.widgets[id].dismisser().IsOpen() {
			out = append(out, id)
		}
	}
	return out
}

func (p *Page) lookup(id string, kind Kind) (widget, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w, ok := p.widgets[strings.TrimSpace(id)]
	if !ok || w.kind != kind {
		return widget{}, false
	}
	return w, true
}
