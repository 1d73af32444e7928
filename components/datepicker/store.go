package datepicker

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	picker "github.com/goliatone/go-uikit/pkg/datepicker"
)

// ErrNotFound is returned for unknown instance ids.
var ErrNotFound = errors.New("datepicker: instance not found")

// Instance is one stored picker. Access goes through Do, which holds the
// instance lock.
type Instance struct {
	id string
	mu sync.Mutex
	p  *picker.Picker
}

// ID returns the store key of the instance.
func (i *Instance) ID() string { return i.id }

// Do runs fn with exclusive access to the picker.
func (i *Instance) Do(fn func(p *picker.Picker)) {
	i.mu.Lock()
	defer i.mu.Unlock()
	fn(i.p)
}

// Snapshot captures the picker under the instance lock.
func (i *Instance) Snapshot() picker.Snapshot {
	var snap picker.Snapshot
	i.Do(func(p *picker.Picker) { snap = p.Snapshot() })
	return snap
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreClock sets the clock handed to new pickers.
func WithStoreClock(clock picker.Clock) StoreOption {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDGenerator overrides the uuid based instance ids.
func WithIDGenerator(fn func() string) StoreOption {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithOnEvict registers a callback run after an instance is evicted to
// make room.
func WithOnEvict(fn func(id string)) StoreOption {
	return func(s *Store) {
		s.onEvict = fn
	}
}

// Store keeps at most max picker instances. Creating one more evicts the
// oldest.
type Store struct {
	mu      sync.RWMutex
	max     int
	items   map[string]*Instance
	order   []string
	clock   picker.Clock
	newID   func() string
	onEvict func(id string)
}

// NewStore builds a store bounded to max instances.
func NewStore(max int, options ...StoreOption) *Store {
	if max <= 0 {
		max = DefaultMaxInstances
	}
	s := &Store{
		max:   max,
		items: make(map[string]*Instance),
		clock: picker.SystemClock,
		newID: uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Create stores a new picker built from cfg and returns its instance.
func (s *Store) Create(cfg picker.Config) *Instance {
	inst := &Instance{
		id: s.newID(),
		p:  picker.New(cfg, picker.WithClock(s.clock)),
	}

	s.mu.Lock()
	var evicted []string
	for len(s.order) >= s.max {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.items, oldest)
		evicted = append(evicted, oldest)
	}
	s.items[inst.id] = inst
	s.order = append(s.order, inst.id)
	s.mu.Unlock()

	if s.onEvict != nil {
		for _, id := range evicted {
			s.onEvict(id)
		}
	}
	return inst
}

// Get returns the instance stored under id.
func (s *Store) Get(id string) (*Instance, error) {
	id = strings.TrimSpace(id)
	s.mu.RLock()
	inst, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return inst, nil
}

// Remove drops the instance stored under id.
func (s *Store) Remove(id string) bool {
	id = strings.TrimSpace(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, key := range s.order {
		if key == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored instances.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
