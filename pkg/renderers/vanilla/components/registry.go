package components

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	rendertemplate "github.com/goliatone/go-uikit/pkg/render/template"
)

// Renderer writes one component into buf. Payload is the component view
// model prepared by the vanilla renderer.
type Renderer func(buf *bytes.Buffer, payload any, data ComponentData) error

// ComponentData carries the template engine and theme overrides for a
// component render.
type ComponentData struct {
	Template rendertemplate.TemplateRenderer
	// Partials maps "uikit.<component>" keys to replacement template paths,
	// as supplied by a go-theme RendererConfig.
	Partials map[string]string
}

// Script is a script file a component needs on the page. Src is a file name
// resolved against the asset base or the theme.
type Script struct {
	Src    string
	Async  bool
	Defer  bool
	Module bool
}

// Descriptor is a component renderer plus the page assets it depends on.
type Descriptor struct {
	Name        string
	Renderer    Renderer
	Stylesheets []string
	Scripts     []Script
}

func (d Descriptor) copy() Descriptor {
	d.Stylesheets = slices.Clone(d.Stylesheets)
	d.Scripts = slices.Clone(d.Scripts)
	return d
}

// Registry maps component names to descriptors. Names are case
// insensitive; registering a name again replaces the previous descriptor,
// which is how themes swap a component's renderer.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{components: make(map[string]Descriptor)}
}

// Register stores descriptor under name.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	name = normalize(name)
	if name == "" {
		return errors.New("components: component name is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("components: renderer for %q is nil", name)
	}

	descriptor.Name = name
	r.mu.Lock()
	r.components[name] = descriptor.copy()
	r.mu.Unlock()
	return nil
}

// MustRegister is Register for static setup; it panics on error.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor returns a copy of the named descriptor.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	descriptor, ok := r.components[normalize(name)]
	r.mu.RUnlock()
	if !ok {
		return Descriptor{}, false
	}
	return descriptor.copy(), true
}

// Names lists the registered components in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Assets collects the stylesheets and scripts of the named components in
// first-seen order, each file once. Unknown names are skipped.
func (r *Registry) Assets(names []string) (stylesheets []string, scripts []Script) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	for _, name := range names {
		descriptor, ok := r.components[normalize(name)]
		if !ok {
			continue
		}
		for _, href := range descriptor.Stylesheets {
			if href != "" && !seen["css:"+href] {
				seen["css:"+href] = true
				stylesheets = append(stylesheets, href)
			}
		}
		for _, script := range descriptor.Scripts {
			if script.Src != "" && !seen["js:"+script.Src] {
				seen["js:"+script.Src] = true
				scripts = append(scripts, script)
			}
		}
	}
	return stylesheets, scripts
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
