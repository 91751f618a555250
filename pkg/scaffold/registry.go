package scaffold

import (
	"fmt"
	"strings"
	"sync"
)

// Registry stores templates in registration order, which is also the order
// generated files are emitted in. Names must be unique.
type Registry struct {
	mu        sync.RWMutex
	templates []Template
	index     map[string]int
}

// NewRegistry creates a registry, registering the supplied templates in
// order. It panics on invalid or duplicate templates, which are programming
// errors in static template sets.
func NewRegistry(templates ...Template) *Registry {
	r := &Registry{index: make(map[string]int)}
	for _, t := range templates {
		r.MustRegister(t)
	}
	return r
}

// Register appends a template. Empty names, nil generate funcs and duplicate
// names return an error.
func (r *Registry) Register(t Template) error {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return fmt.Errorf("scaffold: template name is required")
	}
	if t.Generate == nil {
		return fmt.Errorf("scaffold: template %q has no generate func", name)
	}
	t.Name = name

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index == nil {
		r.index = make(map[string]int)
	}
	if _, exists := r.index[name]; exists {
		return fmt.Errorf("scaffold: template %q already registered", name)
	}
	r.index[name] = len(r.templates)
	r.templates = append(r.templates, t)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(t Template) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get retrieves a template by name.
func (r *Registry) Get(name string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[name]
	if !ok {
		return Template{}, fmt.Errorf("scaffold: template %q not found", name)
	}
	return r.templates[idx], nil
}

// Has reports whether a template is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.index[name]
	return ok
}

// Templates returns a snapshot of the registered templates in order.
func (r *Registry) Templates() []Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Template(nil), r.templates...)
}

// Names returns template names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.templates))
	for i, t := range r.templates {
		names[i] = t.Name
	}
	return names
}

// Len reports the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.templates)
}
