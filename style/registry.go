package style

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds registered styles.
type Registry struct {
	mu     sync.RWMutex
	styles map[string]Style
}

// DefaultRegistry is the global style registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new style registry.
func NewRegistry() *Registry {
	return &Registry{
		styles: make(map[string]Style),
	}
}

// Register adds a style to the registry.
func (r *Registry) Register(s Style) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles[strings.ToLower(s.Name())] = s
}

// Get retrieves a style by name or plugin name.
func (r *Registry) Get(name string) (Style, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.styles[strings.ToLower(name)]; ok {
		return s, true
	}
	for _, s := range r.styles {
		if strings.EqualFold(s.PluginName(), name) {
			return s, true
		}
	}
	return nil, false
}

// Lookup retrieves a style or returns an error naming the known styles.
func (r *Registry) Lookup(name string) (Style, error) {
	s, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown style: %s (available: %s)", name, strings.Join(r.List(), ", "))
	}
	return s, nil
}

// List returns all registered style names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a style to the default registry.
func Register(s Style) {
	DefaultRegistry.Register(s)
}

// Get retrieves a style from the default registry.
func Get(name string) (Style, bool) {
	return DefaultRegistry.Get(name)
}

// Lookup retrieves a style from the default registry.
func Lookup(name string) (Style, error) {
	return DefaultRegistry.Lookup(name)
}

// List returns the default registry's style names.
func List() []string {
	return DefaultRegistry.List()
}
