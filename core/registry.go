package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pixl-sh/pixl-nodes/logging"
)

// Registry maps registry names to nodes and exposes the lookup tables the
// host consumes. Registration is last-write-wins with a warning so a pack
// reload never fails on a duplicate name.
type Registry struct {
	mu     sync.RWMutex
	nodes  map[string]Node
	logger logging.Logger
}

// NewRegistry constructs an empty registry. A nil logger falls back to the
// no-op logger.
func NewRegistry(logger logging.Logger) *Registry {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Registry{
		nodes:  map[string]Node{},
		logger: logger,
	}
}

// Register adds a node under its registry name, replacing any previous entry.
func (r *Registry) Register(n Node) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := n.Name()
	if _, exists := r.nodes[name]; exists {
		r.logger.Warn("registry.replace", "node", name)
	}
	r.nodes[name] = n
}

// Get returns the node registered under name.
func (r *Registry) Get(name string) (Node, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.nodes[name]
	if !ok {
		return nil, fmt.Errorf("node %q not registered", name)
	}
	return n, nil
}

// Names returns all registry names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.nodes))
	for name := range r.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all registered nodes sorted by registry name.
func (r *Registry) List() []Node {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.nodes))
	for name := range r.nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Node, 0, len(names))
	for _, name := range names {
		out = append(out, r.nodes[name])
	}
	return out
}

// ListCategory returns the registered nodes whose category equals prefix or
// sits below it in the slash separated category tree, sorted by name.
func (r *Registry) ListCategory(prefix string) []Node {
	all := r.List()

	out := make([]Node, 0, len(all))
	for _, n := range all {
		cat := n.Info().Category
		if cat == prefix || strings.HasPrefix(cat, prefix+"/") {
			out = append(out, n)
		}
	}
	return out
}

// DisplayNames returns the registry-name to display-name mapping the host
// uses for its menus.
func (r *Registry) DisplayNames() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.nodes))
	for name, n := range r.nodes {
		out[name] = n.Info().DisplayName
	}
	return out
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}
