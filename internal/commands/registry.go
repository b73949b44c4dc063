package commands

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Registry holds the launcher commands. It is built once and never mutated,
// so it can be shared between goroutines without locking.
type Registry struct {
	commands map[string]Spec
	names    []string
}

// NewRegistry validates specs and builds a registry from them.
// Names must be non-empty and unique, arity must be 1 or 2 and every spec
// needs a template.
func NewRegistry(specs ...Spec) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]Spec, len(specs)),
		names:    make([]string, 0, len(specs)),
	}
	for _, spec := range specs {
		name := spec.Name
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, " \t\n") {
			return nil, errors.Wrapf(ErrInvalidSpec, "bad command name %q", name)
		}
		if spec.Arity != 1 && spec.Arity != 2 {
			return nil, errors.Wrapf(ErrInvalidSpec, "command '%s' has arity %d", name, spec.Arity)
		}
		if spec.Template == nil {
			return nil, errors.Wrapf(ErrInvalidSpec, "command '%s' has no template", name)
		}
		if _, exists := r.commands[name]; exists {
			return nil, errors.Wrapf(ErrInvalidSpec, "command '%s' already registered", name)
		}
		r.commands[name] = spec
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r, nil
}

// MustRegistry is like NewRegistry but panics on an invalid spec list.
// Intended for literal tables known at compile time.
func MustRegistry(specs ...Spec) *Registry {
	r, err := NewRegistry(specs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns a command by its name.
func (r *Registry) Get(name string) (Spec, bool) {
	spec, exists := r.commands[name]
	return spec, exists
}

// Names returns the registered command names in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// GetAll returns all registered commands ordered by name.
func (r *Registry) GetAll() []Spec {
	specs := make([]Spec, 0, len(r.names))
	for _, name := range r.names {
		specs = append(specs, r.commands[name])
	}
	return specs
}

// Len reports the number of registered commands.
func (r *Registry) Len() int {
	return len(r.names)
}
