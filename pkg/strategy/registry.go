package strategy

import (
	"fmt"
	"sort"
	"sync"

	"digital.vasic.correspond/pkg/correspond"
)

// Factory builds a correspondence from the argument portion of a
// compact strategy string. The argument is empty when the string
// carries none.
type Factory func(
	arg string,
) (correspond.Correspondence[any, any], error)

// Registry defines the interface for managing named
// correspondence strategies.
type Registry interface {
	// Register adds a custom factory for the given strategy
	// name. Returns an error if the name is already
	// registered.
	Register(name string, factory Factory) error

	// Resolve builds a correspondence for the given strategy
	// name and argument.
	Resolve(
		name string,
		arg string,
	) (correspond.Correspondence[any, any], error)

	// Has reports whether the given strategy name has a
	// registered factory.
	Has(name string) bool

	// List returns all registered strategy names sorted
	// alphabetically.
	List() []string

	// Clear removes all factories, including the built-ins.
	Clear()

	// Count returns the number of registered factories.
	Count() int
}

// DefaultRegistry is the standard Registry implementation. It is
// safe for concurrent use.
type DefaultRegistry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a DefaultRegistry with all built-in
// strategy factories pre-registered.
func NewRegistry() *DefaultRegistry {
	r := &DefaultRegistry{
		factories: make(map[string]Factory),
	}
	r.registerDefaults()
	return r
}

// Default is the package-level default registry instance.
var Default = NewRegistry()

// registerDefaults registers the built-in strategy factories.
func (r *DefaultRegistry) registerDefaults() {
	r.factories["tolerance"] = buildTolerance
	r.factories["parses_to_int"] = buildParsesToInt
	r.factories["deep_equal"] = buildDeepEqual
	r.factories["equal_fold"] = buildEqualFold
}

// Register adds a custom factory for the given strategy name.
// Returns an error if the name is already registered.
func (r *DefaultRegistry) Register(
	name string,
	factory Factory,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf(
			"strategy already registered: %s", name,
		)
	}

	r.factories[name] = factory
	return nil
}

// Resolve builds a correspondence for the given strategy name
// and argument.
func (r *DefaultRegistry) Resolve(
	name string,
	arg string,
) (correspond.Correspondence[any, any], error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf(
			"unknown strategy: %s", name,
		)
	}

	return factory(arg)
}

// Has reports whether the given strategy name has a registered
// factory.
func (r *DefaultRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.factories[name]
	return exists
}

// List returns all registered strategy names sorted
// alphabetically.
func (r *DefaultRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}

	sort.Strings(out)
	return out
}

// Clear removes all factories, including the built-ins.
func (r *DefaultRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories = make(map[string]Factory)
}

// Count returns the number of registered factories.
func (r *DefaultRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}
