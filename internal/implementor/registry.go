package implementor

import (
	"io"
	"slices"
	"strings"

	"github.com/Iron-Ham/bridge/internal/errors"
)

// Names of the built-in variants in DefaultRegistry.
const (
	NameA = "a"
	NameB = "b"
)

// Factory builds an Implementor that writes to w.
type Factory func(w io.Writer) Implementor

// Registry maps variant names to factories.
// A Registry is not safe for concurrent registration; populate it before use.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a Registry holding the built-in variants.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	// Registration into a fresh registry with distinct names cannot fail.
	_ = r.Register(NameA, func(w io.Writer) Implementor { return NewConcreteImplementorA(w) })
	_ = r.Register(NameB, func(w io.Writer) Implementor { return NewConcreteImplementorB(w) })
	return r
}

// Register adds a named factory. Names are case-insensitive and trimmed.
func (r *Registry) Register(name string, factory Factory) error {
	key := normalize(name)
	if key == "" {
		return errors.NewValidationError("implementor name cannot be empty").WithField("name").WithValue(name)
	}
	if factory == nil {
		return errors.NewValidationError("implementor factory cannot be nil").WithField("factory").WithValue(key)
	}
	if _, exists := r.factories[key]; exists {
		return errors.NewAlreadyExistsError("implementor", key)
	}
	r.factories[key] = factory
	return nil
}

// New builds the named implementor writing to w.
func (r *Registry) New(name string, w io.Writer) (Implementor, error) {
	key := normalize(name)
	factory, ok := r.factories[key]
	if !ok {
		return nil, errors.NewNotFoundError("implementor", name)
	}

	impl := factory(w)
	if impl == nil {
		return nil, errors.NewConstructionError("implementor", errors.ErrNilImplementor).WithVariant(key)
	}
	return impl, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[normalize(name)]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
