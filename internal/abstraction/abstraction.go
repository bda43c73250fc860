package abstraction

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Iron-Ham/bridge/internal/errors"
	"github.com/Iron-Ham/bridge/internal/implementor"
	"github.com/Iron-Ham/bridge/internal/logging"
)

// Kinds accepted by New.
const (
	KindRefined = "refined"
	KindLogged  = "logged"
)

// ValidKinds returns the abstraction kinds accepted by New.
func ValidKinds() []string {
	return []string{KindRefined, KindLogged}
}

// Abstraction is the client-facing side of the bridge.
type Abstraction interface {
	// Operation performs the abstraction's work through its implementor.
	Operation() error
}

// New builds the abstraction of the given kind around impl.
// The logger is only used by kinds that log; nil means no logging.
func New(kind string, impl implementor.Implementor, logger *logging.Logger) (Abstraction, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindRefined:
		a, err := NewRefinedAbstraction(impl)
		if err != nil {
			return nil, err
		}
		return a, nil
	case KindLogged:
		a, err := NewLoggedAbstraction(impl, logger)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, errors.NewNotFoundError("abstraction", kind)
	}
}

// RefinedAbstraction delegates Operation to its implementor's Action.
type RefinedAbstraction struct {
	impl implementor.Implementor
}

// NewRefinedAbstraction binds impl for the lifetime of the abstraction.
func NewRefinedAbstraction(impl implementor.Implementor) (*RefinedAbstraction, error) {
	if isNil(impl) {
		return nil, errors.NewConstructionError("abstraction", errors.ErrNilImplementor).WithVariant(KindRefined)
	}
	return &RefinedAbstraction{impl: impl}, nil
}

// Operation calls Action exactly once and returns its result unchanged.
// A zero RefinedAbstraction has no implementor and fails without calling
// anything.
func (a *RefinedAbstraction) Operation() error {
	if a.impl == nil {
		return errUnbound(KindRefined)
	}
	return a.impl.Action()
}

// LoggedAbstraction delegates like RefinedAbstraction and logs each call.
type LoggedAbstraction struct {
	impl   implementor.Implementor
	logger *logging.Logger
}

// NewLoggedAbstraction binds impl for the lifetime of the abstraction.
// A nil logger discards log output.
func NewLoggedAbstraction(impl implementor.Implementor, logger *logging.Logger) (*LoggedAbstraction, error) {
	if isNil(impl) {
		return nil, errors.NewConstructionError("abstraction", errors.ErrNilImplementor).WithVariant(KindLogged)
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &LoggedAbstraction{
		impl: impl,
		logger: logger.WithComponent("abstraction").
			WithVariant(KindLogged).
			With("implementor", describe(impl)),
	}, nil
}

// Operation calls Action exactly once, logging before the call and on failure.
func (a *LoggedAbstraction) Operation() error {
	if a.impl == nil {
		return errUnbound(KindLogged)
	}
	a.logger.Debug("operation started")
	if err := a.impl.Action(); err != nil {
		a.logger.Error("operation failed", "error", err.Error())
		return err
	}
	a.logger.Debug("operation completed")
	return nil
}

// errUnbound is returned by Operation on an abstraction that was not built
// by its constructor.
func errUnbound(kind string) error {
	return errors.NewConstructionError("abstraction", errors.ErrNilImplementor).WithVariant(kind)
}

// describe names an implementor for log output.
func describe(impl implementor.Implementor) string {
	if l, ok := impl.(implementor.Labeler); ok {
		return l.Label()
	}
	return fmt.Sprintf("%T", impl)
}

// isNil reports whether impl is absent, including a typed nil pointer
// stored in the interface.
func isNil(impl implementor.Implementor) bool {
	if impl == nil {
		return true
	}
	v := reflect.ValueOf(impl)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

var (
	_ Abstraction = (*RefinedAbstraction)(nil)
	_ Abstraction = (*LoggedAbstraction)(nil)
)
