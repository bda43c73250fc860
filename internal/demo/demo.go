// Package demo is the composition root: it builds implementors, wraps each in
// an abstraction and runs them in order.
//
// Run is strictly linear. Every implementor is built first, then every
// abstraction, and only then is Operation invoked, so a bad name or a failed
// construction aborts before anything is written.
package demo

import (
	"io"

	"github.com/Iron-Ham/bridge/internal/abstraction"
	"github.com/Iron-Ham/bridge/internal/errors"
	"github.com/Iron-Ham/bridge/internal/implementor"
	"github.com/Iron-Ham/bridge/internal/logging"
)

// Options selects what Run wires together. Zero values fall back to the
// defaults: implementors "a" then "b", refined abstraction, default registry,
// no logging.
type Options struct {
	Implementors []string
	Abstraction  string
	Registry     *implementor.Registry
	Logger       *logging.Logger
}

func (o Options) withDefaults() Options {
	if len(o.Implementors) == 0 {
		o.Implementors = []string{implementor.NameA, implementor.NameB}
	}
	if o.Abstraction == "" {
		o.Abstraction = abstraction.KindRefined
	}
	if o.Registry == nil {
		o.Registry = implementor.DefaultRegistry()
	}
	if o.Logger == nil {
		o.Logger = logging.NopLogger()
	}
	return o
}

// Pair is one wired abstraction together with the implementor it holds.
type Pair struct {
	Name        string
	Implementor implementor.Implementor
	Abstraction abstraction.Abstraction
}

// Build constructs one implementor per name writing to w, then one
// abstraction per implementor. Nothing is invoked.
func Build(w io.Writer, opts Options) ([]Pair, error) {
	opts = opts.withDefaults()

	impls := make([]implementor.Implementor, 0, len(opts.Implementors))
	for i, name := range opts.Implementors {
		impl, err := opts.Registry.New(name, w)
		if err != nil {
			return nil, errors.Wrapf(err, "implementor %d", i)
		}
		impls = append(impls, impl)
	}

	pairs := make([]Pair, 0, len(impls))
	for i, impl := range impls {
		logger := opts.Logger.With("slot", i, "implementor_name", opts.Implementors[i])
		abs, err := abstraction.New(opts.Abstraction, impl, logger)
		if err != nil {
			return nil, errors.Wrapf(err, "abstraction %d", i)
		}
		pairs = append(pairs, Pair{
			Name:        opts.Implementors[i],
			Implementor: impl,
			Abstraction: abs,
		})
	}

	return pairs, nil
}

// Run builds the configured pairs and calls Operation on each in order.
// It stops at the first failing operation.
func Run(w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	logger := opts.Logger.WithComponent("demo")

	pairs, err := Build(w, opts)
	if err != nil {
		logger.Error("build failed", failureAttrs(err)...)
		return err
	}
	logger.Debug("wired", "pairs", len(pairs), "abstraction", opts.Abstraction)

	for i, p := range pairs {
		if err := p.Abstraction.Operation(); err != nil {
			logger.Error("operation failed", append([]any{"slot", i, "implementor_name", p.Name}, failureAttrs(err)...)...)
			return errors.Wrapf(err, "operation %d (%s)", i, p.Name)
		}
	}

	logger.Info("run completed", "operations", len(pairs))
	return nil
}

// failureAttrs describes err for a log entry, including how it classifies.
func failureAttrs(err error) []any {
	return []any{
		"error", err.Error(),
		"severity", errors.GetSeverity(err).String(),
		"user_facing", errors.IsUserFacing(err),
	}
}
