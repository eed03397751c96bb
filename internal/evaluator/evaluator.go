// Package evaluator decides credit card applications. It runs an ordered rule
// cascade against an application, consulting an optional fraud lookup and a
// mandatory frequent flyer validator, and keeps a running count of the
// lookups the validator reports.
package evaluator

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"cardeval/internal/evaluator/metrics"
	"cardeval/internal/evaluator/ports"
)

// ErrNilValidator is returned by New when no validator is supplied.
var ErrNilValidator = errors.New("evaluator: frequent flyer validator is required")

// Evaluator runs the decision cascade. The validator is shared with the
// caller, who manages its lifetime; the fraud lookup is optional.
type Evaluator struct {
	validator ports.FrequentFlyerValidator
	fraud     ports.FraudLookup
	logger    *slog.Logger
	metrics   *metrics.Metrics

	// validatorMu serializes the set-mode + validity-check step so that
	// concurrent callers cannot interleave mode writes on the shared validator.
	validatorMu sync.Mutex

	lookups atomic.Int64
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Evaluator) {
		e.metrics = m
	}
}

// New constructs an Evaluator and subscribes it to the validator's
// lookup-performed notifications for the rest of its lifetime.
// fraud may be nil, in which case the fraud rule is skipped.
func New(validator ports.FrequentFlyerValidator, fraud ports.FraudLookup, opts ...Option) (*Evaluator, error) {
	if validator == nil {
		return nil, ErrNilValidator
	}

	e := &Evaluator{
		validator: validator,
		fraud:     fraud,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	validator.AddLookupListener(e)
	return e, nil
}

// LookupPerformed implements ports.LookupListener.
func (e *Evaluator) LookupPerformed() {
	e.lookups.Add(1)
	e.metrics.IncrementValidatorLookups()
}

// LookupCount returns the number of lookups the validator has reported
// since this Evaluator was constructed.
func (e *Evaluator) LookupCount() int64 {
	return e.lookups.Load()
}
