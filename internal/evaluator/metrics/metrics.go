package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the evaluator module.
type Metrics struct {
	// Decisions by outcome and entrypoint ("evaluate", "evaluate_out")
	DecisionOutcome *prometheus.CounterVec

	// Lookup-performed notifications received from the validator
	ValidatorLookups prometheus.Counter

	// Validator failures converted into a human referral
	ValidatorFailures prometheus.Counter

	EvaluateLatency *prometheus.HistogramVec
}

// New creates the evaluator metrics and registers them with reg.
// A nil reg registers with the default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		DecisionOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cardeval_decision_outcomes_total",
			Help: "Total credit card application decisions by outcome and entrypoint",
		}, []string{"decision", "entrypoint"}),

		ValidatorLookups: factory.NewCounter(prometheus.CounterOpts{
			Name: "cardeval_validator_lookups_total",
			Help: "Total frequent flyer lookups reported by the validator",
		}),

		ValidatorFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "cardeval_validator_failures_total",
			Help: "Total validator failures converted into a human referral",
		}),

		EvaluateLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cardeval_evaluate_duration_seconds",
			Help:    "Duration of a full application evaluation",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"entrypoint"}),
	}
}

// IncrementOutcome records a decision.
func (m *Metrics) IncrementOutcome(decision, entrypoint string) {
	if m != nil {
		m.DecisionOutcome.WithLabelValues(decision, entrypoint).Inc()
	}
}

// IncrementValidatorLookups records one lookup-performed notification.
func (m *Metrics) IncrementValidatorLookups() {
	if m != nil {
		m.ValidatorLookups.Inc()
	}
}

// IncrementValidatorFailures records a validator failure that was absorbed.
func (m *Metrics) IncrementValidatorFailures() {
	if m != nil {
		m.ValidatorFailures.Inc()
	}
}

// ObserveEvaluateLatency records the duration of one evaluation.
func (m *Metrics) ObserveEvaluateLatency(entrypoint string, d time.Duration) {
	if m != nil {
		m.EvaluateLatency.WithLabelValues(entrypoint).Observe(d.Seconds())
	}
}
