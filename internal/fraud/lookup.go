// Package fraud implements the fraud lookup consulted first by the evaluator.
// The risk decision itself is a swappable Checker strategy.
package fraud

import (
	"context"
	"log/slog"

	"cardeval/internal/evaluator/models"
	platformstrings "cardeval/pkg/platform/strings"
)

// Checker is the overridable decision point of a Lookup.
type Checker interface {
	CheckApplication(ctx context.Context, app models.Application) (bool, error)
}

// CheckFunc adapts an ordinary function to a Checker.
type CheckFunc func(ctx context.Context, app models.Application) (bool, error)

func (f CheckFunc) CheckApplication(ctx context.Context, app models.Application) (bool, error) {
	return f(ctx, app)
}

// Lookup implements ports.FraudLookup by delegating to its Checker.
type Lookup struct {
	checker Checker
	logger  *slog.Logger
}

// LookupOption configures a Lookup.
type LookupOption func(*Lookup)

// WithChecker replaces the default surname checker.
func WithChecker(c Checker) LookupOption {
	return func(l *Lookup) {
		if c != nil {
			l.checker = c
		}
	}
}

// WithLogger sets the logger used to report risky applications.
func WithLogger(logger *slog.Logger) LookupOption {
	return func(l *Lookup) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLookup builds a Lookup. Without WithChecker it flags the default
// blocked surnames.
func NewLookup(opts ...LookupOption) *Lookup {
	l := &Lookup{
		checker: NewSurnameChecker(DefaultBlockedSurnames...),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// IsFraudRisk reports whether app is a fraud risk. Checker errors are
// returned to the caller.
func (l *Lookup) IsFraudRisk(ctx context.Context, app models.Application) (bool, error) {
	risky, err := l.checker.CheckApplication(ctx, app)
	if err != nil {
		return false, err
	}
	if risky {
		l.logger.InfoContext(ctx, "application flagged as fraud risk")
	}
	return risky, nil
}

// DefaultBlockedSurnames is the demo blocklist.
var DefaultBlockedSurnames = []string{"Smith"}

// SurnameChecker flags applicants whose last name is on a static list.
// Matching ignores case and surrounding whitespace.
type SurnameChecker struct {
	blocked map[string]struct{}
}

func NewSurnameChecker(surnames ...string) *SurnameChecker {
	keys := platformstrings.DedupeFold(surnames)
	blocked := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		blocked[key] = struct{}{}
	}
	return &SurnameChecker{blocked: blocked}
}

func (c *SurnameChecker) CheckApplication(_ context.Context, app models.Application) (bool, error) {
	_, ok := c.blocked[normalizeSurname(app.LastName)]
	return ok, nil
}

// AnyOf combines checkers: the first risky verdict wins, the first error
// aborts.
func AnyOf(checkers ...Checker) Checker {
	return CheckFunc(func(ctx context.Context, app models.Application) (bool, error) {
		for _, c := range checkers {
			risky, err := c.CheckApplication(ctx, app)
			if err != nil {
				return false, err
			}
			if risky {
				return true, nil
			}
		}
		return false, nil
	})
}

func normalizeSurname(name string) string {
	return platformstrings.Fold(name)
}
