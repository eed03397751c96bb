// Package flyer provides the frequent flyer number validator consulted by the
// evaluator. Membership data comes from a Directory; lookups are guarded by a
// circuit breaker and reported to registered listeners.
package flyer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"cardeval/internal/evaluator/models"
	"cardeval/internal/evaluator/ports"
	flyermodels "cardeval/internal/flyer/models"
	"cardeval/pkg/platform/circuit"
	"cardeval/pkg/platform/sentinel"
)

//go:generate mockgen -source=validator.go -destination=mocks/directory_mocks.go -package=mocks

// Directory finds programme members by number. It returns
// sentinel.ErrNotFound (optionally wrapped) for unknown numbers.
type Directory interface {
	FindMember(ctx context.Context, number string) (*flyermodels.Member, error)
}

// License is the license the validation service runs under.
type License struct {
	Key string
}

func (l License) LicenseKey() string {
	return l.Key
}

// ServiceInfo describes the validation service.
type ServiceInfo struct {
	license License
}

func (s ServiceInfo) License() ports.LicenseData {
	return s.license
}

// Validator implements ports.FrequentFlyerValidator.
type Validator struct {
	directory Directory
	breaker   *circuit.Breaker
	info      ServiceInfo
	logger    *slog.Logger

	modeMu sync.RWMutex
	mode   models.ValidationMode

	listenersMu sync.RWMutex
	listeners   []ports.LookupListener
}

// Option configures a Validator.
type Option func(*Validator)

// WithLicenseKey sets the license key reported through ServiceInformation.
func WithLicenseKey(key string) Option {
	return func(v *Validator) {
		v.info.license = License{Key: key}
	}
}

// WithBreaker guards directory calls with b.
func WithBreaker(b *circuit.Breaker) Option {
	return func(v *Validator) {
		v.breaker = b
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// NewValidator builds a validator in ValidationModeNone.
func NewValidator(directory Directory, opts ...Option) *Validator {
	v := &Validator{
		directory: directory,
		logger:    slog.Default(),
		mode:      models.ValidationModeNone,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

func (v *Validator) Mode() models.ValidationMode {
	v.modeMu.RLock()
	defer v.modeMu.RUnlock()
	return v.mode
}

func (v *Validator) SetMode(mode models.ValidationMode) {
	v.modeMu.Lock()
	defer v.modeMu.Unlock()
	v.mode = mode
}

func (v *Validator) ServiceInformation() ports.ServiceInformation {
	return v.info
}

// AddLookupListener registers l. Listeners cannot be removed.
func (v *Validator) AddLookupListener(l ports.LookupListener) {
	if l == nil {
		return
	}
	v.listenersMu.Lock()
	defer v.listenersMu.Unlock()
	v.listeners = append(v.listeners, l)
}

// IsValid reports whether number belongs to a member. In detailed mode the
// member must also be active. Listeners are notified once per call, after
// the lookup, whatever its outcome.
func (v *Validator) IsValid(ctx context.Context, number string) (bool, error) {
	defer v.notify()
	return v.lookup(ctx, number, v.Mode())
}

// CheckValidity is IsValid with the result handed back as a LookupResult.
func (v *Validator) CheckValidity(ctx context.Context, number string) (models.LookupResult, error) {
	defer v.notify()
	valid, err := v.lookup(ctx, number, v.Mode())
	if err != nil {
		return models.LookupResult{}, err
	}
	return models.LookupResult{Performed: true, Valid: valid}, nil
}

func (v *Validator) lookup(ctx context.Context, number string, mode models.ValidationMode) (bool, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return false, nil
	}

	if v.breaker != nil && !v.breaker.Allow() {
		return false, fmt.Errorf("frequent flyer directory: %w", sentinel.ErrUnavailable)
	}

	member, err := v.directory.FindMember(ctx, number)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			v.recordSuccess()
			return false, nil
		}
		v.recordFailure(ctx, err)
		return false, fmt.Errorf("find frequent flyer member: %w", err)
	}
	v.recordSuccess()

	if mode == models.ValidationModeDetailed {
		return member.Active, nil
	}
	return true, nil
}

func (v *Validator) recordSuccess() {
	if v.breaker == nil {
		return
	}
	if _, change := v.breaker.RecordSuccess(); change.Closed {
		v.logger.Info("frequent flyer directory recovered", "breaker", v.breaker.Name())
	}
}

func (v *Validator) recordFailure(ctx context.Context, err error) {
	if v.breaker == nil {
		return
	}
	if _, change := v.breaker.RecordFailure(); change.Opened {
		v.logger.WarnContext(ctx, "frequent flyer directory breaker opened",
			"breaker", v.breaker.Name(),
			"error", err,
		)
	}
}

func (v *Validator) notify() {
	v.listenersMu.RLock()
	listeners := append([]ports.LookupListener(nil), v.listeners...)
	v.listenersMu.RUnlock()

	for _, l := range listeners {
		l.LookupPerformed()
	}
}
