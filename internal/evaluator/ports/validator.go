package ports

import (
	"context"

	"cardeval/internal/evaluator/models"
)

//go:generate mockgen -source=validator.go -destination=mocks/validator_mocks.go -package=mocks

// LicenseData exposes the license the validation service runs under.
type LicenseData interface {
	LicenseKey() string
}

// ServiceInformation describes the validation service.
type ServiceInformation interface {
	License() LicenseData
}

// LookupListener is notified synchronously each time the validator performs
// a lookup, regardless of the lookup's outcome.
type LookupListener interface {
	LookupPerformed()
}

// FrequentFlyerValidator is the external validation dependency consulted by
// the evaluator. Implementations are shared, not owned, by the evaluator.
type FrequentFlyerValidator interface {
	// Mode returns the current validation mode.
	Mode() models.ValidationMode
	// SetMode changes the validation mode used by subsequent lookups.
	SetMode(mode models.ValidationMode)
	// ServiceInformation exposes license details of the validation service.
	ServiceInformation() ServiceInformation
	// IsValid checks a frequent flyer number. It may fail.
	IsValid(ctx context.Context, number string) (bool, error)
	// CheckValidity is the alternate calling convention: validity is handed
	// back inside a LookupResult rather than as the primary return value.
	CheckValidity(ctx context.Context, number string) (models.LookupResult, error)
	// AddLookupListener registers l for lookup-performed notifications.
	AddLookupListener(l LookupListener)
}
