package ports

import (
	"context"

	"cardeval/internal/evaluator/models"
)

//go:generate mockgen -source=fraud.go -destination=mocks/fraud_mocks.go -package=mocks

// FraudLookup decides whether an application is a fraud risk. How the risk
// is computed is up to the implementation; the evaluator only consumes the
// boolean outcome.
type FraudLookup interface {
	IsFraudRisk(ctx context.Context, app models.Application) (bool, error)
}
