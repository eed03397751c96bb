package evaluator

import (
	"context"
	"fmt"
	"time"

	"cardeval/internal/evaluator/models"
)

// Placeholder thresholds; they are not calibrated business rules.
const (
	AutoReferralMaxAge  = 20
	HighIncomeThreshold = 20
	LowIncomeThreshold  = 20
	DetailedModeMinAge  = 30

	// ExpiredLicenseKey is the license key the validation service reports
	// once its license has lapsed.
	ExpiredLicenseKey = "EXPIRED"
)

const (
	entrypointEvaluate    = "evaluate"
	entrypointEvaluateOut = "evaluate_out"
)

// Evaluate runs the full decision cascade. First match wins:
//  1. Fraud risk (when a fraud lookup is configured)
//  2. High income - accepted before any validator cost is paid
//  3. Expired validator license
//  4. Validation mode set from age
//  5. Frequent flyer validity
//  6. Young applicants referred
//  7. Low income declined
//  8. Everything else referred
//
// A validator failure never escapes: it becomes a human referral. The only
// error returned is a failed fraud lookup.
func (e *Evaluator) Evaluate(ctx context.Context, app models.Application) (models.Decision, error) {
	start := time.Now()
	decision, err := e.evaluate(ctx, app)
	e.metrics.ObserveEvaluateLatency(entrypointEvaluate, time.Since(start))
	if err != nil {
		return "", err
	}

	e.metrics.IncrementOutcome(decision.String(), entrypointEvaluate)
	e.logger.DebugContext(ctx, "application evaluated",
		"entrypoint", entrypointEvaluate,
		"decision", decision,
	)
	return decision, nil
}

func (e *Evaluator) evaluate(ctx context.Context, app models.Application) (models.Decision, error) {
	// Rule 1: fraud risk pre-empts every other rule
	if e.fraud != nil {
		risky, err := e.fraud.IsFraudRisk(ctx, app)
		if err != nil {
			return "", fmt.Errorf("fraud lookup: %w", err)
		}
		if risky {
			return models.DecisionReferredToHumanFraudRisk, nil
		}
	}

	// Rule 2: high income
	if app.GrossAnnualIncome >= HighIncomeThreshold {
		return models.DecisionAutoAccepted, nil
	}

	// Rule 3: validator license expired
	if e.licenseExpired() {
		return models.DecisionAutoDeclined, nil
	}

	// Rules 4 and 5: set mode, then check frequent flyer validity
	valid, err := e.validate(ctx, app)
	if err != nil {
		e.metrics.IncrementValidatorFailures()
		e.logger.WarnContext(ctx, "frequent flyer validation failed, referring to human",
			"error", err,
		)
		return models.DecisionReferredToHuman, nil
	}
	if !valid {
		return models.DecisionAutoDeclined, nil
	}

	return referOrDecline(app), nil
}

// EvaluateUsingOut decides an application through the validator's alternate
// calling convention. It skips the fraud and license rules and
// does not set the validation mode; errors from the validator are returned
// unchanged.
func (e *Evaluator) EvaluateUsingOut(ctx context.Context, app models.Application) (models.Decision, error) {
	start := time.Now()
	decision, err := e.evaluateUsingOut(ctx, app)
	e.metrics.ObserveEvaluateLatency(entrypointEvaluateOut, time.Since(start))
	if err != nil {
		return "", err
	}

	e.metrics.IncrementOutcome(decision.String(), entrypointEvaluateOut)
	e.logger.DebugContext(ctx, "application evaluated",
		"entrypoint", entrypointEvaluateOut,
		"decision", decision,
	)
	return decision, nil
}

func (e *Evaluator) evaluateUsingOut(ctx context.Context, app models.Application) (models.Decision, error) {
	if app.GrossAnnualIncome >= HighIncomeThreshold {
		return models.DecisionAutoAccepted, nil
	}

	result, err := e.checkValidity(ctx, app)
	if err != nil {
		return "", err
	}
	if !result.Valid {
		return models.DecisionAutoDeclined, nil
	}

	return referOrDecline(app), nil
}

// referOrDecline holds the rules that follow a successful validity check.
func referOrDecline(app models.Application) models.Decision {
	if app.Age <= AutoReferralMaxAge {
		return models.DecisionReferredToHuman
	}
	if app.GrossAnnualIncome < LowIncomeThreshold {
		return models.DecisionAutoDeclined
	}
	return models.DecisionReferredToHuman
}

// ModeForAge picks the validation mode for an applicant.
func ModeForAge(age int) models.ValidationMode {
	if age >= DetailedModeMinAge {
		return models.ValidationModeDetailed
	}
	return models.ValidationModeQuick
}

func (e *Evaluator) licenseExpired() bool {
	info := e.validator.ServiceInformation()
	if info == nil {
		return false
	}
	license := info.License()
	if license == nil {
		return false
	}
	return license.LicenseKey() == ExpiredLicenseKey
}

// validate sets the mode and invokes the validator. A panic raised by the
// validator is reported as an error, like any other validator failure.
func (e *Evaluator) validate(ctx context.Context, app models.Application) (valid bool, err error) {
	e.validatorMu.Lock()
	defer e.validatorMu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			valid = false
			err = fmt.Errorf("validator panicked: %v", r)
		}
	}()

	e.validator.SetMode(ModeForAge(app.Age))
	return e.validator.IsValid(ctx, app.FrequentFlyerNumber)
}

func (e *Evaluator) checkValidity(ctx context.Context, app models.Application) (models.LookupResult, error) {
	e.validatorMu.Lock()
	defer e.validatorMu.Unlock()
	return e.validator.CheckValidity(ctx, app.FrequentFlyerNumber)
}
