package handler

import (
	"strings"

	"cardeval/internal/evaluator/models"
	dErrors "cardeval/pkg/domain-errors"
)

const maxFrequentFlyerNumberLen = 32

// EvaluateRequest is the HTTP request body for both evaluate endpoints.
type EvaluateRequest struct {
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Age                 int    `json:"age"`
	GrossAnnualIncome   int    `json:"gross_annual_income"`
	FrequentFlyerNumber string `json:"frequent_flyer_number"`
}

// Validate normalizes and checks the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *EvaluateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	if len(r.FrequentFlyerNumber) > maxFrequentFlyerNumberLen {
		return dErrors.New(dErrors.CodeValidation, "frequent_flyer_number must be at most 32 characters")
	}
	if r.Age < 0 {
		return dErrors.New(dErrors.CodeValidation, "age must not be negative")
	}
	if r.GrossAnnualIncome < 0 {
		return dErrors.New(dErrors.CodeValidation, "gross_annual_income must not be negative")
	}

	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.FrequentFlyerNumber = strings.TrimSpace(r.FrequentFlyerNumber)
	return nil
}

// Application converts the request into the evaluator's input.
func (r *EvaluateRequest) Application() models.Application {
	return models.Application{
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		Age:                 r.Age,
		GrossAnnualIncome:   r.GrossAnnualIncome,
		FrequentFlyerNumber: r.FrequentFlyerNumber,
	}
}
