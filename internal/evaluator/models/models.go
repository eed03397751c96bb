package models

// Application is a single credit-card application as submitted by the caller.
// The evaluator never mutates it.
type Application struct {
	FirstName           string
	LastName            string
	Age                 int
	GrossAnnualIncome   int
	FrequentFlyerNumber string
}

// Decision is the terminal classification of an application.
type Decision string

const (
	DecisionAutoAccepted             Decision = "auto_accepted"
	DecisionAutoDeclined             Decision = "auto_declined"
	DecisionReferredToHuman          Decision = "referred_to_human"
	DecisionReferredToHumanFraudRisk Decision = "referred_to_human_fraud_risk"
)

func (d Decision) String() string {
	return string(d)
}

// IsValid reports whether d is one of the known decisions.
func (d Decision) IsValid() bool {
	switch d {
	case DecisionAutoAccepted, DecisionAutoDeclined, DecisionReferredToHuman, DecisionReferredToHumanFraudRisk:
		return true
	}
	return false
}

// ValidationMode is the lookup depth hint set on the frequent flyer validator
// before it is invoked.
type ValidationMode string

const (
	ValidationModeNone     ValidationMode = "none"
	ValidationModeQuick    ValidationMode = "quick"
	ValidationModeDetailed ValidationMode = "detailed"
)

// LookupResult is what the alternate validator calling convention hands back:
// whether the lookup was performed at all, and the validity it found.
type LookupResult struct {
	Performed bool
	Valid     bool
}
