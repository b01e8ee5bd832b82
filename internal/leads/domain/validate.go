package domain

import (
	"strings"

	"leadscore_backend/platform/apperr"
)

// Validation failure reasons surfaced verbatim to the caller.
const (
	ReasonConsentRequired    = "Consent is required"
	ReasonInvalidEmail       = "Invalid email format"
	ReasonInvalidPhoneNumber = "Invalid phone number format"
)

// phonePrefix is the required country-code prefix for submitted numbers.
const phonePrefix = "+91"

// ValidateLead enforces the scoring preconditions in fixed order: consent,
// then email, then phone. The first failing check determines the reported
// reason. No partial validation state is retained.
func ValidateLead(l Lead) error {
	if !l.Consent {
		return apperr.Validation(ReasonConsentRequired)
	}
	if !strings.Contains(l.Email, "@") {
		return apperr.Validation(ReasonInvalidEmail)
	}
	if !strings.HasPrefix(l.PhoneNumber, phonePrefix) {
		return apperr.Validation(ReasonInvalidPhoneNumber)
	}
	return nil
}
