// Package feature maps a validated lead's categorical attributes onto the
// numeric schema the scoring model was trained on.
package feature

import (
	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/platform/apperr"
)

// Encode produces the model feature vector for a validated lead. The two
// categorical fields are decoded through their closed enumerations; a value
// outside the enumeration is a schema mismatch and is reported as an
// unprocessable-entity error, never silently defaulted. Pure function.
func Encode(l domain.Lead) (domain.EncodedFeatures, error) {
	ageGroup, err := domain.ParseAgeGroup(l.AgeGroup)
	if err != nil {
		return domain.EncodedFeatures{}, unknownCategory(err, "age_group", l.AgeGroup)
	}

	family, err := domain.ParseFamilyBackground(l.FamilyBackground)
	if err != nil {
		return domain.EncodedFeatures{}, unknownCategory(err, "family_background", l.FamilyBackground)
	}

	return domain.EncodedFeatures{
		CreditScore:  l.CreditScore,
		AgeGroupCode: ageGroup.Code(),
		FamilyCode:   family.Code(),
		Income:       l.Income,
	}, nil
}

// unknownCategory wraps an enum parse failure with the rejected field and
// value so the error response tells the caller which input to fix.
func unknownCategory(err error, field, value string) error {
	return apperr.Unprocessable(err.Error()).WithDetails(map[string]string{
		"field": field,
		"value": value,
	})
}
