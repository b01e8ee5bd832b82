// Package domain holds the lead scoring domain types. The categorical lead
// attributes are modeled as closed enumerations decoded from their wire
// strings, so an out-of-schema category fails at decode time instead of deep
// inside the pipeline.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Lead is a prospective customer's contact and demographic record as
// submitted for scoring. Categorical fields are carried as raw strings and
// decoded into their enumerations by the feature encoder.
type Lead struct {
	PhoneNumber      string
	Email            string
	CreditScore      int
	AgeGroup         string
	FamilyBackground string
	Income           int
	Comments         string
	Consent          bool
}

// AgeGroup is the closed enumeration of supported age brackets.
type AgeGroup int

const (
	AgeGroup18To25 AgeGroup = iota
	AgeGroup26To35
	AgeGroup36To50
	AgeGroup51Plus
)

var ageGroupNames = map[AgeGroup]string{
	AgeGroup18To25: "18-25",
	AgeGroup26To35: "26-35",
	AgeGroup36To50: "36-50",
	AgeGroup51Plus: "51+",
}

// String returns the wire representation of the age group.
func (a AgeGroup) String() string { return ageGroupNames[a] }

// Code returns the numeric feature code the model was trained on.
func (a AgeGroup) Code() int { return int(a) }

// ParseAgeGroup decodes a wire string into an AgeGroup. Unknown values are
// an error, never coerced to a default.
func ParseAgeGroup(s string) (AgeGroup, error) {
	for ag, name := range ageGroupNames {
		if name == s {
			return ag, nil
		}
	}
	return 0, fmt.Errorf("unknown age group %q", s)
}

// FamilyBackground is the closed enumeration of supported family situations.
type FamilyBackground int

const (
	FamilySingle FamilyBackground = iota
	FamilyMarried
	FamilyMarriedWithKids
)

var familyBackgroundNames = map[FamilyBackground]string{
	FamilySingle:          "Single",
	FamilyMarried:         "Married",
	FamilyMarriedWithKids: "Married with Kids",
}

// String returns the wire representation of the family background.
func (f FamilyBackground) String() string { return familyBackgroundNames[f] }

// Code returns the numeric feature code the model was trained on.
func (f FamilyBackground) Code() int { return int(f) }

// ParseFamilyBackground decodes a wire string into a FamilyBackground.
// Unknown values are an error, never coerced to a default.
func ParseFamilyBackground(s string) (FamilyBackground, error) {
	for fb, name := range familyBackgroundNames {
		if name == s {
			return fb, nil
		}
	}
	return 0, fmt.Errorf("unknown family background %q", s)
}

// EncodedFeatures is the numeric 4-feature vector consumed by the model,
// in the fixed training order: credit_score, age_group, family_background,
// income.
type EncodedFeatures struct {
	CreditScore  int
	AgeGroupCode int
	FamilyCode   int
	Income       int
}

// Vector returns the features in the fixed order the model was trained on.
func (e EncodedFeatures) Vector() [4]float64 {
	return [4]float64{
		float64(e.CreditScore),
		float64(e.AgeGroupCode),
		float64(e.FamilyCode),
		float64(e.Income),
	}
}

// ScoredLead is the immutable record produced by a successful scoring call.
type ScoredLead struct {
	ID            uuid.UUID
	Email         string
	InitialScore  float64
	RerankedScore float64
	Comments      string
	ScoredAt      time.Time
}
