package domain

import "testing"

func TestParseAgeGroup(t *testing.T) {
	cases := map[string]AgeGroup{
		"18-25": AgeGroup18To25,
		"26-35": AgeGroup26To35,
		"36-50": AgeGroup36To50,
		"51+":   AgeGroup51Plus,
	}
	for input, want := range cases {
		got, err := ParseAgeGroup(input)
		if err != nil {
			t.Fatalf("ParseAgeGroup(%q): unexpected error %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseAgeGroup(%q) = %v, want %v", input, got, want)
		}
		if got.String() != input {
			t.Fatalf("AgeGroup(%v).String() = %q, want %q", got, got.String(), input)
		}
	}
}

func TestParseAgeGroupUnknown(t *testing.T) {
	for _, input := range []string{"", "55+", "18-25 ", "26 - 35"} {
		if _, err := ParseAgeGroup(input); err == nil {
			t.Fatalf("ParseAgeGroup(%q): expected error", input)
		}
	}
}

func TestAgeGroupCodes(t *testing.T) {
	if AgeGroup18To25.Code() != 0 || AgeGroup26To35.Code() != 1 || AgeGroup36To50.Code() != 2 || AgeGroup51Plus.Code() != 3 {
		t.Fatal("age group codes must match the trained feature schema 0..3")
	}
}

func TestParseFamilyBackground(t *testing.T) {
	cases := map[string]FamilyBackground{
		"Single":            FamilySingle,
		"Married":           FamilyMarried,
		"Married with Kids": FamilyMarriedWithKids,
	}
	for input, want := range cases {
		got, err := ParseFamilyBackground(input)
		if err != nil {
			t.Fatalf("ParseFamilyBackground(%q): unexpected error %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseFamilyBackground(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseFamilyBackgroundUnknown(t *testing.T) {
	// Lowercase variants are outside the enumeration: no silent coercion.
	for _, input := range []string{"", "single", "married", "Divorced"} {
		if _, err := ParseFamilyBackground(input); err == nil {
			t.Fatalf("ParseFamilyBackground(%q): expected error", input)
		}
	}
}

func TestFamilyBackgroundCodes(t *testing.T) {
	if FamilySingle.Code() != 0 || FamilyMarried.Code() != 1 || FamilyMarriedWithKids.Code() != 2 {
		t.Fatal("family background codes must match the trained feature schema 0..2")
	}
}

func TestEncodedFeaturesVectorOrder(t *testing.T) {
	f := EncodedFeatures{CreditScore: 700, AgeGroupCode: 2, FamilyCode: 1, Income: 450000}
	v := f.Vector()

	want := [4]float64{700, 2, 1, 450000}
	if v != want {
		t.Fatalf("Vector() = %v, want %v (fixed order: credit_score, age_group, family_background, income)", v, want)
	}
}
