// Package transport defines the wire shapes of the lead scoring API.
package transport

// ScoreLeadRequest is the body of POST /api/v1/leads/score. Consent, the
// contact fields, and the numeric fields carry no validate tags on purpose:
// the domain validator owns their semantic checks so its reasons surface
// verbatim (a consent=false or email="" request must reach it, not die in
// tag validation).
type ScoreLeadRequest struct {
	PhoneNumber      string `json:"phone_number"`
	Email            string `json:"email"`
	CreditScore      int    `json:"credit_score"`
	AgeGroup         string `json:"age_group" validate:"required"`
	FamilyBackground string `json:"family_background" validate:"required"`
	Income           int    `json:"income"`
	Comments         string `json:"comments"`
	Consent          bool   `json:"consent"`
}

// LeadScoreResponse is returned for a successfully scored lead and for each
// record in the list endpoint.
type LeadScoreResponse struct {
	Email         string  `json:"email"`
	InitialScore  float64 `json:"initial_score"`
	RerankedScore float64 `json:"reranked_score"`
	Comments      string  `json:"comments"`
}

// LeadListResponse wraps all previously scored leads in insertion order.
type LeadListResponse struct {
	Items []LeadScoreResponse `json:"items"`
	Total int                 `json:"total"`
}
