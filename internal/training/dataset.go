// Package training produces and consumes the offline artifacts of the
// scoring model: a synthetic leads dataset and a logistic regression fitted
// on the fixed 4-feature vector. The API service only ever reads the
// resulting model artifact.
package training

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/platform/phone"
)

// csvHeader is the column layout of the leads dataset.
var csvHeader = []string{
	"phone_number", "email", "credit_score", "age_group",
	"family_background", "income", "comments", "intent",
}

var commentKeywords = []string{
	"urgent", "now", "immediately", "interested",
	"not interested", "later", "maybe", "soon",
}

var emailDomains = []string{"example.com", "example.org", "mail.test"}

// Row is one synthetic lead together with its intent label.
type Row struct {
	Lead   domain.Lead
	Intent int
}

// Generate produces n synthetic leads. Intent is biased towards higher
// credit scores and incomes with a random noise component, mirroring the
// distribution the model is meant to learn.
func Generate(n int, rng *rand.Rand) []Row {
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		creditScore := 300 + rng.Intn(551)
		income := 100000 + rng.Intn(900001)

		intentProbability := float64(creditScore-300)/550*0.4 +
			float64(income-100000)/900000*0.3 +
			rng.Float64()*0.3
		intent := 0
		if rng.Float64() < intentProbability {
			intent = 1
		}

		rows = append(rows, Row{
			Lead: domain.Lead{
				// Raw numbers come out country-code-dashed; the store keeps E.164.
				PhoneNumber:      phone.NormalizeE164(fmt.Sprintf("+91-%d", 9000000000+rng.Int63n(1000000000))),
				Email:            fmt.Sprintf("lead%d@%s", i, emailDomains[rng.Intn(len(emailDomains))]),
				CreditScore:      creditScore,
				AgeGroup:         domain.AgeGroup(rng.Intn(4)).String(),
				FamilyBackground: domain.FamilyBackground(rng.Intn(3)).String(),
				Income:           income,
				Comments:         randomComments(rng),
				Consent:          true,
			},
			Intent: intent,
		})
	}
	return rows
}

// randomComments joins one to three distinct keywords from the pool.
func randomComments(rng *rand.Rand) string {
	perm := rng.Perm(len(commentKeywords))
	count := 1 + rng.Intn(3)

	comments := ""
	for i := 0; i < count; i++ {
		if i > 0 {
			comments += " "
		}
		comments += commentKeywords[perm[i]]
	}
	return comments
}

// WriteCSV writes the dataset with its header row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Lead.PhoneNumber,
			r.Lead.Email,
			strconv.Itoa(r.Lead.CreditScore),
			r.Lead.AgeGroup,
			r.Lead.FamilyBackground,
			strconv.Itoa(r.Lead.Income),
			r.Lead.Comments,
			strconv.Itoa(r.Intent),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
