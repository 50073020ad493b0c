package submissions

import "fmt"

// SubmitResponse is the success payload of POST /submit.
type SubmitResponse struct {
	EmailSent          bool   `json:"email_sent"`
	TotalScoreCustomer string `json:"total_score_customer,omitempty"`
	Summary            string `json:"summary,omitempty"`
}

func toResponse(out Outcome) SubmitResponse {
	questions := 0
	for _, s := range out.Sections {
		questions += len(s.Questions)
	}
	return SubmitResponse{
		EmailSent:          out.Email.Succeeded,
		TotalScoreCustomer: out.Total,
		Summary:            fmt.Sprintf("%d onderwerpen, %d vragen", len(out.Sections), questions),
	}
}
