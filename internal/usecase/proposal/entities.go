package proposal

import (
	"time"

	domain "propostas-backend/internal/domain/proposal"
	"propostas-backend/pkg/cpf"
)

type CreateProposalInput struct {
	ApplicantName    string  `json:"applicant_name"`
	TaxID            string  `json:"tax_id"`
	RequestedAmount  float64 `json:"requested_amount"`
	InstallmentCount int     `json:"installment_count"`
	MonthlyIncome    float64 `json:"monthly_income"`
	Notes            string  `json:"notes"`
}

type ListInput struct {
	Search  string
	Status  string
	Page    int
	PerPage int
}

// ProposalDTO is the externally visible shape of a stored proposal. The
// tax id goes out in its canonical masked form.
type ProposalDTO struct {
	ProposalID        string    `json:"proposal_id"`
	ApplicantName     string    `json:"applicant_name"`
	TaxID             string    `json:"tax_id"`
	RequestedAmount   float64   `json:"requested_amount"`
	InstallmentCount  int       `json:"installment_count"`
	MonthlyIncome     float64   `json:"monthly_income"`
	InterestRate      float64   `json:"interest_rate"`
	InstallmentAmount float64   `json:"installment_amount"`
	TotalAmount       float64   `json:"total_amount"`
	AffordableMargin  float64   `json:"affordable_margin"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ProposalPage struct {
	Data    []ProposalDTO `json:"data"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
	Total   int64         `json:"total"`
}

// ToDTO projects a stored proposal; no derived fields are recomputed.
func ToDTO(p *domain.Proposal) *ProposalDTO {
	return &ProposalDTO{
		ProposalID:        p.ProposalID,
		ApplicantName:     p.ApplicantName,
		TaxID:             cpf.Format(p.TaxID),
		RequestedAmount:   p.RequestedAmount,
		InstallmentCount:  p.InstallmentCount,
		MonthlyIncome:     p.MonthlyIncome,
		InterestRate:      p.InterestRate,
		InstallmentAmount: p.InstallmentAmount,
		TotalAmount:       p.TotalAmount,
		AffordableMargin:  p.AffordableMargin,
		Status:            string(p.Status),
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
