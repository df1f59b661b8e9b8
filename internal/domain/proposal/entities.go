package proposal

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Policy constants. They are stamped onto every proposal at creation so
// existing rows keep their original economics if the policy changes.
const (
	MonthlyRate = 0.025
	MarginRatio = 0.30
)

var (
	ErrInvalidInput       = errors.New("invalid proposal input")
	ErrInvalidTaxID       = errors.New("tax id is invalid")
	ErrMarginExceeded     = errors.New("installment exceeds the affordable margin")
	ErrNotFound           = errors.New("proposal not found")
	ErrInvalidStatus      = errors.New("unknown proposal status")
	ErrIllegalTransition  = errors.New("status transition not allowed")
	ErrActiveReviewExists = errors.New("another proposal for this tax id is already in review")
	ErrApprovedImmutable  = errors.New("approved proposals cannot be deleted")
)

type Proposal struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	ProposalID string `gorm:"column:proposal_id;type:char(32);not null;uniqueIndex:ux_proposals_proposal_id"`

	ApplicantName string `gorm:"column:applicant_name;size:255;not null"`
	// Normalized to 11 digits; the masked display form is derived in the DTO.
	TaxID string `gorm:"column:tax_id;type:char(11);not null;index:idx_proposals_tax_id"`

	RequestedAmount  float64 `gorm:"column:requested_amount;type:decimal(10,2);not null"`
	InstallmentCount int     `gorm:"column:installment_count;not null"`
	MonthlyIncome    float64 `gorm:"column:monthly_income;type:decimal(10,2);not null"`

	InterestRate      float64 `gorm:"column:interest_rate;type:decimal(6,4);not null"`
	InstallmentAmount float64 `gorm:"column:installment_amount;type:decimal(10,2);not null"`
	TotalAmount       float64 `gorm:"column:total_amount;type:decimal(12,2);not null"`
	AffordableMargin  float64 `gorm:"column:affordable_margin;type:decimal(10,2);not null"`

	Status Status `gorm:"column:status;type:varchar(16);default:'draft'"`
	// Set iff Status == in_review; the unique index makes the store reject a
	// second concurrent review for the same tax id.
	ActiveTaxID *string `gorm:"column:active_tax_id;type:char(11);uniqueIndex:ux_proposals_active_review"`

	Notes string `gorm:"column:notes;type:text"`

	StatusUpdatedAt time.Time `gorm:"column:status_updated_at;autoCreateTime"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Proposal) TableName() string { return "proposals" }

// BeforeSave keeps the active-review marker in sync with the status, so the
// partial uniqueness of "one in_review per tax id" is enforced by the store
// on every insert or update.
func (p *Proposal) BeforeSave(tx *gorm.DB) error {
	if p.Status == StatusInReview {
		t := p.TaxID
		p.ActiveTaxID = &t
	} else {
		p.ActiveTaxID = nil
	}
	return nil
}
