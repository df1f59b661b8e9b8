package proposal

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "propostas-backend/internal/domain/proposal"
	"propostas-backend/pkg/annuity"
	"propostas-backend/pkg/cpf"
	"propostas-backend/pkg/id"
)

const (
	defaultPerPage = 5
	maxPerPage     = 100
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Create validates the tax id, prices the requested loan at the policy
// rate and persists the proposal as a draft. Nothing is stored when the
// installment would exceed 30% of the applicant's income.
func (u *Usecase) Create(ctx context.Context, in CreateProposalInput) (*ProposalDTO, error) {
	if in.ApplicantName == "" ||
		in.RequestedAmount < 1000 || in.RequestedAmount > 50000 ||
		in.InstallmentCount < 6 || in.InstallmentCount > 60 ||
		in.MonthlyIncome < 1500 {
		return nil, domain.ErrInvalidInput
	}
	if !cpf.IsValid(in.TaxID) {
		return nil, domain.ErrInvalidTaxID
	}

	margin := decimal.NewFromFloat(in.MonthlyIncome).
		Mul(decimal.NewFromFloat(domain.MarginRatio)).
		Round(2)

	quote, err := annuity.Compute(decimal.NewFromFloat(in.RequestedAmount), in.InstallmentCount, domain.MonthlyRate)
	if err != nil {
		return nil, err
	}
	if quote.Installment.GreaterThan(margin) {
		return nil, domain.ErrMarginExceeded
	}

	p := &domain.Proposal{
		ProposalID:        id.NewID32(),
		ApplicantName:     in.ApplicantName,
		TaxID:             cpf.Normalize(in.TaxID),
		RequestedAmount:   in.RequestedAmount,
		InstallmentCount:  in.InstallmentCount,
		MonthlyIncome:     in.MonthlyIncome,
		InterestRate:      domain.MonthlyRate,
		InstallmentAmount: quote.Installment.InexactFloat64(),
		TotalAmount:       quote.Total.InexactFloat64(),
		AffordableMargin:  margin.InexactFloat64(),
		Status:            domain.StatusDraft,
		Notes:             in.Notes,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return ToDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, proposalID string) (*ProposalDTO, error) {
	p, err := u.repo.GetByProposalID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ToDTO(p), nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) (*ProposalPage, error) {
	f := domain.Filter{
		Search:  in.Search,
		Status:  in.Status,
		Page:    in.Page,
		PerPage: in.PerPage,
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = defaultPerPage
	}
	if f.PerPage > maxPerPage {
		f.PerPage = maxPerPage
	}

	items, total, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	page := &ProposalPage{
		Data:    make([]ProposalDTO, 0, len(items)),
		Page:    f.Page,
		PerPage: f.PerPage,
		Total:   total,
	}
	for i := range items {
		page.Data = append(page.Data, *ToDTO(&items[i]))
	}
	return page, nil
}

// Delete removes a proposal unless it has been approved; approved rows
// are immutable history.
func (u *Usecase) Delete(ctx context.Context, proposalID string) error {
	p, err := u.repo.GetByProposalID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if p.Status == domain.StatusApproved {
		return domain.ErrApprovedImmutable
	}
	return u.repo.Delete(ctx, p)
}
