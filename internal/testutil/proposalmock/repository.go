package proposalmock

import (
	"context"

	domain "propostas-backend/internal/domain/proposal"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset methods fall back to a harmless default.
type Repo struct {
	CreateFn                   func(ctx context.Context, p *domain.Proposal) error
	GetByProposalIDFn          func(ctx context.Context, proposalID string) (*domain.Proposal, error)
	GetByProposalIDForUpdateFn func(ctx context.Context, proposalID string) (*domain.Proposal, error)
	SaveFn                     func(ctx context.Context, p *domain.Proposal) error
	DeleteFn                   func(ctx context.Context, p *domain.Proposal) error
	ExistsActiveReviewFn       func(ctx context.Context, taxID string, excludeID uint64) (bool, error)
	ListFn                     func(ctx context.Context, f domain.Filter) ([]domain.Proposal, int64, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Proposal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByProposalID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	if m.GetByProposalIDFn != nil {
		return m.GetByProposalIDFn(ctx, proposalID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByProposalIDForUpdate(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	if m.GetByProposalIDForUpdateFn != nil {
		return m.GetByProposalIDForUpdateFn(ctx, proposalID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.Proposal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, p *domain.Proposal) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, p)
	}
	return nil
}

func (m *Repo) ExistsActiveReview(ctx context.Context, taxID string, excludeID uint64) (bool, error) {
	if m.ExistsActiveReviewFn != nil {
		return m.ExistsActiveReviewFn(ctx, taxID, excludeID)
	}
	return false, nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Proposal, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}
