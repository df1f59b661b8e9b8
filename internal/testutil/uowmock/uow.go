package uowmock

import (
	"context"

	"gorm.io/gorm"

	"propostas-backend/internal/domain/proposal"
	"propostas-backend/internal/domain/uow"
)

// UoW runs the callback against the provided repos without any real
// transaction. WithinProposalTx resolves the proposal through the repo's
// for-update getter, mirroring the mysql implementation.
type UoW struct {
	Repos uow.Repos
}

func New(r uow.Repos) *UoW { return &UoW{Repos: r} }

func (u *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return fn(u.Repos)
}

func (u *UoW) WithinProposalTx(ctx context.Context, proposalID string, fn func(r uow.Repos, p *proposal.Proposal) error) error {
	if u.Repos.Proposals == nil {
		return gorm.ErrRecordNotFound
	}
	p, err := u.Repos.Proposals.GetByProposalIDForUpdate(ctx, proposalID)
	if err != nil {
		return err
	}
	return fn(u.Repos, p)
}
