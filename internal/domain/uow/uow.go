package uow

import (
	"context"

	"propostas-backend/internal/domain/proposal"
)

type Repos struct {
	Proposals proposal.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the proposal row up-front, then pass it in
	WithinProposalTx(ctx context.Context, proposalID string, fn func(r Repos, p *proposal.Proposal) error) error
}
