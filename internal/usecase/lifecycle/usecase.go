package lifecycle

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "propostas-backend/internal/domain/proposal"
	"propostas-backend/internal/domain/uow"
	propuc "propostas-backend/internal/usecase/proposal"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Transition moves a proposal to target per the status machine. The row is
// locked for the whole check-and-write, and entering in_review is guarded
// twice: an explicit active-review existence check inside the tx, and the
// store's unique active-review index for racers that pass the check
// simultaneously.
func (u *Usecase) Transition(ctx context.Context, proposalID, target string) (*propuc.ProposalDTO, error) {
	if u.uow == nil {
		return nil, domain.ErrNotFound
	}

	st, err := domain.ParseStatus(target)
	if err != nil {
		return nil, err
	}

	var dto *propuc.ProposalDTO
	err = u.uow.WithinProposalTx(ctx, proposalID, func(r uow.Repos, p *domain.Proposal) error {
		if !p.Status.CanTransitionTo(st) {
			return domain.ErrIllegalTransition
		}

		if st == domain.StatusInReview {
			exists, err := r.Proposals.ExistsActiveReview(ctx, p.TaxID, p.ID)
			if err != nil {
				return err
			}
			if exists {
				return domain.ErrActiveReviewExists
			}
		}

		p.Status = st
		p.StatusUpdatedAt = time.Now().UTC()
		if err := r.Proposals.Save(ctx, p); err != nil {
			// Losing side of a concurrent race into in_review.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrActiveReviewExists
			}
			return err
		}

		dto = propuc.ToDTO(p)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}
