package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "propostas-backend/internal/domain/proposal"
)

type ProposalRepository struct{ db *gorm.DB }

func NewProposalRepository(db *gorm.DB) *ProposalRepository { return &ProposalRepository{db: db} }

func (r *ProposalRepository) Create(ctx context.Context, p *domain.Proposal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProposalRepository) Save(ctx context.Context, p *domain.Proposal) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProposalRepository) Delete(ctx context.Context, p *domain.Proposal) error {
	return r.db.WithContext(ctx).Delete(p).Error
}

func (r *ProposalRepository) GetByProposalID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	var out domain.Proposal
	res := r.db.WithContext(ctx).Where("proposal_id = ?", proposalID).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *ProposalRepository) GetByProposalIDForUpdate(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	var out domain.Proposal
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("proposal_id = ?", proposalID).
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *ProposalRepository) ExistsActiveReview(ctx context.Context, taxID string, excludeID uint64) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&domain.Proposal{}).
		Where("tax_id = ? AND status = ?", taxID, domain.StatusInReview)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProposalRepository) List(ctx context.Context, f domain.Filter) ([]domain.Proposal, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Proposal{})

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("applicant_name LIKE ? OR tax_id LIKE ?", like, like)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Proposal
	res := q.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Offset((f.Page - 1) * f.PerPage).
		Limit(f.PerPage).
		Find(&out)
	if res.Error != nil {
		return nil, 0, res.Error
	}
	return out, total, nil
}
