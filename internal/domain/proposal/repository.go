package proposal

import "context"

// Filter narrows and pages a listing. Search matches applicant name or
// tax id as a substring.
type Filter struct {
	Search  string
	Status  string
	Page    int
	PerPage int
}

type Repository interface {
	Create(ctx context.Context, p *Proposal) error
	GetByProposalID(ctx context.Context, proposalID string) (*Proposal, error)
	GetByProposalIDForUpdate(ctx context.Context, proposalID string) (*Proposal, error)
	Save(ctx context.Context, p *Proposal) error
	Delete(ctx context.Context, p *Proposal) error

	// ExistsActiveReview reports whether a proposal other than excludeID is
	// in_review for the given normalized tax id.
	ExistsActiveReview(ctx context.Context, taxID string, excludeID uint64) (bool, error)

	// List returns one page ordered by creation time, newest first, plus the
	// total row count for the filter.
	List(ctx context.Context, f Filter) ([]Proposal, int64, error)
}
