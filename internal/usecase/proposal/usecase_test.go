package proposal

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	domain "propostas-backend/internal/domain/proposal"
	"propostas-backend/internal/testutil/proposalmock"
)

const validTaxID = "390.533.447-05"

func validInput() CreateProposalInput {
	return CreateProposalInput{
		ApplicantName:    "Maria Souza",
		TaxID:            validTaxID,
		RequestedAmount:  5000,
		InstallmentCount: 12,
		MonthlyIncome:    2000,
	}
}

func TestCreate_Success(t *testing.T) {
	var stored *domain.Proposal
	uc := NewUsecase(&proposalmock.Repo{
		CreateFn: func(ctx context.Context, p *domain.Proposal) error {
			stored = p
			if p.CreatedAt.IsZero() {
				p.CreatedAt = time.Now().UTC()
			}
			return nil
		},
	})

	dto, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if stored == nil {
		t.Fatal("proposal was not persisted")
	}
	if len(dto.ProposalID) != 32 {
		t.Fatalf("ProposalID length: %d", len(dto.ProposalID))
	}
	if dto.Status != string(domain.StatusDraft) {
		t.Fatalf("status = %s, want draft", dto.Status)
	}
	if stored.TaxID != "39053344705" {
		t.Fatalf("stored tax id = %q, want normalized digits", stored.TaxID)
	}
	if dto.TaxID != validTaxID {
		t.Fatalf("dto tax id = %q, want masked form", dto.TaxID)
	}
	if dto.AffordableMargin != 600.00 {
		t.Fatalf("margin = %v, want 600.00", dto.AffordableMargin)
	}
	if dto.InterestRate != domain.MonthlyRate {
		t.Fatalf("rate = %v, want %v", dto.InterestRate, domain.MonthlyRate)
	}
	if dto.InstallmentAmount <= 0 || dto.InstallmentAmount > dto.AffordableMargin {
		t.Fatalf("installment %v out of range (margin %v)", dto.InstallmentAmount, dto.AffordableMargin)
	}
}

func TestCreate_InvalidTaxID(t *testing.T) {
	uc := NewUsecase(&proposalmock.Repo{
		CreateFn: func(ctx context.Context, p *domain.Proposal) error {
			t.Fatal("Create must not be called for an invalid tax id")
			return nil
		},
	})
	in := validInput()
	in.TaxID = "390.533.447-06" // bad check digit
	if _, err := uc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidTaxID) {
		t.Fatalf("want ErrInvalidTaxID, got %v", err)
	}
}

func TestCreate_MarginExceeded(t *testing.T) {
	uc := NewUsecase(&proposalmock.Repo{
		CreateFn: func(ctx context.Context, p *domain.Proposal) error {
			t.Fatal("Create must not be called when the margin is exceeded")
			return nil
		},
	})
	in := validInput()
	// 50_000 over 6 months at 2.5%/month is far above 30% of 2_000
	in.RequestedAmount = 50000
	in.InstallmentCount = 6
	if _, err := uc.Create(context.Background(), in); !errors.Is(err, domain.ErrMarginExceeded) {
		t.Fatalf("want ErrMarginExceeded, got %v", err)
	}
}

func TestCreate_InputGuards(t *testing.T) {
	uc := NewUsecase(&proposalmock.Repo{})
	cases := []func(*CreateProposalInput){
		func(in *CreateProposalInput) { in.ApplicantName = "" },
		func(in *CreateProposalInput) { in.RequestedAmount = 999 },
		func(in *CreateProposalInput) { in.RequestedAmount = 50001 },
		func(in *CreateProposalInput) { in.InstallmentCount = 5 },
		func(in *CreateProposalInput) { in.InstallmentCount = 61 },
		func(in *CreateProposalInput) { in.MonthlyIncome = 1499.99 },
	}
	for i, mutate := range cases {
		in := validInput()
		mutate(&in)
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("case %d: want ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestGet_NotFound(t *testing.T) {
	uc := NewUsecase(&proposalmock.Repo{
		GetByProposalIDFn: func(ctx context.Context, proposalID string) (*domain.Proposal, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})
	if _, err := uc.Get(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGet_Success(t *testing.T) {
	now := time.Now().UTC()
	uc := NewUsecase(&proposalmock.Repo{
		GetByProposalIDFn: func(ctx context.Context, proposalID string) (*domain.Proposal, error) {
			return &domain.Proposal{
				ProposalID:    proposalID,
				ApplicantName: "Maria Souza",
				TaxID:         "39053344705",
				Status:        domain.StatusDraft,
				CreatedAt:     now,
			}, nil
		},
	})
	dto, err := uc.Get(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if dto.TaxID != validTaxID {
		t.Fatalf("tax id = %q, want masked", dto.TaxID)
	}
}

func TestList_DefaultsAndMapping(t *testing.T) {
	var gotFilter domain.Filter
	uc := NewUsecase(&proposalmock.Repo{
		ListFn: func(ctx context.Context, f domain.Filter) ([]domain.Proposal, int64, error) {
			gotFilter = f
			return []domain.Proposal{
				{ProposalID: "a", TaxID: "39053344705", Status: domain.StatusDraft},
				{ProposalID: "b", TaxID: "39053344705", Status: domain.StatusApproved},
			}, 7, nil
		},
	})

	page, err := uc.List(context.Background(), ListInput{Search: "maria", Status: "draft"})
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if gotFilter.Page != 1 || gotFilter.PerPage != 5 {
		t.Fatalf("filter defaults = %+v", gotFilter)
	}
	if gotFilter.Search != "maria" || gotFilter.Status != "draft" {
		t.Fatalf("filter passthrough = %+v", gotFilter)
	}
	if page.Total != 7 || len(page.Data) != 2 {
		t.Fatalf("page = %+v", page)
	}
}

func TestList_PerPageCap(t *testing.T) {
	uc := NewUsecase(&proposalmock.Repo{
		ListFn: func(ctx context.Context, f domain.Filter) ([]domain.Proposal, int64, error) {
			if f.PerPage != 100 {
				t.Fatalf("per page = %d, want capped at 100", f.PerPage)
			}
			return nil, 0, nil
		},
	})
	if _, err := uc.List(context.Background(), ListInput{PerPage: 5000}); err != nil {
		t.Fatalf("List err: %v", err)
	}
}

func TestDelete_ApprovedIsImmutable(t *testing.T) {
	uc := NewUsecase(&proposalmock.Repo{
		GetByProposalIDFn: func(ctx context.Context, proposalID string) (*domain.Proposal, error) {
			return &domain.Proposal{ProposalID: proposalID, Status: domain.StatusApproved}, nil
		},
		DeleteFn: func(ctx context.Context, p *domain.Proposal) error {
			t.Fatal("Delete must not be called for an approved proposal")
			return nil
		},
	})
	if err := uc.Delete(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef"); !errors.Is(err, domain.ErrApprovedImmutable) {
		t.Fatalf("want ErrApprovedImmutable, got %v", err)
	}
}

func TestDelete_RejectedAndCancelled(t *testing.T) {
	for _, st := range []domain.Status{domain.StatusRejected, domain.StatusCancelled, domain.StatusDraft} {
		deleted := false
		uc := NewUsecase(&proposalmock.Repo{
			GetByProposalIDFn: func(ctx context.Context, proposalID string) (*domain.Proposal, error) {
				return &domain.Proposal{ProposalID: proposalID, Status: st}, nil
			},
			DeleteFn: func(ctx context.Context, p *domain.Proposal) error {
				deleted = true
				return nil
			},
		})
		if err := uc.Delete(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef"); err != nil {
			t.Fatalf("Delete(%s) err: %v", st, err)
		}
		if !deleted {
			t.Fatalf("Delete(%s): repo delete not called", st)
		}
	}
}

func TestDelete_NotFound(t *testing.T) {
	uc := NewUsecase(&proposalmock.Repo{
		GetByProposalIDFn: func(ctx context.Context, proposalID string) (*domain.Proposal, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})
	if err := uc.Delete(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
