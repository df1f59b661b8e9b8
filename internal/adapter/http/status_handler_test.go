package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	domain "propostas-backend/internal/domain/proposal"
	"propostas-backend/internal/domain/uow"
	"propostas-backend/internal/testutil/proposalmock"
	"propostas-backend/internal/testutil/uowmock"
	"propostas-backend/internal/usecase/lifecycle"
	uc "propostas-backend/internal/usecase/proposal"
)

func newStatusHandler(repo *proposalmock.Repo) *StatusHandler {
	return NewStatusHandler(lifecycle.NewUsecase(uowmock.New(uow.Repos{Proposals: repo})))
}

func doChangeStatus(t *testing.T, h *StatusHandler, body any) *httptest.ResponseRecorder {
	t.Helper()
	e := newEchoWithValidator()
	req := httptest.NewRequest(stdhttp.MethodPatch, "/proposals/x/status", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/proposals/:proposal_id/status")
	c.SetParamNames("proposal_id")
	c.SetParamValues("deadbeefdeadbeefdeadbeefdeadbeef")
	if err := h.ChangeStatus(c); err != nil {
		t.Fatalf("ChangeStatus error: %v", err)
	}
	return rec
}

func TestChangeStatus_Success(t *testing.T) {
	repo := &proposalmock.Repo{
		GetByProposalIDForUpdateFn: func(ctx context.Context, proposalID string) (*domain.Proposal, error) {
			return &domain.Proposal{ID: 1, ProposalID: proposalID, TaxID: "39053344705", Status: domain.StatusDraft}, nil
		},
	}
	rec := doChangeStatus(t, newStatusHandler(repo), map[string]string{"status": "in_review"})
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var dto uc.ProposalDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.Status != string(domain.StatusInReview) {
		t.Fatalf("dto status = %s", dto.Status)
	}
}

func TestChangeStatus_Conflict(t *testing.T) {
	repo := &proposalmock.Repo{
		GetByProposalIDForUpdateFn: func(ctx context.Context, proposalID string) (*domain.Proposal, error) {
			return &domain.Proposal{ID: 1, ProposalID: proposalID, TaxID: "39053344705", Status: domain.StatusDraft}, nil
		},
		ExistsActiveReviewFn: func(ctx context.Context, taxID string, excludeID uint64) (bool, error) {
			return true, nil
		},
	}
	rec := doChangeStatus(t, newStatusHandler(repo), map[string]string{"status": "in_review"})
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestChangeStatus_IllegalTransition(t *testing.T) {
	repo := &proposalmock.Repo{
		GetByProposalIDForUpdateFn: func(ctx context.Context, proposalID string) (*domain.Proposal, error) {
			return &domain.Proposal{ID: 1, ProposalID: proposalID, TaxID: "39053344705", Status: domain.StatusApproved}, nil
		},
	}
	rec := doChangeStatus(t, newStatusHandler(repo), map[string]string{"status": "cancelled"})
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestChangeStatus_UnknownStatus(t *testing.T) {
	rec := doChangeStatus(t, newStatusHandler(&proposalmock.Repo{}), map[string]string{"status": "done"})
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestChangeStatus_MissingStatus(t *testing.T) {
	rec := doChangeStatus(t, newStatusHandler(&proposalmock.Repo{}), map[string]string{})
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
