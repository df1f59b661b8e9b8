package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	uc "propostas-backend/internal/usecase/proposal"
)

type ProposalHandler struct{ uc *uc.Usecase }

func NewProposalHandler(u *uc.Usecase) *ProposalHandler { return &ProposalHandler{uc: u} }

type createProposalReq struct {
	ApplicantName    string  `json:"applicant_name"    validate:"required,max=255"`
	TaxID            string  `json:"tax_id"            validate:"required,cpf"`
	RequestedAmount  float64 `json:"requested_amount"  validate:"required,gte=1000,lte=50000,dec2"`
	InstallmentCount int     `json:"installment_count" validate:"required,gte=6,lte=60"`
	MonthlyIncome    float64 `json:"monthly_income"    validate:"required,gte=1500,dec2"`
	Notes            string  `json:"notes"             validate:"omitempty,max=2000"`
}

func (h *ProposalHandler) CreateProposal(c echo.Context) error {
	var req createProposalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), uc.CreateProposalInput{
		ApplicantName:    req.ApplicantName,
		TaxID:            req.TaxID,
		RequestedAmount:  req.RequestedAmount,
		InstallmentCount: req.InstallmentCount,
		MonthlyIncome:    req.MonthlyIncome,
		Notes:            req.Notes,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProposalHandler) GetProposal(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("proposal_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProposalHandler) ListProposals(c echo.Context) error {
	in := uc.ListInput{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	}
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			in.Page = n
		}
	}
	if v := c.QueryParam("per_page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			in.PerPage = n
		}
	}
	page, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *ProposalHandler) DeleteProposal(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("proposal_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "proposal deleted"})
}
