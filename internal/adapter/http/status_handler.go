package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"propostas-backend/internal/usecase/lifecycle"
)

type StatusHandler struct{ uc *lifecycle.Usecase }

func NewStatusHandler(u *lifecycle.Usecase) *StatusHandler { return &StatusHandler{uc: u} }

type changeStatusReq struct {
	Status string `json:"status" validate:"required"`
}

func (h *StatusHandler) ChangeStatus(c echo.Context) error {
	proposalID := c.Param("proposal_id")
	if proposalID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing proposal_id path param"})
	}
	var req changeStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Transition(c.Request().Context(), proposalID, req.Status)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
