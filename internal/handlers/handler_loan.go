package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/harborfleet/crewdesk/internal/core/ports/services"
	"github.com/harborfleet/crewdesk/internal/dto"
)

// loanHandler handles HTTP requests related to crew loans.
type loanHandler struct {
	loanService portssvc.LoanSvc
}

func newLoanHandler(ls portssvc.LoanSvc) *loanHandler {
	return &loanHandler{loanService: ls}
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvc) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.POST("", h.createLoan)
		loans.POST("/:loan_id/payments", h.recordPayment)
	}
}

// createLoan godoc
// @Summary Grant a loan
// @Description Grants a loan to a crew member.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	loan, warning, err := h.loanService.CreateLoan(c.Request.Context(), req.PersonID, req.Amount, req.Note, actor)
	if err != nil {
		respondError(c, err, "Failed to create loan")
		return
	}

	resp := dto.ToLoanResponse(*loan)
	resp.Warning = warning
	c.JSON(http.StatusCreated, resp)
}

// recordPayment godoc
// @Summary Record a loan payment
// @Description Applies an instalment against an open loan. A payment exceeding the remaining balance is rejected.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan_id path string true "Loan ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{loan_id}/payments [post]
func (h *loanHandler) recordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	loan, warning, err := h.loanService.RecordLoanPayment(c.Request.Context(), c.Param("loan_id"), req.Amount, req.Note, actor)
	if err != nil {
		respondError(c, err, "Failed to record loan payment")
		return
	}

	resp := dto.ToLoanResponse(*loan)
	resp.Warning = warning
	c.JSON(http.StatusOK, resp)
}
