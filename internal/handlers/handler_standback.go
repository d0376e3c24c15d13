package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/harborfleet/crewdesk/internal/core/ports/services"
	"github.com/harborfleet/crewdesk/internal/dto"
)

// standBackHandler handles HTTP requests related to the stand-back ledger.
type standBackHandler struct {
	standBackService portssvc.StandBackSvc
}

func newStandBackHandler(ss portssvc.StandBackSvc) *standBackHandler {
	return &standBackHandler{standBackService: ss}
}

// registerStandBackRoutes registers routes related to the stand-back
// rest-day ledger.
func registerStandBackRoutes(rg *gin.RouterGroup, standBackService portssvc.StandBackSvc) {
	h := newStandBackHandler(standBackService)

	standback := rg.Group("/standback")
	{
		standback.POST("", h.accrue)
		standback.POST("/:record_id/repayments", h.repay)
		standback.POST("/:record_id/complete", h.complete)
	}
}

// accrue godoc
// @Summary Accrue stand-back days
// @Description Adds owed rest days for a person, merging into their open record if one exists.
// @Tags standback
// @Accept json
// @Produce json
// @Param accrual body dto.AccrueStandBackRequest true "Accrual details"
// @Success 201 {object} dto.StandBackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /standback [post]
func (h *standBackHandler) accrue(c *gin.Context) {
	var req dto.AccrueStandBackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	rec, warning, err := h.standBackService.AccrueStandBack(c.Request.Context(),
		req.PersonID, req.RequiredDays, req.PeriodNote, actor)
	if err != nil {
		respondError(c, err, "Failed to accrue stand-back days")
		return
	}

	resp := dto.ToStandBackResponse(*rec)
	resp.Warning = warning
	c.JSON(http.StatusCreated, resp)
}

// repay godoc
// @Summary Repay stand-back days
// @Description Applies days against a record's remaining balance. Over-repayment is clamped, not rejected.
// @Tags standback
// @Accept json
// @Produce json
// @Param record_id path string true "Record ID"
// @Param repayment body dto.RepayStandBackRequest true "Repayment details"
// @Success 200 {object} dto.StandBackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /standback/{record_id}/repayments [post]
func (h *standBackHandler) repay(c *gin.Context) {
	var req dto.RepayStandBackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	rec, warning, err := h.standBackService.RepayStandBack(c.Request.Context(),
		c.Param("record_id"), req.Days, req.Note, actor)
	if err != nil {
		respondError(c, err, "Failed to repay stand-back days")
		return
	}

	resp := dto.ToStandBackResponse(*rec)
	resp.Warning = warning
	c.JSON(http.StatusOK, resp)
}

// complete godoc
// @Summary Complete a stand-back record
// @Description Closes a record by administrative override regardless of remaining balance.
// @Tags standback
// @Produce json
// @Param record_id path string true "Record ID"
// @Success 200 {object} dto.StandBackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /standback/{record_id}/complete [post]
func (h *standBackHandler) complete(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	rec, warning, err := h.standBackService.CompleteStandBack(c.Request.Context(), c.Param("record_id"), actor)
	if err != nil {
		respondError(c, err, "Failed to complete stand-back record")
		return
	}

	resp := dto.ToStandBackResponse(*rec)
	resp.Warning = warning
	c.JSON(http.StatusOK, resp)
}
