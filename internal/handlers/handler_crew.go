package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harborfleet/crewdesk/internal/core/domain"
	portssvc "github.com/harborfleet/crewdesk/internal/core/ports/services"
	"github.com/harborfleet/crewdesk/internal/dto"
)

// crewHandler handles HTTP requests related to crew members.
type crewHandler struct {
	crewService portssvc.CrewSvc
}

func newCrewHandler(cs portssvc.CrewSvc) *crewHandler {
	return &crewHandler{crewService: cs}
}

// registerCrewRoutes registers routes related to crew members and their
// rotation state.
func registerCrewRoutes(rg *gin.RouterGroup, crewService portssvc.CrewSvc) {
	h := newCrewHandler(crewService)

	crew := rg.Group("/crew")
	{
		crew.POST("", h.onboardCrew)
		crew.POST("/:person_id/assign", h.assignCrew)
		crew.POST("/:person_id/unassign", h.unassignCrew)
		crew.POST("/:person_id/sick", h.markSick)
		crew.POST("/:person_id/out-of-service", h.markOutOfService)
		crew.POST("/:person_id/reactivate", h.reactivateCrew)
		crew.DELETE("/:person_id", h.terminateCrew)
	}
}

// onboardCrew godoc
// @Summary Onboard a crew member
// @Description Registers a new crew member. Rotation fields are optional.
// @Tags crew
// @Accept json
// @Produce json
// @Param crew body dto.OnboardCrewRequest true "Crew member details"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Referenced ship not found"
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /crew [post]
func (h *crewHandler) onboardCrew(c *gin.Context) {
	var req dto.OnboardCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	person, warning, err := h.crewService.OnboardCrew(c.Request.Context(), portssvc.OnboardCrewParams{
		Name:      req.Name,
		Position:  req.Position,
		StartDate: req.StartDate,
		Regime:    domain.Regime(req.Regime),
		ShipID:    req.ShipID,
	}, actor)
	if err != nil {
		respondError(c, err, "Failed to onboard crew member")
		return
	}

	resp := dto.ToPersonResponse(*person)
	resp.Warning = warning
	c.JSON(http.StatusCreated, resp)
}

// assignCrew godoc
// @Summary Assign a crew member to a ship
// @Description Puts a person on a ship and starts a rotation cycle.
// @Tags crew
// @Accept json
// @Produce json
// @Param person_id path string true "Person ID"
// @Param assignment body dto.AssignCrewRequest true "Assignment details"
// @Success 200 {object} dto.PersonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /crew/{person_id}/assign [post]
func (h *crewHandler) assignCrew(c *gin.Context) {
	var req dto.AssignCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	person, warning, err := h.crewService.AssignCrewToShip(c.Request.Context(),
		c.Param("person_id"), req.ShipID, req.StartDate, domain.Regime(req.Regime), actor)
	if err != nil {
		respondError(c, err, "Failed to assign crew member")
		return
	}

	resp := dto.ToPersonResponse(*person)
	resp.Warning = warning
	c.JSON(http.StatusOK, resp)
}

// unassignCrew godoc
// @Summary Unassign a crew member
// @Description Takes a person off their ship and out of rotation.
// @Tags crew
// @Produce json
// @Param person_id path string true "Person ID"
// @Success 200 {object} dto.PersonResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /crew/{person_id}/unassign [post]
func (h *crewHandler) unassignCrew(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	person, warning, err := h.crewService.UnassignCrew(c.Request.Context(), c.Param("person_id"), actor)
	if err != nil {
		respondError(c, err, "Failed to unassign crew member")
		return
	}

	resp := dto.ToPersonResponse(*person)
	resp.Warning = warning
	c.JSON(http.StatusOK, resp)
}

// markSick godoc
// @Summary Mark a crew member sick
// @Description Sets the sick override; rotation derivation is suspended.
// @Tags crew
// @Produce json
// @Param person_id path string true "Person ID"
// @Success 200 {object} dto.PersonResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /crew/{person_id}/sick [post]
func (h *crewHandler) markSick(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	person, warning, err := h.crewService.MarkCrewSick(c.Request.Context(), c.Param("person_id"), actor)
	if err != nil {
		respondError(c, err, "Failed to mark crew member sick")
		return
	}

	resp := dto.ToPersonResponse(*person)
	resp.Warning = warning
	c.JSON(http.StatusOK, resp)
}

// markOutOfService godoc
// @Summary Mark a crew member out of service
// @Description Sets the out-of-service override; rotation derivation is suspended.
// @Tags crew
// @Produce json
// @Param person_id path string true "Person ID"
// @Success 200 {object} dto.PersonResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /crew/{person_id}/out-of-service [post]
func (h *crewHandler) markOutOfService(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	person, warning, err := h.crewService.MarkCrewOutOfService(c.Request.Context(), c.Param("person_id"), actor)
	if err != nil {
		respondError(c, err, "Failed to mark crew member out of service")
		return
	}

	resp := dto.ToPersonResponse(*person)
	resp.Warning = warning
	c.JSON(http.StatusOK, resp)
}

// reactivateCrew godoc
// @Summary Reactivate a crew member
// @Description Returns a sick or out-of-service person to the rotation with a fresh cycle.
// @Tags crew
// @Accept json
// @Produce json
// @Param person_id path string true "Person ID"
// @Param reactivation body dto.ReactivateCrewRequest true "Fresh rotation cycle"
// @Success 200 {object} dto.PersonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /crew/{person_id}/reactivate [post]
func (h *crewHandler) reactivateCrew(c *gin.Context) {
	var req dto.ReactivateCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	person, warning, err := h.crewService.ReactivateCrew(c.Request.Context(),
		c.Param("person_id"), req.StartDate, domain.Regime(req.Regime), actor)
	if err != nil {
		respondError(c, err, "Failed to reactivate crew member")
		return
	}

	resp := dto.ToPersonResponse(*person)
	resp.Warning = warning
	c.JSON(http.StatusOK, resp)
}

// terminateCrew godoc
// @Summary Terminate a crew member
// @Description Archives the person and closes out their open stand-back record.
// @Tags crew
// @Produce json
// @Param person_id path string true "Person ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /crew/{person_id} [delete]
func (h *crewHandler) terminateCrew(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	warning, err := h.crewService.TerminateCrew(c.Request.Context(), c.Param("person_id"), actor)
	if err != nil {
		respondError(c, err, "Failed to terminate crew member")
		return
	}

	body := gin.H{"status": "terminated"}
	if warning != "" {
		body["warning"] = warning
	}
	c.JSON(http.StatusOK, body)
}
