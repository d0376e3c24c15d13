package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/harborfleet/crewdesk/internal/core/ports/services"
	"github.com/harborfleet/crewdesk/internal/dto"
)

// shipHandler handles HTTP requests related to ships.
type shipHandler struct {
	shipService portssvc.ShipSvc
}

func newShipHandler(ss portssvc.ShipSvc) *shipHandler {
	return &shipHandler{shipService: ss}
}

// RegisterShipRoutes registers routes related to the fleet.
func RegisterShipRoutes(rg *gin.RouterGroup, shipService portssvc.ShipSvc) {
	h := newShipHandler(shipService)

	ships := rg.Group("/ships")
	{
		ships.POST("", h.createShip)
		ships.PUT("/:ship_id", h.updateShip)
		ships.DELETE("/:ship_id", h.removeShip)
	}
}

// createShip godoc
// @Summary Register a new ship
// @Description Registers a new vessel in the fleet.
// @Tags ships
// @Accept json
// @Produce json
// @Param ship body dto.CreateShipRequest true "Ship details"
// @Success 201 {object} dto.ShipResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /ships [post]
func (h *shipHandler) createShip(c *gin.Context) {
	var req dto.CreateShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	ship, warning, err := h.shipService.CreateShip(c.Request.Context(), req.Name, req.Capacity, actor)
	if err != nil {
		respondError(c, err, "Failed to create ship")
		return
	}

	resp := dto.ToShipResponse(*ship)
	resp.Warning = warning
	c.JSON(http.StatusCreated, resp)
}

// updateShip godoc
// @Summary Update a ship
// @Description Changes the name or capacity of a vessel.
// @Tags ships
// @Accept json
// @Produce json
// @Param ship_id path string true "Ship ID"
// @Param ship body dto.UpdateShipRequest true "Fields to change"
// @Success 200 {object} dto.ShipResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /ships/{ship_id} [put]
func (h *shipHandler) updateShip(c *gin.Context) {
	var req dto.UpdateShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	ship, warning, err := h.shipService.UpdateShip(c.Request.Context(), c.Param("ship_id"), req.Name, req.Capacity, actor)
	if err != nil {
		respondError(c, err, "Failed to update ship")
		return
	}

	resp := dto.ToShipResponse(*ship)
	resp.Warning = warning
	c.JSON(http.StatusOK, resp)
}

// removeShip godoc
// @Summary Remove a ship
// @Description Archives a vessel. Crew still assigned to it are unassigned first.
// @Tags ships
// @Produce json
// @Param ship_id path string true "Ship ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /ships/{ship_id} [delete]
func (h *shipHandler) removeShip(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	warning, err := h.shipService.RemoveShip(c.Request.Context(), c.Param("ship_id"), actor)
	if err != nil {
		respondError(c, err, "Failed to remove ship")
		return
	}

	body := gin.H{"status": "removed"}
	if warning != "" {
		body["warning"] = warning
	}
	c.JSON(http.StatusOK, body)
}
