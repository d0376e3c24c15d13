package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/harborfleet/crewdesk/internal/core/ports/services"
	"github.com/harborfleet/crewdesk/internal/dto"
)

// ReloadRequester queues a snapshot reload. Triggers arriving while a
// reload is pending or in flight collapse into one.
type ReloadRequester interface {
	Wake()
}

// snapshotHandler handles HTTP requests for the merged snapshot view.
type snapshotHandler struct {
	snapshotService portssvc.SnapshotSvc
	reloader        ReloadRequester
}

func newSnapshotHandler(ss portssvc.SnapshotSvc, reloader ReloadRequester) *snapshotHandler {
	return &snapshotHandler{snapshotService: ss, reloader: reloader}
}

// RegisterSnapshotRoutes registers the snapshot read surface and the
// reload trigger.
func RegisterSnapshotRoutes(rg *gin.RouterGroup, snapshotService portssvc.SnapshotSvc, reloader ReloadRequester) {
	h := newSnapshotHandler(snapshotService, reloader)

	rg.GET("/snapshot", h.getSnapshot)
	rg.POST("/reload", h.requestReload)
}

// getSnapshot godoc
// @Summary Get the merged snapshot
// @Description Returns the last published snapshot of ships, crew, loans and stand-back records. Never blocks on IO.
// @Tags snapshot
// @Produce json
// @Success 200 {object} dto.SnapshotResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /snapshot [get]
func (h *snapshotHandler) getSnapshot(c *gin.Context) {
	snap := h.snapshotService.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToSnapshotResponse(snap))
}

// requestReload godoc
// @Summary Request a snapshot reload
// @Description Queues a reload of the snapshot from the stores. Returns immediately; concurrent triggers collapse into a single run.
// @Tags snapshot
// @Produce json
// @Success 202 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reload [post]
func (h *snapshotHandler) requestReload(c *gin.Context) {
	h.reloader.Wake()
	c.JSON(http.StatusAccepted, gin.H{"status": "reload queued"})
}
