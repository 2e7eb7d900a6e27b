package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetflow/fleetflow/internal/pkg/logger"
	"github.com/fleetflow/fleetflow/internal/utils"
	"github.com/fleetflow/fleetflow/services/fleet"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
)

// SnapshotHandler triggers an on-demand save of the full entity set. It is
// exposed on the internal surface only; the regular schedule is startup
// load and shutdown save.
type SnapshotHandler struct {
	store    *repository.Store
	snapshot fleet.SnapshotStore
}

// NewSnapshotHandler creates a new snapshot HTTP handler
func NewSnapshotHandler(store *repository.Store, snapshot fleet.SnapshotStore) *SnapshotHandler {
	return &SnapshotHandler{store: store, snapshot: snapshot}
}

// SaveSnapshot persists the current entity set through the configured backend
func (h *SnapshotHandler) SaveSnapshot(c echo.Context) error {
	if h.snapshot == nil {
		return utils.BadRequestResponse(c, "No snapshot backend configured")
	}

	snap := h.store.Export()
	if err := h.snapshot.SaveSnapshot(c.Request().Context(), snap); err != nil {
		logger.Error("failed to save snapshot", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to save snapshot")
	}

	logger.Info("snapshot saved",
		logger.Int("vehicles", len(snap.Vehicles)),
		logger.Int("trips", len(snap.Trips)))
	return utils.SuccessResponse(c, http.StatusOK, "Snapshot saved", map[string]interface{}{
		"taken_at": snap.TakenAt,
	})
}
