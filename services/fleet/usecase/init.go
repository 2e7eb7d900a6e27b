package usecase

import (
	"time"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet"
	"github.com/fleetflow/fleetflow/services/fleet/repository"
)

// fleetUC implements the fleet.FleetUC interface. All invariants across
// vehicles, drivers and trips are enforced here; the store only provides
// atomicity.
type fleetUC struct {
	cfg   *models.Config
	store *repository.Store
	now   func() time.Time
}

// NewFleetUC creates a new fleet use case
func NewFleetUC(cfg *models.Config, store *repository.Store) fleet.FleetUC {
	return &fleetUC{
		cfg:   cfg,
		store: store,
		now:   models.Now,
	}
}
