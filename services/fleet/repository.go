package fleet

import (
	"context"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// SnapshotStore is the persistence collaborator. It exchanges the full
// entity set and is only called outside command execution (startup,
// shutdown, explicit trigger).
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context) (*models.FleetSnapshot, error)
	SaveSnapshot(ctx context.Context, snap models.FleetSnapshot) error
}
