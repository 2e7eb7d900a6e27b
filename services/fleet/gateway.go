package fleet

import (
	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// EventPublisher forwards committed fleet events to an external transport.
// The store itself has no knowledge of the transport; the publisher is
// attached as a store subscriber at wiring time.
type EventPublisher interface {
	PublishFleetEvent(ev models.FleetEvent)
}
