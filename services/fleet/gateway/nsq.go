package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/fleetflow/fleetflow/internal/pkg/constants"
	"github.com/fleetflow/fleetflow/internal/pkg/logger"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	nsqpkg "github.com/fleetflow/fleetflow/internal/pkg/nsq"
	"github.com/fleetflow/fleetflow/internal/pkg/retry"
)

const publishTimeout = 10 * time.Second

// FleetGW publishes committed fleet events to NSQ, one topic per entity
// kind. It is attached to the store as a subscriber, so it only ever sees
// events whose command has committed. Transient publish failures are
// retried with backoff; an event still undeliverable after that is logged
// and dropped, never failing the command that produced it.
type FleetGW struct {
	producer *nsqpkg.Producer
	prefix   string
	retrier  *retry.Retrier
}

// NewFleetGW creates a new fleet gateway
func NewFleetGW(producer *nsqpkg.Producer, topicPrefix string) *FleetGW {
	return &FleetGW{
		producer: producer,
		prefix:   topicPrefix,
		retrier:  retry.New(retry.DefaultConfig()),
	}
}

// PublishFleetEvent forwards one committed event to its topic
func (gw *FleetGW) PublishFleetEvent(ev models.FleetEvent) {
	topic := gw.topicFor(ev.Type)
	if topic == "" {
		logger.Warn("no topic for event type", logger.String("type", string(ev.Type)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err := gw.retrier.Execute(ctx, func(context.Context) error {
		return gw.producer.Publish(topic, ev)
	})
	if err != nil {
		logger.Error("dropping fleet event after retries",
			logger.String("topic", topic),
			logger.String("type", string(ev.Type)),
			logger.String("entity_id", ev.EntityID),
			logger.Err(err))
	}
}

func (gw *FleetGW) topicFor(t models.FleetEventType) string {
	var topic string
	switch {
	case strings.HasPrefix(string(t), "vehicle."):
		topic = constants.TopicVehicleEvents
	case strings.HasPrefix(string(t), "driver."):
		topic = constants.TopicDriverEvents
	case strings.HasPrefix(string(t), "trip."):
		topic = constants.TopicTripEvents
	case strings.HasPrefix(string(t), "maintenance."):
		topic = constants.TopicMaintenanceEvents
	case strings.HasPrefix(string(t), "fuel."):
		topic = constants.TopicFuelEvents
	default:
		return ""
	}
	if gw.prefix != "" {
		return gw.prefix + "." + topic
	}
	return topic
}
