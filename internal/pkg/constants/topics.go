package constants

// NSQ topics for committed fleet events. The configured topic prefix is
// prepended at publish time.
const (
	TopicVehicleEvents     = "vehicle-events"
	TopicDriverEvents      = "driver-events"
	TopicTripEvents        = "trip-events"
	TopicMaintenanceEvents = "maintenance-events"
	TopicFuelEvents        = "fuel-events"
)
