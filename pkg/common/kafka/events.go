package kafkacommon

import (
	"time"

	"github.com/google/uuid"
)

// FleetCloudEvent is the envelope for fleet lifecycle events
type FleetCloudEvent struct {
	ID          string      `json:"id"`
	Source      string      `json:"source"`
	SpecVersion string      `json:"specversion"`
	Type        string      `json:"type"`
	Subject     string      `json:"subject"`
	Time        string      `json:"time"`
	Data        interface{} `json:"data"`
}

// Event types emitted by the fleet services
const (
	EventTypeTaskEnqueued   = "com.fleetdesk.task.enqueued"
	EventTypeTaskCompleted  = "com.fleetdesk.task.completed"
	EventTypeDeviceEnrolled = "com.fleetdesk.device.enrolled"
)

// CreateFleetEvent creates an event with the standard envelope fields set
func CreateFleetEvent(source string, eventType string, subject string, payload interface{}) FleetCloudEvent {
	return FleetCloudEvent{
		ID:          uuid.New().String(),
		Source:      source,
		SpecVersion: "1.0",
		Type:        eventType,
		Subject:     subject,
		Time:        time.Now().Format(time.RFC3339),
		Data:        payload,
	}
}
