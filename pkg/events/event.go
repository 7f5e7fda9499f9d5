package events

import "time"

// Known event type codes published on the bus.
const (
	TypeDiarySaved   = "DIARY_SAVED"
	TypeDiaryDeleted = "DIARY_DELETED"
	TypeGoalSaved    = "GOAL_SAVED"
	TypeGuestStarted = "GUEST_SESSION_STARTED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "DIARY_SAVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation the services construct inline.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
