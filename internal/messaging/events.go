package messaging

import (
	"time"

	"github.com/google/uuid"
)

// ServiceName identifies this service on published events.
const ServiceName = "employee-directory"

// Event routing keys as constants
const (
	EventDirectoryLoaded     = "directory.loaded"
	EventDirectoryLoadFailed = "directory.load_failed"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// ID returns the event id; it doubles as the AMQP message id.
func (e BaseEvent) ID() string {
	return e.EventID
}

// DirectoryLoadedEvent is published once the user collection has been fetched
type DirectoryLoadedEvent struct {
	BaseEvent
	Data DirectoryLoadedData `json:"data"`
}

type DirectoryLoadedData struct {
	RecordCount int       `json:"record_count"`
	LoadedAt    time.Time `json:"loaded_at"`
}

// DirectoryLoadFailedEvent is published when the collection fetch fails
type DirectoryLoadFailedEvent struct {
	BaseEvent
	Data DirectoryLoadFailedData `json:"data"`
}

type DirectoryLoadFailedData struct {
	Outcome  string    `json:"outcome"` // load_failure or decode_failure
	Reason   string    `json:"reason"`
	FailedAt time.Time `json:"failed_at"`
}

// NewBaseEvent creates a base event with common fields
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		ServiceName: ServiceName,
	}
}

// NewDirectoryLoadedEvent builds a directory.loaded event
func NewDirectoryLoadedEvent(recordCount int) DirectoryLoadedEvent {
	base := NewBaseEvent(EventDirectoryLoaded)
	return DirectoryLoadedEvent{
		BaseEvent: base,
		Data: DirectoryLoadedData{
			RecordCount: recordCount,
			LoadedAt:    base.Timestamp,
		},
	}
}

// NewDirectoryLoadFailedEvent builds a directory.load_failed event
func NewDirectoryLoadFailedEvent(outcome, reason string) DirectoryLoadFailedEvent {
	base := NewBaseEvent(EventDirectoryLoadFailed)
	return DirectoryLoadFailedEvent{
		BaseEvent: base,
		Data: DirectoryLoadFailedData{
			Outcome:  outcome,
			Reason:   reason,
			FailedAt: base.Timestamp,
		},
	}
}
