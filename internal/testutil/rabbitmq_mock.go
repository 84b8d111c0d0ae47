package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/WailSalutem-Health-Care/employee-directory/internal/messaging"
)

// PublishedEvent represents an event that was handed to the publisher
type PublishedEvent struct {
	RoutingKey string
	EventData  interface{}
	RawJSON    []byte
}

// MockPublisher records events in memory instead of talking to RabbitMQ
type MockPublisher struct {
	mu     sync.RWMutex
	events []PublishedEvent

	// Fail makes every Publish call return an error.
	Fail bool
}

// Ensure MockPublisher implements messaging.PublisherInterface
var _ messaging.PublisherInterface = (*MockPublisher)(nil)

// NewMockPublisher creates a new mock RabbitMQ publisher
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// Publish stores the event after marshalling it like the real publisher
func (m *MockPublisher) Publish(ctx context.Context, routingKey string, eventData interface{}) error {
	if m.Fail {
		return errors.New("mock publisher failure")
	}

	jsonData, err := json.Marshal(eventData)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, PublishedEvent{
		RoutingKey: routingKey,
		EventData:  eventData,
		RawJSON:    jsonData,
	})
	return nil
}

// Close is a no-op for mock publisher
func (m *MockPublisher) Close() error {
	return nil
}

// EventsByKey returns all events with the specified routing key
func (m *MockPublisher) EventsByKey(routingKey string) []PublishedEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var filtered []PublishedEvent
	for _, event := range m.events {
		if event.RoutingKey == routingKey {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// EventCount returns the total number of events published
func (m *MockPublisher) EventCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

// AssertEventCount asserts the exact number of events with the given routing key
func (m *MockPublisher) AssertEventCount(t *testing.T, routingKey string, expected int) {
	t.Helper()

	if count := len(m.EventsByKey(routingKey)); count != expected {
		t.Errorf("Expected %d events with routing key '%s', got %d", expected, routingKey, count)
	}
}
