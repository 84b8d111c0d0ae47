package directory

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/WailSalutem-Health-Care/employee-directory/internal/messaging"
)

// MetricsRecorder records loader and projection metrics
type MetricsRecorder interface {
	RecordUsersFetch(ctx context.Context, outcome string, durationMs float64, records int)
	RecordProjection(ctx context.Context, sortKey string, filtered int)
}

// Fetch outcomes reported to metrics and events.
const (
	OutcomeSuccess       = "success"
	OutcomeLoadFailure   = "load_failure"
	OutcomeDecodeFailure = "decode_failure"
)

// Loader owns the base collection. It fetches from its Source at most once;
// the records are replaced only on success and never mutated afterwards.
type Loader struct {
	source    Source
	publisher messaging.PublisherInterface
	metrics   MetricsRecorder

	once    sync.Once
	mu      sync.RWMutex
	records []UserRecord
}

// NewLoader creates a loader. publisher and metrics may be nil.
func NewLoader(source Source, publisher messaging.PublisherInterface, metrics MetricsRecorder) *Loader {
	return &Loader{
		source:    source,
		publisher: publisher,
		metrics:   metrics,
	}
}

// Load performs the single collaborator fetch. Later calls return
// immediately. Failures are logged and swallowed: the records keep their
// previous value.
func (l *Loader) Load(ctx context.Context) {
	l.once.Do(func() {
		l.load(ctx)
	})
}

func (l *Loader) load(ctx context.Context) {
	start := time.Now()
	records, err := l.source.FetchUsers(ctx)
	durationMs := float64(time.Since(start).Microseconds()) / 1000

	if err != nil {
		outcome := OutcomeLoadFailure
		if errors.Is(err, ErrDecodeFailure) {
			outcome = OutcomeDecodeFailure
		}
		log.Printf("Failed to load users: %v", err)
		l.recordFetch(ctx, outcome, durationMs, 0)
		l.publish(ctx, messaging.EventDirectoryLoadFailed, messaging.NewDirectoryLoadFailedEvent(outcome, err.Error()))
		return
	}

	l.mu.Lock()
	l.records = records
	l.mu.Unlock()

	log.Printf("✓ Loaded %d users in %.1fms", len(records), durationMs)
	l.recordFetch(ctx, OutcomeSuccess, durationMs, len(records))
	l.publish(ctx, messaging.EventDirectoryLoaded, messaging.NewDirectoryLoadedEvent(len(records)))
}

// Records returns the loaded collection in collaborator order. Callers must
// treat the slice as read-only.
func (l *Loader) Records() []UserRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.records
}

// Discard drops the loaded collection on shutdown.
func (l *Loader) Discard() {
	l.mu.Lock()
	l.records = nil
	l.mu.Unlock()
}

func (l *Loader) recordFetch(ctx context.Context, outcome string, durationMs float64, records int) {
	if l.metrics != nil {
		l.metrics.RecordUsersFetch(ctx, outcome, durationMs, records)
	}
}

func (l *Loader) publish(ctx context.Context, routingKey string, event interface{}) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.Publish(ctx, routingKey, event); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
