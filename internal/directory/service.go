package directory

import (
	"context"
)

type Service struct {
	store   RecordStore
	labels  Labels
	metrics MetricsRecorder
}

func NewService(store RecordStore, labels Labels, metrics MetricsRecorder) *Service {
	return &Service{
		store:   store,
		labels:  labels,
		metrics: metrics,
	}
}

// Project derives the view for state from the current base collection. It
// is recomputed from scratch on every call.
func (s *Service) Project(ctx context.Context, state ViewState) Projection {
	projection := Project(s.store.Records(), state, s.labels)

	if s.metrics != nil {
		s.metrics.RecordProjection(ctx, state.SortKey.Key(), projection.Pagination.TotalRecords)
	}
	return projection
}
