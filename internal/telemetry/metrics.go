package telemetry

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all custom metrics for the service
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal metric.Int64Counter
	HTTPDurationMs    metric.Float64Histogram

	// Users source metrics
	UsersFetchTotal      metric.Int64Counter
	UsersFetchDurationMs metric.Float64Histogram
	UsersLoaded          metric.Int64Gauge

	// Projection metrics
	ProjectionTotal    metric.Int64Counter
	ProjectionFiltered metric.Int64Histogram
}

// InitMetrics initializes all custom metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("github.com/WailSalutem-Health-Care/employee-directory")

	httpRequestsTotal, err := meter.Int64Counter(
		"http_server_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	httpDurationMs, err := meter.Float64Histogram(
		"http_server_duration_milliseconds",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	usersFetchTotal, err := meter.Int64Counter(
		"users_source_fetch_total",
		metric.WithDescription("Total number of users source fetches by outcome"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		return nil, err
	}

	usersFetchDurationMs, err := meter.Float64Histogram(
		"users_source_fetch_duration_milliseconds",
		metric.WithDescription("Users source fetch duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	usersLoaded, err := meter.Int64Gauge(
		"directory_users_loaded",
		metric.WithDescription("Number of user records held in memory"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	projectionTotal, err := meter.Int64Counter(
		"directory_projection_total",
		metric.WithDescription("Total number of directory projections"),
		metric.WithUnit("{projection}"),
	)
	if err != nil {
		return nil, err
	}

	projectionFiltered, err := meter.Int64Histogram(
		"directory_projection_filtered_records",
		metric.WithDescription("Records left after filtering per projection"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	log.Println("✓ Custom metrics initialized")

	return &Metrics{
		HTTPRequestsTotal:    httpRequestsTotal,
		HTTPDurationMs:       httpDurationMs,
		UsersFetchTotal:      usersFetchTotal,
		UsersFetchDurationMs: usersFetchDurationMs,
		UsersLoaded:          usersLoaded,
		ProjectionTotal:      projectionTotal,
		ProjectionFiltered:   projectionFiltered,
	}, nil
}

// RecordHTTPRequest records an HTTP request metric
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, durationMs float64) {
	attrs := []attribute.KeyValue{
		attribute.String("http_method", method),
		attribute.String("http_route", route),
		attribute.Int("http_status_code", statusCode),
	}

	m.HTTPRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.HTTPDurationMs.Record(ctx, durationMs, metric.WithAttributes(attrs...))
}

// RecordUsersFetch records the outcome of the users source fetch
func (m *Metrics) RecordUsersFetch(ctx context.Context, outcome string, durationMs float64, records int) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))

	m.UsersFetchTotal.Add(ctx, 1, attrs)
	m.UsersFetchDurationMs.Record(ctx, durationMs, attrs)
	m.UsersLoaded.Record(ctx, int64(records))
}

// RecordProjection records a directory projection
func (m *Metrics) RecordProjection(ctx context.Context, sortKey string, filtered int) {
	if sortKey == "" {
		sortKey = "none"
	}
	attrs := metric.WithAttributes(attribute.String("sort_key", sortKey))

	m.ProjectionTotal.Add(ctx, 1, attrs)
	m.ProjectionFiltered.Record(ctx, int64(filtered), attrs)
}
