package directory

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/WailSalutem-Health-Care/employee-directory/directory")

// Source fetches the full user collection from the collaborator.
type Source interface {
	FetchUsers(ctx context.Context) ([]UserRecord, error)
}

// Client reads the user collection from the remote collaborator endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a collaborator client. A zero timeout leaves requests
// unbounded.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ensure Client implements Source
var _ Source = (*Client)(nil)

// FetchUsers issues a single GET for the whole collection. No query
// parameters or pagination are sent.
func (c *Client) FetchUsers(ctx context.Context) ([]UserRecord, error) {
	ctx, span := tracer.Start(ctx, "directory.FetchUsers",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", c.endpoint)),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		span.SetStatus(codes.Error, "build request")
		return nil, fmt.Errorf("%w: create request: %v", ErrLoadFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("%w: request: %v", ErrLoadFailure, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("Users source returned %d - %s", resp.StatusCode, string(body))
		span.SetStatus(codes.Error, "unexpected status")
		return nil, fmt.Errorf("%w: unexpected status %d", ErrLoadFailure, resp.StatusCode)
	}

	records, err := DecodeUsers(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("directory.records", len(records)))
	return records, nil
}
