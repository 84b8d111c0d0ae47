package telemetry

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/sdk/trace"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "employee-directory" {
		t.Errorf("Expected service name employee-directory, got %s", cfg.ServiceName)
	}
	if cfg.MetricsInterval != 30*time.Second {
		t.Errorf("Expected 30s metrics interval, got %s", cfg.MetricsInterval)
	}
}

func TestLoadConfigInvalidInterval(t *testing.T) {
	t.Setenv("OTEL_METRICS_EXPORT_INTERVAL", "often")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for invalid interval")
	}
}

func TestSampler(t *testing.T) {
	tests := map[string]string{
		"always_on":    trace.AlwaysSample().Description(),
		"always_off":   trace.NeverSample().Description(),
		"traceidratio": trace.TraceIDRatioBased(0.1).Description(),
		"bogus":        trace.AlwaysSample().Description(),
	}
	for name, want := range tests {
		if got := sampler(name).Description(); got != want {
			t.Errorf("sampler(%q) = %s, want %s", name, got, want)
		}
	}
}

func TestNilProviderShutdown(t *testing.T) {
	var p *Provider
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Expected nil provider shutdown to succeed, got %v", err)
	}
}
