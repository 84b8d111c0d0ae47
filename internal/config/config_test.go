package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("Expected HTTP addr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.UsersSourceURL != DefaultUsersSourceURL {
		t.Errorf("Expected users source %s, got %s", DefaultUsersSourceURL, cfg.UsersSourceURL)
	}
	if cfg.UsersSourceTimeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %s", cfg.UsersSourceTimeout)
	}
	if cfg.RabbitMQURL != "" {
		t.Errorf("Expected empty RabbitMQ URL, got %s", cfg.RabbitMQURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("USERS_SOURCE_URL", "  http://collaborator.local/users  ")
	t.Setenv("USERS_SOURCE_TIMEOUT", "0s")
	t.Setenv("HTTP_ADDR", ":9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UsersSourceURL != "http://collaborator.local/users" {
		t.Errorf("Expected trimmed users source, got %q", cfg.UsersSourceURL)
	}
	if cfg.UsersSourceTimeout != 0 {
		t.Errorf("Expected zero timeout, got %s", cfg.UsersSourceTimeout)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("Expected HTTP addr :9090, got %s", cfg.HTTPAddr)
	}
}

func TestLoadBlankUsersSource(t *testing.T) {
	t.Setenv("USERS_SOURCE_URL", "   ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UsersSourceURL != DefaultUsersSourceURL {
		t.Errorf("Expected users source %s, got %s", DefaultUsersSourceURL, cfg.UsersSourceURL)
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("USERS_SOURCE_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestOrigins(t *testing.T) {
	cfg := Config{AllowedOrigins: " http://a.test , ,http://b.test"}

	origins := cfg.Origins()
	if len(origins) != 2 {
		t.Fatalf("Expected 2 origins, got %d: %v", len(origins), origins)
	}
	if origins[0] != "http://a.test" || origins[1] != "http://b.test" {
		t.Errorf("Unexpected origins: %v", origins)
	}
}
