package config

import (
	"strings"
	"time"
)

// DefaultUsersSourceURL is the collaborator endpoint serving the user collection.
const DefaultUsersSourceURL = "https://dummyjson.com/users"

// Config holds the service configuration
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// UsersSourceURL is fetched exactly once at startup. Load falls back to
	// DefaultUsersSourceURL when unset or blank.
	UsersSourceURL string `env:"USERS_SOURCE_URL"`

	// UsersSourceTimeout of 0 disables the client timeout.
	UsersSourceTimeout time.Duration `env:"USERS_SOURCE_TIMEOUT" envDefault:"30s"`

	AllowedOrigins    string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	DisplayLabelsPath string `env:"DISPLAY_LABELS_PATH"`
	RabbitMQURL       string `env:"RABBITMQ_URL"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the service configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.UsersSourceURL = strings.TrimSpace(cfg.UsersSourceURL)
	if cfg.UsersSourceURL == "" {
		cfg.UsersSourceURL = DefaultUsersSourceURL
	}
	return cfg, nil
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
