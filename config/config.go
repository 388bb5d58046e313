// Package config loads the bootstrap YAML configuration an application
// embedding this library needs to construct a helix.Client, a
// webhook.Handler, and a storage/postgres.Store. It is narrowed from
// the teacher's internal/config/config.go down to this library's own
// concerns — outbound chat/YouTube settings are gone; client-id,
// secrets, and the Postgres DSN fields remain.
package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the top-level document.
type Config struct {
	Twitch   TwitchConfig   `yaml:"twitch"`
	Database DatabaseConfig `yaml:"database"`
	Webhook  WebhookConfig  `yaml:"webhook"`
}

// TwitchConfig carries the app credentials used to build a
// helix.TokenSource and to authenticate the app access token request.
type TwitchConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

// DatabaseConfig configures the Postgres connection used by
// storage/postgres.Connect.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// WebhookConfig configures the EventSub webhook endpoint.
type WebhookConfig struct {
	CallbackBaseURL string `yaml:"callback_base_url"`
	Secret          string `yaml:"secret"`
}

// Load reads and parses a YAML configuration file.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
