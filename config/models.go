package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Telegram TelegramConfig `mapstructure:"telegram"`

	// Routing holds the repository→chat overrides discovered from the
	// environment at startup; immutable afterwards.
	Routing RoutingConfig `mapstructure:"-"`
}

// Validate ensures the server can bind. Credential presence is deliberately
// not checked here: a missing secret or bot token degrades to deterministic
// failure at the point of use, logged there.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Telegram.APIBaseURL == "" {
		return errors.New("telegram.api_base_url is required")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// WebhookConfig carries the shared GitHub webhook secret.
type WebhookConfig struct {
	Secret string `mapstructure:"secret"`
}

// TelegramConfig describes the Bot API connection.
type TelegramConfig struct {
	BotToken       string        `mapstructure:"bot_token"`
	DefaultChatID  string        `mapstructure:"default_chat_id"`
	APIBaseURL     string        `mapstructure:"api_base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// RoutingConfig maps repository keys to chat identifiers.
type RoutingConfig struct {
	// Overrides is keyed by the repository full name with "/" folded to "_",
	// matching the REPO_<name>_CHAT_ID environment naming.
	Overrides map[string]string
}
