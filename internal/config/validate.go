package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the values the binaries cannot start with.
func (c *Config) Validate() error {
	var errs []error

	switch c.Transport.Kind {
	case TransportLocal:
		if c.Transport.SQLitePath == "" {
			errs = append(errs, errors.New("transport.sqlite_path is required for the local transport"))
		}
	case TransportCloudDoc:
	default:
		errs = append(errs, fmt.Errorf("unknown transport.kind %q", c.Transport.Kind))
	}

	if c.Sync.PollInterval <= 0 {
		errs = append(errs, errors.New("sync.poll_interval must be positive"))
	}
	if c.Sync.HeartbeatInterval <= 0 {
		errs = append(errs, errors.New("sync.heartbeat_interval must be positive"))
	}
	if c.Sync.RetryBase <= 0 {
		errs = append(errs, errors.New("sync.retry_base must be positive"))
	}
	if c.Sync.OperationTimeout <= 0 {
		errs = append(errs, errors.New("sync.operation_timeout must be positive"))
	}
	if c.Sync.MaxRetries > 10 {
		errs = append(errs, errors.New("sync.max_retries must not exceed 10"))
	}
	if c.Sync.RoomIDLength < 4 || c.Sync.RoomIDLength > 64 {
		errs = append(errs, errors.New("sync.room_id_length must be between 4 and 64"))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log.level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json", "auto":
	default:
		errs = append(errs, fmt.Errorf("unknown log.format %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// ValidateServer additionally checks the server section.
func (c *Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Server.Address == "" {
		return fmt.Errorf("%w: server.address is required", ErrInvalidConfig)
	}
	if len(c.Server.JWTSecret) < 16 {
		return fmt.Errorf("%w: server.jwt_secret must be at least 16 characters", ErrInvalidConfig)
	}
	if c.Server.TokenTTL <= 0 {
		return fmt.Errorf("%w: server.token_ttl must be positive", ErrInvalidConfig)
	}
	return nil
}

// WriteTOML renders the effective configuration. Durations are written as
// strings so the output can be loaded back with --config. The JWT secret is masked.
func (c *Config) WriteTOML(w io.Writer) error {
	secret := ""
	if c.Server.JWTSecret != "" {
		secret = "********"
	}

	doc := map[string]any{
		"transport": map[string]any{
			"kind":        c.Transport.Kind,
			"sqlite_path": c.Transport.SQLitePath,
			"redis_url":   c.Transport.RedisURL,
			"prefix":      c.Transport.Prefix,
		},
		"sync": map[string]any{
			"poll_interval":      c.Sync.PollInterval.String(),
			"heartbeat_interval": c.Sync.HeartbeatInterval.String(),
			"retry_base":         c.Sync.RetryBase.String(),
			"operation_timeout":  c.Sync.OperationTimeout.String(),
			"max_retries":        c.Sync.MaxRetries,
			"room_id_length":     c.Sync.RoomIDLength,
		},
		"client": map[string]any{
			"db_path":         c.Client.DBPath,
			"server_url":      c.Client.ServerURL,
			"invite_base_url": c.Client.InviteBaseURL,
			"server_identity": c.Client.ServerIdentity,
		},
		"server": map[string]any{
			"address":    c.Server.Address,
			"jwt_secret": secret,
			"db_path":    c.Server.DBPath,
			"token_ttl":  c.Server.TokenTTL.String(),
			"rate_limit": c.Server.RateLimit,
		},
		"log": map[string]any{
			"level":  c.Log.Level,
			"format": c.Log.Format,
		},
	}

	return toml.NewEncoder(w).Encode(doc)
}
