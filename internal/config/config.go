// Package config loads the layered chipsync configuration: built-in defaults,
// TOML files, CHIPSYNC_ environment variables and command line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	flag "github.com/spf13/pflag"
)

// EnvPrefix prefixes environment overrides: CHIPSYNC_SYNC__POLL_INTERVAL=5s.
const EnvPrefix = "CHIPSYNC_"

// Transport kinds.
const (
	TransportLocal    = "local"
	TransportCloudDoc = "clouddoc"
)

// Config is the complete configuration of both binaries.
type Config struct {
	Transport TransportConfig `koanf:"transport"`
	Client    ClientConfig    `koanf:"client"`
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Sync      SyncConfig      `koanf:"sync"`
}

// TransportConfig selects the shared transport.
type TransportConfig struct {
	Kind       string `koanf:"kind"`
	SQLitePath string `koanf:"sqlite_path"` // общий файл для local
	RedisURL   string `koanf:"redis_url"`
	Prefix     string `koanf:"prefix"`
}

// SyncConfig tunes the room manager.
type SyncConfig struct {
	PollInterval      time.Duration `koanf:"poll_interval"`
	HeartbeatInterval time.Duration `koanf:"heartbeat_interval"`
	RetryBase         time.Duration `koanf:"retry_base"`
	OperationTimeout  time.Duration `koanf:"operation_timeout"`
	MaxRetries        uint64        `koanf:"max_retries"`
	RoomIDLength      int           `koanf:"room_id_length"`
}

// ClientConfig is used by the CLI.
type ClientConfig struct {
	DBPath        string `koanf:"db_path"`
	ServerURL     string `koanf:"server_url"`
	InviteBaseURL string `koanf:"invite_base_url"`
	// ServerIdentity obtains identities from the server, falling back to the device one
	ServerIdentity bool `koanf:"server_identity"`
}

// ServerConfig is used by the helper server.
type ServerConfig struct {
	Address   string        `koanf:"address"`
	JWTSecret string        `koanf:"jwt_secret"`
	DBPath    string        `koanf:"db_path"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
	RateLimit int           `koanf:"rate_limit"` // identity requests per minute per IP
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // text, json or auto
}

// defaults are loaded first and overridden by every other source.
var defaults = map[string]any{
	"transport.kind":        TransportLocal,
	"transport.sqlite_path": "chipsync-shared.db",
	"transport.redis_url":   "redis://localhost:6379/0",
	"transport.prefix":      "chipsync",

	"sync.poll_interval":      "3s",
	"sync.heartbeat_interval": "10s",
	"sync.retry_base":         "2s",
	"sync.operation_timeout":  "10s",
	"sync.max_retries":        3,
	"sync.room_id_length":     8,

	"client.db_path":         "chipsync.db",
	"client.server_url":      "http://localhost:8080",
	"client.invite_base_url": "http://localhost:8080/",
	"client.server_identity": false,

	"server.address":    ":8080",
	"server.jwt_secret": "",
	"server.db_path":    "chipsync-server.db",
	"server.token_ttl":  "24h",
	"server.rate_limit": 30,

	"log.level":  "info",
	"log.format": "auto",
}

// NewFlagSet returns the flags shared by both binaries. Flag names are
// configuration keys so that posflag can merge them directly.
func NewFlagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.StringSlice("config", nil, "Path to one or more TOML config files to load in order")
	f.Bool("version", false, "Show build version")
	f.String("log.level", "info", "Log level: debug, info, warn, error")
	f.String("log.format", "auto", "Log format: text, json or auto")
	return f
}

// AddClientFlags registers the flags of the chipsync CLI.
func AddClientFlags(f *flag.FlagSet) {
	f.String("transport.kind", TransportLocal, "Transport: local or clouddoc")
	f.String("transport.sqlite_path", "chipsync-shared.db", "Shared SQLite file of the local transport")
	f.String("transport.redis_url", "redis://localhost:6379/0", "Redis URL of the clouddoc transport")
	f.String("client.db_path", "chipsync.db", "Path to the local database")
	f.String("client.server_url", "http://localhost:8080", "Server URL")
	f.Duration("sync.poll_interval", 3*time.Second, "How often the room version is polled")
}

// AddServerFlags registers the flags of the chipsync server.
func AddServerFlags(f *flag.FlagSet) {
	f.String("server.address", ":8080", "Listen address")
	f.String("server.db_path", "chipsync-server.db", "Path to the server database")
	f.String("transport.kind", TransportLocal, "Transport: local or clouddoc")
	f.String("transport.sqlite_path", "chipsync-shared.db", "Shared SQLite file of the local transport")
	f.String("transport.redis_url", "redis://localhost:6379/0", "Redis URL of the clouddoc transport")
}

// Load parses args into f and merges every configuration source.
// Returns flag.ErrHelp when help was requested.
func Load(f *flag.FlagSet, args []string) (*Config, error) {
	if err := f.Parse(args); err != nil {
		return nil, err
	}

	ko := koanf.New(".")

	if err := ko.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	files, _ := f.GetStringSlice("config")
	for _, path := range files {
		if err := ko.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := ko.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	// Флаги, не заданные явно, не перетирают значения из файлов и окружения
	if err := ko.Load(posflag.Provider(f, ".", ko), nil); err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}

	var cfg Config
	if err := ko.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

// LoadDotEnv loads .env files into the process environment. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}
