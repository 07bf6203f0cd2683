package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Backends de almacenamiento soportados para el namespace key-value por dispositivo.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendS3       = "s3"
)

type Config struct {
	Port string `toml:"port"`

	Storage StorageConfig `toml:"storage"`
	NATSURL string        `toml:"nats_url"`

	// Delays cosméticos (la app original simulaba latencia de red).
	SubmitDelay Duration `toml:"submit_delay"`
	ChatDelay   Duration `toml:"chat_delay"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	AppName   string `toml:"app_name"`
}

type StorageConfig struct {
	Backend    string `toml:"backend"`
	DSN        string `toml:"dsn"`         // postgres
	SQLitePath string `toml:"sqlite_path"` // sqlite

	S3Bucket   string `toml:"s3_bucket"`
	S3Region   string `toml:"s3_region"`
	S3Endpoint string `toml:"s3_endpoint"` // opcional (MinIO y similares)
	S3Prefix   string `toml:"s3_prefix"`
}

// Duration permite escribir "800ms" en el TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func Default() Config {
	return Config{
		Port: "8080",
		Storage: StorageConfig{
			Backend:    BackendMemory,
			SQLitePath: "petcare.db",
			S3Region:   "us-east-1",
			S3Prefix:   "petcare",
		},
		ChatDelay: Duration{time.Second},
		LogLevel:  "info",
		LogFormat: "text",
		AppName:   "petcare-registry",
	}
}

// Load arma la config en capas: defaults -> archivo TOML (CONFIG_FILE, opcional) -> env.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path, ok := lookup("CONFIG_FILE"); ok && strings.TrimSpace(path) != "" {
		if _, err := toml.DecodeFile(strings.TrimSpace(path), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("PORT", &cfg.Port)
	str("STORAGE_BACKEND", &cfg.Storage.Backend)
	str("DB_DSN", &cfg.Storage.DSN)
	str("SQLITE_PATH", &cfg.Storage.SQLitePath)
	str("S3_BUCKET", &cfg.Storage.S3Bucket)
	str("S3_REGION", &cfg.Storage.S3Region)
	str("S3_ENDPOINT", &cfg.Storage.S3Endpoint)
	str("S3_PREFIX", &cfg.Storage.S3Prefix)
	str("NATS_URL", &cfg.NATSURL)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("APP_NAME", &cfg.AppName)

	for key, dst := range map[string]*Duration{
		"SUBMIT_DELAY": &cfg.SubmitDelay,
		"CHAT_DELAY":   &cfg.ChatDelay,
	} {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if err := dst.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", key, err)
		}
	}

	// Compat con el router original: si hay DB_DSN y no se eligió backend, usar postgres.
	if _, explicit := lookup("STORAGE_BACKEND"); !explicit && cfg.Storage.DSN != "" && cfg.Storage.Backend == BackendMemory {
		cfg.Storage.Backend = BackendPostgres
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("config: storage backend %q requires DB_DSN", c.Storage.Backend)
		}
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("config: storage backend %q requires SQLITE_PATH", c.Storage.Backend)
		}
	case BackendS3:
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("config: storage backend %q requires S3_BUCKET", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if c.SubmitDelay.Duration < 0 || c.ChatDelay.Duration < 0 {
		return fmt.Errorf("config: delays must not be negative")
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
