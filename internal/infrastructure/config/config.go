package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Admin access. The password default matches the demo deployment and
	// must be overridden anywhere that faces the internet.
	AdminPassword string        `env:"ADMIN_PASSWORD, default=admin123"`
	JWTSecret     string        `env:"JWT_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL, default=24h"`

	// Storage selects the catalog/lead backend: memory or mongo.
	Storage string `env:"STORAGE, default=memory"`
	// SessionStore selects the session backend: memory or redis.
	SessionStore string `env:"SESSION_STORE, default=memory"`

	Catalog CatalogConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	SMTP    SMTPConfig
}

type CatalogConfig struct {
	// AdminFullCRUD exposes the add/delete admin endpoints. With it off
	// the admin panel is limited to editing existing services.
	AdminFullCRUD bool `env:"CATALOG_ADMIN_CRUD, default=true"`
	// SeedJSON overrides the built-in catalog seed with a JSON array.
	SeedJSON string `env:"CATALOG_SEED_JSON"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=promontazh"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// SMTPConfig drives the lead alert mailer. Alerts are disabled while Host
// is empty.
type SMTPConfig struct {
	Host string `env:"SMTP_HOST"`
	Port int    `env:"SMTP_PORT, default=587"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS"`
	From string `env:"SMTP_FROM"`
	To   string `env:"SMTP_TO"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
