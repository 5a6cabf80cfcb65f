package config

import (
	"github.com/folio-space/core/internal/pkg/mail"
	"github.com/folio-space/core/internal/pkg/storage"
)

// AppConfig holds runtime startup configuration loaded from YAML, with
// environment variables taking precedence over file values.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "production"
	Database       DatabaseConfig `yaml:"database"`
	RedisURL       string         `yaml:"redis_url"`
	JWTSecret      string         `yaml:"jwt_secret"`
	AllowedOrigins []string       `yaml:"allowed_origins"`
	AnalyticsSalt  string         `yaml:"analytics_salt"`
	Admin          AdminSeed      `yaml:"admin"`
	Mail           mail.Config    `yaml:"mail"`
	Storage        storage.Config `yaml:"storage"`
}

// DatabaseConfig selects the gorm driver and its DSN. For sqlite the DSN is
// a file path (or ":memory:").
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // "mysql" | "sqlite"
	DSN    string `yaml:"dsn"`
}

// AdminSeed creates the admin user on first migration when both fields are set.
type AdminSeed struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env != "production"
}
