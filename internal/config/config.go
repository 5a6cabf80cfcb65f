package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when no -config flag is passed.
const DefaultConfigPath = "config.yaml"

// Load reads the YAML config file, then applies .env / environment overrides.
// A missing config file is not an error; the defaults plus environment are
// enough to boot a development instance.
func Load(path string) (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.Database.Driver != "mysql" && cfg.Database.Driver != "sqlite" {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	return cfg, nil
}

func defaults() *AppConfig {
	cfg := &AppConfig{
		Port: 8000,
		Env:  "development",
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "portfolio.db",
		},
		AnalyticsSalt: "super_secret_salt_value",
	}
	cfg.Storage.Backend = "local"
	return cfg
}

func applyEnv(cfg *AppConfig) {
	if v := envStr("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := envStr("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := envStr("DATABASE_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := envStr("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := envStr("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := envStr("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := envStr("ANALYTICS_SALT"); v != "" {
		cfg.AnalyticsSalt = v
	}
	if v := envStr("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitCSV(v)
	}
	if v := envStr("ADMIN_USERNAME"); v != "" {
		cfg.Admin.Username = v
	}
	if v := envStr("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}

	if v := envStr("SMTP_HOST"); v != "" {
		cfg.Mail.Host = v
		cfg.Mail.Enable = true
	}
	if v := envStr("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Mail.Port = p
		}
	}
	if v := envStr("SMTP_USER"); v != "" {
		cfg.Mail.User = v
	}
	if v := envStr("SMTP_PASSWORD"); v != "" {
		cfg.Mail.Pass = v
	}
	if v := envStr("MAIL_FROM"); v != "" {
		cfg.Mail.From = v
	}
	if v := envStr("MAIL_TO"); v != "" {
		cfg.Mail.To = v
	}
	if v := envStr("RESEND_API_KEY"); v != "" {
		cfg.Mail.UseResend = true
		cfg.Mail.ResendKey = v
		cfg.Mail.Enable = true
	}

	if v := envStr("STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := envStr("UPLOAD_DIR"); v != "" {
		cfg.Storage.Local.Dir = v
	}
	if v := envStr("UPLOAD_BASE_URL"); v != "" {
		cfg.Storage.Local.BaseURL = v
	}
	if v := envStr("S3_ENDPOINT"); v != "" {
		cfg.Storage.S3.Endpoint = v
	}
	if v := envStr("S3_BUCKET"); v != "" {
		cfg.Storage.S3.Bucket = v
	}
	if v := envStr("S3_REGION"); v != "" {
		cfg.Storage.S3.Region = v
	}
	if v := envStr("S3_ACCESS_KEY_ID"); v != "" {
		cfg.Storage.S3.AccessKeyID = v
	}
	if v := envStr("S3_SECRET_ACCESS_KEY"); v != "" {
		cfg.Storage.S3.SecretAccessKey = v
	}
	if v := envStr("S3_CUSTOM_DOMAIN"); v != "" {
		cfg.Storage.S3.CustomDomain = v
	}
}

func envStr(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
