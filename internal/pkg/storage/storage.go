package storage

import (
	"context"
	"fmt"
	"strings"
)

// Uploader persists uploaded bytes and returns a stable retrieval URL.
// Exactly one implementation is active, selected by configuration.
type Uploader interface {
	Upload(ctx context.Context, name string, payload []byte, contentType string) (string, error)
}

// Config selects and configures the storage backend.
type Config struct {
	Backend string `yaml:"backend"` // "local" | "s3"
	Local   struct {
		Dir     string `yaml:"dir"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"local"`
	S3 S3Options `yaml:"s3"`
}

// New builds the uploader named by cfg.Backend, defaulting to local disk.
func New(cfg Config) (Uploader, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "local":
		return NewLocal(cfg.Local.Dir, cfg.Local.BaseURL), nil
	case "s3":
		return NewS3(cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
