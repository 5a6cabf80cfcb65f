package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Local stores uploads on disk under dir and serves them from baseURL.
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) *Local {
	if strings.TrimSpace(dir) == "" {
		dir = "uploads"
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "/uploads"
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Dir returns the directory files are written to, for static serving.
func (l *Local) Dir() string { return l.dir }

func (l *Local) Upload(_ context.Context, name string, payload []byte, _ string) (string, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(l.dir, filepath.Base(name))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", err
	}
	return l.baseURL + "/" + filepath.Base(name), nil
}
