package datastore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopstack/core/internal/infrastructure/config"
)

// Workspace is the on-disk home of the flat-file collections and the
// upload directory.
type Workspace struct {
	config config.StorageConfig
}

// New prepares the data directory and upload directory
func New(cfg config.StorageConfig) (*Workspace, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(cfg.Dir, cfg.UploadDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	return &Workspace{config: cfg}, nil
}

// ProductsPath returns the product collection file path
func (w *Workspace) ProductsPath() string {
	return filepath.Join(w.config.Dir, w.config.ProductsFile)
}

// BasketPath returns the basket collection file path
func (w *Workspace) BasketPath() string {
	return filepath.Join(w.config.Dir, w.config.BasketFile)
}

// UsersPath returns the user collection file path
func (w *Workspace) UsersPath() string {
	return filepath.Join(w.config.Dir, w.config.UsersFile)
}

// UploadPath returns the upload directory path
func (w *Workspace) UploadPath() string {
	return filepath.Join(w.config.Dir, w.config.UploadDir)
}

// HealthCheck verifies the data directory is still writable
func (w *Workspace) HealthCheck() error {
	probe, err := os.CreateTemp(w.config.Dir, ".healthcheck-*")
	if err != nil {
		return fmt.Errorf("data dir health check failed: %w", err)
	}
	probe.Close()
	return os.Remove(probe.Name())
}

// Info returns per-collection file statistics
func (w *Workspace) Info() map[string]interface{} {
	info := make(map[string]interface{})

	for name, path := range map[string]string{
		"products": w.ProductsPath(),
		"basket":   w.BasketPath(),
		"users":    w.UsersPath(),
	} {
		stat, err := os.Stat(path)
		if err != nil {
			info[name] = map[string]interface{}{"exists": false}
			continue
		}
		info[name] = map[string]interface{}{
			"exists":   true,
			"bytes":    stat.Size(),
			"modified": stat.ModTime().UTC().Format(time.RFC3339),
		}
	}

	return info
}
