package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopstack/core/internal/infrastructure/logger"
	"github.com/shopstack/core/internal/ports"
)

var _ ports.FileStore = (*UploadSink)(nil)

// UploadSink persists uploaded binaries under the upload directory and
// hands back their public path.
type UploadSink struct {
	dir    string
	prefix string
	logger *logger.Logger
}

// NewUploadSink creates a new upload sink
func NewUploadSink(dir, prefix string, log *logger.Logger) *UploadSink {
	return &UploadSink{
		dir:    dir,
		prefix: prefix,
		logger: log.WithComponent("upload_sink"),
	}
}

// Store writes data under a millisecond-prefixed name and returns the
// public path. The prefix keeps concurrent uploads from clobbering each
// other; two same-named uploads within the same millisecond still collide.
func (s *UploadSink) Store(ctx context.Context, data []byte, originalName string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	s.logger.Debugw("Stored upload", "name", name, "bytes", len(data))
	return s.publicPath(name), nil
}

// publicPath prepends the public prefix segment unless name already
// carries it.
func (s *UploadSink) publicPath(name string) string {
	if strings.HasPrefix(name, s.prefix+"/") {
		return name
	}
	return s.prefix + "/" + name
}
