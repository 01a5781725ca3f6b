package config

import (
	"context"
	"fmt"

	"github.com/vk/daylayout/internal/ctxlog"
)

// Loader is the interface for a format-specific event source.
type Loader interface {
	// Load reads every file it recognises under the given paths and
	// translates them into the format-agnostic model. Files with foreign
	// extensions are ignored.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Chain is a Loader that runs several loaders in order and merges their
// models.
type Chain []Loader

// Load implements Loader.
func (c Chain) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	merged := &Model{}
	for i, l := range c {
		m, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := merged.Merge(m); err != nil {
			return nil, err
		}
		logger.Debug("Loader finished.", "loader", fmt.Sprintf("%T", l), "index", i)
	}
	logger.Debug("All sources loaded.", "events", len(merged.Events), "files", len(merged.Files), "width", merged.Width)
	return merged, nil
}
