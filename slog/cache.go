package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/carspec"
)

// Ensure LoggingPageCache implements carspec.PageCache.
var _ carspec.PageCache = (*LoggingPageCache)(nil)

// LoggingPageCache wraps a PageCache with debug logging.
type LoggingPageCache struct {
	next   carspec.PageCache
	logger *slog.Logger
}

// NewLoggingPageCache creates a new LoggingPageCache.
func NewLoggingPageCache(next carspec.PageCache, logger *slog.Logger) *LoggingPageCache {
	return &LoggingPageCache{next: next, logger: logger}
}

// FindPage logs whether the page was cached.
func (c *LoggingPageCache) FindPage(ctx context.Context, carID int) (page *carspec.Page, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("cache lookup",
			"id", carID,
			"hit", err == nil,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.FindPage(ctx, carID)
}

// SavePage delegates to the wrapped cache and logs the operation.
func (c *LoggingPageCache) SavePage(ctx context.Context, page *carspec.Page) (err error) {
	defer func(begin time.Time) {
		c.logger.Debug("cache save",
			"id", page.CarID,
			"bytes", len(page.Text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.SavePage(ctx, page)
}
