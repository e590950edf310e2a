package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/carspec"
	"github.com/fwojciec/carspec/mock"
	carspecslog "github.com/fwojciec/carspec/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPageCache(t *testing.T) {
	t.Parallel()

	t.Run("logs cache miss", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.PageCache{
			FindPageFn: func(ctx context.Context, carID int) (*carspec.Page, error) {
				return nil, carspec.Errorf(carspec.ENOTFOUND, "not cached")
			},
		}

		cache := carspecslog.NewLoggingPageCache(inner, logger)
		_, err := cache.FindPage(context.Background(), 4)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "hit=false")
	})

	t.Run("delegates save", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		var saved *carspec.Page
		inner := &mock.PageCache{
			SavePageFn: func(ctx context.Context, page *carspec.Page) error {
				saved = page
				return nil
			},
		}

		cache := carspecslog.NewLoggingPageCache(inner, logger)
		page := &carspec.Page{CarID: 4, URL: "u", Text: "abc"}
		err := cache.SavePage(context.Background(), page)

		require.NoError(t, err)
		assert.Same(t, page, saved)
		assert.Contains(t, buf.String(), "bytes=3")
	})
}
