package mock

import (
	"context"

	"github.com/fwojciec/carspec"
)

var _ carspec.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of carspec.PageCache.
type PageCache struct {
	FindPageFn func(ctx context.Context, carID int) (*carspec.Page, error)
	SavePageFn func(ctx context.Context, page *carspec.Page) error
}

func (c *PageCache) FindPage(ctx context.Context, carID int) (*carspec.Page, error) {
	return c.FindPageFn(ctx, carID)
}

func (c *PageCache) SavePage(ctx context.Context, page *carspec.Page) error {
	return c.SavePageFn(ctx, page)
}
