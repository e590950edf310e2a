package mock

import (
	"context"

	"github.com/fwojciec/carspec"
)

var (
	_ carspec.Fetcher     = (*Fetcher)(nil)
	_ carspec.HostLimiter = (*HostLimiter)(nil)
)

// Fetcher is a mock implementation of carspec.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// HostLimiter is a mock implementation of carspec.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
