package carspec

import (
	"context"
	"time"
)

// Page is the plain text of a fetched car page.
type Page struct {
	ID          string    `json:"id"`
	CarID       int       `json:"carId"`
	URL         string    `json:"url"`
	Text        string    `json:"text"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.CarID <= 0 {
		return Errorf(EINVALID, "page car ID must be positive")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// PageCache stores fetched page text so a batch can be re-parsed offline.
type PageCache interface {
	// FindPage returns the cached page for a car.
	// Returns ENOTFOUND if the page has not been cached.
	FindPage(ctx context.Context, carID int) (*Page, error)

	// SavePage inserts or replaces the cached page for page.CarID.
	SavePage(ctx context.Context, page *Page) error
}
