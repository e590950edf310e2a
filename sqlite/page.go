package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/carspec"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ carspec.PageCache = (*PageCache)(nil)

// PageCache implements carspec.PageCache using SQLite.
type PageCache struct {
	db *DB
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db}
}

// FindPage retrieves the cached page for a car.
func (s *PageCache) FindPage(ctx context.Context, carID int) (*carspec.Page, error) {
	var page carspec.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, car_id, url, text, content_hash, fetched_at
		FROM pages
		WHERE car_id = ?
	`, carID).Scan(&page.ID, &page.CarID, &page.URL, &page.Text, &page.ContentHash, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, carspec.Errorf(carspec.ENOTFOUND, "page for car %d not cached", carID)
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// SavePage inserts the page or replaces the cached page of the same car.
// ID, ContentHash and FetchedAt are set on the page.
func (s *PageCache) SavePage(ctx context.Context, page *carspec.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.ContentHash = hashContent(page.Text)
	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, car_id, url, text, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(car_id) DO UPDATE SET
			id = excluded.id,
			url = excluded.url,
			text = excluded.text,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, page.ID, page.CarID, page.URL, page.Text, page.ContentHash,
		page.FetchedAt.Format(time.RFC3339))

	return err
}
