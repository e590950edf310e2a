// Package crawl drives batch scraping of car pages. It fetches, caches,
// extracts and parses pages concurrently while keeping each page's failure
// isolated from the others.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"sync/atomic"
	"time"

	"github.com/fwojciec/carspec"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages processed at once when
// Scraper.Concurrency is not set.
const DefaultConcurrency = 3

// Scraper turns a list of car IDs into parsed records.
type Scraper struct {
	Fetcher     carspec.Fetcher
	Extractor   carspec.TextExtractor
	Parser      carspec.Parser
	Cache       carspec.PageCache
	RateLimiter carspec.HostLimiter

	// URLFor returns the page URL of a car.
	URLFor func(id int) string

	// Offline restricts the scraper to cached pages.
	Offline bool

	Concurrency int
	RetryDelays []time.Duration
	Logger      LogFunc
}

// Failure records why one car could not be scraped.
type Failure struct {
	ID  int
	Err error
}

// Report is the outcome of a batch.
type Report struct {
	// Cars holds the successfully parsed records sorted by ID.
	Cars []*carspec.Car
	// Failures holds the failed IDs sorted by ID.
	Failures []Failure
	Elapsed  time.Duration
}

// FailedIDs returns the IDs of failed cars in order.
func (r *Report) FailedIDs() []int {
	ids := make([]int, len(r.Failures))
	for i, f := range r.Failures {
		ids[i] = f.ID
	}
	return ids
}

// AveragePerCar returns the batch time divided by the number of parsed cars.
func (r *Report) AveragePerCar() time.Duration {
	if len(r.Cars) == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(len(r.Cars))
}

// ProgressEvent reports one finished car.
type ProgressEvent struct {
	Completed int
	Total     int
	ID        int
	Elapsed   time.Duration
	Error     error
}

// ProgressFunc is a callback for reporting scrape progress. It is called
// from a single goroutine.
type ProgressFunc func(event ProgressEvent)

// scrapeResult holds the outcome of processing a single car.
type scrapeResult struct {
	id      int
	car     *carspec.Car
	elapsed time.Duration
	err     error
}

// Validate returns an error if the scraper is missing a collaborator.
func (s *Scraper) Validate() error {
	if s.Parser == nil {
		return carspec.Errorf(carspec.EINVALID, "scraper parser required")
	}
	if s.Offline {
		if s.Cache == nil {
			return carspec.Errorf(carspec.EINVALID, "offline scraping requires a page cache")
		}
		return nil
	}
	if s.Fetcher == nil || s.Extractor == nil || s.URLFor == nil {
		return carspec.Errorf(carspec.EINVALID, "scraper fetcher, extractor and URL format required")
	}
	return nil
}

// Scrape processes every ID and returns the parsed cars and the failures.
// A failed car never stops the batch. The error is non-nil only for an
// invalid scraper or when ctx ends before the batch does; the report is
// returned in both cases.
func (s *Scraper) Scrape(ctx context.Context, ids []int, progress ProgressFunc) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	begin := time.Now()

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan scrapeResult, len(ids))
	var completed atomic.Int64
	total := len(ids)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, id := range ids {
			g.Go(func() error {
				resultCh <- s.scrapeOne(gctx, id)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	report := &Report{Cars: []*carspec.Car{}}
	for result := range resultCh {
		n := completed.Add(1)
		if result.err != nil {
			report.Failures = append(report.Failures, Failure{ID: result.id, Err: result.err})
		} else {
			report.Cars = append(report.Cars, result.car)
		}
		if progress != nil {
			progress(ProgressEvent{
				Completed: int(n),
				Total:     total,
				ID:        result.id,
				Elapsed:   result.elapsed,
				Error:     result.err,
			})
		}
	}

	sort.Slice(report.Cars, func(i, j int) bool { return report.Cars[i].ID < report.Cars[j].ID })
	sort.Slice(report.Failures, func(i, j int) bool { return report.Failures[i].ID < report.Failures[j].ID })
	report.Elapsed = time.Since(begin)

	return report, ctx.Err()
}

// scrapeOne loads and parses a single car.
func (s *Scraper) scrapeOne(ctx context.Context, id int) scrapeResult {
	begin := time.Now()
	result := scrapeResult{id: id}

	text, err := s.pageText(ctx, id)
	if err == nil {
		result.car, err = s.Parser.Parse(text, id)
	}
	result.err = err
	result.elapsed = time.Since(begin)
	return result
}

// pageText returns the cached text of a car page or fetches, extracts
// and caches it.
func (s *Scraper) pageText(ctx context.Context, id int) (string, error) {
	if s.Cache != nil {
		page, err := s.Cache.FindPage(ctx, id)
		if err == nil {
			return page.Text, nil
		}
		if carspec.ErrorCode(err) != carspec.ENOTFOUND {
			return "", fmt.Errorf("car %d: cache lookup: %w", id, err)
		}
	}
	if s.Offline {
		return "", carspec.Errorf(carspec.ENOTFOUND, "car %d: page not cached", id)
	}

	pageURL := s.URLFor(id)
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetryDelays(ctx, pageURL, s.fetch, s.Logger, delays)
	if err != nil {
		return "", fmt.Errorf("car %d: fetch: %w", id, err)
	}

	text, err := s.Extractor.ExtractText(html)
	if err != nil {
		return "", fmt.Errorf("car %d: extract: %w", id, err)
	}

	if s.Cache != nil {
		page := &carspec.Page{CarID: id, URL: pageURL, Text: text}
		if err := s.Cache.SavePage(ctx, page); err != nil {
			return "", fmt.Errorf("car %d: cache save: %w", id, err)
		}
	}
	return text, nil
}

// fetch waits for the rate limiter before every attempt.
func (s *Scraper) fetch(ctx context.Context, pageURL string) (string, error) {
	if s.RateLimiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			return "", carspec.Errorf(carspec.EINVALID, "invalid URL %q: %v", pageURL, err)
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}
	return s.Fetcher.Fetch(ctx, pageURL)
}
