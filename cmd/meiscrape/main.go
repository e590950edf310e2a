package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/carspec"
	"github.com/fwojciec/carspec/crawl"
	"github.com/fwojciec/carspec/fs"
	"github.com/fwojciec/carspec/goquery"
	carspechttp "github.com/fwojciec/carspec/http"
	"github.com/fwojciec/carspec/mei"
	"github.com/fwojciec/carspec/rod"
	carspecslog "github.com/fwojciec/carspec/slog"
	"github.com/fwojciec/carspec/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite page cache, opened only when a database path is given.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("meiscrape"),
		kong.Description("Scrape MEI car pages into a JSON file of car records"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no car IDs provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Offline && cli.Browser {
		return fmt.Errorf("--offline and --browser cannot be combined")
	}
	if cli.Offline && cli.DB == "" {
		return fmt.Errorf("--offline requires a page cache (--db or MEISCRAPE_DB)")
	}

	level := slog.LevelError
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	scraper := &crawl.Scraper{
		Extractor:   goquery.NewTextExtractor(),
		Parser:      carspecslog.NewLoggingParser(mei.NewParser(), logger),
		URLFor:      carspechttp.CarURL,
		Offline:     cli.Offline,
		Concurrency: cli.Concurrency,
		Logger: func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		},
	}

	if !cli.Offline {
		timeout := cli.Timeout
		if timeout == 0 {
			timeout = carspechttp.DefaultFetchTimeout
		}

		var fetcher carspec.Fetcher
		if cli.Browser {
			rodFetcher, err := rod.NewFetcher(
				rod.WithFetchTimeout(timeout),
				rod.WithUserAgent(carspechttp.DefaultUserAgent),
			)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		} else {
			fetcher = carspechttp.NewFetcher(carspechttp.WithTimeout(timeout))
		}
		defer fetcher.Close()

		scraper.Fetcher = carspecslog.NewLoggingFetcher(fetcher, logger)
		scraper.RateLimiter = crawl.NewHostLimiter(cli.Rate)
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open page cache at %q: %w", cli.DB, err)
		}
		defer m.Close()

		scraper.Cache = carspecslog.NewLoggingPageCache(sqlite.NewPageCache(m.DB), logger)
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Scraper: scraper,
		Writer:  fs.NewRecordWriter(cli.Out),
	}

	cmd := &ScrapeCmd{
		IDs:   cli.IDs,
		Quiet: cli.Quiet,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Out         string        `short:"o" default:"cars.json" help:"Output JSON file"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent page limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Rate        float64       `default:"2" help:"Requests per second to the car site (0 disables the limit)"`
	DB          string        `env:"MEISCRAPE_DB" help:"SQLite page cache path"`
	Offline     bool          `help:"Parse cached pages only, never fetch"`
	Browser     bool          `short:"b" help:"Render pages in headless Chrome instead of plain HTTP"`
	Quiet       bool          `short:"q" help:"Suppress per-car progress lines"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
	IDs         string        `arg:"" help:"Car IDs, e.g. 1-5,10,20-22"`
}
