package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/carspec"
	"github.com/fwojciec/carspec/crawl"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	ids, warnings, err := carspec.ParseIDs(c.IDs)
	for _, w := range warnings {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", w)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carspec.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scraping %d cars\n", len(ids))

	var progress crawl.ProgressFunc
	if !c.Quiet {
		progress = func(e crawl.ProgressEvent) {
			fmt.Fprintln(deps.Stdout, crawl.FormatProgress(e))
		}
	}

	report, err := deps.Scraper.Scrape(deps.Ctx, ids, progress)
	if report == nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carspec.ErrorMessage(err))
		return err
	}
	if err != nil {
		// Interrupted: keep what was parsed so far.
		fmt.Fprintf(deps.Stderr, "interrupted: %v\n", err)
	}

	if werr := deps.Writer.WriteRecords(context.WithoutCancel(deps.Ctx), report.Cars); werr != nil {
		fmt.Fprintf(deps.Stderr, "error writing records: %v\n", werr)
		return werr
	}

	fmt.Fprint(deps.Stdout, crawl.FormatReport(report))
	fmt.Fprintf(deps.Stdout, "Saved %d cars\n", len(report.Cars))

	return err
}
