package main

import (
	"context"
	"io"

	"github.com/fwojciec/carspec"
	"github.com/fwojciec/carspec/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Scraper *crawl.Scraper
	Writer  carspec.RecordWriter
}

// ScrapeCmd scrapes a set of cars and writes the records.
type ScrapeCmd struct {
	IDs   string
	Quiet bool
}
