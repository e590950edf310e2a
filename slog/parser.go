package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/carspec"
)

// Ensure LoggingParser implements carspec.Parser.
var _ carspec.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging. Failures are logged with
// their error code so skipped pages can be told apart by cause.
type LoggingParser struct {
	next   carspec.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next carspec.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) Parse(text string, id int) (car *carspec.Car, err error) {
	defer func(begin time.Time) {
		if err != nil {
			p.logger.Warn("parse",
				"id", id,
				"code", carspec.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		p.logger.Debug("parse",
			"id", id,
			"class", car.Class,
			"name", car.Name,
			"stats", len(car.Stat),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.Parse(text, id)
}
