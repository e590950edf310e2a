package mock

import (
	"context"

	"github.com/fwojciec/carspec"
)

var (
	_ carspec.Parser       = (*Parser)(nil)
	_ carspec.RecordWriter = (*RecordWriter)(nil)
)

// Parser is a mock implementation of carspec.Parser.
type Parser struct {
	ParseFn func(text string, id int) (*carspec.Car, error)
}

func (p *Parser) Parse(text string, id int) (*carspec.Car, error) {
	return p.ParseFn(text, id)
}

// RecordWriter is a mock implementation of carspec.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, cars []*carspec.Car) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, cars []*carspec.Car) error {
	return w.WriteRecordsFn(ctx, cars)
}
