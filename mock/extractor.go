package mock

import "github.com/fwojciec/carspec"

var _ carspec.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of carspec.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
