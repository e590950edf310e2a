// Package fs provides file-based storage for car records.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/fwojciec/carspec"
)

// DefaultFilename is the output file used when none is given.
const DefaultFilename = "cars.json"

// Ensure RecordWriter implements carspec.RecordWriter at compile time.
var _ carspec.RecordWriter = (*RecordWriter)(nil)

// RecordWriter writes cars to a JSON file with atomic update semantics.
// Records are written to path.tmp first and renamed over path once complete.
type RecordWriter struct {
	path string
}

// NewRecordWriter creates a RecordWriter for the given file path.
func NewRecordWriter(path string) *RecordWriter {
	return &RecordWriter{path: path}
}

// Path returns the output file path.
func (w *RecordWriter) Path() string {
	return w.path
}

func (w *RecordWriter) tempPath() string {
	return w.path + ".tmp"
}

// WriteRecords writes cars sorted by ID as an indented JSON array.
// Non-ASCII text such as car names and star glyphs is written as is.
func (w *RecordWriter) WriteRecords(ctx context.Context, cars []*carspec.Car) error {
	for _, car := range cars {
		if err := car.Validate(); err != nil {
			return err
		}
	}

	content, err := FormatRecords(cars)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(w.tempPath(), content, 0644); err != nil {
		_ = os.Remove(w.tempPath())
		return err
	}

	if err := os.Rename(w.tempPath(), w.path); err != nil {
		_ = os.Remove(w.tempPath())
		return err
	}

	return nil
}

// FormatRecords encodes cars sorted by ID with two-space indentation.
// The input slice is not reordered.
func FormatRecords(cars []*carspec.Car) ([]byte, error) {
	sorted := make([]*carspec.Car, len(cars))
	copy(sorted, cars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sorted); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
