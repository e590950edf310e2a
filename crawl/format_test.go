package crawl_test

import (
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/carspec"
	"github.com/fwojciec/carspec/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFormatProgress(t *testing.T) {
	t.Parallel()

	t.Run("formats success", func(t *testing.T) {
		t.Parallel()

		line := crawl.FormatProgress(crawl.ProgressEvent{
			Completed: 3,
			Total:     350,
			ID:        3,
			Elapsed:   412070 * time.Microsecond,
		})

		assert.Equal(t, "[OK ]    3/ 350 | id=   3 |  412.07 ms", line)
	})

	t.Run("appends error", func(t *testing.T) {
		t.Parallel()

		line := crawl.FormatProgress(crawl.ProgressEvent{
			Completed: 4,
			Total:     350,
			ID:        4,
			Elapsed:   98100 * time.Microsecond,
			Error:     errors.New("car 4: stats section not found"),
		})

		assert.Equal(t, "[ERR]    4/ 350 | id=   4 |   98.10 ms | car 4: stats section not found", line)
	})
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	t.Run("includes failures", func(t *testing.T) {
		t.Parallel()

		r := &crawl.Report{
			Cars:     []*carspec.Car{{ID: 1}, {ID: 3}},
			Failures: []crawl.Failure{{ID: 2, Err: errors.New("x")}, {ID: 4, Err: errors.New("y")}},
			Elapsed:  2 * time.Second,
		}

		want := "succeeded: 2, failed: 2\n" +
			"total time: 2.00 s\n" +
			"average per car: 1000.00 ms\n" +
			"failed IDs: [2 4]\n"
		assert.Equal(t, want, crawl.FormatReport(r))
	})

	t.Run("omits average and failures when empty", func(t *testing.T) {
		t.Parallel()

		r := &crawl.Report{Elapsed: 500 * time.Millisecond}

		assert.Equal(t, "succeeded: 0, failed: 0\ntotal time: 0.50 s\n", crawl.FormatReport(r))
	})
}
