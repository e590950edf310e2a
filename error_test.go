package carspec_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/carspec"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := carspec.Errorf(carspec.ENOTFOUND, "car %d not cached", 12)

	assert.Equal(t, carspec.ENOTFOUND, carspec.ErrorCode(err))
	assert.Equal(t, "car 12 not cached", carspec.ErrorMessage(err))
	assert.Equal(t, "carspec error: code=not_found message=car 12 not cached", err.Error())
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, carspec.ErrorCode(nil))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("fetch: %w", carspec.Errorf(carspec.ENOTFOUND, "HTTP 404"))

		assert.Equal(t, carspec.ENOTFOUND, carspec.ErrorCode(err))
	})

	t.Run("section error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("scrape: %w", &carspec.SectionError{CarID: 3, Section: carspec.SectionStars})

		assert.Equal(t, carspec.EMISSING, carspec.ErrorCode(err))
		assert.Equal(t, "car 3: stars section not found", carspec.ErrorMessage(err))
	})

	t.Run("format error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("car 3: %w", &carspec.FormatError{Input: "1,2.3"})

		assert.Equal(t, carspec.EFORMAT, carspec.ErrorCode(err))
		assert.Equal(t, `unrecognized number format: "1,2.3"`, carspec.ErrorMessage(err))
	})

	t.Run("other error", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")

		assert.Equal(t, carspec.EINTERNAL, carspec.ErrorCode(err))
		assert.Equal(t, "Internal error", carspec.ErrorMessage(err))
	})
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, carspec.ErrorMessage(nil))
}
