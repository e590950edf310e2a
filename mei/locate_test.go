package mei_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/carspec"
	"github.com/fwojciec/carspec/mei"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locate(t *testing.T, lines ...string) (*mei.Sections, error) {
	t.Helper()
	return mei.LocateSections(mei.Classify(lines), 7)
}

func TestLocateSections(t *testing.T) {
	t.Parallel()

	t.Run("finds class, name and max star", func(t *testing.T) {
		t.Parallel()

		s, err := locate(t, "Cars", "B", "Porsche 911 GT3 RS", "⭐⭐⭐⭐⭐")

		require.NoError(t, err)
		assert.Equal(t, "B", s.Class)
		assert.Equal(t, "Porsche 911 GT3 RS", s.Name)
		assert.Equal(t, 5, s.MaxStar)
		assert.Nil(t, s.Fuel)
		assert.Equal(t, carspec.UnlockNone, s.Unlock.Method)
		assert.Empty(t, s.Unlock.Requirements)
		assert.NotNil(t, s.Unlock.Requirements)
		assert.Nil(t, s.Unlock.Total)
		assert.False(t, s.Epics.Present())
	})

	t.Run("reads fuel count", func(t *testing.T) {
		t.Parallel()

		s, err := locate(t, "C", "Name", "⭐⭐⭐", "⛽ 6 fuels")

		require.NoError(t, err)
		require.NotNil(t, s.Fuel)
		assert.Equal(t, 6, *s.Fuel)
	})

	t.Run("leaves fuel unset for an unknown fuel line", func(t *testing.T) {
		t.Parallel()

		s, err := locate(t, "C", "Name", "⭐⭐⭐", "⛽ unlimited")

		require.NoError(t, err)
		assert.Nil(t, s.Fuel)
	})

	t.Run("reads blueprint run with total on next line", func(t *testing.T) {
		t.Parallel()

		s, err := locate(t, "C", "Name", "⭐⭐⭐", "5/8/30", "(43)")

		require.NoError(t, err)
		assert.Equal(t, carspec.UnlockBP, s.Unlock.Method)
		assert.Equal(t, []int{5, 8, 30}, s.Unlock.Requirements)
		require.NotNil(t, s.Unlock.Total)
		assert.Equal(t, 43, *s.Unlock.Total)
	})

	t.Run("reads blueprint total on the same line", func(t *testing.T) {
		t.Parallel()

		s, err := locate(t, "C", "Name", "⭐⭐⭐", "5/8/30 (43)")

		require.NoError(t, err)
		require.NotNil(t, s.Unlock.Total)
		assert.Equal(t, 43, *s.Unlock.Total)
	})

	t.Run("marks key cars from the run line", func(t *testing.T) {
		t.Parallel()

		s, err := locate(t, "C", "Name", "⭐⭐⭐", "🔑/5/8/30", "(43)")

		require.NoError(t, err)
		assert.Equal(t, carspec.UnlockKey, s.Unlock.Method)
		assert.Equal(t, []int{5, 8, 30}, s.Unlock.Requirements)
	})

	t.Run("marks key cars from the total line", func(t *testing.T) {
		t.Parallel()

		s, err := locate(t, "C", "Name", "⭐⭐⭐", "40/45/60/70/85", "(🔑 + 300)")

		require.NoError(t, err)
		assert.Equal(t, carspec.UnlockKey, s.Unlock.Method)
		require.NotNil(t, s.Unlock.Total)
		assert.Equal(t, 300, *s.Unlock.Total)
	})

	t.Run("keeps requirements when total is missing", func(t *testing.T) {
		t.Parallel()

		s, err := locate(t, "C", "Name", "⭐⭐⭐", "5/8/30", "Stock [400]")

		require.NoError(t, err)
		assert.Equal(t, carspec.UnlockBP, s.Unlock.Method)
		assert.Equal(t, []int{5, 8, 30}, s.Unlock.Requirements)
		assert.Nil(t, s.Unlock.Total)
	})

	t.Run("reads epic parts block", func(t *testing.T) {
		t.Parallel()

		s, err := locate(t, "C", "Name", "⭐⭐⭐", "Epics:", "2 x 240000 x 4=", "1,920,000")

		require.NoError(t, err)
		assert.True(t, s.Epics.Present())
		assert.Equal(t, 2, s.Epics.PerStat)
		assert.Equal(t, 1920000, s.Epics.Price)
	})

	t.Run("keeps epic count when price is unreadable", func(t *testing.T) {
		t.Parallel()

		s, err := locate(t, "C", "Name", "⭐⭐⭐", "Epics:", "3 x 100000 x 4=", "n/a")

		require.NoError(t, err)
		assert.Equal(t, 3, s.Epics.PerStat)
		assert.Zero(t, s.Epics.Price)
	})
}

func TestLocateSections_Missing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lines   []string
		section carspec.SectionKind
	}{
		{"no class letter", []string{"Ferrari", "⭐⭐⭐"}, carspec.SectionClass},
		{"class on last line", []string{"⭐⭐⭐", "A"}, carspec.SectionName},
		{"no star line", []string{"A", "Ferrari", "Stock [400]"}, carspec.SectionStars},
		{"star line before class", []string{"⭐⭐⭐", "A", "Ferrari"}, carspec.SectionStars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := locate(t, tt.lines...)

			require.Error(t, err)
			var se *carspec.SectionError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.section, se.Section)
			assert.Equal(t, 7, se.CarID)
			assert.Equal(t, carspec.EMISSING, carspec.ErrorCode(err))
		})
	}
}
