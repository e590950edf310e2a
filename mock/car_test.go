package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/carspec"
	"github.com/fwojciec/carspec/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWriter_WriteRecords(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteRecordsFn", func(t *testing.T) {
		t.Parallel()

		var calledWith []*carspec.Car
		w := &mock.RecordWriter{
			WriteRecordsFn: func(_ context.Context, cars []*carspec.Car) error {
				calledWith = cars
				return nil
			},
		}

		cars := []*carspec.Car{{ID: 1, Class: "A", Name: "Test", MaxStar: 3}}

		err := w.WriteRecords(context.Background(), cars)

		require.NoError(t, err)
		assert.Equal(t, cars, calledWith)
	})
}
