package mei_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/carspec"
	"github.com/fwojciec/carspec/mei"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    float64
		integer bool
	}{
		{"thousand dots", "42.486.000", 42486000, true},
		{"single thousand dot group", "1.234", 1234, true},
		{"comma thousands", "68,200", 68200, true},
		{"decimal comma", "42,2", 42.2, false},
		{"decimal comma with four digits", "1,2345", 1.2345, false},
		{"multiple comma groups", "1,234,567", 1234567, true},
		{"multiple comma groups with short tail", "12,34,5", 12345, true},
		{"plain decimal", "123.45", 123.45, false},
		{"plain integer", "307", 307, true},
		{"surrounding whitespace", "  307 ", 307, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n, err := mei.ParseNumber(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.integer, n.IsInt())
			assert.InDelta(t, tt.want, n.Float64(), 1e-9)
			if tt.integer {
				assert.Equal(t, int64(tt.want), n.Int64())
			}
		})
	}
}

func TestParseNumber_Errors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"12a", "", "1,2.3", "1,2345,6", "-5", "9999999999999999999"} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, err := mei.ParseNumber(input)

			require.Error(t, err)
			var fe *carspec.FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, carspec.EFORMAT, carspec.ErrorCode(err))
		})
	}
}

func TestParseNumber_ErrorNamesInput(t *testing.T) {
	t.Parallel()

	_, err := mei.ParseNumber("12a")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"12a"`)
}

func TestNumber_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "68200", mei.Int(68200).String())
	assert.Equal(t, "42.2", mei.Real(42.2).String())
	assert.Equal(t, int64(42), mei.Real(42.9).Int64())
}
