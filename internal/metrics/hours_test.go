package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoursFlown(t *testing.T) {
	tests := []struct {
		name     string
		samples  []float64
		expected float64
	}{
		{"Empty", nil, 0},
		{"Single sample", []float64{5}, 0},
		{"Spread of unsorted samples", []float64{3, 7, 5}, 4},
		{"Duplicate readings", []float64{1500, 1500}, 0},
		{"Large history", []float64{1500.2, 1510.7, 1504.1, 1522.9}, 22.7},
		{"NaN samples ignored", []float64{math.NaN(), 10, 14}, 4},
		{"Inf samples ignored", []float64{math.Inf(1), 10, 14}, 4},
		{"Only bad samples", []float64{math.NaN(), math.Inf(-1)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, HoursFlown(tt.samples), 1e-9)
		})
	}
}

func TestPerHour(t *testing.T) {
	t.Run("Zero hours is nil, not zero", func(t *testing.T) {
		assert.Nil(t, PerHour(1234.56, 0))
		assert.Nil(t, PerHour(0, 0))
		assert.Nil(t, PerHour(-50, 0))
	})

	t.Run("Negative hours is nil", func(t *testing.T) {
		assert.Nil(t, PerHour(100, -2))
	})

	t.Run("Zero total over positive hours is zero", func(t *testing.T) {
		got := PerHour(0, 12.5)
		require.NotNil(t, got)
		assert.Equal(t, 0.0, *got)
	})

	t.Run("Simple division", func(t *testing.T) {
		got := PerHour(660, 10)
		require.NotNil(t, got)
		assert.InDelta(t, 66, *got, 1e-9)
	})

	t.Run("Non-finite total degrades to zero", func(t *testing.T) {
		got := PerHour(math.NaN(), 10)
		require.NotNil(t, got)
		assert.Equal(t, 0.0, *got)
	})
}
