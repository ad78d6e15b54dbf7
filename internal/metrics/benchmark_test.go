package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	t.Run("Boundary at ten percent is still on track", func(t *testing.T) {
		got := Compare(f(66), 60)
		require.NotNil(t, got)
		assert.InDelta(t, 6, got.Diff, 1e-9)
		assert.InDelta(t, 10, got.Pct, 1e-9)
		assert.Equal(t, BandOnTrack, got.Band)
		assert.False(t, got.Equalish)
	})

	t.Run("Between ten and twenty-five percent is watch", func(t *testing.T) {
		got := Compare(f(72), 60)
		require.NotNil(t, got)
		assert.Equal(t, BandWatch, got.Band)
	})

	t.Run("Beyond twenty-five percent is high", func(t *testing.T) {
		got := Compare(f(90), 60)
		require.NotNil(t, got)
		assert.InDelta(t, 50, got.Pct, 1e-9)
		assert.Equal(t, BandHigh, got.Band)
	})

	t.Run("Running under the benchmark uses absolute deviation", func(t *testing.T) {
		got := Compare(f(42), 60)
		require.NotNil(t, got)
		assert.InDelta(t, -30, got.Pct, 1e-9)
		assert.Equal(t, BandHigh, got.Band)
	})

	t.Run("Equalish under half a percent", func(t *testing.T) {
		got := Compare(f(60.2), 60)
		require.NotNil(t, got)
		assert.True(t, got.Equalish)
		assert.Equal(t, BandOnTrack, got.Band)
	})

	t.Run("Nil observed is nil", func(t *testing.T) {
		assert.Nil(t, Compare(nil, 60))
	})

	t.Run("Non-positive benchmark is nil", func(t *testing.T) {
		assert.Nil(t, Compare(f(66), 0))
		assert.Nil(t, Compare(f(66), -10))
	})
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "$0.00"},
		{66, "$66.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-45.25, "-$45.25"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMoney(tt.in))
		})
	}
}

func TestFormatPerHour(t *testing.T) {
	assert.Equal(t, "—", FormatPerHour(nil))
	assert.Equal(t, "$66.00/hr", FormatPerHour(f(66)))
}
