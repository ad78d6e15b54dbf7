package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRate(t *testing.T) {
	rates := []RateRecord{
		{HourlyRate: 120, EffectiveFrom: "2024-01-01"},
		{HourlyRate: 135, EffectiveFrom: "2024-07-01"},
		{HourlyRate: 150, EffectiveFrom: "2025-03-01"},
	}

	t.Run("Latest effective rate wins", func(t *testing.T) {
		got := ResolveRate(rates, "2024-12-31")
		require.NotNil(t, got)
		assert.Equal(t, 135.0, got.HourlyRate)
	})

	t.Run("Exact effective date qualifies", func(t *testing.T) {
		got := ResolveRate(rates, "2025-03-01")
		require.NotNil(t, got)
		assert.Equal(t, 150.0, got.HourlyRate)
	})

	t.Run("Unordered input", func(t *testing.T) {
		shuffled := []RateRecord{rates[2], rates[0], rates[1]}
		got := ResolveRate(shuffled, "2024-12-31")
		require.NotNil(t, got)
		assert.Equal(t, 135.0, got.HourlyRate)
	})

	t.Run("All future falls back to earliest", func(t *testing.T) {
		got := ResolveRate(rates, "2020-01-01")
		require.NotNil(t, got)
		assert.Equal(t, 120.0, got.HourlyRate)
	})

	t.Run("Empty set is nil", func(t *testing.T) {
		assert.Nil(t, ResolveRate(nil, "2024-01-01"))
	})

	t.Run("Tie on effective date picks the later record", func(t *testing.T) {
		tied := []RateRecord{
			{HourlyRate: 100, EffectiveFrom: "2024-01-01"},
			{HourlyRate: 110, EffectiveFrom: "2024-01-01"},
		}
		got := ResolveRate(tied, "2024-06-01")
		require.NotNil(t, got)
		assert.Equal(t, 110.0, got.HourlyRate)
	})

	t.Run("Unparseable effective dates are skipped", func(t *testing.T) {
		mixed := []RateRecord{
			{HourlyRate: 90, EffectiveFrom: "bogus"},
			{HourlyRate: 125, EffectiveFrom: "2024-01-01"},
		}
		got := ResolveRate(mixed, "2024-06-01")
		require.NotNil(t, got)
		assert.Equal(t, 125.0, got.HourlyRate)
	})

	t.Run("Only unparseable dates is nil", func(t *testing.T) {
		assert.Nil(t, ResolveRate([]RateRecord{{HourlyRate: 90, EffectiveFrom: "bogus"}}, "2024-06-01"))
	})

	t.Run("Result is a copy, not an alias", func(t *testing.T) {
		got := ResolveRate(rates, "2024-12-31")
		require.NotNil(t, got)
		got.HourlyRate = 999
		assert.Equal(t, 135.0, rates[1].HourlyRate)
	})
}

func TestResolveRateIndex(t *testing.T) {
	t.Run("Identical rows resolve to a distinct index", func(t *testing.T) {
		// Two rows with the same price and date are different source rows;
		// the index disambiguates what value-matching cannot.
		dupes := []RateRecord{
			{HourlyRate: 100, EffectiveFrom: "2024-01-01"},
			{HourlyRate: 100, EffectiveFrom: "2024-01-01"},
		}
		assert.Equal(t, 1, ResolveRateIndex(dupes, "2024-06-01"))
	})

	t.Run("Fallback returns the earliest index", func(t *testing.T) {
		rates := []RateRecord{
			{HourlyRate: 150, EffectiveFrom: "2025-03-01"},
			{HourlyRate: 120, EffectiveFrom: "2024-01-01"},
		}
		assert.Equal(t, 1, ResolveRateIndex(rates, "2020-01-01"))
	})

	t.Run("Empty set is -1", func(t *testing.T) {
		assert.Equal(t, -1, ResolveRateIndex(nil, "2024-01-01"))
	})
}
