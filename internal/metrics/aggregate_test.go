package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestAggregate(t *testing.T) {
	entries := []Entry{
		{Date: "2025-01-10", Amount: f(120.50), Category: "OIL_CHANGE"},
		{Date: "2025-01-25", Amount: f(80), Category: "FUEL"},
		{Date: "2025-02-03", Amount: f(1500), Category: "ANNUAL"},
		{Date: "2025-06-18", Amount: f(40), Category: "FUEL"},
	}

	t.Run("Month range", func(t *testing.T) {
		sum := Aggregate(entries, Month(2025, 1))
		assert.Equal(t, 2, sum.Count)
		assert.InDelta(t, 200.50, sum.Total, 1e-9)
		assert.InDelta(t, 120.50, sum.ByCategory["OIL_CHANGE"], 1e-9)
		assert.InDelta(t, 80, sum.ByCategory["FUEL"], 1e-9)
	})

	t.Run("Year range", func(t *testing.T) {
		sum := Aggregate(entries, Year(2025))
		assert.Equal(t, 4, sum.Count)
		assert.InDelta(t, 1740.50, sum.Total, 1e-9)
	})

	t.Run("All time", func(t *testing.T) {
		sum := Aggregate(entries, AllTime())
		assert.Equal(t, 4, sum.Count)
		assert.InDelta(t, 1740.50, sum.Total, 1e-9)
	})

	t.Run("Range boundaries are inclusive", func(t *testing.T) {
		boundary := []Entry{
			{Date: "2025-03-01", Amount: f(10), Category: "FUEL"},
			{Date: "2025-03-31", Amount: f(20), Category: "FUEL"},
		}
		sum := Aggregate(boundary, Month(2025, 3))
		assert.Equal(t, 2, sum.Count)
		assert.InDelta(t, 30, sum.Total, 1e-9)
	})

	t.Run("Missing amount counts the entry but adds zero", func(t *testing.T) {
		withNil := []Entry{
			{Date: "2025-01-05", Amount: nil, Category: "INSPECTION"},
			{Date: "2025-01-06", Amount: f(50), Category: "INSPECTION"},
		}
		sum := Aggregate(withNil, Month(2025, 1))
		assert.Equal(t, 2, sum.Count)
		assert.InDelta(t, 50, sum.Total, 1e-9)
	})

	t.Run("Missing category falls into the OTHER bucket", func(t *testing.T) {
		sum := Aggregate([]Entry{{Date: "2025-01-05", Amount: f(75)}}, Month(2025, 1))
		assert.InDelta(t, 75, sum.ByCategory[CategoryOther], 1e-9)
	})

	t.Run("Malformed dates are excluded", func(t *testing.T) {
		bad := []Entry{
			{Date: "not-a-date", Amount: f(999), Category: "FUEL"},
			{Date: "", Amount: f(999), Category: "FUEL"},
			{Date: "2025-01-10", Amount: f(10), Category: "FUEL"},
		}
		sum := Aggregate(bad, AllTime())
		assert.Equal(t, 1, sum.Count)
		assert.InDelta(t, 10, sum.Total, 1e-9)
	})

	t.Run("Monotone under range containment", func(t *testing.T) {
		inner := Aggregate(entries, Month(2025, 1))
		outer := Aggregate(entries, Year(2025))
		assert.GreaterOrEqual(t, outer.Total, inner.Total)
		assert.GreaterOrEqual(t, outer.Count, inner.Count)
	})

	t.Run("Idempotent and input-preserving", func(t *testing.T) {
		before := make([]Entry, len(entries))
		copy(before, entries)
		first := Aggregate(entries, Year(2025))
		second := Aggregate(entries, Year(2025))
		assert.Equal(t, first, second)
		assert.Equal(t, before, entries)
	})

	t.Run("Order independence", func(t *testing.T) {
		reversed := make([]Entry, len(entries))
		for i, e := range entries {
			reversed[len(entries)-1-i] = e
		}
		assert.Equal(t, Aggregate(entries, Year(2025)), Aggregate(reversed, Year(2025)))
	})
}

func TestTachSamples(t *testing.T) {
	entries := []Entry{
		{Date: "2025-01-10", Tach: f(1502.3)},
		{Date: "2025-01-20", Tach: f(1510.8)},
		{Date: "2025-02-01", Tach: f(1520.0)},
		{Date: "2025-01-25", Tach: nil},
	}

	t.Run("Collects finite readings in range", func(t *testing.T) {
		samples := TachSamples(entries, Month(2025, 1))
		assert.Equal(t, []float64{1502.3, 1510.8}, samples)
	})

	t.Run("Empty outside range", func(t *testing.T) {
		assert.Empty(t, TachSamples(entries, Month(2024, 1)))
	})
}
