package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthRange(t *testing.T) {
	t.Run("Regular month", func(t *testing.T) {
		r := Month(2025, time.March)
		assert.Equal(t, "2025-03-01", FormatDate(r.Start))
		assert.Equal(t, "2025-03-31", FormatDate(r.End))
	})

	t.Run("February leap year", func(t *testing.T) {
		r := Month(2024, time.February)
		assert.Equal(t, "2024-02-29", FormatDate(r.End))
	})

	t.Run("February non-leap year", func(t *testing.T) {
		r := Month(2025, time.February)
		assert.Equal(t, "2025-02-28", FormatDate(r.End))
	})

	t.Run("December stays inside the year", func(t *testing.T) {
		r := Month(2025, time.December)
		assert.Equal(t, "2025-12-31", FormatDate(r.End))
	})
}

func TestYearRange(t *testing.T) {
	r := Year(2025)
	assert.Equal(t, "2025-01-01", FormatDate(r.Start))
	assert.Equal(t, "2025-12-31", FormatDate(r.End))
}

func TestRangeContains(t *testing.T) {
	r := Month(2025, time.March)
	inside, _ := ParseDate("2025-03-15")
	first, _ := ParseDate("2025-03-01")
	last, _ := ParseDate("2025-03-31")
	outside, _ := ParseDate("2025-04-01")

	assert.True(t, r.Contains(inside))
	assert.True(t, r.Contains(first))
	assert.True(t, r.Contains(last))
	assert.False(t, r.Contains(outside))
	assert.True(t, AllTime().Contains(outside))
}

func TestParseDate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, err := ParseDate("2025-03-15")
		assert.NoError(t, err)
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.March, d.Month())
		assert.Equal(t, 15, d.Day())
	})

	t.Run("Rejects slash format", func(t *testing.T) {
		_, err := ParseDate("2025/03/15")
		assert.Error(t, err)
	})

	t.Run("Rejects impossible day", func(t *testing.T) {
		_, err := ParseDate("2025-02-30")
		assert.Error(t, err)
	})
}
