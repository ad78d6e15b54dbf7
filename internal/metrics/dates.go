// Package metrics derives dashboard figures (totals, cost per hour, benchmark
// bands, chart series) from snapshots of an aircraft's financial history.
//
// Every function is a pure transform over its inputs: no I/O, no shared state,
// safe to call from any goroutine. Bad data never produces an error: missing
// or non-finite amounts degrade to zero, and metrics that cannot be computed
// (for example cost per hour with no recorded hours) come back as nil rather
// than a fabricated number.
package metrics

import "time"

const dateLayout = "2006-01-02"

// Range is an inclusive calendar-day interval. The zero value is invalid;
// construct ranges with Month, Year or AllTime.
type Range struct {
	Start time.Time
	End   time.Time
	All   bool
}

// Month returns the range covering the first through last day of a month.
func Month(year int, month time.Month) Range {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the next month is the last day of this one.
	end := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return Range{Start: start, End: end}
}

// Year returns the range Jan 1 through Dec 31 of a year.
func Year(year int) Range {
	return Range{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// AllTime returns the unbounded range.
func AllTime() Range {
	return Range{All: true}
}

// Contains reports whether d falls inside the range, inclusive of both ends.
func (r Range) Contains(d time.Time) bool {
	if r.All {
		return true
	}
	return !d.Before(r.Start) && !d.After(r.End)
}

// ParseDate parses a yyyy-mm-dd string into a UTC date. Unlike the
// lexicographic string comparison this replaces, a malformed date is reported
// instead of silently sorting wrong.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDate renders a date back to yyyy-mm-dd.
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// parseDay is the tolerant form used inside aggregation: entries whose dates
// do not parse are simply excluded from ranged computations.
func parseDay(s string) (time.Time, bool) {
	d, err := time.Parse(dateLayout, s)
	return d, err == nil
}
