package metrics

import "math"

// CategoryOther is the bucket for entries without a usable category label.
const CategoryOther = "OTHER"

// Entry is the shape aggregation needs from a maintenance entry or operating
// expense: a date, an optional amount, a category label, and for maintenance
// entries an optional tach-hours reading.
type Entry struct {
	Date     string
	Amount   *float64
	Category string
	Tach     *float64
}

// Summary is the result of aggregating entries over a range.
type Summary struct {
	Count      int                `json:"count"`
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"by_category"`
}

// amountOf returns the entry's amount with the degrade-to-zero policy:
// absent or non-finite amounts count as 0 but the entry still counts.
func amountOf(e Entry) float64 {
	if e.Amount == nil {
		return 0
	}
	v := *e.Amount
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// inRange reports whether the entry's date parses and falls inside r.
// Entries without a parseable date never contribute to ranged figures.
func inRange(e Entry, r Range) bool {
	d, ok := parseDay(e.Date)
	if !ok {
		return false
	}
	return r.Contains(d)
}

// Aggregate sums the entries whose dates fall inside r, inclusive. The result
// carries the entry count, the overall total, and per-category subtotals with
// unlabeled entries pooled under CategoryOther. The input slice is never
// modified, and the output depends only on the set of entries, not their order.
func Aggregate(entries []Entry, r Range) Summary {
	s := Summary{ByCategory: make(map[string]float64)}
	for _, e := range entries {
		if !inRange(e, r) {
			continue
		}
		s.Count++
		amt := amountOf(e)
		s.Total += amt
		cat := e.Category
		if cat == "" {
			cat = CategoryOther
		}
		s.ByCategory[cat] += amt
	}
	return s
}

// TachSamples collects the finite tach readings of entries inside r, in input
// order. Feed the result to HoursFlown.
func TachSamples(entries []Entry, r Range) []float64 {
	var samples []float64
	for _, e := range entries {
		if !inRange(e, r) || e.Tach == nil {
			continue
		}
		v := *e.Tach
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		samples = append(samples, v)
	}
	return samples
}
