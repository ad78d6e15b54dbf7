package metrics

import "math"

// RentalEntry is the shape aggregation needs from a rental log: the date,
// hours rented, and the hourly rate snapshotted when the log was created.
type RentalEntry struct {
	Date       string
	Hours      float64
	HourlyRate float64
}

// RentalSummary reports rental income over a range. Profit is computed
// period-locally: revenue earned inside the range minus cost entries dated
// inside the same range, never against a cumulative baseline.
type RentalSummary struct {
	Count         int      `json:"count"`
	Hours         float64  `json:"hours"`
	Revenue       float64  `json:"revenue"`
	Spend         float64  `json:"spend"`
	Profit        float64  `json:"profit"`
	ProfitPerHour *float64 `json:"profit_per_hour"`
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// AggregateRentals sums rental logs inside r and nets them against the cost
// entries in the same range. Hours come from the logged values, not a tach
// delta, and income uses each log's snapshotted rate. ProfitPerHour is nil
// when no hours were rented in the range.
func AggregateRentals(logs []RentalEntry, costs []Entry, r Range) RentalSummary {
	var s RentalSummary
	for _, l := range logs {
		d, ok := parseDay(l.Date)
		if !ok || !r.Contains(d) {
			continue
		}
		s.Count++
		hours := finiteOrZero(l.Hours)
		if hours < 0 {
			hours = 0
		}
		s.Hours += hours
		s.Revenue += hours * finiteOrZero(l.HourlyRate)
	}

	s.Spend = Aggregate(costs, r).Total
	s.Profit = s.Revenue - s.Spend
	s.ProfitPerHour = PerHour(s.Profit, s.Hours)
	return s
}
