package metrics

import "time"

// MonthBucket is one point of a 12-month cost series.
type MonthBucket struct {
	Month   int      `json:"month"` // 1-12
	Total   float64  `json:"total"`
	Hours   float64  `json:"hours"`
	PerHour *float64 `json:"per_hour"`
}

// RentalMonthBucket is one point of a 12-month rental income series.
type RentalMonthBucket struct {
	Month         int      `json:"month"` // 1-12
	Hours         float64  `json:"hours"`
	Revenue       float64  `json:"revenue"`
	Spend         float64  `json:"spend"`
	ProfitPerHour *float64 `json:"profit_per_hour"`
}

// MonthlySeries aggregates entries into exactly 12 buckets, January through
// December of the given year. Months with no entries still appear, reporting
// a zero total and a nil per-hour figure, so a year chart is always 12 points
// wide. Each bucket is aggregated independently: hours are the tach spread
// within that month alone.
func MonthlySeries(entries []Entry, year int) []MonthBucket {
	series := make([]MonthBucket, 12)
	for m := time.January; m <= time.December; m++ {
		r := Month(year, m)
		sum := Aggregate(entries, r)
		hours := HoursFlown(TachSamples(entries, r))
		series[m-1] = MonthBucket{
			Month:   int(m),
			Total:   sum.Total,
			Hours:   hours,
			PerHour: PerHour(sum.Total, hours),
		}
	}
	return series
}

// RentalMonthlySeries is the income counterpart of MonthlySeries: 12 buckets
// of rental hours, revenue at snapshotted rates, matched-month spend, and
// period-local profit per hour.
func RentalMonthlySeries(logs []RentalEntry, costs []Entry, year int) []RentalMonthBucket {
	series := make([]RentalMonthBucket, 12)
	for m := time.January; m <= time.December; m++ {
		sum := AggregateRentals(logs, costs, Month(year, m))
		series[m-1] = RentalMonthBucket{
			Month:         int(m),
			Hours:         sum.Hours,
			Revenue:       sum.Revenue,
			Spend:         sum.Spend,
			ProfitPerHour: sum.ProfitPerHour,
		}
	}
	return series
}
