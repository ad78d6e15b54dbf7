package metrics

import "math"

// HoursFlown estimates hours flown from cumulative tach readings as the spread
// between the highest and lowest sample. Fewer than two finite samples, or a
// spread that is not positive (out-of-order or duplicate readings), yields 0:
// that means "insufficient data", not an error.
func HoursFlown(samples []float64) float64 {
	min, max := math.Inf(1), math.Inf(-1)
	n := 0
	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		n++
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if n < 2 {
		return 0
	}
	delta := max - min
	if delta <= 0 {
		return 0
	}
	return delta
}

// PerHour divides a total by hours, returning nil when hours is not positive.
// Nil means "no rate available" (rendered as a dash), which is deliberately
// distinct from a genuine zero rate. Callers must preserve that distinction.
func PerHour(total, hours float64) *float64 {
	if hours <= 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return nil
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		total = 0
	}
	v := total / hours
	return &v
}
