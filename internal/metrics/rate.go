package metrics

// RateRecord is one row of a rate history: an hourly price and the day it
// takes effect.
type RateRecord struct {
	HourlyRate    float64
	EffectiveFrom string // yyyy-mm-dd
}

// ResolveRateIndex picks the rate in effect on asOf and returns its index in
// the input slice: the record with the latest EffectiveFrom that is on or
// before asOf. When records share an effective date the one appearing later
// in the slice wins, matching insertion order. If every record takes effect
// after asOf, the earliest-dated record is the fallback. Records with
// unparseable dates are ignored. Returns -1 when nothing usable remains;
// absence is a value, never an error.
//
// Callers resolving over a richer row type (rate tables, benchmarks) use the
// index to recover the source row, so two rows with identical values still
// resolve to a distinct row.
func ResolveRateIndex(rates []RateRecord, asOf string) int {
	target, targetOK := parseDay(asOf)

	current := -1
	var currentDay int64
	earliest := -1
	var earliestDay int64

	for i := range rates {
		d, ok := parseDay(rates[i].EffectiveFrom)
		if !ok {
			continue
		}
		day := d.Unix()

		if earliest < 0 || day < earliestDay {
			earliest = i
			earliestDay = day
		}

		if targetOK && !d.After(target) {
			if current < 0 || day >= currentDay {
				current = i
				currentDay = day
			}
		}
	}

	if current >= 0 {
		return current
	}
	return earliest
}

// ResolveRate is ResolveRateIndex returning a copy of the winning record, for
// callers that only need the resolved values.
func ResolveRate(rates []RateRecord, asOf string) *RateRecord {
	i := ResolveRateIndex(rates, asOf)
	if i < 0 {
		return nil
	}
	c := rates[i]
	return &c
}
