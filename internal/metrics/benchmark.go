package metrics

import "math"

// Band classifies how far an observed cost per hour sits from the benchmark.
type Band string

const (
	BandOnTrack Band = "on_track"
	BandWatch   Band = "watch"
	BandHigh    Band = "high"
)

// Fixed policy thresholds, in percent deviation from the benchmark.
const (
	// OnTrackMaxPct is the largest |pct| still considered on track.
	OnTrackMaxPct = 10.0
	// WatchMaxPct is the largest |pct| still considered worth watching;
	// beyond it the deviation is high.
	WatchMaxPct = 25.0
	// EqualishPct is the display-only threshold under which observed and
	// benchmark are called basically equal.
	EqualishPct = 0.5
)

// Comparison describes an observed per-hour figure against a benchmark.
type Comparison struct {
	Diff     float64 `json:"diff"`
	Pct      float64 `json:"pct"`
	Band     Band    `json:"band"`
	Equalish bool    `json:"equalish"`
}

// Compare returns the deviation of observed from benchmark, or nil when the
// comparison is undefined: observed is nil (no per-hour figure could be
// computed) or the benchmark is missing or not positive.
func Compare(observed *float64, benchmark float64) *Comparison {
	if observed == nil {
		return nil
	}
	obs := *observed
	if math.IsNaN(obs) || math.IsInf(obs, 0) {
		return nil
	}
	if benchmark <= 0 || math.IsNaN(benchmark) || math.IsInf(benchmark, 0) {
		return nil
	}

	diff := obs - benchmark
	pct := diff / benchmark * 100

	band := BandHigh
	switch {
	case math.Abs(pct) <= OnTrackMaxPct:
		band = BandOnTrack
	case math.Abs(pct) <= WatchMaxPct:
		band = BandWatch
	}

	return &Comparison{
		Diff:     diff,
		Pct:      pct,
		Band:     band,
		Equalish: math.Abs(pct) < EqualishPct,
	}
}
