package domain

// Benchmark is an externally sourced industry-average cost figure for an
// aircraft type. Read-only reference data; rows are loaded out of band.
type Benchmark struct {
	ID            int32    `json:"id"`
	TypeTag       string   `json:"type_tag"`
	HourlyCost    float64  `json:"hourly_cost"`
	AnnualCost    *float64 `json:"annual_cost,omitempty"`
	EffectiveFrom string   `json:"effective_from"` // yyyy-mm-dd
}
