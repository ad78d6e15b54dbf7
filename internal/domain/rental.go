package domain

// RentalRate is one row of an aircraft's rate history. The rate in effect on
// a given day is the latest row whose EffectiveFrom is on or before that day.
type RentalRate struct {
	ID            int32   `json:"id"`
	AircraftID    int32   `json:"aircraft_id"`
	HourlyRate    float64 `json:"hourly_rate"`
	EffectiveFrom string  `json:"effective_from"` // yyyy-mm-dd
	CreatedOn     string  `json:"created_on"`
}

// RentalLog records hours rented out to a third party.
//
// HourlyRate is a snapshot captured from the rate table when the log was
// created. All income calculations use this snapshot, never the live rate,
// so editing the rate table cannot retroactively change historical income.
type RentalLog struct {
	ID         int32   `json:"id"`
	AircraftID int32   `json:"aircraft_id"`
	Date       string  `json:"date"` // yyyy-mm-dd
	Hours      float64 `json:"hours"`
	HourlyRate float64 `json:"hourly_rate"`
	Note       string  `json:"note,omitempty"`
	CreatedOn  string  `json:"created_on"`
}

// Income returns the revenue for this log at its snapshotted rate.
func (l RentalLog) Income() float64 {
	return l.Hours * l.HourlyRate
}
