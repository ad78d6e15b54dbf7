package domain

type MaintenanceCategory string

const (
	MaintenanceCategoryMaintenance MaintenanceCategory = "MAINTENANCE"
	MaintenanceCategoryOilChange   MaintenanceCategory = "OIL_CHANGE"
	MaintenanceCategoryAnnual      MaintenanceCategory = "ANNUAL"
	MaintenanceCategoryTires       MaintenanceCategory = "TIRES"
	MaintenanceCategoryBrakes      MaintenanceCategory = "BRAKES"
	MaintenanceCategoryAvionics    MaintenanceCategory = "AVIONICS"
	MaintenanceCategoryEngine      MaintenanceCategory = "ENGINE"
	MaintenanceCategoryInspection  MaintenanceCategory = "INSPECTION"
	MaintenanceCategoryOther       MaintenanceCategory = "OTHER"
)

// MaintenanceCategories lists the valid categories in display order.
var MaintenanceCategories = []MaintenanceCategory{
	MaintenanceCategoryMaintenance,
	MaintenanceCategoryOilChange,
	MaintenanceCategoryAnnual,
	MaintenanceCategoryTires,
	MaintenanceCategoryBrakes,
	MaintenanceCategoryAvionics,
	MaintenanceCategoryEngine,
	MaintenanceCategoryInspection,
	MaintenanceCategoryOther,
}

func (c MaintenanceCategory) Valid() bool {
	for _, mc := range MaintenanceCategories {
		if c == mc {
			return true
		}
	}
	return false
}

// MaintenanceEntry is a dated shop visit or squawk fix. Date, Amount and
// TachHours are all optional; an entry with an Amount must also carry
// TachHours so cost-per-hour stays derivable (checked by the service layer).
type MaintenanceEntry struct {
	ID            int32               `json:"id"`
	AircraftID    int32               `json:"aircraft_id"`
	Date          *string             `json:"date,omitempty"` // yyyy-mm-dd
	Category      MaintenanceCategory `json:"category"`
	Amount        *float64            `json:"amount,omitempty"`
	TachHours     *float64            `json:"tach_hours,omitempty"`
	Note          string              `json:"note,omitempty"`
	AttachmentKey string              `json:"attachment_key,omitempty"` // receipt image in storage
	CreatedOn     string              `json:"created_on"`
}
