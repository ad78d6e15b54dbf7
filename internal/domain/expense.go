package domain

type ExpenseCategory string

const (
	ExpenseCategoryFuel          ExpenseCategory = "FUEL"
	ExpenseCategoryInsurance     ExpenseCategory = "INSURANCE"
	ExpenseCategoryHangarTiedown ExpenseCategory = "HANGAR_TIEDOWN"
	ExpenseCategoryMisc          ExpenseCategory = "MISC"
)

var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryFuel,
	ExpenseCategoryInsurance,
	ExpenseCategoryHangarTiedown,
	ExpenseCategoryMisc,
}

func (c ExpenseCategory) Valid() bool {
	for _, ec := range ExpenseCategories {
		if c == ec {
			return true
		}
	}
	return false
}

// OperatingExpense is a recurring ownership cost (fuel, insurance, hangar).
type OperatingExpense struct {
	ID         int32           `json:"id"`
	AircraftID int32           `json:"aircraft_id"`
	Date       string          `json:"date"` // yyyy-mm-dd
	Category   ExpenseCategory `json:"category"`
	Amount     float64         `json:"amount"`
	Note       string          `json:"note,omitempty"`
	CreatedOn  string          `json:"created_on"`
}
