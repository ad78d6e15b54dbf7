package domain

// Aircraft is a co-owned airplane whose costs and income are tracked.
// TypeTag links the aircraft to industry benchmark rows (e.g. "C172", "PA28").
type Aircraft struct {
	ID         int32  `json:"id"`
	OwnerID    int32  `json:"owner_id"`
	TailNumber string `json:"tail_number"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int32  `json:"year"`
	TypeTag    string `json:"type_tag,omitempty"`
	CreatedOn  string `json:"created_on"`
}
