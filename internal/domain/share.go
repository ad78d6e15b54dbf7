package domain

import "time"

type ShareRole string

const (
	ShareRoleOwner   ShareRole = "OWNER"
	ShareRoleCoOwner ShareRole = "CO_OWNER"
	ShareRoleViewer  ShareRole = "VIEWER"
)

// CanWrite reports whether the role may create or modify entries.
func (r ShareRole) CanWrite() bool {
	return r == ShareRoleOwner || r == ShareRoleCoOwner
}

// AircraftShare links a user to an aircraft they own a stake in (or may view).
type AircraftShare struct {
	ID         int32     `json:"id"`
	AircraftID int32     `json:"aircraft_id"`
	UserID     int32     `json:"user_id"`
	Role       ShareRole `json:"role"`
	CreatedOn  string    `json:"created_on"`
}

// Invitation is a pending offer to share an aircraft, delivered by email.
// The token is single use and expires.
type Invitation struct {
	ID         int32      `json:"id"`
	AircraftID int32      `json:"aircraft_id"`
	InviterID  int32      `json:"inviter_id"`
	Email      string     `json:"email"`
	Role       ShareRole  `json:"role"`
	Token      string     `json:"token"`
	ExpiresOn  time.Time  `json:"expires_on"`
	UsedOn     *time.Time `json:"used_on,omitempty"`
	CreatedOn  string     `json:"created_on"`
}
