package domain

import "time"

// Audit holds the server-stamped creation and last-update fields shared by all entities.
type Audit struct {
	CreatedByUserID     int       `json:"CreatedByUserId"`
	CreatedByDate       time.Time `json:"CreatedByDate"`
	LastUpdatedByUserID int       `json:"LastUpdatedByUserId"`
	LastUpdatedByDate   time.Time `json:"LastUpdatedByDate"`
}

// StampCreated overwrites all four audit fields with the creating user and time.
func (a *Audit) StampCreated(userID int, now time.Time) {
	now = now.UTC()
	a.CreatedByUserID = userID
	a.CreatedByDate = now
	a.LastUpdatedByUserID = userID
	a.LastUpdatedByDate = now
}

// StampUpdated overwrites the last-update fields only.
func (a *Audit) StampUpdated(userID int, now time.Time) {
	a.LastUpdatedByUserID = userID
	a.LastUpdatedByDate = now.UTC()
}

// IsOwnedBy reports whether userID created or last updated the record.
// Unidentified callers (userID <= 0) never own anything.
func (a *Audit) IsOwnedBy(userID int) bool {
	if a == nil || userID <= 0 {
		return false
	}
	return a.CreatedByUserID == userID || a.LastUpdatedByUserID == userID
}
