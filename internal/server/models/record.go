package models

import "time"

// Record is a user's public profile record. The ID equals the owning
// account's ID, so each account has at most one record.
type Record struct {
	ID        string
	Name      string
	Email     string
	UpdatedAt time.Time
}
