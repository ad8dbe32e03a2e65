// Package models defines server-side data models persisted in the database.
package models

import "time"

// Account is a registered identity. PasswordHash holds the encoded
// argon2id digest, never the plaintext password. Name and Email are the
// optional profile claims captured at sign-up and echoed back on authorize.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Email        string
	CreatedAt    time.Time
}
