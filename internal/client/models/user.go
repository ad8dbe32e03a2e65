// Package models defines the client-side account types: the signed-in
// user, the identity handed back by the auth provider, and the profile
// record stored in the cloud.
package models

// User is the reconciled account the rest of the client works with.
// It always mirrors a record that exists in the store.
type User struct {
	UserID string
	Name   string
	Email  string
}

// Identity is what the auth provider returns on sign-in: the stable user
// identifier plus profile claims. Name and Email may be empty, the
// provider only hands them out on some sign-ins.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

// Record is a profile record as stored remotely. Its ID equals the owning
// user's identifier.
type Record struct {
	ID    string
	Name  string
	Email string
}

// UserFromRecord maps a fetched record to a User.
func UserFromRecord(r *Record) *User {
	return &User{UserID: r.ID, Name: r.Name, Email: r.Email}
}

// Record maps the user back to its storage representation.
func (u *User) Record() *Record {
	return &Record{ID: u.UserID, Name: u.Name, Email: u.Email}
}
