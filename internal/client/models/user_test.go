package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserFromRecord(t *testing.T) {
	r := &Record{ID: "u-1", Name: "Alice", Email: "alice@example.com"}

	u := UserFromRecord(r)
	require.Equal(t, "u-1", u.UserID)
	require.Equal(t, "Alice", u.Name)
	require.Equal(t, "alice@example.com", u.Email)
}

func TestUser_Record_RoundTrip(t *testing.T) {
	u := &User{UserID: "u-1", Name: "Alice", Email: "alice@example.com"}

	got := UserFromRecord(u.Record())
	require.Equal(t, u, got)
}
