package services

import (
	"context"
	"fmt"

	"github.com/jfrjs/publicada/internal/client/models"
)

// AuthClient is the subset of the API client the auth service needs.
// client.Client satisfies it.
type AuthClient interface {
	SignUp(ctx context.Context, username, password, name, email string) (string, error)
	Authorize(ctx context.Context, username, password string) (*models.Identity, error)
	Ping(ctx context.Context) error
	Logout()
	Close() error
}

// AuthService fronts the identity provider: registration, credential
// sign-in, liveness probe, and token housekeeping.
type AuthService struct {
	api AuthClient
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(api AuthClient) *AuthService {
	return &AuthService{api: api}
}

// Register creates a new account on the server and returns its user id.
func (a *AuthService) Register(ctx context.Context, username, password, name, email string) (string, error) {
	userID, err := a.api.SignUp(ctx, username, password, name, email)
	if err != nil {
		return "", fmt.Errorf("registration error: %w", err)
	}
	return userID, nil
}

// Login verifies credentials against the server and returns the provider
// identity. The API client keeps the issued token pair internally.
func (a *AuthService) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	identity, err := a.api.Authorize(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return identity, nil
}

// Ping checks server liveness.
func (a *AuthService) Ping(ctx context.Context) error {
	return a.api.Ping(ctx)
}

// Logout discards the token pair held by the API client.
func (a *AuthService) Logout() {
	a.api.Logout()
}

// Close releases underlying client resources.
func (a *AuthService) Close() error {
	return a.api.Close()
}
