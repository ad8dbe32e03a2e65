// Package services contains application services for the Publicada client.
// This file defines the account service: reconciling a provider identity
// with the stored profile record and managing the in-memory session.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jfrjs/publicada/internal/client/models"
	"github.com/jfrjs/publicada/internal/common"
)

// ErrNoSession is returned by operations that require a signed-in user
// when no sign-in has happened yet (or the session was cleared).
var ErrNoSession = errors.New("no signed-in user")

// RecordStore is the subset of the API client the account service needs.
// client.Client satisfies it.
type RecordStore interface {
	GetRecord(ctx context.Context, id string) (*models.Record, error)
	PutRecord(ctx context.Context, record *models.Record) error
	DeleteRecord(ctx context.Context, id string) error
}

// AccountService reconciles the identity handed out by the auth provider
// with the profile record in the cloud store and tracks the signed-in user.
//
// The service assumes a single writer: the CLI drives it from one
// goroutine, so the session slot is not guarded by a lock.
type AccountService struct {
	store       RecordStore
	currentUser *models.User
}

// NewAccountService constructs an AccountService over the given store.
func NewAccountService(store RecordStore) *AccountService {
	return &AccountService{store: store}
}

// SignIn reconciles identity against the record store and establishes the
// session.
//
// If a record with the identity's user id already exists, it is adopted
// as-is: the stored profile wins over the provider claims, which are only
// handed out on some sign-ins. Otherwise a new record is created from the
// identity and saved before the session is established, so the current
// user always mirrors a record that exists in the store.
func (s *AccountService) SignIn(ctx context.Context, identity *models.Identity) (*models.User, error) {

	record, err := s.store.GetRecord(ctx, identity.UserID)
	if err == nil {
		s.currentUser = models.UserFromRecord(record)
		return s.currentUser, nil
	}

	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error fetching profile record: %w", err)
	}

	// first sign-in: register a fresh record from the provider claims
	record = &models.Record{ID: identity.UserID, Name: identity.Name, Email: identity.Email}
	if err := s.store.PutRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("error saving profile record: %w", err)
	}

	s.currentUser = models.UserFromRecord(record)
	return s.currentUser, nil
}

// CurrentUser returns the signed-in user, or ErrNoSession.
func (s *AccountService) CurrentUser() (*models.User, error) {
	if s.currentUser == nil {
		return nil, ErrNoSession
	}
	return s.currentUser, nil
}

// UpdateProfile updates the signed-in user's profile. An empty name or
// email means "leave unchanged". The record is fetched fresh, modified,
// saved, and fetched again so the session reflects what the store
// actually holds.
func (s *AccountService) UpdateProfile(ctx context.Context, name, email string) (*models.User, error) {
	if s.currentUser == nil {
		return nil, ErrNoSession
	}

	record, err := s.store.GetRecord(ctx, s.currentUser.UserID)
	if err != nil {
		return nil, fmt.Errorf("error fetching profile record: %w", err)
	}

	if name != "" {
		record.Name = name
	}
	if email != "" {
		record.Email = email
	}

	if err := s.store.PutRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("error saving profile record: %w", err)
	}

	saved, err := s.store.GetRecord(ctx, s.currentUser.UserID)
	if err != nil {
		return nil, fmt.Errorf("error refetching profile record: %w", err)
	}

	s.currentUser = models.UserFromRecord(saved)
	return s.currentUser, nil
}

// DeleteAccount removes the signed-in user's profile record from the
// store. The session slot is deliberately left as-is; the caller decides
// when to clear it (the CLI does so right after a successful delete).
func (s *AccountService) DeleteAccount(ctx context.Context) error {
	if s.currentUser == nil {
		return ErrNoSession
	}

	if err := s.store.DeleteRecord(ctx, s.currentUser.UserID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting profile record: %w", err)
	}

	return nil
}

// ClearSession drops the in-memory session.
func (s *AccountService) ClearSession() {
	s.currentUser = nil
}
