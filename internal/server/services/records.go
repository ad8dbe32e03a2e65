package services

import (
	"context"

	"github.com/jfrjs/publicada/internal/common"
	"github.com/jfrjs/publicada/internal/server/models"
	"github.com/jfrjs/publicada/internal/server/repositories/records"
)

// RecordService mediates access to the per-user profile record store.
// A record's id equals its owner's user id, so any attempt to touch a
// record under a different id is rejected with common.ErrorForbidden.
type RecordService struct {
	repo records.Repository
}

// NewRecordService constructs a RecordService over the configured backend
// (PostgreSQL table or S3 bucket).
func NewRecordService(repo records.Repository) *RecordService {
	return &RecordService{repo: repo}
}

// Get fetches the record with the given id on behalf of userID.
func (s *RecordService) Get(ctx context.Context, userID, id string) (*models.Record, error) {
	if id != userID {
		return nil, common.ErrorForbidden
	}
	return s.repo.Get(ctx, id)
}

// Put saves the record on behalf of userID, creating or overwriting it.
func (s *RecordService) Put(ctx context.Context, userID string, record *models.Record) error {
	if record.ID != userID {
		return common.ErrorForbidden
	}
	return s.repo.Put(ctx, record)
}

// Delete removes the record with the given id on behalf of userID.
func (s *RecordService) Delete(ctx context.Context, userID, id string) error {
	if id != userID {
		return common.ErrorForbidden
	}
	return s.repo.Delete(ctx, id)
}
