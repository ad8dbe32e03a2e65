package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jfrjs/publicada/internal/common"
	"github.com/jfrjs/publicada/internal/dbx"
	"github.com/jfrjs/publicada/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Record, error) {
	query := `
		SELECT id, name, email, updated_at FROM records
		WHERE id = $1
	`
	record := &models.Record{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID, &record.Name, &record.Email, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return record, nil
}

func (r *PostgresRepository) Put(ctx context.Context, record *models.Record) error {
	query := `
		INSERT INTO records (id, name, email, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, record.ID, record.Name, record.Email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM records
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
