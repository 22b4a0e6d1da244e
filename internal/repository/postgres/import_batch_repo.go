package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sheetvet/internal/domain"
)

type importBatchRepo struct {
	db *sqlx.DB
}

// NewImportBatchRepo creates a new PostgreSQL-backed ImportBatchRepository.
func NewImportBatchRepo(db *sqlx.DB) *importBatchRepo {
	return &importBatchRepo{db: db}
}

func (r *importBatchRepo) Create(ctx context.Context, batch *domain.ImportBatch) error {
	query := `
		INSERT INTO import_batches (id, source_name, record_count, created_at)
		VALUES (:id, :source_name, :record_count, NOW())`

	if _, err := r.db.NamedExecContext(ctx, query, batch); err != nil {
		return fmt.Errorf("importBatchRepo.Create: %w", err)
	}
	return nil
}

func (r *importBatchRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportBatch, error) {
	var batch domain.ImportBatch
	err := r.db.GetContext(ctx, &batch, "SELECT * FROM import_batches WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBatchNotFound
		}
		return nil, fmt.Errorf("importBatchRepo.GetByID: %w", err)
	}
	return &batch, nil
}

func (r *importBatchRepo) List(ctx context.Context, offset, limit int) ([]domain.ImportBatch, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM import_batches"); err != nil {
		return nil, 0, fmt.Errorf("importBatchRepo.List count: %w", err)
	}

	batches := []domain.ImportBatch{}
	err := r.db.SelectContext(ctx, &batches,
		`SELECT * FROM import_batches
		 ORDER BY created_at DESC
		 OFFSET $1 LIMIT $2`,
		offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("importBatchRepo.List: %w", err)
	}
	return batches, total, nil
}

func (r *importBatchRepo) UpdateRecordCount(ctx context.Context, id uuid.UUID, count int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE import_batches SET record_count = $2 WHERE id = $1", id, count)
	if err != nil {
		return fmt.Errorf("importBatchRepo.UpdateRecordCount: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("importBatchRepo.UpdateRecordCount rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBatchNotFound
	}
	return nil
}

func (r *importBatchRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM import_batches WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("importBatchRepo.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("importBatchRepo.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBatchNotFound
	}
	return nil
}
