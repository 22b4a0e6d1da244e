package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sheetvet/internal/domain"
)

type recordRepo struct {
	db *sqlx.DB
}

// NewRecordRepo creates a new PostgreSQL-backed RecordRepository.
func NewRecordRepo(db *sqlx.DB) *recordRepo {
	return &recordRepo{db: db}
}

const insertRecordQuery = `
	INSERT INTO records (
		id, batch_id, sheet_name, row_number,
		name, amount, entry_date, verified, fields,
		created_at
	) VALUES (
		:id, :batch_id, :sheet_name, :row_number,
		:name, :amount, :entry_date, :verified, :fields,
		NOW()
	)`

// InsertMany inserts every record inside one transaction. A failure on any
// row rolls the whole batch back.
func (r *recordRepo) InsertMany(ctx context.Context, records []domain.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("recordRepo.InsertMany begin: %w", err)
	}
	defer tx.Rollback()

	for i := range records {
		if _, err := tx.NamedExecContext(ctx, insertRecordQuery, &records[i]); err != nil {
			return 0, fmt.Errorf("recordRepo.InsertMany row %d: %w", records[i].RowNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("recordRepo.InsertMany commit: %w", err)
	}
	return len(records), nil
}

func (r *recordRepo) List(ctx context.Context, offset, limit int) ([]domain.Record, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM records"); err != nil {
		return nil, 0, fmt.Errorf("recordRepo.List count: %w", err)
	}

	records := []domain.Record{}
	err := r.db.SelectContext(ctx, &records,
		`SELECT * FROM records
		 ORDER BY created_at DESC, sheet_name, row_number
		 OFFSET $1 LIMIT $2`,
		offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("recordRepo.List: %w", err)
	}
	return records, total, nil
}

func (r *recordRepo) ListAll(ctx context.Context) ([]domain.Record, error) {
	records := []domain.Record{}
	err := r.db.SelectContext(ctx, &records,
		`SELECT * FROM records
		 ORDER BY created_at DESC, sheet_name, row_number`)
	if err != nil {
		return nil, fmt.Errorf("recordRepo.ListAll: %w", err)
	}
	return records, nil
}

func (r *recordRepo) DeleteByBatch(ctx context.Context, batchID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM records WHERE batch_id = $1", batchID)
	if err != nil {
		return 0, fmt.Errorf("recordRepo.DeleteByBatch: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("recordRepo.DeleteByBatch rows affected: %w", err)
	}
	return deleted, nil
}
