package port

import (
	"context"

	"github.com/google/uuid"

	"sheetvet/internal/domain"
)

// RecordRepository defines the contract for canonical record persistence.
type RecordRepository interface {
	// InsertMany inserts a batch of records atomically: either every
	// record is inserted and the count returned, or none are.
	InsertMany(ctx context.Context, records []domain.Record) (int, error)
	List(ctx context.Context, offset, limit int) ([]domain.Record, int, error)
	ListAll(ctx context.Context) ([]domain.Record, error)
	DeleteByBatch(ctx context.Context, batchID uuid.UUID) (int64, error)
}

// ImportBatchRepository defines the contract for import batch persistence.
type ImportBatchRepository interface {
	Create(ctx context.Context, batch *domain.ImportBatch) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportBatch, error)
	List(ctx context.Context, offset, limit int) ([]domain.ImportBatch, int, error)
	UpdateRecordCount(ctx context.Context, id uuid.UUID, count int) error
	Delete(ctx context.Context, id uuid.UUID) error
}
