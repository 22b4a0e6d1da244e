package service

import (
	"context"

	"sheetvet/internal/domain"
	"sheetvet/internal/port"
)

// RecordService defines read access to persisted records.
type RecordService interface {
	List(ctx context.Context, offset, limit int) ([]domain.Record, int, error)
	ListAll(ctx context.Context) ([]domain.Record, error)
}

type recordService struct {
	records port.RecordRepository
}

// NewRecordService creates a new RecordService implementation.
func NewRecordService(records port.RecordRepository) RecordService {
	return &recordService{records: records}
}

func (s *recordService) List(ctx context.Context, offset, limit int) ([]domain.Record, int, error) {
	return s.records.List(ctx, offset, limit)
}

func (s *recordService) ListAll(ctx context.Context) ([]domain.Record, error) {
	return s.records.ListAll(ctx)
}
