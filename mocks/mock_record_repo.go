package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sheetvet/internal/domain"
)

// MockRecordRepo is a mock implementation of port.RecordRepository.
type MockRecordRepo struct {
	mock.Mock
}

func (m *MockRecordRepo) InsertMany(ctx context.Context, records []domain.Record) (int, error) {
	args := m.Called(ctx, records)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordRepo) List(ctx context.Context, offset, limit int) ([]domain.Record, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Record), args.Int(1), args.Error(2)
}

func (m *MockRecordRepo) ListAll(ctx context.Context) ([]domain.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockRecordRepo) DeleteByBatch(ctx context.Context, batchID uuid.UUID) (int64, error) {
	args := m.Called(ctx, batchID)
	return args.Get(0).(int64), args.Error(1)
}
