package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sheetvet/internal/domain"
)

// MockImportBatchRepo is a mock implementation of port.ImportBatchRepository.
type MockImportBatchRepo struct {
	mock.Mock
}

func (m *MockImportBatchRepo) Create(ctx context.Context, batch *domain.ImportBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockImportBatchRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportBatch), args.Error(1)
}

func (m *MockImportBatchRepo) List(ctx context.Context, offset, limit int) ([]domain.ImportBatch, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ImportBatch), args.Int(1), args.Error(2)
}

func (m *MockImportBatchRepo) UpdateRecordCount(ctx context.Context, id uuid.UUID, count int) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}

func (m *MockImportBatchRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
