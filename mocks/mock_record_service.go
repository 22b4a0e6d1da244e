package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sheetvet/internal/domain"
)

// MockRecordService is a mock implementation of service.RecordService.
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) List(ctx context.Context, offset, limit int) ([]domain.Record, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Record), args.Int(1), args.Error(2)
}

func (m *MockRecordService) ListAll(ctx context.Context) ([]domain.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}
