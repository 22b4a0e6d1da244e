package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sheetvet/internal/domain"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) BuildWorkbook(ctx context.Context, req domain.ExportRequest) ([]byte, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
