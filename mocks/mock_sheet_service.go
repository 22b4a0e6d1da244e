package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sheetvet/internal/domain"
	"sheetvet/internal/service"
)

// MockSheetService is a mock implementation of service.SheetService.
type MockSheetService struct {
	mock.Mock
}

func (m *MockSheetService) ProcessUpload(ctx context.Context, input service.SheetUploadInput) (*domain.WorkbookResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkbookResult), args.Error(1)
}
