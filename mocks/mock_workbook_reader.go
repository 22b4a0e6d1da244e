package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"

	"sheetvet/internal/domain"
)

// MockWorkbookReader is a mock implementation of port.WorkbookReader.
type MockWorkbookReader struct {
	mock.Mock
}

func (m *MockWorkbookReader) Read(r io.Reader) ([]domain.SheetTable, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SheetTable), args.Error(1)
}
