package mocks

import (
	"github.com/stretchr/testify/mock"

	"sheetvet/internal/domain"
)

// MockWorkbookWriter is a mock implementation of port.WorkbookWriter.
type MockWorkbookWriter struct {
	mock.Mock
}

func (m *MockWorkbookWriter) Write(sheetNames []string, sheetData map[string][]domain.MappedRow) ([]byte, error) {
	args := m.Called(sheetNames, sheetData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
