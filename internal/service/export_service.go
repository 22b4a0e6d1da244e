package service

import (
	"context"
	"fmt"

	"sheetvet/internal/domain"
	"sheetvet/internal/port"
)

// ExportFilename is the fixed attachment name for validated-workbook downloads.
const ExportFilename = "validated_data.xlsx"

// ExportService defines the validated-workbook download contract.
type ExportService interface {
	BuildWorkbook(ctx context.Context, req domain.ExportRequest) ([]byte, string, error)
}

type exportService struct {
	writer port.WorkbookWriter
}

// NewExportService creates a new ExportService implementation.
func NewExportService(writer port.WorkbookWriter) ExportService {
	return &exportService{writer: writer}
}

// BuildWorkbook renders the request's sheet data into workbook bytes and
// returns them with the download filename.
func (s *exportService) BuildWorkbook(_ context.Context, req domain.ExportRequest) ([]byte, string, error) {
	if len(req.SheetNames) == 0 {
		return nil, "", fmt.Errorf("%w: sheetNames must not be empty", domain.ErrInvalidInput)
	}

	data, err := s.writer.Write(req.SheetNames, req.SheetData)
	if err != nil {
		return nil, "", fmt.Errorf("building workbook: %w", err)
	}
	return data, ExportFilename, nil
}
