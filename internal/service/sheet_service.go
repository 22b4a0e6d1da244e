package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"sheetvet/internal/config"
	"sheetvet/internal/csvexport"
	"sheetvet/internal/domain"
	"sheetvet/internal/port"
	"sheetvet/internal/sheet"
)

// SheetUploadInput is the DTO for workbook upload requests.
type SheetUploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// SheetService defines the workbook upload and validation contract.
type SheetService interface {
	ProcessUpload(ctx context.Context, input SheetUploadInput) (*domain.WorkbookResult, error)
}

type sheetService struct {
	reader    port.WorkbookReader
	processor *sheet.Processor
	archiver  port.ObjectStorage
	cfg       *config.UploadConfig
}

// NewSheetService creates a new SheetService implementation.
func NewSheetService(
	reader port.WorkbookReader,
	processor *sheet.Processor,
	archiver port.ObjectStorage,
	cfg *config.UploadConfig,
) SheetService {
	return &sheetService{
		reader:    reader,
		processor: processor,
		archiver:  archiver,
		cfg:       cfg,
	}
}

func (s *sheetService) ProcessUpload(ctx context.Context, input SheetUploadInput) (*domain.WorkbookResult, error) {
	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	if input.Header.Size > s.cfg.MaxBytes() {
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	tables, err := s.reader.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	result := s.processor.Process(tables)

	log.Printf("sheetService.ProcessUpload: processed %s (%d bytes, %d sheets)",
		input.Header.Filename, len(data), len(result.SheetNames))

	// Archive best-effort; the validation result never depends on it.
	s.archive(ctx, input.Header.Filename, ext, domain.AllowedFileTypes[fileType], data)

	return result, nil
}

func (s *sheetService) archive(ctx context.Context, originalName, ext, contentType string, data []byte) {
	base := csvexport.SanitizeFilename(strings.TrimSuffix(originalName, filepath.Ext(originalName)))
	if base == "" {
		base = "workbook"
	}
	key := fmt.Sprintf("uploads/%s/%s_%s.%s", time.Now().Format("2006/01"), uuid.New(), base, ext)

	_, err := s.archiver.Upload(ctx, port.UploadInput{
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		log.Printf("sheetService.archive: failed to archive %s as %s: %v", originalName, key, err)
	}
}
