package service_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sheetvet/internal/config"
	"sheetvet/internal/domain"
	"sheetvet/internal/port"
	"sheetvet/internal/schema"
	"sheetvet/internal/service"
	"sheetvet/internal/sheet"
	"sheetvet/mocks"
)

func testUploadConfig() config.UploadConfig {
	return config.UploadConfig{MaxFileSizeMB: 25}
}

// createMultipartFile creates a fake multipart file header and content for testing.
func createMultipartFile(filename string, content []byte, contentType string) (multipart.File, *multipart.FileHeader) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, _ := writer.CreatePart(h)
	_, _ = part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, _ := reader.ReadForm(int64(len(content) + 1024))
	file, _ := form.File["file"][0].Open()
	return file, form.File["file"][0]
}

// workbookContent returns bytes that look like a zip container. The
// reader is mocked in these tests, so only the envelope matters.
func workbookContent() []byte {
	return append([]byte("PK\x03\x04"), bytes.Repeat([]byte{0x00}, 64)...)
}

func ledgerTables() []domain.SheetTable {
	today := time.Now().Format("2006-01-02")
	return []domain.SheetTable{
		{
			Name:   "Ledger",
			Header: []string{"Name", "Amount", "Date", "Verified"},
			Rows: [][]string{
				{"Widget", "10", today, "Yes"},
			},
		},
	}
}

func TestSheetService_ProcessUpload_Success(t *testing.T) {
	reader := new(mocks.MockWorkbookReader)
	storage := new(mocks.MockObjectStorage)
	cfg := testUploadConfig()
	processor := sheet.NewProcessor(schema.NewRegistry(schema.Default()))
	svc := service.NewSheetService(reader, processor, storage, &cfg)

	file, header := createMultipartFile("ledger.xlsx", workbookContent(), domain.ContentTypeXLSX)
	defer file.Close()

	reader.On("Read", mock.Anything).Return(ledgerTables(), nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "https://bucket.s3.amazonaws.com/uploads/ledger"}, nil)

	result, err := svc.ProcessUpload(context.Background(), service.SheetUploadInput{
		File:   file,
		Header: header,
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"Ledger"}, result.SheetNames)
	assert.Len(t, result.SheetData["Ledger"], 1)
	assert.Equal(t, "Widget", result.SheetData["Ledger"][0][schema.FieldName])
	assert.Empty(t, result.ValidationErrors)

	reader.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestSheetService_ProcessUpload_XLSMAccepted(t *testing.T) {
	reader := new(mocks.MockWorkbookReader)
	storage := new(mocks.MockObjectStorage)
	cfg := testUploadConfig()
	processor := sheet.NewProcessor(schema.NewRegistry(schema.Default()))
	svc := service.NewSheetService(reader, processor, storage, &cfg)

	file, header := createMultipartFile("Macro Ledger.XLSM", workbookContent(), domain.AllowedFileTypes[domain.FileTypeXLSM])
	defer file.Close()

	reader.On("Read", mock.Anything).Return(ledgerTables(), nil)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(input port.UploadInput) bool {
		return strings.HasPrefix(input.Key, "uploads/") && strings.HasSuffix(input.Key, "_Macro_Ledger.xlsm")
	})).Return(&port.UploadOutput{Location: "https://s3/test"}, nil)

	result, err := svc.ProcessUpload(context.Background(), service.SheetUploadInput{
		File:   file,
		Header: header,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	storage.AssertExpectations(t)
}

func TestSheetService_ProcessUpload_UnsupportedExtension(t *testing.T) {
	reader := new(mocks.MockWorkbookReader)
	storage := new(mocks.MockObjectStorage)
	cfg := testUploadConfig()
	processor := sheet.NewProcessor(schema.NewRegistry(schema.Default()))
	svc := service.NewSheetService(reader, processor, storage, &cfg)

	file, header := createMultipartFile("ledger.csv", []byte("Name,Amount\n"), "text/csv")
	defer file.Close()

	result, err := svc.ProcessUpload(context.Background(), service.SheetUploadInput{
		File:   file,
		Header: header,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	reader.AssertNotCalled(t, "Read", mock.Anything)
}

func TestSheetService_ProcessUpload_FileTooLarge(t *testing.T) {
	reader := new(mocks.MockWorkbookReader)
	storage := new(mocks.MockObjectStorage)
	cfg := testUploadConfig()
	cfg.MaxFileSizeMB = 1
	processor := sheet.NewProcessor(schema.NewRegistry(schema.Default()))
	svc := service.NewSheetService(reader, processor, storage, &cfg)

	file, header := createMultipartFile("ledger.xlsx", workbookContent(), domain.ContentTypeXLSX)
	defer file.Close()
	header.Size = 2 * 1024 * 1024 // 2MB against a 1MB limit

	result, err := svc.ProcessUpload(context.Background(), service.SheetUploadInput{
		File:   file,
		Header: header,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestSheetService_ProcessUpload_UnreadableWorkbook(t *testing.T) {
	reader := new(mocks.MockWorkbookReader)
	storage := new(mocks.MockObjectStorage)
	cfg := testUploadConfig()
	processor := sheet.NewProcessor(schema.NewRegistry(schema.Default()))
	svc := service.NewSheetService(reader, processor, storage, &cfg)

	file, header := createMultipartFile("corrupt.xlsx", []byte("not a workbook"), domain.ContentTypeXLSX)
	defer file.Close()

	reader.On("Read", mock.Anything).Return(nil, domain.ErrWorkbookUnreadable)

	result, err := svc.ProcessUpload(context.Background(), service.SheetUploadInput{
		File:   file,
		Header: header,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrWorkbookUnreadable)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestSheetService_ProcessUpload_ArchiveFailureDoesNotFailUpload(t *testing.T) {
	reader := new(mocks.MockWorkbookReader)
	storage := new(mocks.MockObjectStorage)
	cfg := testUploadConfig()
	processor := sheet.NewProcessor(schema.NewRegistry(schema.Default()))
	svc := service.NewSheetService(reader, processor, storage, &cfg)

	file, header := createMultipartFile("ledger.xlsx", workbookContent(), domain.ContentTypeXLSX)
	defer file.Close()

	reader.On("Read", mock.Anything).Return(ledgerTables(), nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(nil, io.ErrUnexpectedEOF)

	result, err := svc.ProcessUpload(context.Background(), service.SheetUploadInput{
		File:   file,
		Header: header,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	storage.AssertExpectations(t)
}

func TestSheetService_ProcessUpload_ValidationErrorsSurface(t *testing.T) {
	reader := new(mocks.MockWorkbookReader)
	storage := new(mocks.MockObjectStorage)
	cfg := testUploadConfig()
	processor := sheet.NewProcessor(schema.NewRegistry(schema.Default()))
	svc := service.NewSheetService(reader, processor, storage, &cfg)

	file, header := createMultipartFile("ledger.xlsx", workbookContent(), domain.ContentTypeXLSX)
	defer file.Close()

	tables := []domain.SheetTable{
		{
			Name:   "Ledger",
			Header: []string{"Name", "Amount", "Date", "Verified"},
			Rows: [][]string{
				{"", "ten", "", ""},
			},
		},
	}
	reader.On("Read", mock.Anything).Return(tables, nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "https://s3/test"}, nil)

	result, err := svc.ProcessUpload(context.Background(), service.SheetUploadInput{
		File:   file,
		Header: header,
	})

	assert.NoError(t, err)
	errs := result.ValidationErrors["Ledger"]
	assert.NotEmpty(t, errs)
	assert.Equal(t, 2, errs[0].Row)
}
