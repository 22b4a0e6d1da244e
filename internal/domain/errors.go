package domain

import "errors"

var (
	ErrBatchNotFound       = errors.New("import batch not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrWorkbookUnreadable  = errors.New("workbook could not be read")
	ErrNoImportableRows    = errors.New("no valid rows to import")
	ErrInvalidInput        = errors.New("invalid input")
)
