package port

import (
	"io"

	"sheetvet/internal/domain"
)

// WorkbookReader parses a workbook stream into per-sheet tables: sheet
// name, header row, data rows, in workbook sheet order.
type WorkbookReader interface {
	Read(r io.Reader) ([]domain.SheetTable, error)
}

// WorkbookWriter renders sheet data into a downloadable binary workbook,
// one worksheet per name in the given order.
type WorkbookWriter interface {
	Write(sheetNames []string, sheetData map[string][]domain.MappedRow) ([]byte, error)
}
