package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"sheetvet/internal/domain"
	"sheetvet/internal/port"
	"sheetvet/internal/schema"
	"sheetvet/internal/sheet"
)

// ImportService defines the contract for persisting validated rows.
type ImportService interface {
	Import(ctx context.Context, req domain.ImportRequest) (*domain.ImportSummary, error)
	ListBatches(ctx context.Context, offset, limit int) ([]domain.ImportBatch, int, error)
	GetBatch(ctx context.Context, id uuid.UUID) (*domain.ImportBatch, error)
	DeleteBatch(ctx context.Context, id uuid.UUID) (int64, error)
}

type importService struct {
	records  port.RecordRepository
	batches  port.ImportBatchRepository
	registry *schema.Registry
}

// NewImportService creates a new ImportService implementation.
func NewImportService(
	records port.RecordRepository,
	batches port.ImportBatchRepository,
	registry *schema.Registry,
) ImportService {
	return &importService{
		records:  records,
		batches:  batches,
		registry: registry,
	}
}

// Import filters the request's rows down to the importable subset, creates a
// batch and inserts records sheet by sheet. Each sheet's insert is atomic; a
// failure aborts the remaining sheets but keeps what already landed.
func (s *importService) Import(ctx context.Context, req domain.ImportRequest) (*domain.ImportSummary, error) {
	batchID := uuid.New()

	// Sheets are visited in sorted name order so imports are deterministic.
	names := make([]string, 0, len(req.Data))
	total := 0
	for name, rows := range req.Data {
		names = append(names, name)
		total += len(rows)
	}
	sort.Strings(names)

	perSheet := make(map[string][]domain.Record, len(names))
	importable := 0
	for _, name := range names {
		sch := s.registry.Resolve(name)
		rows := req.Data[name]
		for _, i := range sheet.ImportableIndexes(rows, req.Errors[name], sch.KeyField()) {
			rowNumber := i + sheet.DataStartRow
			rec, err := buildRecord(batchID, name, rowNumber, rows[i], sch.KeyField())
			if err != nil {
				return nil, fmt.Errorf("importService.Import: encoding %s row %d: %w", name, rowNumber, err)
			}
			perSheet[name] = append(perSheet[name], rec)
			importable++
		}
	}

	if importable == 0 {
		return nil, domain.ErrNoImportableRows
	}

	batch := &domain.ImportBatch{
		ID:         batchID,
		SourceName: req.Source,
	}
	if err := s.batches.Create(ctx, batch); err != nil {
		return nil, fmt.Errorf("importService.Import: creating batch: %w", err)
	}

	inserted := 0
	for _, name := range names {
		recs := perSheet[name]
		if len(recs) == 0 {
			continue
		}
		n, err := s.records.InsertMany(ctx, recs)
		if err != nil {
			// Sheets inserted before the failure stay; record what landed.
			if inserted > 0 {
				if uerr := s.batches.UpdateRecordCount(ctx, batchID, inserted); uerr != nil {
					log.Printf("importService.Import: updating record count after failure: %v", uerr)
				}
			}
			return nil, fmt.Errorf("importService.Import: inserting sheet %q: %w", name, err)
		}
		inserted += n
	}

	if err := s.batches.UpdateRecordCount(ctx, batchID, inserted); err != nil {
		return nil, fmt.Errorf("importService.Import: updating record count: %w", err)
	}

	log.Printf("importService.Import: batch %s imported %d of %d rows from %q",
		batchID, inserted, total, req.Source)

	return &domain.ImportSummary{
		BatchID:  batchID,
		Imported: inserted,
		Skipped:  total - inserted,
		Message:  fmt.Sprintf("%d records imported", inserted),
	}, nil
}

func (s *importService) ListBatches(ctx context.Context, offset, limit int) ([]domain.ImportBatch, int, error) {
	return s.batches.List(ctx, offset, limit)
}

func (s *importService) GetBatch(ctx context.Context, id uuid.UUID) (*domain.ImportBatch, error) {
	return s.batches.GetByID(ctx, id)
}

// DeleteBatch rolls back an import: the batch's records go first, then the
// batch row itself. Returns the number of records removed.
func (s *importService) DeleteBatch(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, err := s.batches.GetByID(ctx, id); err != nil {
		return 0, err
	}

	deleted, err := s.records.DeleteByBatch(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("importService.DeleteBatch: %w", err)
	}
	if err := s.batches.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("importService.DeleteBatch: removing batch: %w", err)
	}

	log.Printf("importService.DeleteBatch: batch %s rolled back, %d records deleted", id, deleted)
	return deleted, nil
}

// buildRecord extracts the well-known canonical fields into columns and keeps
// the complete mapped row as JSON.
func buildRecord(batchID uuid.UUID, sheetName string, rowNumber int, row domain.MappedRow, keyField string) (domain.Record, error) {
	fields, err := json.Marshal(row)
	if err != nil {
		return domain.Record{}, err
	}

	rec := domain.Record{
		ID:        uuid.New(),
		BatchID:   batchID,
		SheetName: sheetName,
		RowNumber: rowNumber,
		Name:      row.String(keyField),
		Verified:  row.String(schema.FieldVerified),
		Fields:    fields,
	}
	if amount, ok := row.Float(schema.FieldAmount); ok {
		rec.Amount = &amount
	}
	// JSON round trips turn mapped dates back into strings, so parse
	// rather than type-assert.
	if entryDate, ok := sheet.ParseDate(row[schema.FieldDate]); ok {
		rec.EntryDate = &entryDate
	}
	return rec, nil
}
