package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sheetvet/internal/config"
	"sheetvet/internal/handler"
	"sheetvet/internal/port"
	"sheetvet/internal/repository/postgres"
	"sheetvet/internal/router"
	"sheetvet/internal/schema"
	"sheetvet/internal/service"
	"sheetvet/internal/sheet"
	"sheetvet/internal/storage/noop"
	s3storage "sheetvet/internal/storage/s3"
	"sheetvet/internal/xlsx"
)

// @title sheetvet API
// @version 1.0
// @description Spreadsheet ingestion service: validates uploaded Excel workbooks against configurable schemas, imports the clean rows to Postgres, and re-exports validated data.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	recordRepo := postgres.NewRecordRepo(db)
	batchRepo := postgres.NewImportBatchRepo(db)

	// Initialize the schema registry and sheet engine
	registry := schema.NewRegistry(schema.Default())
	processor := sheet.NewProcessor(registry)

	// Initialize workbook I/O
	reader := xlsx.NewReader()
	writer := xlsx.NewWriter(registry)

	// Initialize archival storage
	var archiver port.ObjectStorage
	switch cfg.Archive.Provider {
	case config.ArchiveProviderS3:
		archiver, err = s3storage.NewS3Client(&cfg.Archive)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	default:
		archiver = noop.NewNoopArchiver()
	}

	// Initialize services
	sheetSvc := service.NewSheetService(reader, processor, archiver, &cfg.Upload)
	importSvc := service.NewImportService(recordRepo, batchRepo, registry)
	exportSvc := service.NewExportService(writer)
	recordSvc := service.NewRecordService(recordRepo)

	// Initialize handlers
	sheetH := handler.NewSheetHandler(sheetSvc, exportSvc)
	importH := handler.NewImportHandler(importSvc)
	recordH := handler.NewRecordHandler(recordSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, sheetH, importH, recordH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
