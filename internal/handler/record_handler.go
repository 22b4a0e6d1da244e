package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sheetvet/internal/csvexport"
	"sheetvet/internal/service"
)

// RecordHandler handles persisted-record endpoints.
type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// List handles GET /api/v1/records
// @Summary List imported records
// @Description List persisted canonical records, newest batch first, with pagination
// @Tags records
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Record,meta=PagMeta} "List of records"
// @Router /records [get]
func (h *RecordHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	records, total, err := h.recordService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ExportCSV handles GET /api/v1/records/export
// @Summary Export records as CSV
// @Description Download every persisted record as a UTF-8 CSV (Excel-compatible, BOM-prefixed)
// @Tags records
// @Produce text/csv
// @Success 200 {file} binary "CSV attachment"
// @Failure 500 {object} ErrorResponseBody "Internal error"
// @Router /records/export [get]
func (h *RecordHandler) ExportCSV(c *gin.Context) {
	records, err := h.recordService.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("records")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	// BOM first so Excel detects UTF-8.
	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		log.Printf("recordHandler.ExportCSV: writing BOM: %v", err)
		return
	}

	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		log.Printf("recordHandler.ExportCSV: writing header: %v", err)
		return
	}
	if err := w.WriteRecords(records); err != nil {
		log.Printf("recordHandler.ExportCSV: writing records: %v", err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("recordHandler.ExportCSV: flushing: %v", err)
	}
}
