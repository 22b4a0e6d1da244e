package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sheetvet/internal/domain"
	"sheetvet/internal/service"
)

// ImportHandler handles record import and import batch endpoints.
type ImportHandler struct {
	importService service.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// Create handles POST /api/v1/imports
// @Summary Import validated rows
// @Description Persist the importable subset of previously validated sheet data as canonical records under a new import batch
// @Tags imports
// @Accept json
// @Produce json
// @Param request body domain.ImportRequest true "Validated sheet data, its validation errors, and the source filename"
// @Success 201 {object} Response{data=domain.ImportSummary} "Import summary"
// @Failure 400 {object} ErrorResponseBody "Malformed body or no valid rows to import"
// @Failure 500 {object} ErrorResponseBody "Persistence failure"
// @Router /imports [post]
func (h *ImportHandler) Create(c *gin.Context) {
	var req domain.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	summary, err := h.importService.Import(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, summary)
}

// List handles GET /api/v1/imports
// @Summary List import batches
// @Description List import batches, newest first, with pagination
// @Tags imports
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.ImportBatch,meta=PagMeta} "List of batches"
// @Router /imports [get]
func (h *ImportHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	batches, total, err := h.importService.ListBatches(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, batches, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/imports/:id
// @Summary Get an import batch
// @Description Get a single import batch by ID
// @Tags imports
// @Produce json
// @Param id path string true "Batch ID (UUID)"
// @Success 200 {object} Response{data=domain.ImportBatch} "Import batch"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Batch not found"
// @Router /imports/{id} [get]
func (h *ImportHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid batch ID")
		return
	}

	batch, err := h.importService.GetBatch(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, batch)
}

// Delete handles DELETE /api/v1/imports/:id
// @Summary Roll back an import batch
// @Description Delete an import batch and every record it inserted
// @Tags imports
// @Produce json
// @Param id path string true "Batch ID (UUID)"
// @Success 200 {object} Response{data=DeletedResponse} "Number of records removed"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Batch not found"
// @Router /imports/{id} [delete]
func (h *ImportHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid batch ID")
		return
	}

	deleted, err := h.importService.DeleteBatch(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": deleted})
}

// pagination reads the offset/limit query parameters with the shared
// defaults and bounds.
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
