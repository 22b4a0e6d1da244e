package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sheetvet/internal/domain"
	"sheetvet/internal/service"
)

// SheetHandler handles workbook upload, validation, and export endpoints.
type SheetHandler struct {
	sheetService  service.SheetService
	exportService service.ExportService
}

// NewSheetHandler creates a new SheetHandler.
func NewSheetHandler(sheetService service.SheetService, exportService service.ExportService) *SheetHandler {
	return &SheetHandler{sheetService: sheetService, exportService: exportService}
}

// Upload handles POST /api/v1/sheets/upload
// @Summary Upload and validate a workbook
// @Description Upload an Excel workbook (XLSX or XLSM); every sheet is parsed, validated against its schema, and mapped to canonical rows
// @Tags sheets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook to validate (XLSX or XLSM)"
// @Success 200 {object} Response{data=domain.WorkbookResult} "Validation result"
// @Failure 400 {object} ErrorResponseBody "Missing file, unsupported type, oversized, or unreadable workbook"
// @Failure 500 {object} ErrorResponseBody "Internal error"
// @Router /sheets/upload [post]
func (h *SheetHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.sheetService.ProcessUpload(c.Request.Context(), service.SheetUploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Export handles POST /api/v1/sheets/export
// @Summary Export validated data as a workbook
// @Description Render previously validated sheet data back into an XLSX download
// @Tags sheets
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body domain.ExportRequest true "Sheet names and data to export"
// @Success 200 {file} binary "Workbook attachment"
// @Failure 400 {object} ErrorResponseBody "Empty sheet names or malformed body"
// @Failure 500 {object} ErrorResponseBody "Internal error"
// @Router /sheets/export [post]
func (h *SheetHandler) Export(c *gin.Context) {
	var req domain.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	data, filename, err := h.exportService.BuildWorkbook(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK, domain.ContentTypeXLSX, data)
}
