package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sheetvet/internal/domain"
	"sheetvet/internal/handler"
	"sheetvet/mocks"
)

func importRequestBody() domain.ImportRequest {
	return domain.ImportRequest{
		Data: map[string][]domain.MappedRow{
			"Ledger": {{"name": "Widget", "amount": 10.0}},
		},
		Errors: map[string][]domain.RowError{},
		Source: "ledger.xlsx",
	}
}

func TestImportHandler_Create_Success(t *testing.T) {
	importSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(importSvc)

	batchID := uuid.New()
	importSvc.On("Import", mock.Anything, mock.AnythingOfType("domain.ImportRequest")).
		Return(&domain.ImportSummary{
			BatchID:  batchID,
			Imported: 1,
			Skipped:  0,
			Message:  "1 records imported",
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/imports", importRequestBody())

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, batchID.String(), data["batch_id"])
	assert.Equal(t, float64(1), data["imported"])
	assert.Equal(t, "1 records imported", data["message"])
	importSvc.AssertExpectations(t)
}

func TestImportHandler_Create_InvalidBody(t *testing.T) {
	importSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(importSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/imports", http.NoBody)
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	importSvc.AssertNotCalled(t, "Import", mock.Anything, mock.Anything)
}

func TestImportHandler_Create_NoImportableRows(t *testing.T) {
	importSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(importSvc)

	importSvc.On("Import", mock.Anything, mock.AnythingOfType("domain.ImportRequest")).
		Return(nil, domain.ErrNoImportableRows)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/imports", importRequestBody())

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NO_IMPORTABLE_ROWS", resp.Error.Code)
	assert.Equal(t, "no valid rows to import", resp.Error.Message)
}

func TestImportHandler_Create_PersistenceFailure(t *testing.T) {
	importSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(importSvc)

	importSvc.On("Import", mock.Anything, mock.AnythingOfType("domain.ImportRequest")).
		Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/imports", importRequestBody())

	h.Create(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestImportHandler_List_Success(t *testing.T) {
	importSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(importSvc)

	batches := []domain.ImportBatch{
		{ID: uuid.New(), SourceName: "ledger.xlsx", RecordCount: 3},
	}
	importSvc.On("ListBatches", mock.Anything, 0, 20).Return(batches, 1, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/imports", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Total)
	importSvc.AssertExpectations(t)
}

func TestImportHandler_List_ClampsPagination(t *testing.T) {
	importSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(importSvc)

	importSvc.On("ListBatches", mock.Anything, 0, 20).Return([]domain.ImportBatch{}, 0, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/imports?offset=-5&limit=500", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	importSvc.AssertExpectations(t)
}

func TestImportHandler_GetByID_Success(t *testing.T) {
	importSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(importSvc)

	batchID := uuid.New()
	importSvc.On("GetBatch", mock.Anything, batchID).
		Return(&domain.ImportBatch{ID: batchID, SourceName: "ledger.xlsx"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/imports/"+batchID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: batchID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	importSvc.AssertExpectations(t)
}

func TestImportHandler_GetByID_InvalidID(t *testing.T) {
	importSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(importSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/imports/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	importSvc.AssertNotCalled(t, "GetBatch", mock.Anything, mock.Anything)
}

func TestImportHandler_GetByID_NotFound(t *testing.T) {
	importSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(importSvc)

	batchID := uuid.New()
	importSvc.On("GetBatch", mock.Anything, batchID).Return(nil, domain.ErrBatchNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/imports/"+batchID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: batchID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BATCH_NOT_FOUND", resp.Error.Code)
}

func TestImportHandler_Delete_Success(t *testing.T) {
	importSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(importSvc)

	batchID := uuid.New()
	importSvc.On("DeleteBatch", mock.Anything, batchID).Return(int64(5), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/imports/"+batchID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: batchID.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(5), data["deleted"])
	importSvc.AssertExpectations(t)
}

func TestImportHandler_Delete_NotFound(t *testing.T) {
	importSvc := new(mocks.MockImportService)
	h := handler.NewImportHandler(importSvc)

	batchID := uuid.New()
	importSvc.On("DeleteBatch", mock.Anything, batchID).Return(int64(0), domain.ErrBatchNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/imports/"+batchID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: batchID.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
