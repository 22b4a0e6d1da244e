package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// DeletedResponse represents the result of an import rollback.
type DeletedResponse struct {
	Deleted int64 `json:"deleted" example:"42"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}

// --- Canonical Row Schema (for documentation) ---

// LedgerRow documents the canonical fields the default schema produces for
// each mapped row. Custom schemas carry their own canonical field names.
type LedgerRow struct {
	Name     string  `json:"name" example:"Office chairs"`
	Amount   float64 `json:"amount" example:"1250.50"`
	Date     string  `json:"date" example:"2025-03-12"`
	Verified string  `json:"verified" example:"Yes"`
}
