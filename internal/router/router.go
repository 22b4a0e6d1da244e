package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "sheetvet/docs"
	"sheetvet/internal/config"
	"sheetvet/internal/handler"
	"sheetvet/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	sheetH *handler.SheetHandler,
	importH *handler.ImportHandler,
	recordH *handler.RecordHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Workbook validation routes
	sheets := v1.Group("/sheets")
	sheets.POST("/upload", sheetH.Upload)
	sheets.POST("/export", sheetH.Export)

	// Import batch routes
	imports := v1.Group("/imports")
	imports.POST("", importH.Create)
	imports.GET("", importH.List)
	imports.GET("/:id", importH.GetByID)
	imports.DELETE("/:id", importH.Delete)

	// Persisted record routes
	records := v1.Group("/records")
	records.GET("", recordH.List)
	records.GET("/export", recordH.ExportCSV)

	return r
}
