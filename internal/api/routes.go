package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"toolcrib/internal/api/handlers"
)

func SetupRoutes(e *echo.Echo, db *sqlx.DB, rdb *redis.Client) {
	e.GET("/health", healthCheck)

	e.Validator = NewValidator()

	apiGroup := e.Group("/api")

	toolHandler := handlers.NewToolHandler(db, rdb)
	apiGroup.GET("/tools", toolHandler.ListTools)
	apiGroup.POST("/tools", toolHandler.CreateTool)
	apiGroup.GET("/tools/:id", toolHandler.GetTool)
	apiGroup.GET("/tools/:id/qr", toolHandler.GetToolQR)

	usageHandler := handlers.NewUsageLogHandler(db)
	apiGroup.GET("/usage-logs", usageHandler.ListRecentUsage)
	apiGroup.POST("/tools/:id/usage", usageHandler.RecordUsage)
	apiGroup.GET("/tools/:id/usage-history", usageHandler.GetUsageHistory)

	sharpeningHandler := handlers.NewSharpeningRequestHandler(db, rdb)
	apiGroup.POST("/sharpening-requests", sharpeningHandler.CreateRequest)
	apiGroup.GET("/sharpening-requests", sharpeningHandler.ListRequests)
	apiGroup.GET("/sharpening-requests/:id", sharpeningHandler.GetRequest)
	apiGroup.PATCH("/sharpening-requests/:id/quote", sharpeningHandler.QuoteRequest)
	apiGroup.PATCH("/sharpening-requests/:id/complete", sharpeningHandler.CompleteRequest)

	statsHandler := handlers.NewStatsHandler(db, rdb)
	apiGroup.GET("/stats", statsHandler.GetFleetStats)
	apiGroup.GET("/admin/stats", statsHandler.GetAdminStats)
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
