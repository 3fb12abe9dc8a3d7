package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"toolcrib/internal/api/dto"
	"toolcrib/internal/api/services"
	"toolcrib/internal/repository"
)

type UsageLogHandler struct {
	usageService *services.UsageService
}

func NewUsageLogHandler(db *sqlx.DB) *UsageLogHandler {
	toolRepo := repository.NewToolRepository(db)
	usageRepo := repository.NewUsageLogRepository(db)

	return &UsageLogHandler{
		usageService: services.NewUsageService(db, toolRepo, usageRepo),
	}
}

type RecordUsageRequest struct {
	UsedBy string     `json:"used_by" validate:"required"`
	UsedAt *time.Time `json:"used_at,omitempty"`
	Notes  *string    `json:"notes,omitempty"`
}

type RecordUsageResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Message       string `json:"message"`
	NewUsageCount int    `json:"new_usage_count"`
}

// RecordUsage godoc
// @Summary Record tool usage
// @Description Append a usage log and increment the tool's usage counter
// @Tags usage
// @Accept json
// @Produce json
// @Param id path string true "Tool ID"
// @Param request body RecordUsageRequest true "Usage record"
// @Success 201 {object} RecordUsageResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/tools/{id}/usage [post]
func (h *UsageLogHandler) RecordUsage(c echo.Context) error {
	toolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound(c, "tool not found")
	}

	var req RecordUsageRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if err := c.Validate(&req); err != nil {
		return ErrUnprocessable(c, err.Error())
	}

	log, newCount, err := h.usageService.Record(c.Request().Context(), toolID, services.RecordUsageInput{
		UsedBy: req.UsedBy,
		UsedAt: req.UsedAt,
		Notes:  req.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrToolNotFound) {
			return ErrNotFound(c, "tool not found")
		}
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusCreated, RecordUsageResponse{
		ID:            log.ID.String(),
		Code:          log.Code,
		Message:       "usage recorded",
		NewUsageCount: newCount,
	})
}

// GetUsageHistory godoc
// @Summary Per-tool usage history
// @Description A tool's usage logs, newest first
// @Tags usage
// @Produce json
// @Param id path string true "Tool ID"
// @Param limit query int false "Max entries" default(20)
// @Success 200 {array} dto.UsageLog
// @Failure 404 {object} map[string]string
// @Router /api/tools/{id}/usage-history [get]
func (h *UsageLogHandler) GetUsageHistory(c echo.Context) error {
	toolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound(c, "tool not found")
	}

	limit := parseLimit(c.QueryParam("limit"), services.DefaultUsageHistoryLimit)

	logs, err := h.usageService.History(c.Request().Context(), toolID, limit)
	if err != nil {
		if errors.Is(err, repository.ErrToolNotFound) {
			return ErrNotFound(c, "tool not found")
		}
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.UsageLogsFromDomain(logs))
}

// ListRecentUsage godoc
// @Summary Global usage feed
// @Description Newest usage logs across all tools, joined with tool name/type
// @Tags usage
// @Produce json
// @Param limit query int false "Max entries" default(100)
// @Success 200 {array} dto.UsageLogWithTool
// @Router /api/usage-logs [get]
func (h *UsageLogHandler) ListRecentUsage(c echo.Context) error {
	limit := parseLimit(c.QueryParam("limit"), services.DefaultRecentUsageLimit)

	logs, err := h.usageService.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.UsageLogsWithToolFromDomain(logs))
}

func parseLimit(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
