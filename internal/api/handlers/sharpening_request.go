package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"toolcrib/internal/api/dto"
	"toolcrib/internal/api/services"
	"toolcrib/internal/repository"
)

type SharpeningRequestHandler struct {
	sharpeningService *services.SharpeningService
	statsService      *services.StatsService
}

func NewSharpeningRequestHandler(db *sqlx.DB, rdb *redis.Client) *SharpeningRequestHandler {
	toolRepo := repository.NewToolRepository(db)
	requestRepo := repository.NewSharpeningRequestRepository(db)

	return &SharpeningRequestHandler{
		sharpeningService: services.NewSharpeningService(db, toolRepo, requestRepo),
		statsService:      services.NewStatsService(repository.NewStatsRepository(db), rdb),
	}
}

type CreateSharpeningRequest struct {
	ToolID      string  `json:"tool_id" validate:"required"`
	RequestedBy string  `json:"requested_by" validate:"required"`
	Reason      *string `json:"reason,omitempty"`
	Priority    string  `json:"priority,omitempty" validate:"omitempty,oneof=low normal high"`
}

type CreateSharpeningResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type QuoteRequest struct {
	EstimatedPrice    int     `json:"estimated_price" validate:"gte=0"`
	EstimatedDelivery string  `json:"estimated_delivery" validate:"required"`
	QuoteNotes        *string `json:"quote_notes,omitempty"`
}

// CreateRequest godoc
// @Summary Submit a sharpening request
// @Description Create a pending request and flag the tool as needing sharpening
// @Tags sharpening
// @Accept json
// @Produce json
// @Param request body CreateSharpeningRequest true "Request"
// @Success 201 {object} CreateSharpeningResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/sharpening-requests [post]
func (h *SharpeningRequestHandler) CreateRequest(c echo.Context) error {
	var req CreateSharpeningRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if err := c.Validate(&req); err != nil {
		return ErrUnprocessable(c, err.Error())
	}

	toolID, err := uuid.Parse(req.ToolID)
	if err != nil {
		return ErrNotFound(c, "tool not found")
	}

	created, err := h.sharpeningService.Submit(c.Request().Context(), services.SubmitRequestInput{
		ToolID:      toolID,
		RequestedBy: req.RequestedBy,
		Reason:      req.Reason,
		Priority:    req.Priority,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrToolNotFound):
			return ErrNotFound(c, "tool not found")
		case errors.Is(err, services.ErrResharpeningLimit):
			return ErrBadRequest(c, "resharpening ceiling reached")
		default:
			return ErrInternalServerError(c)
		}
	}

	h.statsService.Invalidate(c.Request().Context())

	return c.JSON(http.StatusCreated, CreateSharpeningResponse{
		ID:      created.ID.String(),
		Code:    created.Code,
		Message: "sharpening request submitted",
	})
}

// ListRequests godoc
// @Summary List sharpening requests
// @Description Requests joined with tool summaries, newest first, optional status filter
// @Tags sharpening
// @Produce json
// @Param status query string false "Status filter (pending | quoted | completed)"
// @Success 200 {array} dto.RequestWithTool
// @Router /api/sharpening-requests [get]
func (h *SharpeningRequestHandler) ListRequests(c echo.Context) error {
	requests, err := h.sharpeningService.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.RequestsWithToolFromDomain(requests))
}

// GetRequest godoc
// @Summary Get a sharpening request
// @Description A single request joined with its tool summary
// @Tags sharpening
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.RequestWithTool
// @Failure 404 {object} map[string]string
// @Router /api/sharpening-requests/{id} [get]
func (h *SharpeningRequestHandler) GetRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound(c, "sharpening request not found")
	}

	req, err := h.sharpeningService.Get(c.Request().Context(), requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return ErrNotFound(c, "sharpening request not found")
		}
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.RequestWithToolFromDomain(req))
}

// QuoteRequest godoc
// @Summary Quote a sharpening request
// @Description Record the vendor estimate and move the request to quoted
// @Tags sharpening
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body QuoteRequest true "Quote"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/sharpening-requests/{id}/quote [patch]
func (h *SharpeningRequestHandler) QuoteRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound(c, "sharpening request not found")
	}

	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if err := c.Validate(&req); err != nil {
		return ErrUnprocessable(c, err.Error())
	}

	err = h.sharpeningService.Quote(c.Request().Context(), requestID, services.QuoteInput{
		EstimatedPrice:    req.EstimatedPrice,
		EstimatedDelivery: req.EstimatedDelivery,
		QuoteNotes:        req.QuoteNotes,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRequestNotFound):
			return ErrNotFound(c, "sharpening request not found")
		case errors.Is(err, services.ErrRequestAlreadyCompleted):
			return ErrConflict(c, "sharpening request already completed")
		default:
			return ErrInternalServerError(c)
		}
	}

	h.statsService.Invalidate(c.Request().Context())

	return c.JSON(http.StatusOK, map[string]string{"message": "quote sent"})
}

// CompleteRequest godoc
// @Summary Complete a sharpening request
// @Description Close the request and restore the tool (active, usage reset, counter bumped)
// @Tags sharpening
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/sharpening-requests/{id}/complete [patch]
func (h *SharpeningRequestHandler) CompleteRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound(c, "sharpening request not found")
	}

	err = h.sharpeningService.Complete(c.Request().Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRequestNotFound):
			return ErrNotFound(c, "sharpening request not found")
		case errors.Is(err, services.ErrRequestAlreadyCompleted):
			return ErrConflict(c, "sharpening request already completed")
		default:
			return ErrInternalServerError(c)
		}
	}

	h.statsService.Invalidate(c.Request().Context())

	return c.JSON(http.StatusOK, map[string]string{"message": "resharpening completed"})
}
