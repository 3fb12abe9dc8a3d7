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

type ToolHandler struct {
	toolService  *services.ToolService
	statsService *services.StatsService
}

func NewToolHandler(db *sqlx.DB, rdb *redis.Client) *ToolHandler {
	toolRepo := repository.NewToolRepository(db)
	requestRepo := repository.NewSharpeningRequestRepository(db)
	usageRepo := repository.NewUsageLogRepository(db)

	return &ToolHandler{
		toolService:  services.NewToolService(toolRepo, requestRepo, usageRepo),
		statsService: services.NewStatsService(repository.NewStatsRepository(db), rdb),
	}
}

type CreateToolRequest struct {
	Name            string   `json:"name" validate:"required"`
	ToolType        string   `json:"tool_type" validate:"required"`
	Material        *string  `json:"material,omitempty"`
	DiameterMM      *float64 `json:"diameter_mm,omitempty"`
	LengthMM        *float64 `json:"length_mm,omitempty"`
	FluteCount      *int     `json:"flute_count,omitempty"`
	Coating         *string  `json:"coating,omitempty"`
	Manufacturer    *string  `json:"manufacturer,omitempty"`
	SerialNumber    *string  `json:"serial_number,omitempty"`
	PurchaseDate    *string  `json:"purchase_date,omitempty"`
	Location        *string  `json:"location,omitempty"`
	MaxResharpening *int     `json:"max_resharpening,omitempty" validate:"omitempty,min=1"`
	Notes           *string  `json:"notes,omitempty"`
	CustomerName    *string  `json:"customer_name,omitempty"`
}

type CreateToolResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListTools godoc
// @Summary List tools
// @Description List all tools, optionally filtered by exact status, ordered by name
// @Tags tools
// @Produce json
// @Param status query string false "Status filter (active | sharpening_needed)"
// @Success 200 {array} dto.Tool
// @Router /api/tools [get]
func (h *ToolHandler) ListTools(c echo.Context) error {
	tools, err := h.toolService.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.ToolsFromDomain(tools))
}

// GetTool godoc
// @Summary Get a tool
// @Description Get a tool with its recent sharpening and usage histories
// @Tags tools
// @Produce json
// @Param id path string true "Tool ID"
// @Success 200 {object} dto.ToolDetail
// @Failure 404 {object} map[string]string
// @Router /api/tools/{id} [get]
func (h *ToolHandler) GetTool(c echo.Context) error {
	toolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound(c, "tool not found")
	}

	tool, requests, usage, err := h.toolService.GetWithHistory(c.Request().Context(), toolID)
	if err != nil {
		if errors.Is(err, repository.ErrToolNotFound) {
			return ErrNotFound(c, "tool not found")
		}
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.ToolDetailFromDomain(tool, requests, usage))
}

// CreateTool godoc
// @Summary Register a tool
// @Description Register a new tool; it starts active with zeroed counters
// @Tags tools
// @Accept json
// @Produce json
// @Param request body CreateToolRequest true "Tool descriptor"
// @Success 201 {object} CreateToolResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/tools [post]
func (h *ToolHandler) CreateTool(c echo.Context) error {
	var req CreateToolRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if err := c.Validate(&req); err != nil {
		return ErrUnprocessable(c, err.Error())
	}

	tool, err := h.toolService.Register(c.Request().Context(), services.RegisterToolInput{
		Name:            req.Name,
		ToolType:        req.ToolType,
		Material:        req.Material,
		DiameterMM:      req.DiameterMM,
		LengthMM:        req.LengthMM,
		FluteCount:      req.FluteCount,
		Coating:         req.Coating,
		Manufacturer:    req.Manufacturer,
		SerialNumber:    req.SerialNumber,
		PurchaseDate:    req.PurchaseDate,
		Location:        req.Location,
		MaxResharpening: req.MaxResharpening,
		Notes:           req.Notes,
		CustomerName:    req.CustomerName,
	})
	if err != nil {
		return ErrInternalServerError(c)
	}

	h.statsService.Invalidate(c.Request().Context())

	return c.JSON(http.StatusCreated, CreateToolResponse{
		ID:      tool.ID.String(),
		Code:    tool.Code,
		Message: "tool registered",
	})
}

// GetToolQR godoc
// @Summary Get a tool's QR code
// @Description Encode the tool's scan payload as a base64 PNG data URI
// @Tags tools
// @Produce json
// @Param id path string true "Tool ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tools/{id}/qr [get]
func (h *ToolHandler) GetToolQR(c echo.Context) error {
	toolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound(c, "tool not found")
	}

	dataURI, err := h.toolService.QRCode(c.Request().Context(), toolID)
	if err != nil {
		if errors.Is(err, repository.ErrToolNotFound) {
			return ErrNotFound(c, "tool not found")
		}
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"qr_code": dataURI,
		"tool_id": toolID.String(),
	})
}
