package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"toolcrib/internal/api/services"
	"toolcrib/internal/repository"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(db *sqlx.DB, rdb *redis.Client) *StatsHandler {
	return &StatsHandler{
		statsService: services.NewStatsService(repository.NewStatsRepository(db), rdb),
	}
}

// GetFleetStats godoc
// @Summary Fleet statistics
// @Description Tool and request counts across the fleet
// @Tags stats
// @Produce json
// @Success 200 {object} domain.FleetStats
// @Router /api/stats [get]
func (h *StatsHandler) GetFleetStats(c echo.Context) error {
	stats, err := h.statsService.FleetStats(c.Request().Context())
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, stats)
}

// GetAdminStats godoc
// @Summary Admin statistics
// @Description Request workload counts, including completions this calendar month
// @Tags stats
// @Produce json
// @Success 200 {object} domain.AdminStats
// @Router /api/admin/stats [get]
func (h *StatsHandler) GetAdminStats(c echo.Context) error {
	stats, err := h.statsService.AdminStats(c.Request().Context())
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, stats)
}
