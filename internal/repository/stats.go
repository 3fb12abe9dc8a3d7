package repository

import (
	"github.com/jmoiron/sqlx"

	"toolcrib/internal/domain"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) FleetStats() (*domain.FleetStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM tools) AS total_tools,
			(SELECT COUNT(*) FROM tools WHERE status = 'active') AS active_tools,
			(SELECT COUNT(*) FROM tools WHERE status = 'sharpening_needed') AS needs_sharpening,
			(SELECT COUNT(*) FROM sharpening_requests WHERE status = 'pending') AS pending_requests,
			(SELECT COUNT(*) FROM sharpening_requests WHERE status = 'quoted') AS quoted_requests
	`

	stats := &domain.FleetStats{}
	if err := r.db.Get(stats, query); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *StatsRepository) AdminStats() (*domain.AdminStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM sharpening_requests WHERE status = 'pending') AS pending_requests,
			(SELECT COUNT(*) FROM sharpening_requests WHERE status = 'quoted') AS quoted_requests,
			(SELECT COUNT(*) FROM sharpening_requests
				WHERE status = 'completed'
				AND completed_at >= date_trunc('month', now())) AS completed_this_month,
			(SELECT COUNT(*) FROM tools) AS total_tools_managed
	`

	stats := &domain.AdminStats{}
	if err := r.db.Get(stats, query); err != nil {
		return nil, err
	}

	return stats, nil
}
