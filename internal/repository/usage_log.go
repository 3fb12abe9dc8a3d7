package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"toolcrib/internal/domain"
)

type UsageLogRepository struct {
	db *sqlx.DB
}

func NewUsageLogRepository(db *sqlx.DB) *UsageLogRepository {
	return &UsageLogRepository{db: db}
}

// FindByTool returns a tool's usage logs, newest first.
func (r *UsageLogRepository) FindByTool(toolID uuid.UUID, limit int) ([]*domain.UsageLog, error) {
	query := `
		SELECT id, code, tool_id, used_by, used_at, notes
		FROM usage_logs
		WHERE tool_id = $1
		ORDER BY used_at DESC
		LIMIT $2
	`

	logs := []*domain.UsageLog{}
	if err := r.db.Select(&logs, query, toolID, limit); err != nil {
		return nil, err
	}

	return logs, nil
}

// FindRecent returns the newest usage logs across all tools, joined with the
// owning tool's name and type.
func (r *UsageLogRepository) FindRecent(limit int) ([]*domain.UsageLogWithTool, error) {
	query := `
		SELECT u.id, u.code, u.tool_id, u.used_by, u.used_at, u.notes,
			t.name AS tool_name, t.tool_type
		FROM usage_logs u
		INNER JOIN tools t ON u.tool_id = t.id
		ORDER BY u.used_at DESC
		LIMIT $1
	`

	logs := []*domain.UsageLogWithTool{}
	if err := r.db.Select(&logs, query, limit); err != nil {
		return nil, err
	}

	return logs, nil
}
