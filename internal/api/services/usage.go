package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"toolcrib/internal/domain"
	"toolcrib/internal/repository"
)

const (
	DefaultUsageHistoryLimit = 20
	DefaultRecentUsageLimit  = 100
)

type UsageService struct {
	db        *sqlx.DB
	toolRepo  *repository.ToolRepository
	usageRepo *repository.UsageLogRepository
}

func NewUsageService(
	db *sqlx.DB,
	toolRepo *repository.ToolRepository,
	usageRepo *repository.UsageLogRepository,
) *UsageService {
	return &UsageService{
		db:        db,
		toolRepo:  toolRepo,
		usageRepo: usageRepo,
	}
}

type RecordUsageInput struct {
	UsedBy string
	UsedAt *time.Time
	Notes  *string
}

// Record inserts a usage log and increments the tool's usage counter in one
// transaction. It returns the log and the counter after the increment so the
// caller does not need a second round trip.
func (s *UsageService) Record(ctx context.Context, toolID uuid.UUID, input RecordUsageInput) (*domain.UsageLog, int, error) {
	if _, err := s.toolRepo.FindByID(toolID); err != nil {
		return nil, 0, err
	}

	usedAt := time.Now().Truncate(time.Second)
	if input.UsedAt != nil {
		usedAt = *input.UsedAt
	}

	log := &domain.UsageLog{
		ID:     uuid.New(),
		ToolID: toolID,
		UsedBy: input.UsedBy,
		UsedAt: usedAt,
		Notes:  input.Notes,
	}
	log.Code = domain.DisplayCode("usage", log.ID)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO usage_logs (id, code, tool_id, used_by, used_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.Exec(insertQuery, log.ID, log.Code, log.ToolID, log.UsedBy, log.UsedAt, log.Notes); err != nil {
		return nil, 0, err
	}

	var newCount int
	incrementQuery := `UPDATE tools SET usage_count = usage_count + 1 WHERE id = $1 RETURNING usage_count`
	if err := tx.Get(&newCount, incrementQuery, toolID); err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}

	return log, newCount, nil
}

// History returns a tool's usage logs, newest first. The tool must exist.
func (s *UsageService) History(ctx context.Context, toolID uuid.UUID, limit int) ([]*domain.UsageLog, error) {
	if limit <= 0 {
		limit = DefaultUsageHistoryLimit
	}

	if _, err := s.toolRepo.FindByID(toolID); err != nil {
		return nil, err
	}

	return s.usageRepo.FindByTool(toolID, limit)
}

// ListRecent returns the global usage feed, newest first across all tools.
func (s *UsageService) ListRecent(ctx context.Context, limit int) ([]*domain.UsageLogWithTool, error) {
	if limit <= 0 {
		limit = DefaultRecentUsageLimit
	}

	return s.usageRepo.FindRecent(limit)
}
