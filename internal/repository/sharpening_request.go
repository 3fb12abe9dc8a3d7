package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"toolcrib/internal/domain"
)

var (
	ErrRequestNotFound = errors.New("sharpening request not found")
)

const requestColumns = `
	sr.id, sr.code, sr.tool_id, sr.requested_by, sr.reason, sr.priority, sr.status,
	sr.estimated_price, sr.estimated_delivery, sr.quote_notes, sr.quoted_at,
	sr.requested_at, sr.completed_at
`

const requestToolColumns = `
	t.name AS tool_name, t.tool_type, t.material AS tool_material,
	t.manufacturer AS tool_manufacturer, t.serial_number AS tool_serial_number,
	t.resharpening_count AS tool_resharpening_count,
	t.max_resharpening AS tool_max_resharpening
`

type SharpeningRequestRepository struct {
	db *sqlx.DB
}

func NewSharpeningRequestRepository(db *sqlx.DB) *SharpeningRequestRepository {
	return &SharpeningRequestRepository{db: db}
}

func (r *SharpeningRequestRepository) FindByID(id uuid.UUID) (*domain.SharpeningRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM sharpening_requests sr WHERE sr.id = $1`

	req := &domain.SharpeningRequest{}
	err := r.db.Get(req, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return req, nil
}

// FindByIDWithTool returns the request joined with the owning tool's summary
// fields.
func (r *SharpeningRequestRepository) FindByIDWithTool(id uuid.UUID) (*domain.RequestWithTool, error) {
	query := `
		SELECT ` + requestColumns + `, ` + requestToolColumns + `
		FROM sharpening_requests sr
		INNER JOIN tools t ON sr.tool_id = t.id
		WHERE sr.id = $1
	`

	req := &domain.RequestWithTool{}
	err := r.db.Get(req, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return req, nil
}

// List returns requests joined with tool summaries, newest requested first.
// A non-empty status narrows to an exact match.
func (r *SharpeningRequestRepository) List(status string) ([]*domain.RequestWithTool, error) {
	base := `
		SELECT ` + requestColumns + `, ` + requestToolColumns + `
		FROM sharpening_requests sr
		INNER JOIN tools t ON sr.tool_id = t.id
	`

	requests := []*domain.RequestWithTool{}

	if status != "" {
		query := base + ` WHERE sr.status = $1 ORDER BY sr.requested_at DESC`
		if err := r.db.Select(&requests, query, status); err != nil {
			return nil, err
		}
		return requests, nil
	}

	query := base + ` ORDER BY sr.requested_at DESC`
	if err := r.db.Select(&requests, query); err != nil {
		return nil, err
	}

	return requests, nil
}

// FindRecentByTool returns a tool's most recent requests, newest first.
func (r *SharpeningRequestRepository) FindRecentByTool(toolID uuid.UUID, limit int) ([]*domain.SharpeningRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM sharpening_requests sr
		WHERE sr.tool_id = $1
		ORDER BY sr.requested_at DESC
		LIMIT $2
	`

	requests := []*domain.SharpeningRequest{}
	if err := r.db.Select(&requests, query, toolID, limit); err != nil {
		return nil, err
	}

	return requests, nil
}
