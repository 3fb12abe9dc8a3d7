package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"toolcrib/internal/domain"
)

var (
	ErrToolNotFound = errors.New("tool not found")
)

const toolColumns = `
	id, code, name, tool_type, material, diameter_mm, length_mm, flute_count,
	coating, manufacturer, serial_number, purchase_date, status, usage_count,
	resharpening_count, max_resharpening, location, notes, customer_name, created_at
`

type ToolRepository struct {
	db *sqlx.DB
}

func NewToolRepository(db *sqlx.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

// Create inserts a freshly registered tool. The identifier and display code
// are assigned here, never by the caller.
func (r *ToolRepository) Create(tool *domain.Tool) error {
	tool.ID = uuid.New()
	tool.Code = domain.DisplayCode("tool", tool.ID)

	query := `
		INSERT INTO tools (
			id, code, name, tool_type, material, diameter_mm, length_mm, flute_count,
			coating, manufacturer, serial_number, purchase_date, status,
			max_resharpening, location, notes, customer_name
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
		RETURNING usage_count, resharpening_count, created_at
	`

	return r.db.QueryRow(query,
		tool.ID, tool.Code, tool.Name, tool.ToolType, tool.Material,
		tool.DiameterMM, tool.LengthMM, tool.FluteCount, tool.Coating,
		tool.Manufacturer, tool.SerialNumber, tool.PurchaseDate, tool.Status,
		tool.MaxResharpening, tool.Location, tool.Notes, tool.CustomerName,
	).Scan(&tool.UsageCount, &tool.ResharpeningCount, &tool.CreatedAt)
}

func (r *ToolRepository) FindByID(id uuid.UUID) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`

	tool := &domain.Tool{}
	err := r.db.Get(tool, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}

	return tool, nil
}

// List returns all tools ordered by name. A non-empty status narrows the
// result to an exact status match.
func (r *ToolRepository) List(status string) ([]*domain.Tool, error) {
	tools := []*domain.Tool{}

	if status != "" {
		query := `SELECT ` + toolColumns + ` FROM tools WHERE status = $1 ORDER BY name ASC`
		if err := r.db.Select(&tools, query, status); err != nil {
			return nil, err
		}
		return tools, nil
	}

	query := `SELECT ` + toolColumns + ` FROM tools ORDER BY name ASC`
	if err := r.db.Select(&tools, query); err != nil {
		return nil, err
	}

	return tools, nil
}
