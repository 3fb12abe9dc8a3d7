package domain

import (
	"time"

	"github.com/google/uuid"
)

type UsageLog struct {
	ID     uuid.UUID `json:"id" db:"id"`
	Code   string    `json:"code" db:"code"`
	ToolID uuid.UUID `json:"tool_id" db:"tool_id"`
	UsedBy string    `json:"used_by" db:"used_by"`
	UsedAt time.Time `json:"used_at" db:"used_at"`
	Notes  *string   `json:"notes,omitempty" db:"notes"`
}

// UsageLogWithTool is a usage log joined with the owning tool's name and type,
// used by the global usage feed.
type UsageLogWithTool struct {
	UsageLog
	ToolName string `json:"tool_name" db:"tool_name"`
	ToolType string `json:"tool_type" db:"tool_type"`
}
