package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestStatusPending   = "pending"
	RequestStatusQuoted    = "quoted"
	RequestStatusCompleted = "completed"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

type SharpeningRequest struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	Code              string     `json:"code" db:"code"`
	ToolID            uuid.UUID  `json:"tool_id" db:"tool_id"`
	RequestedBy       string     `json:"requested_by" db:"requested_by"`
	Reason            *string    `json:"reason,omitempty" db:"reason"`
	Priority          string     `json:"priority" db:"priority"`
	Status            string     `json:"status" db:"status"`
	EstimatedPrice    *int       `json:"estimated_price,omitempty" db:"estimated_price"`
	EstimatedDelivery *string    `json:"estimated_delivery,omitempty" db:"estimated_delivery"`
	QuoteNotes        *string    `json:"quote_notes,omitempty" db:"quote_notes"`
	QuotedAt          *time.Time `json:"quoted_at,omitempty" db:"quoted_at"`
	RequestedAt       time.Time  `json:"requested_at" db:"requested_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// RequestWithTool is a sharpening request joined with summary fields of the
// tool it was raised against.
type RequestWithTool struct {
	SharpeningRequest
	ToolName          string  `json:"tool_name" db:"tool_name"`
	ToolType          string  `json:"tool_type" db:"tool_type"`
	ToolMaterial      *string `json:"tool_material,omitempty" db:"tool_material"`
	ToolManufacturer  *string `json:"tool_manufacturer,omitempty" db:"tool_manufacturer"`
	ToolSerialNumber  *string `json:"tool_serial_number,omitempty" db:"tool_serial_number"`
	ResharpeningCount int     `json:"resharpening_count" db:"tool_resharpening_count"`
	MaxResharpening   int     `json:"max_resharpening" db:"tool_max_resharpening"`
}
