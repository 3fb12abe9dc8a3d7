package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ToolStatusActive           = "active"
	ToolStatusSharpeningNeeded = "sharpening_needed"
)

// DefaultMaxResharpening is the resharpening ceiling applied when a tool is
// registered without one.
const DefaultMaxResharpening = 5

type Tool struct {
	ID                uuid.UUID `json:"id" db:"id"`
	Code              string    `json:"code" db:"code"`
	Name              string    `json:"name" db:"name"`
	ToolType          string    `json:"tool_type" db:"tool_type"`
	Material          *string   `json:"material,omitempty" db:"material"`
	DiameterMM        *float64  `json:"diameter_mm,omitempty" db:"diameter_mm"`
	LengthMM          *float64  `json:"length_mm,omitempty" db:"length_mm"`
	FluteCount        *int      `json:"flute_count,omitempty" db:"flute_count"`
	Coating           *string   `json:"coating,omitempty" db:"coating"`
	Manufacturer      *string   `json:"manufacturer,omitempty" db:"manufacturer"`
	SerialNumber      *string   `json:"serial_number,omitempty" db:"serial_number"`
	PurchaseDate      *string   `json:"purchase_date,omitempty" db:"purchase_date"`
	Status            string    `json:"status" db:"status"`
	UsageCount        int       `json:"usage_count" db:"usage_count"`
	ResharpeningCount int       `json:"resharpening_count" db:"resharpening_count"`
	MaxResharpening   int       `json:"max_resharpening" db:"max_resharpening"`
	Location          *string   `json:"location,omitempty" db:"location"`
	Notes             *string   `json:"notes,omitempty" db:"notes"`
	CustomerName      string    `json:"customer_name" db:"customer_name"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// ResharpeningExhausted reports whether the tool has no resharpening headroom
// left, i.e. a new sharpening request must be rejected.
func (t *Tool) ResharpeningExhausted() bool {
	return t.ResharpeningCount >= t.MaxResharpening
}
