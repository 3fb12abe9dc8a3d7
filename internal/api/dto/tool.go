package dto

import (
	"time"

	"toolcrib/internal/domain"
)

type Tool struct {
	ID                string    `json:"id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	ToolType          string    `json:"tool_type"`
	Material          *string   `json:"material,omitempty"`
	DiameterMM        *float64  `json:"diameter_mm,omitempty"`
	LengthMM          *float64  `json:"length_mm,omitempty"`
	FluteCount        *int      `json:"flute_count,omitempty"`
	Coating           *string   `json:"coating,omitempty"`
	Manufacturer      *string   `json:"manufacturer,omitempty"`
	SerialNumber      *string   `json:"serial_number,omitempty"`
	PurchaseDate      *string   `json:"purchase_date,omitempty"`
	Status            string    `json:"status"`
	UsageCount        int       `json:"usage_count"`
	ResharpeningCount int       `json:"resharpening_count"`
	MaxResharpening   int       `json:"max_resharpening"`
	Location          *string   `json:"location,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
	CustomerName      string    `json:"customer_name"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToolDetail is a tool with its recent sharpening and usage histories
// embedded, as returned by GET /api/tools/:id.
type ToolDetail struct {
	Tool
	SharpeningHistory []*SharpeningRequest `json:"sharpening_history"`
	UsageHistory      []*UsageLog          `json:"usage_history"`
}

func ToolFromDomain(tool *domain.Tool) *Tool {
	if tool == nil {
		return nil
	}

	return &Tool{
		ID:                tool.ID.String(),
		Code:              tool.Code,
		Name:              tool.Name,
		ToolType:          tool.ToolType,
		Material:          tool.Material,
		DiameterMM:        tool.DiameterMM,
		LengthMM:          tool.LengthMM,
		FluteCount:        tool.FluteCount,
		Coating:           tool.Coating,
		Manufacturer:      tool.Manufacturer,
		SerialNumber:      tool.SerialNumber,
		PurchaseDate:      tool.PurchaseDate,
		Status:            tool.Status,
		UsageCount:        tool.UsageCount,
		ResharpeningCount: tool.ResharpeningCount,
		MaxResharpening:   tool.MaxResharpening,
		Location:          tool.Location,
		Notes:             tool.Notes,
		CustomerName:      tool.CustomerName,
		CreatedAt:         tool.CreatedAt,
	}
}

func ToolsFromDomain(tools []*domain.Tool) []*Tool {
	result := make([]*Tool, len(tools))
	for i, tool := range tools {
		result[i] = ToolFromDomain(tool)
	}
	return result
}

func ToolDetailFromDomain(tool *domain.Tool, requests []*domain.SharpeningRequest, usage []*domain.UsageLog) *ToolDetail {
	return &ToolDetail{
		Tool:              *ToolFromDomain(tool),
		SharpeningHistory: SharpeningRequestsFromDomain(requests),
		UsageHistory:      UsageLogsFromDomain(usage),
	}
}
