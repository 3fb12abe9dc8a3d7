package dto

import (
	"time"

	"toolcrib/internal/domain"
)

type SharpeningRequest struct {
	ID                string     `json:"id"`
	Code              string     `json:"code"`
	ToolID            string     `json:"tool_id"`
	RequestedBy       string     `json:"requested_by"`
	Reason            *string    `json:"reason,omitempty"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	EstimatedPrice    *int       `json:"estimated_price,omitempty"`
	EstimatedDelivery *string    `json:"estimated_delivery,omitempty"`
	QuoteNotes        *string    `json:"quote_notes,omitempty"`
	QuotedAt          *time.Time `json:"quoted_at,omitempty"`
	RequestedAt       time.Time  `json:"requested_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

// RequestWithTool adds the owning tool's summary to a request, for the list
// and detail endpoints.
type RequestWithTool struct {
	SharpeningRequest
	ToolName          string  `json:"tool_name"`
	ToolType          string  `json:"tool_type"`
	ToolMaterial      *string `json:"tool_material,omitempty"`
	ToolManufacturer  *string `json:"tool_manufacturer,omitempty"`
	ToolSerialNumber  *string `json:"tool_serial_number,omitempty"`
	ResharpeningCount int     `json:"resharpening_count"`
	MaxResharpening   int     `json:"max_resharpening"`
}

func SharpeningRequestFromDomain(req *domain.SharpeningRequest) *SharpeningRequest {
	if req == nil {
		return nil
	}

	return &SharpeningRequest{
		ID:                req.ID.String(),
		Code:              req.Code,
		ToolID:            req.ToolID.String(),
		RequestedBy:       req.RequestedBy,
		Reason:            req.Reason,
		Priority:          req.Priority,
		Status:            req.Status,
		EstimatedPrice:    req.EstimatedPrice,
		EstimatedDelivery: req.EstimatedDelivery,
		QuoteNotes:        req.QuoteNotes,
		QuotedAt:          req.QuotedAt,
		RequestedAt:       req.RequestedAt,
		CompletedAt:       req.CompletedAt,
	}
}

func SharpeningRequestsFromDomain(requests []*domain.SharpeningRequest) []*SharpeningRequest {
	result := make([]*SharpeningRequest, len(requests))
	for i, req := range requests {
		result[i] = SharpeningRequestFromDomain(req)
	}
	return result
}

func RequestWithToolFromDomain(req *domain.RequestWithTool) *RequestWithTool {
	if req == nil {
		return nil
	}

	return &RequestWithTool{
		SharpeningRequest: *SharpeningRequestFromDomain(&req.SharpeningRequest),
		ToolName:          req.ToolName,
		ToolType:          req.ToolType,
		ToolMaterial:      req.ToolMaterial,
		ToolManufacturer:  req.ToolManufacturer,
		ToolSerialNumber:  req.ToolSerialNumber,
		ResharpeningCount: req.ResharpeningCount,
		MaxResharpening:   req.MaxResharpening,
	}
}

func RequestsWithToolFromDomain(requests []*domain.RequestWithTool) []*RequestWithTool {
	result := make([]*RequestWithTool, len(requests))
	for i, req := range requests {
		result[i] = RequestWithToolFromDomain(req)
	}
	return result
}
