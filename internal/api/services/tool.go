package services

import (
	"context"

	"github.com/google/uuid"

	"toolcrib/internal/domain"
	"toolcrib/internal/qr"
	"toolcrib/internal/repository"
)

const (
	sharpeningHistoryLimit = 5
	usageHistoryLimit      = 10
)

// defaultCustomerName is applied when registration omits the customer.
const defaultCustomerName = "Demo Customer Inc."

type ToolService struct {
	toolRepo    *repository.ToolRepository
	requestRepo *repository.SharpeningRequestRepository
	usageRepo   *repository.UsageLogRepository
}

func NewToolService(
	toolRepo *repository.ToolRepository,
	requestRepo *repository.SharpeningRequestRepository,
	usageRepo *repository.UsageLogRepository,
) *ToolService {
	return &ToolService{
		toolRepo:    toolRepo,
		requestRepo: requestRepo,
		usageRepo:   usageRepo,
	}
}

type RegisterToolInput struct {
	Name            string
	ToolType        string
	Material        *string
	DiameterMM      *float64
	LengthMM        *float64
	FluteCount      *int
	Coating         *string
	Manufacturer    *string
	SerialNumber    *string
	PurchaseDate    *string
	Location        *string
	MaxResharpening *int
	Notes           *string
	CustomerName    *string
}

// Register persists a new tool. Fresh tools always start active with zeroed
// usage and resharpening counters.
func (s *ToolService) Register(ctx context.Context, input RegisterToolInput) (*domain.Tool, error) {
	maxResharpening := domain.DefaultMaxResharpening
	if input.MaxResharpening != nil {
		maxResharpening = *input.MaxResharpening
	}

	customerName := defaultCustomerName
	if input.CustomerName != nil {
		customerName = *input.CustomerName
	}

	tool := &domain.Tool{
		Name:            input.Name,
		ToolType:        input.ToolType,
		Material:        input.Material,
		DiameterMM:      input.DiameterMM,
		LengthMM:        input.LengthMM,
		FluteCount:      input.FluteCount,
		Coating:         input.Coating,
		Manufacturer:    input.Manufacturer,
		SerialNumber:    input.SerialNumber,
		PurchaseDate:    input.PurchaseDate,
		Status:          domain.ToolStatusActive,
		MaxResharpening: maxResharpening,
		Location:        input.Location,
		Notes:           input.Notes,
		CustomerName:    customerName,
	}

	if err := s.toolRepo.Create(tool); err != nil {
		return nil, err
	}

	return tool, nil
}

// GetWithHistory returns the tool plus its most recent sharpening requests
// and usage logs, both newest first.
func (s *ToolService) GetWithHistory(ctx context.Context, toolID uuid.UUID) (*domain.Tool, []*domain.SharpeningRequest, []*domain.UsageLog, error) {
	tool, err := s.toolRepo.FindByID(toolID)
	if err != nil {
		return nil, nil, nil, err
	}

	requests, err := s.requestRepo.FindRecentByTool(toolID, sharpeningHistoryLimit)
	if err != nil {
		return nil, nil, nil, err
	}

	usage, err := s.usageRepo.FindByTool(toolID, usageHistoryLimit)
	if err != nil {
		return nil, nil, nil, err
	}

	return tool, requests, usage, nil
}

func (s *ToolService) List(ctx context.Context, status string) ([]*domain.Tool, error) {
	return s.toolRepo.List(status)
}

// QRCode verifies the tool exists and returns its scan payload encoded as a
// base64 PNG data URI.
func (s *ToolService) QRCode(ctx context.Context, toolID uuid.UUID) (string, error) {
	tool, err := s.toolRepo.FindByID(toolID)
	if err != nil {
		return "", err
	}

	return qr.DataURI(qr.ToolPayload(tool.ID.String()))
}
