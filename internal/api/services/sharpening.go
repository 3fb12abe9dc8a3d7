package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"toolcrib/internal/domain"
	"toolcrib/internal/repository"
)

var (
	// ErrResharpeningLimit means the tool has used up its resharpening
	// ceiling and no further request may be submitted for it.
	ErrResharpeningLimit = errors.New("resharpening ceiling reached")

	// ErrRequestAlreadyCompleted guards quote and complete against acting on
	// a finished request, which would otherwise re-increment the tool's
	// resharpening counter or silently overwrite a settled quote.
	ErrRequestAlreadyCompleted = errors.New("sharpening request already completed")
)

type SharpeningService struct {
	db          *sqlx.DB
	toolRepo    *repository.ToolRepository
	requestRepo *repository.SharpeningRequestRepository
}

func NewSharpeningService(
	db *sqlx.DB,
	toolRepo *repository.ToolRepository,
	requestRepo *repository.SharpeningRequestRepository,
) *SharpeningService {
	return &SharpeningService{
		db:          db,
		toolRepo:    toolRepo,
		requestRepo: requestRepo,
	}
}

type SubmitRequestInput struct {
	ToolID      uuid.UUID
	RequestedBy string
	Reason      *string
	Priority    string
}

// Submit creates a pending request and flags the tool as needing sharpening,
// in one transaction. A tool with an open request may be submitted again; the
// status write just re-asserts sharpening_needed.
func (s *SharpeningService) Submit(ctx context.Context, input SubmitRequestInput) (*domain.SharpeningRequest, error) {
	tool, err := s.toolRepo.FindByID(input.ToolID)
	if err != nil {
		return nil, err
	}

	if tool.ResharpeningExhausted() {
		return nil, ErrResharpeningLimit
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}

	req := &domain.SharpeningRequest{
		ID:          uuid.New(),
		ToolID:      input.ToolID,
		RequestedBy: input.RequestedBy,
		Reason:      input.Reason,
		Priority:    priority,
		Status:      domain.RequestStatusPending,
	}
	req.Code = domain.DisplayCode("req", req.ID)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO sharpening_requests (id, code, tool_id, requested_by, reason, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING requested_at
	`
	if err := tx.QueryRow(insertQuery,
		req.ID, req.Code, req.ToolID, req.RequestedBy, req.Reason, req.Priority, req.Status,
	).Scan(&req.RequestedAt); err != nil {
		return nil, err
	}

	flagToolQuery := `UPDATE tools SET status = $1 WHERE id = $2`
	if _, err := tx.Exec(flagToolQuery, domain.ToolStatusSharpeningNeeded, req.ToolID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return req, nil
}

type QuoteInput struct {
	EstimatedPrice    int
	EstimatedDelivery string
	QuoteNotes        *string
}

// Quote records the vendor's estimate and moves the request to quoted. A
// quoted request may be re-quoted (vendors revise estimates); a completed one
// may not.
func (s *SharpeningService) Quote(ctx context.Context, requestID uuid.UUID, input QuoteInput) error {
	req, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		return err
	}

	if req.Status == domain.RequestStatusCompleted {
		return ErrRequestAlreadyCompleted
	}

	query := `
		UPDATE sharpening_requests
		SET status = $1, estimated_price = $2, estimated_delivery = $3,
			quote_notes = $4, quoted_at = now()
		WHERE id = $5
	`
	_, err = s.db.ExecContext(ctx, query,
		domain.RequestStatusQuoted, input.EstimatedPrice, input.EstimatedDelivery,
		input.QuoteNotes, requestID,
	)
	return err
}

// Complete closes the request and restores the tool in one transaction: the
// tool goes back to active with a fresh usage counter and one more
// resharpening consumed. Completing from pending is legal; a request does not
// have to be quoted first.
func (s *SharpeningService) Complete(ctx context.Context, requestID uuid.UUID) error {
	req, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		return err
	}

	if req.Status == domain.RequestStatusCompleted {
		return ErrRequestAlreadyCompleted
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	closeRequestQuery := `
		UPDATE sharpening_requests
		SET status = $1, completed_at = now()
		WHERE id = $2
	`
	if _, err := tx.Exec(closeRequestQuery, domain.RequestStatusCompleted, requestID); err != nil {
		return err
	}

	restoreToolQuery := `
		UPDATE tools
		SET status = $1, usage_count = 0, resharpening_count = resharpening_count + 1
		WHERE id = $2
	`
	if _, err := tx.Exec(restoreToolQuery, domain.ToolStatusActive, req.ToolID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SharpeningService) Get(ctx context.Context, requestID uuid.UUID) (*domain.RequestWithTool, error) {
	return s.requestRepo.FindByIDWithTool(requestID)
}

func (s *SharpeningService) List(ctx context.Context, status string) ([]*domain.RequestWithTool, error) {
	return s.requestRepo.List(status)
}
