package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolcrib/internal/domain"
	"toolcrib/internal/repository"
	"toolcrib/internal/testutil"
)

func newToolService() *ToolService {
	return NewToolService(
		repository.NewToolRepository(testDB),
		repository.NewSharpeningRequestRepository(testDB),
		repository.NewUsageLogRepository(testDB),
	)
}

func TestToolService_Register(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service := newToolService()

	t.Run("defaults applied", func(t *testing.T) {
		tool, err := service.Register(ctx, RegisterToolInput{
			Name:     fmt.Sprintf("Register Default %d", time.Now().UnixNano()),
			ToolType: "tap",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.ToolStatusActive, tool.Status)
		assert.Equal(t, 0, tool.UsageCount)
		assert.Equal(t, 0, tool.ResharpeningCount)
		assert.Equal(t, domain.DefaultMaxResharpening, tool.MaxResharpening)
		assert.Equal(t, "Demo Customer Inc.", tool.CustomerName)
		assert.True(t, strings.HasPrefix(tool.Code, "tool-"))
	})

	t.Run("explicit values kept", func(t *testing.T) {
		maxResharpening := 2
		customer := "Acme Machining"
		material := "carbide"

		tool, err := service.Register(ctx, RegisterToolInput{
			Name:            fmt.Sprintf("Register Explicit %d", time.Now().UnixNano()),
			ToolType:        "ball end mill",
			Material:        &material,
			MaxResharpening: &maxResharpening,
			CustomerName:    &customer,
		})
		require.NoError(t, err)

		assert.Equal(t, 2, tool.MaxResharpening)
		assert.Equal(t, "Acme Machining", tool.CustomerName)
		require.NotNil(t, tool.Material)
		assert.Equal(t, "carbide", *tool.Material)
	})
}

func TestToolService_GetWithHistory(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service := newToolService()

	t.Run("fresh tool has empty histories", func(t *testing.T) {
		tool := createTestTool(t, 3)

		found, requests, usage, err := service.GetWithHistory(ctx, tool.ID)
		require.NoError(t, err)
		assert.Equal(t, tool.ID, found.ID)
		assert.Empty(t, requests)
		assert.Empty(t, usage)
	})

	t.Run("histories populated after activity", func(t *testing.T) {
		tool := createTestTool(t, 3)

		sharpeningService := NewSharpeningService(testDB,
			repository.NewToolRepository(testDB),
			repository.NewSharpeningRequestRepository(testDB))
		_, err := sharpeningService.Submit(ctx, SubmitRequestInput{
			ToolID:      tool.ID,
			RequestedBy: "Test Operator",
		})
		require.NoError(t, err)

		usageService := NewUsageService(testDB,
			repository.NewToolRepository(testDB),
			repository.NewUsageLogRepository(testDB))
		_, _, err = usageService.Record(ctx, tool.ID, RecordUsageInput{UsedBy: "Test Operator"})
		require.NoError(t, err)

		_, requests, usage, err := service.GetWithHistory(ctx, tool.ID)
		require.NoError(t, err)
		assert.Len(t, requests, 1)
		assert.Len(t, usage, 1)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, _, _, err := service.GetWithHistory(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrToolNotFound)
	})
}

func TestToolService_QRCode(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	service := newToolService()

	t.Run("returns png data uri", func(t *testing.T) {
		tool := createTestTool(t, 3)

		dataURI, err := service.QRCode(ctx, tool.ID)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(dataURI, "data:image/png;base64,"))
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := service.QRCode(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrToolNotFound)
	})
}
