package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolcrib/internal/domain"
	"toolcrib/internal/testutil"
)

func newTestTool(ts int64) *domain.Tool {
	return &domain.Tool{
		Name:            fmt.Sprintf("Test End Mill %d", ts),
		ToolType:        "square end mill",
		Status:          domain.ToolStatusActive,
		MaxResharpening: domain.DefaultMaxResharpening,
		CustomerName:    "Test Customer",
	}
}

func TestToolRepository_Create(t *testing.T) {
	testutil.RequireDB(t, testDB)

	repo := NewToolRepository(testDB)
	tool := newTestTool(time.Now().UnixNano())

	err := repo.Create(tool)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, tool.ID)
	assert.True(t, strings.HasPrefix(tool.Code, "tool-"))
	assert.Equal(t, 0, tool.UsageCount)
	assert.Equal(t, 0, tool.ResharpeningCount)
	assert.False(t, tool.CreatedAt.IsZero())
}

func TestToolRepository_FindByID(t *testing.T) {
	testutil.RequireDB(t, testDB)

	repo := NewToolRepository(testDB)
	tool := newTestTool(time.Now().UnixNano())
	require.NoError(t, repo.Create(tool))

	found, err := repo.FindByID(tool.ID)
	require.NoError(t, err)
	assert.Equal(t, tool.ID, found.ID)
	assert.Equal(t, tool.Name, found.Name)
	assert.Equal(t, tool.Code, found.Code)
	assert.Equal(t, domain.ToolStatusActive, found.Status)
}

func TestToolRepository_FindByID_NotFound(t *testing.T) {
	testutil.RequireDB(t, testDB)

	repo := NewToolRepository(testDB)

	_, err := repo.FindByID(uuid.New())
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestToolRepository_List(t *testing.T) {
	testutil.RequireDB(t, testDB)

	repo := NewToolRepository(testDB)
	ts := time.Now().UnixNano()

	active := newTestTool(ts)
	require.NoError(t, repo.Create(active))

	flagged := newTestTool(ts + 1)
	require.NoError(t, repo.Create(flagged))
	_, err := testDB.Exec(`UPDATE tools SET status = $1 WHERE id = $2`,
		domain.ToolStatusSharpeningNeeded, flagged.ID)
	require.NoError(t, err)

	t.Run("no filter returns both", func(t *testing.T) {
		tools, err := repo.List("")
		require.NoError(t, err)
		assert.True(t, containsTool(tools, active.ID))
		assert.True(t, containsTool(tools, flagged.ID))
	})

	t.Run("status filter is exact", func(t *testing.T) {
		tools, err := repo.List(domain.ToolStatusSharpeningNeeded)
		require.NoError(t, err)
		assert.False(t, containsTool(tools, active.ID))
		assert.True(t, containsTool(tools, flagged.ID))
	})

	t.Run("ordered by name", func(t *testing.T) {
		tools, err := repo.List("")
		require.NoError(t, err)
		for i := 1; i < len(tools); i++ {
			assert.LessOrEqual(t, tools[i-1].Name, tools[i].Name)
		}
	})
}

func containsTool(tools []*domain.Tool, id uuid.UUID) bool {
	for _, tool := range tools {
		if tool.ID == id {
			return true
		}
	}
	return false
}
