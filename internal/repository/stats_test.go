package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolcrib/internal/domain"
	"toolcrib/internal/testutil"
)

func TestStatsRepository_FleetStats(t *testing.T) {
	testutil.RequireDB(t, testDB)

	toolRepo := NewToolRepository(testDB)
	repo := NewStatsRepository(testDB)

	before, err := repo.FleetStats()
	require.NoError(t, err)

	tool := newTestTool(time.Now().UnixNano())
	require.NoError(t, toolRepo.Create(tool))
	insertTestRequest(t, tool.ID, domain.RequestStatusPending, time.Now())

	after, err := repo.FleetStats()
	require.NoError(t, err)

	assert.Equal(t, before.TotalTools+1, after.TotalTools)
	assert.Equal(t, before.ActiveTools+1, after.ActiveTools)
	assert.Equal(t, before.PendingRequests+1, after.PendingRequests)
}

func TestStatsRepository_AdminStats(t *testing.T) {
	testutil.RequireDB(t, testDB)

	toolRepo := NewToolRepository(testDB)
	repo := NewStatsRepository(testDB)

	before, err := repo.AdminStats()
	require.NoError(t, err)

	tool := newTestTool(time.Now().UnixNano())
	require.NoError(t, toolRepo.Create(tool))

	id := insertTestRequest(t, tool.ID, domain.RequestStatusCompleted, time.Now())
	_, err = testDB.Exec(`UPDATE sharpening_requests SET completed_at = now() WHERE id = $1`, id)
	require.NoError(t, err)

	after, err := repo.AdminStats()
	require.NoError(t, err)

	assert.Equal(t, before.TotalToolsManaged+1, after.TotalToolsManaged)
	assert.Equal(t, before.CompletedThisMonth+1, after.CompletedThisMonth)
}
