package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolcrib/internal/domain"
	"toolcrib/internal/testutil"
)

func TestStatsHandler_GetFleetStats(t *testing.T) {
	testutil.RequireDB(t, testDB)
	handler := NewStatsHandler(testDB, nil)
	e := newTestEcho()

	createHandlerTool(t, 3)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetFleetStats(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats domain.FleetStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.GreaterOrEqual(t, stats.TotalTools, 1)
	assert.GreaterOrEqual(t, stats.TotalTools, stats.ActiveTools)
}

func TestStatsHandler_GetAdminStats(t *testing.T) {
	testutil.RequireDB(t, testDB)
	handler := NewStatsHandler(testDB, nil)
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetAdminStats(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats domain.AdminStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.GreaterOrEqual(t, stats.TotalToolsManaged, 0)
}
