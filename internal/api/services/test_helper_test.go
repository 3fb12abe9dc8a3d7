package services

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"toolcrib/internal/domain"
	"toolcrib/internal/repository"
	"toolcrib/internal/testutil"
)

var testDB *sqlx.DB

func TestMain(m *testing.M) {
	log.Println("[TestMain] Starting test setup for services package")

	db, err := testutil.SetupTestDB("../../../.env.test", "../../../migrations")
	if err != nil {
		log.Printf("[TestMain] Test database unavailable, DB tests will skip: %v", err)
	} else {
		log.Println("[TestMain] Test database connected successfully")
		testDB = db
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

// createTestTool registers a tool through the repository with a unique name so
// tests never collide on shared state.
func createTestTool(t *testing.T, maxResharpening int) *domain.Tool {
	t.Helper()

	tool := &domain.Tool{
		Name:            fmt.Sprintf("Test Drill %d", time.Now().UnixNano()),
		ToolType:        "carbide drill",
		Status:          domain.ToolStatusActive,
		MaxResharpening: maxResharpening,
		CustomerName:    "Test Customer",
	}
	require.NoError(t, repository.NewToolRepository(testDB).Create(tool))
	return tool
}
