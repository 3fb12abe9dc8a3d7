package repository

import (
	"log"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"

	"toolcrib/internal/testutil"
)

var testDB *sqlx.DB

func TestMain(m *testing.M) {
	log.Println("[TestMain] Starting test setup for repository package")

	db, err := testutil.SetupTestDB("../../.env.test", "../../migrations")
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
