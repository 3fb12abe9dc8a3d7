package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"toolcrib/internal/config"
	"toolcrib/internal/repository"
)

// Demo fixtures for development and demos. This is the only place the
// database is ever seeded; the server never writes fixture data.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg := config.Load()
	db, err := repository.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Starting seed process...")

	if err := truncateTables(db.DB()); err != nil {
		log.Fatalf("Failed to truncate tables: %v", err)
	}

	toolIDs, err := seedTools(db.DB())
	if err != nil {
		log.Fatalf("Failed to seed tools: %v", err)
	}
	if err := seedSharpeningRequests(db.DB(), toolIDs); err != nil {
		log.Fatalf("Failed to seed sharpening requests: %v", err)
	}
	if err := seedUsageLogs(db.DB(), toolIDs); err != nil {
		log.Fatalf("Failed to seed usage logs: %v", err)
	}

	log.Println("Seed process completed!")
}

func truncateTables(db *sqlx.DB) error {
	log.Println("Truncating all seed tables...")

	tables := []string{
		"usage_logs",
		"sharpening_requests",
		"tools",
	}

	for _, table := range tables {
		query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
		log.Printf("Truncated table: %s", table)
	}

	return nil
}

type demoTool struct {
	code              string
	name              string
	toolType          string
	material          string
	diameterMM        *float64
	lengthMM          *float64
	fluteCount        *int
	coating           string
	manufacturer      string
	serialNumber      string
	purchaseDate      string
	status            string
	usageCount        int
	resharpeningCount int
	maxResharpening   int
	location          string
}

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func seedTools(db *sqlx.DB) (map[string]uuid.UUID, error) {
	log.Println("Seeding tools...")

	demoTools := []demoTool{
		{"tool-001", "Carbide Anti-Vibration End Mill AE-VMS d10", "square end mill", "carbide", f(10.0), f(75.0), i(4), "DUARISE", "OSG", "OSG-AEVMS-010", "2025-11-15", "active", 150, 1, 3, "Shelf A-1"},
		{"tool-002", "Spiral Tap A-SFT M8", "tap", "HSS", f(8.0), f(70.0), i(3), "V coating", "OSG", "OSG-ASFT-M8", "2025-12-05", "active", 45, 0, 1, "Shelf A-2"},
		{"tool-003", "Igetalloy Insert WNMG080408N-GU", "turning insert", "carbide", nil, nil, nil, "AC8025P", "Sumitomo Electric", "SUM-WNMG-001", "2026-01-20", "sharpening_needed", 280, 2, 3, "Shelf B-1"},
		{"tool-004", "Sumiboron Insert CNGA120408", "turning insert", "cBN", nil, nil, nil, "", "Sumitomo Electric", "SUM-CNGA-002", "2025-10-10", "active", 85, 0, 2, "Shelf B-2"},
		{"tool-005", "Multi Drill MDW0850NHGS3", "carbide drill", "carbide", f(8.5), f(90.0), i(2), "Dex", "Sumitomo Electric", "SUM-MDW-085", "2026-02-01", "active", 20, 0, 5, "Shelf B-3"},
		{"tool-006", "Milling Insert BDMT11T308ER-JT", "milling insert", "carbide", nil, nil, nil, "PR1535", "Kyocera", "KYO-BDMT-001", "2026-01-15", "active", 110, 1, 3, "Shelf C-1"},
		{"tool-007", "Cermet Insert TNMG160404", "turning insert", "cermet", nil, nil, nil, "PV720", "Kyocera", "KYO-TNMG-001", "2025-12-20", "active", 60, 0, 2, "Shelf C-2"},
		{"tool-008", "Impact Miracle End Mill VQMHVRBD1000R100", "radius end mill", "carbide", f(10.0), f(80.0), i(4), "MIRACLE", "Mitsubishi Materials", "MMC-VQMHV-01", "2026-01-10", "active", 45, 1, 5, "Shelf D-1"},
		{"tool-009", "WSTAR Drill MVS0500X05S050", "carbide drill", "carbide", f(5.0), f(100.0), i(2), "DP1020", "Mitsubishi Materials", "MMC-MVS-050", "2025-09-05", "sharpening_needed", 300, 3, 5, "Shelf D-2"},
		{"tool-010", "Turning Insert CNMG120408-TM", "turning insert", "carbide", nil, nil, nil, "T9215", "Tungaloy", "TNG-CNMG-001", "2026-02-15", "active", 15, 0, 3, "Shelf E-1"},
		{"tool-011", "TAC Mill Insert LNMU0303ZER-ML", "milling insert", "carbide", nil, nil, nil, "AH3135", "Tungaloy", "TNG-LNMU-001", "2025-11-20", "active", 140, 1, 3, "Shelf E-2"},
		{"tool-012", "Ceramic Insert SNGN120408", "turning insert", "ceramic", nil, nil, nil, "HC2", "NTK Cutting Tools", "NTK-SNGN-001", "2026-02-10", "sharpening_needed", 320, 2, 3, "Shelf F-1"},
		{"tool-013", "SS Bar Insert DCGT11T302M-CF", "turning insert", "carbide", nil, nil, nil, "QM3", "NTK Cutting Tools", "NTK-DCGT-001", "2026-01-05", "active", 55, 0, 2, "Shelf F-2"},
		{"tool-014", "Mugen Coating Micro End Mill MSE230 d0.5", "square end mill", "carbide", f(0.5), f(40.0), i(2), "Mugen coating", "NS Tool", "NS-MSE-005", "2026-02-20", "active", 10, 0, 1, "Shelf G-1"},
		{"tool-015", "Long Neck Ball End Mill MRB230 R1x10", "ball end mill", "carbide", f(2.0), f(50.0), i(2), "Mugen coating", "NS Tool", "NS-MRB-R1", "2025-12-10", "active", 85, 1, 3, "Shelf G-2"},
	}

	query := `
		INSERT INTO tools (
			id, code, name, tool_type, material, diameter_mm, length_mm, flute_count,
			coating, manufacturer, serial_number, purchase_date, status, usage_count,
			resharpening_count, max_resharpening, location
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
	`

	ids := make(map[string]uuid.UUID, len(demoTools))
	for _, t := range demoTools {
		id := uuid.New()
		if _, err := db.Exec(query,
			id, t.code, t.name, t.toolType, t.material, t.diameterMM, t.lengthMM,
			t.fluteCount, t.coating, t.manufacturer, t.serialNumber, t.purchaseDate,
			t.status, t.usageCount, t.resharpeningCount, t.maxResharpening, t.location,
		); err != nil {
			return nil, fmt.Errorf("insert %s: %w", t.code, err)
		}
		ids[t.code] = id
	}

	log.Printf("Seeded %d tools", len(demoTools))
	return ids, nil
}

func seedSharpeningRequests(db *sqlx.DB, toolIDs map[string]uuid.UUID) error {
	log.Println("Seeding sharpening requests...")

	query := `
		INSERT INTO sharpening_requests (
			id, code, tool_id, requested_by, reason, priority, status,
			estimated_price, estimated_delivery, quote_notes, quoted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	price := 8500
	delivery := "2026-03-05"
	notes := "Standard turnaround available"

	if _, err := db.Exec(query,
		uuid.New(), "req-001", toolIDs["tool-003"], "Taro Tanaka",
		"Heavy edge wear, surface finish degrading", "high", "quoted",
		price, delivery, notes, "2026-02-26 10:00:00",
	); err != nil {
		return err
	}

	if _, err := db.Exec(query,
		uuid.New(), "req-002", toolIDs["tool-012"], "Hanako Suzuki",
		"Noticeable increase in cutting resistance", "normal", "pending",
		nil, nil, nil, nil,
	); err != nil {
		return err
	}

	log.Println("Seeded 2 sharpening requests")
	return nil
}

func seedUsageLogs(db *sqlx.DB, toolIDs map[string]uuid.UUID) error {
	log.Println("Seeding usage logs...")

	logs := []struct {
		code   string
		tool   string
		usedBy string
		usedAt string
		notes  *string
	}{
		{"usage-001", "tool-001", "Ichiro Yamada", "2026-02-25 09:15:00", strPtr("Machining center #1")},
		{"usage-002", "tool-001", "Jiro Sato", "2026-02-26 14:30:00", strPtr("Machining center #2")},
		{"usage-003", "tool-001", "Ichiro Yamada", "2026-02-27 10:00:00", nil},
		{"usage-004", "tool-004", "Hanako Suzuki", "2026-02-24 08:45:00", strPtr("NC lathe A")},
		{"usage-005", "tool-004", "Taro Tanaka", "2026-02-26 16:20:00", strPtr("NC lathe A")},
		{"usage-006", "tool-008", "Jiro Sato", "2026-02-27 11:30:00", strPtr("5-axis machine")},
		{"usage-007", "tool-014", "Saburo Ito", "2026-02-28 09:00:00", strPtr("Micro machining center")},
	}

	query := `
		INSERT INTO usage_logs (id, code, tool_id, used_by, used_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, l := range logs {
		if _, err := db.Exec(query, uuid.New(), l.code, toolIDs[l.tool], l.usedBy, l.usedAt, l.notes); err != nil {
			return fmt.Errorf("insert %s: %w", l.code, err)
		}
	}

	log.Printf("Seeded %d usage logs", len(logs))
	return nil
}

func strPtr(s string) *string { return &s }
