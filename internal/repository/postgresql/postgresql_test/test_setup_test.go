package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/pkg/database"
)

// TestDatabaseSetup holds the connection to the test database
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to the database named by TEST_DATABASE_URL and
// ensures the schema exists. Returns (nil, nil) when the variable is unset so
// callers can skip.
func NewTestDatabase(ctx context.Context) (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, nil
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	if err := setup.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return setup, nil
}

func (t *TestDatabaseSetup) createTables(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sites (
			id TEXT PRIMARY KEY,
			location_name TEXT NOT NULL,
			latitude TEXT NOT NULL,
			longitude TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id TEXT PRIMARY KEY,
			first_name_th TEXT NOT NULL DEFAULT '',
			last_name_th TEXT NOT NULL DEFAULT '',
			first_name_en TEXT NOT NULL DEFAULT '',
			last_name_en TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			site_id TEXT REFERENCES sites(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS check_ins (
			id TEXT PRIMARY KEY,
			employee_id TEXT,
			latitude TEXT,
			longitude TEXT,
			location_name TEXT,
			timestamp TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := t.DB.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create test table: %w", err)
		}
	}
	return nil
}

// TruncateAllTables removes all rows from the test tables
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tables := []string{
		"check_ins",
		"employees",
		"sites",
	}

	for _, table := range tables {
		_, err := t.DB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}
	return nil
}

// Close closes the database connection
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
