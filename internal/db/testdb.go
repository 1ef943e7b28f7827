package db

import (
	"database/sql"
	"testing"
)

// NewTestDB returns a migrated in-memory database for tests.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	// Every pooled connection to :memory: would see its own empty database.
	database.SetMaxOpenConns(1)

	if err := Migrate(database); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return database
}
