package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS households (
    id         INTEGER PRIMARY KEY,
    name       TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    household_id  INTEGER NOT NULL REFERENCES households(id),
    username      TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'member' CHECK (role IN ('admin', 'member')),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at    DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_active
    ON users(username) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS items (
    id                  INTEGER PRIMARY KEY,
    household_id        INTEGER NOT NULL REFERENCES households(id),
    name                TEXT NOT NULL,
    quantity            REAL NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    unit                TEXT NOT NULL DEFAULT 'unit',
    category            TEXT NOT NULL DEFAULT 'uncategorized',
    location            TEXT,
    low_stock_threshold REAL NOT NULL DEFAULT 1,
    notes               TEXT,
    brand               TEXT,
    size                TEXT,
    expiration_date     DATETIME,
    search_keywords     TEXT NOT NULL DEFAULT '[]',
    image               BLOB,
    image_mime          TEXT,
    created_at          DATETIME NOT NULL,
    updated_at          DATETIME NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_items_household_name
    ON items(household_id, name COLLATE NOCASE);

CREATE TABLE IF NOT EXISTS views (
    id           INTEGER PRIMARY KEY,
    household_id INTEGER NOT NULL REFERENCES households(id),
    name         TEXT NOT NULL,
    type         TEXT NOT NULL DEFAULT 'custom' CHECK (type IN ('all', 'low_stock', 'custom')),
    filters      TEXT NOT NULL DEFAULT '[]',
    sort         TEXT,
    group_by     TEXT
);

CREATE TABLE IF NOT EXISTS audit_log (
    id           TEXT PRIMARY KEY,
    household_id INTEGER NOT NULL REFERENCES households(id),
    action       TEXT NOT NULL,
    actor_id     INTEGER NOT NULL,
    item_ids     TEXT NOT NULL DEFAULT '[]',
    description  TEXT NOT NULL,
    metadata     TEXT,
    created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_audit_log_household
    ON audit_log(household_id, created_at DESC);

CREATE TABLE IF NOT EXISTS settings (
    household_id INTEGER NOT NULL REFERENCES households(id),
    key          TEXT NOT NULL,
    value        TEXT NOT NULL,
    PRIMARY KEY (household_id, key)
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{
	// Migration 1: index for category filtering and grouping.
	`CREATE INDEX IF NOT EXISTS idx_items_household_category
	     ON items(household_id, category)`,
}

// Migrate runs the database schema migrations.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
