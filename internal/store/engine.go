package store

import (
	"context"
	"database/sql"

	"homestock/internal/model"
)

// SQLCatalog adapts the items store to the engine's Catalog interface.
type SQLCatalog struct {
	DB *sql.DB
}

func (c *SQLCatalog) ListItems(ctx context.Context, householdID int64) ([]model.InventoryItem, error) {
	return ListItems(ctx, c.DB, householdID)
}

func (c *SQLCatalog) CreateItem(ctx context.Context, item *model.InventoryItem) (int64, error) {
	return CreateItem(ctx, c.DB, item)
}

func (c *SQLCatalog) UpdateItemFields(ctx context.Context, householdID, itemID int64, fields map[string]any) error {
	return UpdateItemFields(ctx, c.DB, householdID, itemID, fields)
}

// SQLAuditSink adapts the audit store to the engine's AuditSink interface.
type SQLAuditSink struct {
	DB *sql.DB
}

func (s *SQLAuditSink) Append(ctx context.Context, entry *model.AuditLogEntry) error {
	return AppendAuditEntry(ctx, s.DB, entry)
}
