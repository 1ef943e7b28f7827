// Package engine implements the inventory reconciliation engine: it
// normalizes batches of raw quantity-change requests and merges them into a
// household's catalog with per-item fault isolation.
package engine

import (
	"context"
	"fmt"

	"homestock/internal/model"
)

// Catalog is the backing item store. Implementations must apply only the
// supplied fields on UpdateItemFields and preserve item identity.
type Catalog interface {
	ListItems(ctx context.Context, householdID int64) ([]model.InventoryItem, error)
	CreateItem(ctx context.Context, item *model.InventoryItem) (int64, error)
	UpdateItemFields(ctx context.Context, householdID, itemID int64, fields map[string]any) error
}

// AuditSink records applied batches. Appends are best-effort: the processor
// logs failures and reports them out-of-band, never through batch results.
type AuditSink interface {
	Append(ctx context.Context, entry *model.AuditLogEntry) error
}

// ValidationError reports a malformed or missing field in a single update
// request. It always fails only the item it belongs to, never the batch.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
