package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"homestock/internal/model"
)

// AppendAuditEntry records one batch in the audit log. Callers treat this as
// best-effort; the entry is expected to be pre-truncated.
func AppendAuditEntry(ctx context.Context, db *sql.DB, entry *model.AuditLogEntry) error {
	itemIDs, err := json.Marshal(entry.ItemIDs)
	if err != nil {
		return fmt.Errorf("encoding item ids: %w", err)
	}

	var metadata any
	if entry.Metadata != nil {
		encoded, err := json.Marshal(entry.Metadata)
		if err != nil {
			return fmt.Errorf("encoding audit metadata: %w", err)
		}
		metadata = string(encoded)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO audit_log (id, household_id, action, actor_id, item_ids, description, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.HouseholdID, entry.Action, entry.ActorID,
		string(itemIDs), entry.Description, metadata, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("appending audit entry: %w", err)
	}
	return nil
}

// ListAuditEntries returns a household's audit log, newest first.
func ListAuditEntries(ctx context.Context, db *sql.DB, householdID int64, limit int) ([]model.AuditLogEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, household_id, action, actor_id, item_ids, description, metadata, created_at
		 FROM audit_log WHERE household_id = ?
		 ORDER BY created_at DESC, id LIMIT ?`,
		householdID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}
	defer rows.Close()

	var entries []model.AuditLogEntry
	for rows.Next() {
		var e model.AuditLogEntry
		var itemIDs string
		var metadata sql.NullString
		if err := rows.Scan(&e.ID, &e.HouseholdID, &e.Action, &e.ActorID,
			&itemIDs, &e.Description, &metadata, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}
		if err := json.Unmarshal([]byte(itemIDs), &e.ItemIDs); err != nil {
			return nil, fmt.Errorf("decoding item ids: %w", err)
		}
		if metadata.Valid {
			if err := json.Unmarshal([]byte(metadata.String), &e.Metadata); err != nil {
				return nil, fmt.Errorf("decoding audit metadata: %w", err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
