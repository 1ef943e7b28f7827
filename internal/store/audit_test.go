package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"homestock/internal/db"
	"homestock/internal/model"
)

func auditEntry(householdID int64, description string, createdAt time.Time) *model.AuditLogEntry {
	return &model.AuditLogEntry{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		Action:      model.SourceManual,
		ActorID:     1,
		ItemIDs:     []int64{1, 2},
		Description: description,
		CreatedAt:   createdAt,
	}
}

func TestAppendAndListAuditEntries(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	hh := testHousehold(t, database)

	now := time.Now().UTC()
	first := auditEntry(hh, "first batch", now.Add(-time.Hour))
	first.Metadata = &model.AuditMetadata{Summary: model.BatchSummary{Total: 2, Successful: 2}}
	second := auditEntry(hh, "second batch", now)

	if err := AppendAuditEntry(ctx, database, first); err != nil {
		t.Fatalf("AppendAuditEntry: %v", err)
	}
	if err := AppendAuditEntry(ctx, database, second); err != nil {
		t.Fatalf("AppendAuditEntry: %v", err)
	}

	entries, err := ListAuditEntries(ctx, database, hh, 0)
	if err != nil {
		t.Fatalf("ListAuditEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Description != "second batch" {
		t.Errorf("expected newest first, got %q", entries[0].Description)
	}
	if entries[1].Metadata == nil || entries[1].Metadata.Summary.Total != 2 {
		t.Errorf("expected metadata round-trip, got %+v", entries[1].Metadata)
	}
	if entries[0].Metadata != nil {
		t.Errorf("expected nil metadata for entry without one, got %+v", entries[0].Metadata)
	}
	if len(entries[0].ItemIDs) != 2 {
		t.Errorf("expected item IDs round-trip, got %v", entries[0].ItemIDs)
	}
}

func TestListAuditEntriesLimit(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	hh := testHousehold(t, database)

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		AppendAuditEntry(ctx, database, auditEntry(hh, "batch", now.Add(time.Duration(i)*time.Second)))
	}

	entries, err := ListAuditEntries(ctx, database, hh, 3)
	if err != nil {
		t.Fatalf("ListAuditEntries: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries with limit, got %d", len(entries))
	}
}

func TestListAuditEntriesScopedToHousehold(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	hh1 := testHousehold(t, database)
	hh2 := testHousehold(t, database)

	AppendAuditEntry(ctx, database, auditEntry(hh1, "mine", time.Now().UTC()))

	entries, err := ListAuditEntries(ctx, database, hh2, 0)
	if err != nil {
		t.Fatalf("ListAuditEntries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries for the other household, got %d", len(entries))
	}
}
