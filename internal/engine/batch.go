package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"homestock/internal/model"
)

// BatchResult is the complete outcome of one ApplyUpdates call.
// AuditErr reports a failed audit append; it is informational only and never
// affects Results or Summary.
type BatchResult struct {
	Results          []model.UpdateResult `json:"results"`
	Summary          model.BatchSummary   `json:"summary"`
	ValidationErrors []string             `json:"validation_errors"`
	AuditErr         error                `json:"-"`
}

// Processor reconciles batches of update requests against a catalog.
// It holds no per-household state; both collaborators are passed in
// explicitly so the engine is testable with substitute stores.
type Processor struct {
	catalog Catalog
	audit   AuditSink
}

func NewProcessor(catalog Catalog, audit AuditSink) *Processor {
	return &Processor{catalog: catalog, audit: audit}
}

// ApplyUpdates normalizes and merges each request in order. Processing is
// strictly sequential for deterministic ordering and predictable store load.
// Every per-item failure, validation or store, is converted into a failed
// UpdateResult for that item only; the call itself never fails. Two
// concurrent batches against the same household can race on an item
// (last-write-wins at the store), an accepted limitation.
func (p *Processor) ApplyUpdates(ctx context.Context, actorID, householdID int64, updates []model.UpdateRequest, source string) *BatchResult {
	result := &BatchResult{
		Results:          make([]model.UpdateResult, 0, len(updates)),
		ValidationErrors: []string{},
	}

	items, err := p.catalog.ListItems(ctx, householdID)
	if err != nil {
		// Without a snapshot nothing can be merged: every item fails, the
		// batch still returns normally.
		for _, req := range updates {
			result.Results = append(result.Results, failedResult(req.Name, fmt.Errorf("loading catalog: %w", err)))
		}
		p.finish(ctx, actorID, householdID, updates, source, result)
		return result
	}

	index := buildNameIndex(items)
	now := time.Now().UTC()

	for _, req := range updates {
		result.Results = append(result.Results, p.applyOne(ctx, householdID, index, req, now))
	}

	p.finish(ctx, actorID, householdID, updates, source, result)
	return result
}

// applyOne processes a single request. All failure paths return a failed
// UpdateResult; nothing escapes to the batch level.
func (p *Processor) applyOne(ctx context.Context, householdID int64, index *nameIndex, req model.UpdateRequest, now time.Time) model.UpdateResult {
	cand, err := Normalize(req)
	if err != nil {
		return failedResult(req.Name, err)
	}

	existing := index.lookup(cand.Name)
	if existing == nil {
		item := newItem(householdID, cand, now)
		id, err := p.catalog.CreateItem(ctx, item)
		if err != nil {
			return failedResult(cand.Name, fmt.Errorf("creating item: %w", err))
		}
		item.ID = id
		index.insert(item)

		return model.UpdateResult{
			ItemID:      id,
			Name:        item.Name,
			Success:     true,
			ActionTaken: model.ActionTakenCreated,
			NewQuantity: item.Quantity,
			Message:     fmt.Sprintf("Created %s with quantity %s %s", item.Name, formatQty(item.Quantity), item.Unit),
		}
	}

	newQuantity := applyQuantity(cand.Action, existing.Quantity, cand.Quantity)
	fields := mergeFields(existing, cand, newQuantity, now)
	if err := p.catalog.UpdateItemFields(ctx, householdID, existing.ID, fields); err != nil {
		return failedResult(cand.Name, fmt.Errorf("updating item: %w", err))
	}

	return model.UpdateResult{
		ItemID:      existing.ID,
		Name:        existing.Name,
		Success:     true,
		ActionTaken: model.ActionTakenUpdated,
		NewQuantity: newQuantity,
		Message:     updateMessage(cand, existing.Name, newQuantity),
	}
}

// finish computes the summary and validation error list, then appends the
// audit entry best-effort.
func (p *Processor) finish(ctx context.Context, actorID, householdID int64, updates []model.UpdateRequest, source string, result *BatchResult) {
	for _, r := range result.Results {
		if r.Success {
			result.Summary.Successful++
		} else {
			result.Summary.Failed++
			result.ValidationErrors = append(result.ValidationErrors, fmt.Sprintf("%s: %s", r.Name, r.Error))
		}
	}
	result.Summary.Total = len(result.Results)

	entry := buildAuditEntry(actorID, householdID, updates, source, result)
	if err := p.audit.Append(ctx, entry); err != nil {
		slog.Error("audit append failed",
			"household_id", householdID,
			"actor_id", actorID,
			"source", source,
			"error", err)
		result.AuditErr = err
	}
}

func buildAuditEntry(actorID, householdID int64, updates []model.UpdateRequest, source string, result *BatchResult) *model.AuditLogEntry {
	itemIDs := make([]int64, 0, len(result.Results))
	names := make([]string, 0, len(result.Results))
	for _, r := range result.Results {
		if r.ItemID != 0 {
			itemIDs = append(itemIDs, r.ItemID)
		}
		if r.Success {
			names = append(names, r.Name)
		}
	}

	entry := &model.AuditLogEntry{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		Action:      source,
		ActorID:     actorID,
		ItemIDs:     itemIDs,
		Description: fmt.Sprintf("Applied %d update(s) (%d ok, %d failed): %s",
			result.Summary.Total, result.Summary.Successful, result.Summary.Failed,
			strings.Join(names, ", ")),
		Metadata: &model.AuditMetadata{
			Requests: updates,
			Results:  result.Results,
			Summary:  result.Summary,
		},
		CreatedAt: time.Now().UTC(),
	}
	entry.Truncate()
	return entry
}

func updateMessage(cand *Candidate, name string, newQuantity float64) string {
	qty := formatQty(newQuantity)
	switch cand.Action {
	case model.ActionAdd:
		return fmt.Sprintf("Added %s %s (now %s)", formatQty(cand.Quantity), name, qty)
	case model.ActionSubtract:
		return fmt.Sprintf("Used %s %s (now %s)", formatQty(cand.Quantity), name, qty)
	default:
		return fmt.Sprintf("Set %s to %s", name, qty)
	}
}

func failedResult(name string, err error) model.UpdateResult {
	return model.UpdateResult{
		Name:    strings.TrimSpace(name),
		Success: false,
		Error:   err.Error(),
	}
}

func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
