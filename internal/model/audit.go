package model

import "time"

// Bounds on embedded audit metadata, so a large batch cannot blow up a
// single audit record.
const (
	AuditMaxListEntries    = 50
	AuditMaxDescriptionLen = 500
)

// AuditLogEntry records one applied batch of updates.
type AuditLogEntry struct {
	ID          string         `json:"id"`
	HouseholdID int64          `json:"household_id"`
	Action      string         `json:"action"` // provenance tag, e.g. "manual"
	ActorID     int64          `json:"actor_id"`
	ItemIDs     []int64        `json:"item_ids"`
	Description string         `json:"description"`
	Metadata    *AuditMetadata `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// AuditMetadata embeds a truncated copy of the batch's requests and results.
type AuditMetadata struct {
	Requests  []UpdateRequest `json:"requests,omitempty"`
	Results   []UpdateResult  `json:"results,omitempty"`
	Truncated bool            `json:"truncated,omitempty"`
	Summary   BatchSummary    `json:"summary"`
}

// Truncate caps the entry's embedded lists and description in place.
func (e *AuditLogEntry) Truncate() {
	if len(e.Description) > AuditMaxDescriptionLen {
		e.Description = e.Description[:AuditMaxDescriptionLen]
	}
	if e.Metadata == nil {
		return
	}
	if len(e.Metadata.Requests) > AuditMaxListEntries {
		e.Metadata.Requests = e.Metadata.Requests[:AuditMaxListEntries]
		e.Metadata.Truncated = true
	}
	if len(e.Metadata.Results) > AuditMaxListEntries {
		e.Metadata.Results = e.Metadata.Results[:AuditMaxListEntries]
		e.Metadata.Truncated = true
	}
}
