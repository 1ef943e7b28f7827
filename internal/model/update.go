package model

import "encoding/json"

// Actions supported by an update request.
const (
	ActionAdd      = "add"
	ActionSubtract = "subtract"
	ActionSet      = "set"
)

// Results of applying a single update.
const (
	ActionTakenCreated = "created"
	ActionTakenUpdated = "updated"
)

// Update sources (provenance). A closed enumeration used only for audit
// categorization; the engine treats all sources uniformly.
const (
	SourceManual    = "manual"
	SourceTextParse = "text_parse"
	SourceImageScan = "image_scan"
	SourceAgent     = "agent"
)

// ValidSource reports whether s is a known provenance tag.
func ValidSource(s string) bool {
	switch s {
	case SourceManual, SourceTextParse, SourceImageScan, SourceAgent:
		return true
	}
	return false
}

// UpdateRequest is a single raw quantity-change request as received from a
// candidate source (manual entry, text parser, image parser, or agent).
// Quantity and ExpirationDate stay raw JSON so that a malformed value fails
// only its own item during normalization instead of the whole batch decode.
type UpdateRequest struct {
	Name              string          `json:"name"`
	Quantity          json.RawMessage `json:"quantity,omitempty"`
	Action            string          `json:"action"`
	Unit              Field[string]   `json:"unit,omitzero"`
	Category          Field[string]   `json:"category,omitzero"`
	Location          Field[string]   `json:"location,omitzero"`
	Brand             Field[string]   `json:"brand,omitzero"`
	Size              Field[string]   `json:"size,omitzero"`
	Notes             Field[string]   `json:"notes,omitzero"`
	LowStockThreshold Field[float64]  `json:"low_stock_threshold,omitzero"`
	ExpirationDate    json.RawMessage `json:"expiration_date,omitempty"`

	// Optional confidence score from parser/agent sources. Review gating
	// happens upstream; the engine ignores it.
	Confidence *float64 `json:"confidence,omitempty"`
}

// UpdateResult reports the outcome of one update request.
type UpdateResult struct {
	ItemID      int64   `json:"item_id,omitempty"`
	Name        string  `json:"name"`
	Success     bool    `json:"success"`
	ActionTaken string  `json:"action_taken,omitempty"`
	NewQuantity float64 `json:"new_quantity,omitempty"`
	Message     string  `json:"message,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// BatchSummary aggregates the outcomes of a batch.
type BatchSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}
