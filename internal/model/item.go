package model

import "time"

// InventoryItem represents a tracked item in a household's catalog.
// Items are identified case-insensitively by name within a household and are
// never hard-deleted by the reconciliation engine.
type InventoryItem struct {
	ID                int64      `json:"id"`
	HouseholdID       int64      `json:"household_id"`
	Name              string     `json:"name"`
	Quantity          float64    `json:"quantity"`
	Unit              string     `json:"unit"`
	Category          string     `json:"category"`
	Location          *string    `json:"location,omitempty"`
	LowStockThreshold float64    `json:"low_stock_threshold"`
	Notes             *string    `json:"notes,omitempty"`
	Brand             *string    `json:"brand,omitempty"`
	Size              *string    `json:"size,omitempty"`
	ExpirationDate    *time.Time `json:"expiration_date,omitempty"`
	SearchKeywords    []string   `json:"search_keywords"`
	ImageMime         string     `json:"image_mime,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Defaults applied when an item is created without the corresponding field.
const (
	DefaultUnit              = "unit"
	DefaultCategory          = "uncategorized"
	DefaultLowStockThreshold = 1
)

// Stock statuses, derived from quantity and threshold, never persisted.
const (
	StockStatusOut  = "out"
	StockStatusLow  = "low"
	StockStatusGood = "good"
)

// StockStatus classifies the item's current stock level.
func (i *InventoryItem) StockStatus() string {
	switch {
	case i.Quantity == 0:
		return StockStatusOut
	case i.Quantity <= i.LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusGood
	}
}
