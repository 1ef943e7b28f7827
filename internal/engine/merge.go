package engine

import (
	"math"
	"strings"
	"time"

	"homestock/internal/model"
)

// nameIndex is a case-insensitive name -> item index over a catalog snapshot.
// It is built once per batch and maintained incrementally on create, so
// matching stays O(1) per item while preserving first-match semantics (names
// are unique case-insensitively within a household).
type nameIndex struct {
	byName map[string]*model.InventoryItem
}

func buildNameIndex(items []model.InventoryItem) *nameIndex {
	ix := &nameIndex{byName: make(map[string]*model.InventoryItem, len(items))}
	for i := range items {
		key := strings.ToLower(items[i].Name)
		if _, ok := ix.byName[key]; !ok {
			ix.byName[key] = &items[i]
		}
	}
	return ix
}

func (ix *nameIndex) lookup(name string) *model.InventoryItem {
	return ix.byName[strings.ToLower(name)]
}

func (ix *nameIndex) insert(item *model.InventoryItem) {
	ix.byName[strings.ToLower(item.Name)] = item
}

// applyQuantity computes the new quantity for an action. Subtract clamps at
// zero; set uses the magnitude as the absolute value.
func applyQuantity(action string, current, delta float64) float64 {
	switch action {
	case model.ActionAdd:
		return current + delta
	case model.ActionSubtract:
		return math.Max(0, current-delta)
	default: // model.ActionSet
		return delta
	}
}

// newItem builds a fresh catalog item from a candidate, applying defaults
// for anything the candidate does not set.
func newItem(householdID int64, cand *Candidate, now time.Time) *model.InventoryItem {
	item := &model.InventoryItem{
		HouseholdID:       householdID,
		Name:              cand.Name,
		Quantity:          applyQuantity(cand.Action, 0, cand.Quantity),
		Unit:              model.DefaultUnit,
		Category:          model.DefaultCategory,
		LowStockThreshold: model.DefaultLowStockThreshold,
		SearchKeywords:    GenerateSearchKeywords(cand.Name),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if v, ok := fieldValue(cand.Unit); ok && v != nil {
		item.Unit = *v
	}
	if v, ok := fieldValue(cand.Category); ok && v != nil {
		item.Category = *v
	}
	if v, ok := fieldValue(cand.Location); ok {
		item.Location = v
	}
	if v, ok := fieldValue(cand.Brand); ok {
		item.Brand = v
	}
	if v, ok := fieldValue(cand.Size); ok {
		item.Size = v
	}
	if v, ok := fieldValue(cand.Notes); ok {
		item.Notes = v
	}
	if cand.LowStockThreshold.Present && !cand.LowStockThreshold.Null {
		item.LowStockThreshold = cand.LowStockThreshold.Value
	}
	if v, ok := fieldValue(cand.ExpirationDate); ok {
		item.ExpirationDate = v
	}

	return item
}

// mergeFields computes the partial field set for an update. Only explicitly
// supplied fields are written; absent fields never touch the stored item.
// updated_at is always refreshed. The existing item is mutated in place so
// later updates in the same batch observe the merged state.
func mergeFields(item *model.InventoryItem, cand *Candidate, newQuantity float64, now time.Time) map[string]any {
	fields := map[string]any{
		"quantity":   newQuantity,
		"updated_at": now,
	}
	item.Quantity = newQuantity
	item.UpdatedAt = now

	// Unit and category are non-nullable: clearing them restores defaults.
	if v, ok := fieldValue(cand.Unit); ok {
		unit := model.DefaultUnit
		if v != nil {
			unit = *v
		}
		fields["unit"] = unit
		item.Unit = unit
	}
	if v, ok := fieldValue(cand.Category); ok {
		category := model.DefaultCategory
		if v != nil {
			category = *v
		}
		fields["category"] = category
		item.Category = category
	}
	if v, ok := fieldValue(cand.Location); ok {
		fields["location"] = ptrValue(v)
		item.Location = v
	}
	if v, ok := fieldValue(cand.Brand); ok {
		fields["brand"] = ptrValue(v)
		item.Brand = v
	}
	if v, ok := fieldValue(cand.Size); ok {
		fields["size"] = ptrValue(v)
		item.Size = v
	}
	if v, ok := fieldValue(cand.Notes); ok {
		fields["notes"] = ptrValue(v)
		item.Notes = v
	}
	if cand.LowStockThreshold.Present && !cand.LowStockThreshold.Null {
		fields["low_stock_threshold"] = cand.LowStockThreshold.Value
		item.LowStockThreshold = cand.LowStockThreshold.Value
	}
	if v, ok := fieldValue(cand.ExpirationDate); ok {
		fields["expiration_date"] = ptrValue(v)
		item.ExpirationDate = v
	}

	return fields
}

// fieldValue resolves a tri-state field: (nil, false) when absent,
// (nil, true) when clearing, (&value, true) when setting.
func fieldValue[T any](f model.Field[T]) (*T, bool) {
	if !f.Present {
		return nil, false
	}
	if f.Null {
		return nil, true
	}
	v := f.Value
	return &v, true
}

// ptrValue converts a typed nil pointer into an untyped nil so database/sql
// binds NULL instead of a typed nil interface.
func ptrValue[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
