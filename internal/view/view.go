// Package view implements the read-side query engine: filtering, sorting,
// grouping, and fuzzy search over an in-memory snapshot of a household's
// catalog. All functions are stateless pure transformers; they never touch
// the store.
package view

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"homestock/internal/model"
)

// ApplyView filters items with AND semantics across the view's rules, then
// applies the view's sort if present. Input order is preserved for equal
// sort keys (stable sort) and entirely when no sort is configured.
func ApplyView(items []model.InventoryItem, v model.InventoryView) []model.InventoryItem {
	out := make([]model.InventoryItem, 0, len(items))
	for _, item := range items {
		if matchesAll(&item, v.Filters) {
			out = append(out, item)
		}
	}

	if v.Sort != nil {
		SortItems(out, *v.Sort)
	}
	return out
}

// SortItems stable-sorts items in place on the named field.
func SortItems(items []model.InventoryItem, cfg model.SortConfig) {
	sort.SliceStable(items, func(i, j int) bool {
		less := fieldLess(&items[i], &items[j], cfg.Field)
		if cfg.Ascending {
			return less
		}
		return fieldLess(&items[j], &items[i], cfg.Field)
	})
}

// GroupItems maps each distinct stringified field value to the ordered
// sub-list of items sharing it, preserving input order within each group.
// Items without a value for the field group under "none".
func GroupItems(items []model.InventoryItem, field string) map[string][]model.InventoryItem {
	groups := make(map[string][]model.InventoryItem)
	for _, item := range items {
		key := stringify(fieldValue(&item, field))
		if key == "" {
			key = "none"
		}
		groups[key] = append(groups[key], item)
	}
	return groups
}

// FilterByMultipleCategories keeps items whose category matches any of the
// supplied categories (OR semantics, case-insensitive), in contrast with
// ApplyView's AND semantics across rules. An empty set matches everything.
func FilterByMultipleCategories(items []model.InventoryItem, categories []string) []model.InventoryItem {
	if len(categories) == 0 {
		return items
	}

	want := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		want[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
	}

	out := make([]model.InventoryItem, 0, len(items))
	for _, item := range items {
		if _, ok := want[strings.ToLower(item.Category)]; ok {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll(item *model.InventoryItem, rules []model.FilterRule) bool {
	for _, rule := range rules {
		if !matches(item, rule) {
			return false
		}
	}
	return true
}

func matches(item *model.InventoryItem, rule model.FilterRule) bool {
	value := fieldValue(item, rule.Field)

	switch rule.Operator {
	case model.OpEquals:
		return equal(value, rule.Value)
	case model.OpNotEquals:
		return !equal(value, rule.Value)
	case model.OpGreaterThan:
		a, aok := toFloat(value)
		b, bok := toFloat(rule.Value)
		return aok && bok && a > b
	case model.OpLessThan:
		a, aok := toFloat(value)
		b, bok := toFloat(rule.Value)
		return aok && bok && a < b
	case model.OpContains:
		return strings.Contains(
			strings.ToLower(stringify(value)),
			strings.ToLower(stringify(rule.Value)),
		)
	default:
		return false
	}
}

func equal(a, b any) bool {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af == bf
		}
	}
	return stringify(a) == stringify(b)
}

// fieldValue resolves an item field by its wire name. The "status" field is
// always the derived stock status, never a stored column.
func fieldValue(item *model.InventoryItem, field string) any {
	switch field {
	case "id":
		return item.ID
	case "name":
		return item.Name
	case "quantity":
		return item.Quantity
	case "unit":
		return item.Unit
	case "category":
		return item.Category
	case "location":
		return item.Location
	case "low_stock_threshold":
		return item.LowStockThreshold
	case "notes":
		return item.Notes
	case "brand":
		return item.Brand
	case "size":
		return item.Size
	case "expiration_date":
		return item.ExpirationDate
	case "status":
		return item.StockStatus()
	case "created_at":
		return item.CreatedAt
	case "updated_at":
		return item.UpdatedAt
	default:
		return nil
	}
}

func fieldLess(a, b *model.InventoryItem, field string) bool {
	av := fieldValue(a, field)
	bv := fieldValue(b, field)

	if af, aok := toFloat(av); aok {
		if bf, bok := toFloat(bv); bok {
			return af < bf
		}
	}
	if at, aok := toTime(av); aok {
		bt, bok := toTime(bv)
		if !bok {
			return false
		}
		return at.Before(bt)
	}
	return strings.ToLower(stringify(av)) < strings.ToLower(stringify(bv))
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, true
	default:
		return time.Time{}, false
	}
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.Format(time.RFC3339)
	case time.Time:
		return x.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
