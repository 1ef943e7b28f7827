package view

import (
	"testing"
	"time"

	"homestock/internal/model"
)

func strPtr(s string) *string { return &s }

func testItems() []model.InventoryItem {
	return []model.InventoryItem{
		{ID: 1, Name: "Milk", Quantity: 2, Unit: "liter", Category: "dairy", Location: strPtr("fridge"), LowStockThreshold: 1},
		{ID: 2, Name: "Eggs", Quantity: 0, Unit: "unit", Category: "dairy", Location: strPtr("fridge"), LowStockThreshold: 6},
		{ID: 3, Name: "Rice", Quantity: 1, Unit: "kg", Category: "pantry", Location: strPtr("cupboard"), LowStockThreshold: 2},
		{ID: 4, Name: "Soap", Quantity: 4, Unit: "unit", Category: "household", LowStockThreshold: 1},
	}
}

func ids(items []model.InventoryItem) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func assertIDs(t *testing.T, items []model.InventoryItem, want ...int64) {
	t.Helper()
	got := ids(items)
	if len(got) != len(want) {
		t.Fatalf("got items %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got items %v, want %v", got, want)
		}
	}
}

func TestApplyViewFilters(t *testing.T) {
	tests := []struct {
		name    string
		filters []model.FilterRule
		want    []int64
	}{
		{
			name:    "equals preserves order",
			filters: []model.FilterRule{{Field: "location", Operator: model.OpEquals, Value: "fridge"}},
			want:    []int64{1, 2},
		},
		{
			name:    "not equals",
			filters: []model.FilterRule{{Field: "category", Operator: model.OpNotEquals, Value: "dairy"}},
			want:    []int64{3, 4},
		},
		{
			name:    "greater than",
			filters: []model.FilterRule{{Field: "quantity", Operator: model.OpGreaterThan, Value: 1.0}},
			want:    []int64{1, 4},
		},
		{
			name:    "less than",
			filters: []model.FilterRule{{Field: "quantity", Operator: model.OpLessThan, Value: 1.0}},
			want:    []int64{2},
		},
		{
			name:    "contains is case-insensitive",
			filters: []model.FilterRule{{Field: "name", Operator: model.OpContains, Value: "IL"}},
			want:    []int64{1},
		},
		{
			name: "rules combine with AND",
			filters: []model.FilterRule{
				{Field: "category", Operator: model.OpEquals, Value: "dairy"},
				{Field: "quantity", Operator: model.OpGreaterThan, Value: 0.0},
			},
			want: []int64{1},
		},
		{
			name:    "derived status field",
			filters: []model.FilterRule{{Field: "status", Operator: model.OpEquals, Value: model.StockStatusOut}},
			want:    []int64{2},
		},
		{
			name:    "low stock preset excludes good",
			filters: []model.FilterRule{{Field: "status", Operator: model.OpNotEquals, Value: model.StockStatusGood}},
			want:    []int64{2, 3},
		},
		{
			name:    "unknown field matches nothing on equals",
			filters: []model.FilterRule{{Field: "flavor", Operator: model.OpEquals, Value: "salty"}},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyView(testItems(), model.InventoryView{Filters: tt.filters})
			assertIDs(t, got, tt.want...)
		})
	}
}

func TestApplyViewSort(t *testing.T) {
	v := model.InventoryView{
		Sort: &model.SortConfig{Field: "quantity", Ascending: true},
	}
	got := ApplyView(testItems(), v)
	assertIDs(t, got, 2, 3, 1, 4)

	v.Sort.Ascending = false
	got = ApplyView(testItems(), v)
	assertIDs(t, got, 4, 1, 3, 2)
}

func TestSortItemsStable(t *testing.T) {
	items := []model.InventoryItem{
		{ID: 1, Name: "A", Quantity: 1},
		{ID: 2, Name: "B", Quantity: 1},
		{ID: 3, Name: "C", Quantity: 1},
	}
	SortItems(items, model.SortConfig{Field: "quantity", Ascending: true})
	assertIDs(t, items, 1, 2, 3)
}

func TestSortItemsByName(t *testing.T) {
	items := testItems()
	SortItems(items, model.SortConfig{Field: "name", Ascending: true})
	assertIDs(t, items, 2, 1, 3, 4)
}

func TestSortItemsByTime(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []model.InventoryItem{
		{ID: 1, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 2, CreatedAt: base},
		{ID: 3, CreatedAt: base.Add(time.Hour)},
	}
	SortItems(items, model.SortConfig{Field: "created_at", Ascending: true})
	assertIDs(t, items, 2, 3, 1)
}

func TestGroupItems(t *testing.T) {
	groups := GroupItems(testItems(), "location")

	if len(groups) != 3 {
		t.Fatalf("got %d groups %v, want 3", len(groups), groups)
	}
	assertIDs(t, groups["fridge"], 1, 2)
	assertIDs(t, groups["cupboard"], 3)
	assertIDs(t, groups["none"], 4)

	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total != 4 {
		t.Errorf("group sizes sum to %d, want 4", total)
	}
}

func TestFilterByMultipleCategories(t *testing.T) {
	got := FilterByMultipleCategories(testItems(), []string{"DAIRY", " pantry "})
	assertIDs(t, got, 1, 2, 3)

	got = FilterByMultipleCategories(testItems(), nil)
	assertIDs(t, got, 1, 2, 3, 4)

	got = FilterByMultipleCategories(testItems(), []string{"missing"})
	assertIDs(t, got)
}
