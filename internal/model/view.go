package model

// Filter operators.
const (
	OpEquals      = "equals"
	OpNotEquals   = "not_equals"
	OpGreaterThan = "greater_than"
	OpLessThan    = "less_than"
	OpContains    = "contains"
)

// ValidOperator reports whether op is a supported filter operator.
func ValidOperator(op string) bool {
	switch op {
	case OpEquals, OpNotEquals, OpGreaterThan, OpLessThan, OpContains:
		return true
	}
	return false
}

// FilterRule matches items on a single field. The "status" field compares
// against the derived stock status rather than a stored column.
type FilterRule struct {
	Field    string `json:"field" validate:"required"`
	Operator string `json:"operator" validate:"required,oneof=equals not_equals greater_than less_than contains"`
	Value    any    `json:"value"`
}

// SortConfig orders items on a single field.
type SortConfig struct {
	Field     string `json:"field" validate:"required"`
	Ascending bool   `json:"ascending"`
}

// View types.
const (
	ViewTypeAll      = "all"
	ViewTypeLowStock = "low_stock"
	ViewTypeCustom   = "custom"
)

// InventoryView is a saved read-side view: filter rules combined with AND
// semantics, an optional sort, and an optional grouping field.
type InventoryView struct {
	ID          int64        `json:"id"`
	HouseholdID int64        `json:"household_id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Filters     []FilterRule `json:"filters"`
	Sort        *SortConfig  `json:"sort,omitempty"`
	GroupBy     string       `json:"group_by,omitempty"`
}

// PresetViews returns the built-in views seeded for every household.
func PresetViews() []InventoryView {
	return []InventoryView{
		{
			Name: "All items",
			Type: ViewTypeAll,
			Sort: &SortConfig{Field: "name", Ascending: true},
		},
		{
			Name: "Low stock",
			Type: ViewTypeLowStock,
			Filters: []FilterRule{
				{Field: "status", Operator: OpNotEquals, Value: StockStatusGood},
			},
			Sort: &SortConfig{Field: "quantity", Ascending: true},
		},
	}
}
