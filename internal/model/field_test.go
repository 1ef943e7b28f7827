package model

import (
	"encoding/json"
	"testing"
)

func TestFieldUnmarshalTriState(t *testing.T) {
	type payload struct {
		Location Field[string] `json:"location"`
	}

	tests := []struct {
		name        string
		json        string
		wantPresent bool
		wantNull    bool
		wantValue   string
	}{
		{"absent key", `{}`, false, false, ""},
		{"null clears", `{"location": null}`, true, true, ""},
		{"empty string clears", `{"location": ""}`, true, true, ""},
		{"value sets", `{"location": "fridge"}`, true, false, "fridge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.json), &p); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			f := p.Location
			if f.Present != tt.wantPresent || f.Null != tt.wantNull || f.Value != tt.wantValue {
				t.Errorf("got %+v, want present=%v null=%v value=%q", f, tt.wantPresent, tt.wantNull, tt.wantValue)
			}
		})
	}
}

func TestFieldUnmarshalNumber(t *testing.T) {
	type payload struct {
		Threshold Field[float64] `json:"low_stock_threshold"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"low_stock_threshold": 2.5}`), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !p.Threshold.Present || p.Threshold.Null || p.Threshold.Value != 2.5 {
		t.Errorf("got %+v, want a set value of 2.5", p.Threshold)
	}

	if err := json.Unmarshal([]byte(`{"low_stock_threshold": "lots"}`), &p); err == nil {
		t.Error("expected type error for non-numeric threshold")
	}
}

func TestFieldMarshal(t *testing.T) {
	tests := []struct {
		name  string
		field Field[string]
		want  string
	}{
		{"zero field", Field[string]{}, "null"},
		{"cleared", Clear[string](), "null"},
		{"set", Set("fridge"), `"fridge"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.field)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStockStatus(t *testing.T) {
	tests := []struct {
		quantity  float64
		threshold float64
		want      string
	}{
		{0, 1, StockStatusOut},
		{0.5, 1, StockStatusLow},
		{1, 1, StockStatusLow},
		{2, 1, StockStatusGood},
	}

	for _, tt := range tests {
		item := InventoryItem{Quantity: tt.quantity, LowStockThreshold: tt.threshold}
		if got := item.StockStatus(); got != tt.want {
			t.Errorf("StockStatus(q=%v, t=%v) = %q, want %q", tt.quantity, tt.threshold, got, tt.want)
		}
	}
}
