package store

import (
	"context"
	"testing"

	"homestock/internal/db"
	"homestock/internal/model"
)

func TestCreateAndGetView(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	hh := testHousehold(t, database)

	created, err := CreateView(ctx, database, &model.InventoryView{
		HouseholdID: hh,
		Name:        "Fridge",
		Type:        model.ViewTypeCustom,
		Filters: []model.FilterRule{
			{Field: "location", Operator: model.OpEquals, Value: "fridge"},
		},
		Sort:    &model.SortConfig{Field: "name", Ascending: true},
		GroupBy: "category",
	})
	if err != nil {
		t.Fatalf("CreateView: %v", err)
	}

	got, err := GetView(ctx, database, hh, created.ID)
	if err != nil {
		t.Fatalf("GetView: %v", err)
	}
	if got == nil {
		t.Fatal("expected view, got nil")
	}
	if got.Name != "Fridge" || got.Type != model.ViewTypeCustom {
		t.Errorf("got %q type %q, want Fridge custom", got.Name, got.Type)
	}
	if len(got.Filters) != 1 || got.Filters[0].Field != "location" {
		t.Errorf("filters did not round-trip: %+v", got.Filters)
	}
	if got.Sort == nil || got.Sort.Field != "name" || !got.Sort.Ascending {
		t.Errorf("sort did not round-trip: %+v", got.Sort)
	}
	if got.GroupBy != "category" {
		t.Errorf("group_by = %q, want category", got.GroupBy)
	}
}

func TestGetViewMissing(t *testing.T) {
	database := db.NewTestDB(t)
	hh := testHousehold(t, database)

	got, err := GetView(context.Background(), database, hh, 42)
	if err != nil {
		t.Fatalf("GetView: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing view, got %+v", got)
	}
}

func TestUpdateAndDeleteView(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	hh := testHousehold(t, database)

	created, _ := CreateView(ctx, database, &model.InventoryView{
		HouseholdID: hh, Name: "Old", Type: model.ViewTypeCustom,
	})

	created.Name = "New"
	created.Sort = &model.SortConfig{Field: "quantity"}
	if err := UpdateView(ctx, database, created); err != nil {
		t.Fatalf("UpdateView: %v", err)
	}

	got, _ := GetView(ctx, database, hh, created.ID)
	if got.Name != "New" || got.Sort == nil || got.Sort.Field != "quantity" {
		t.Errorf("update did not stick: %+v", got)
	}
	if got.GroupBy != "" {
		t.Errorf("group_by = %q, want empty", got.GroupBy)
	}

	if err := DeleteView(ctx, database, hh, created.ID); err != nil {
		t.Fatalf("DeleteView: %v", err)
	}
	got, _ = GetView(ctx, database, hh, created.ID)
	if got != nil {
		t.Errorf("expected view deleted, got %+v", got)
	}
}

func TestSeedPresetViews(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	hh := testHousehold(t, database)

	if err := SeedPresetViews(ctx, database, hh); err != nil {
		t.Fatalf("SeedPresetViews: %v", err)
	}

	views, err := ListViews(ctx, database, hh)
	if err != nil {
		t.Fatalf("ListViews: %v", err)
	}
	if len(views) != len(model.PresetViews()) {
		t.Fatalf("expected %d preset views, got %d", len(model.PresetViews()), len(views))
	}
	for _, v := range views {
		if v.Type == model.ViewTypeCustom {
			t.Errorf("view %q has type %q, want a built-in type", v.Name, v.Type)
		}
	}

	// Seeding again must not duplicate.
	if err := SeedPresetViews(ctx, database, hh); err != nil {
		t.Fatalf("SeedPresetViews again: %v", err)
	}
	views, _ = ListViews(ctx, database, hh)
	if len(views) != len(model.PresetViews()) {
		t.Errorf("expected seeding to be idempotent, got %d views", len(views))
	}
}
