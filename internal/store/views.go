package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"homestock/internal/model"
)

// CreateView saves an inventory view for a household.
func CreateView(ctx context.Context, db *sql.DB, v *model.InventoryView) (*model.InventoryView, error) {
	filters, sortCfg, err := encodeViewConfig(v)
	if err != nil {
		return nil, err
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO views (household_id, name, type, filters, sort, group_by)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		v.HouseholdID, v.Name, v.Type, filters, sortCfg, nullIfEmpty(v.GroupBy),
	)
	if err != nil {
		return nil, fmt.Errorf("creating view: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting view id: %w", err)
	}
	return GetView(ctx, db, v.HouseholdID, id)
}

// GetView returns a view by ID within a household, or nil if not found.
func GetView(ctx context.Context, db *sql.DB, householdID, id int64) (*model.InventoryView, error) {
	v, err := scanView(db.QueryRowContext(ctx,
		`SELECT id, household_id, name, type, filters, sort, group_by
		 FROM views WHERE household_id = ? AND id = ?`,
		householdID, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return v, err
}

// ListViews returns all of a household's views.
func ListViews(ctx context.Context, db *sql.DB, householdID int64) ([]model.InventoryView, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, household_id, name, type, filters, sort, group_by
		 FROM views WHERE household_id = ? ORDER BY id`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing views: %w", err)
	}
	defer rows.Close()

	var views []model.InventoryView
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, rows.Err()
}

// UpdateView replaces a view's configuration.
func UpdateView(ctx context.Context, db *sql.DB, v *model.InventoryView) error {
	filters, sortCfg, err := encodeViewConfig(v)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE views SET name = ?, type = ?, filters = ?, sort = ?, group_by = ?
		 WHERE household_id = ? AND id = ?`,
		v.Name, v.Type, filters, sortCfg, nullIfEmpty(v.GroupBy), v.HouseholdID, v.ID,
	)
	if err != nil {
		return fmt.Errorf("updating view: %w", err)
	}
	return nil
}

// DeleteView removes a view.
func DeleteView(ctx context.Context, db *sql.DB, householdID, id int64) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM views WHERE household_id = ? AND id = ?`, householdID, id,
	)
	if err != nil {
		return fmt.Errorf("deleting view: %w", err)
	}
	return nil
}

// SeedPresetViews creates the built-in views for a household if it has none.
func SeedPresetViews(ctx context.Context, db *sql.DB, householdID int64) error {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM views WHERE household_id = ?`, householdID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("counting views: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, preset := range model.PresetViews() {
		preset.HouseholdID = householdID
		if _, err := CreateView(ctx, db, &preset); err != nil {
			return fmt.Errorf("seeding preset view %q: %w", preset.Name, err)
		}
	}
	return nil
}

func encodeViewConfig(v *model.InventoryView) (string, any, error) {
	rules := v.Filters
	if rules == nil {
		rules = []model.FilterRule{}
	}
	filters, err := json.Marshal(rules)
	if err != nil {
		return "", nil, fmt.Errorf("encoding view filters: %w", err)
	}

	var sortCfg any
	if v.Sort != nil {
		encoded, err := json.Marshal(v.Sort)
		if err != nil {
			return "", nil, fmt.Errorf("encoding view sort: %w", err)
		}
		sortCfg = string(encoded)
	}
	return string(filters), sortCfg, nil
}

func scanView(row rowScanner) (*model.InventoryView, error) {
	v := &model.InventoryView{}
	var filters string
	var sortCfg, groupBy sql.NullString

	err := row.Scan(&v.ID, &v.HouseholdID, &v.Name, &v.Type, &filters, &sortCfg, &groupBy)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning view: %w", err)
	}

	if err := json.Unmarshal([]byte(filters), &v.Filters); err != nil {
		return nil, fmt.Errorf("decoding view filters: %w", err)
	}
	if sortCfg.Valid {
		if err := json.Unmarshal([]byte(sortCfg.String), &v.Sort); err != nil {
			return nil, fmt.Errorf("decoding view sort: %w", err)
		}
	}
	v.GroupBy = groupBy.String
	return v, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
