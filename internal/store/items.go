package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"homestock/internal/model"
)

const itemColumns = `id, household_id, name, quantity, unit, category, location,
	low_stock_threshold, notes, brand, size, expiration_date, search_keywords,
	image_mime, created_at, updated_at`

// ListItems returns a household's full catalog, ordered by name.
func ListItems(ctx context.Context, db *sql.DB, householdID int64) ([]model.InventoryItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE household_id = ? ORDER BY name COLLATE NOCASE`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// GetItem returns an item by ID within a household, or nil if not found.
func GetItem(ctx context.Context, db *sql.DB, householdID, id int64) (*model.InventoryItem, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE household_id = ? AND id = ?`,
		householdID, id,
	)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// CreateItem inserts a new item and returns its ID.
func CreateItem(ctx context.Context, db *sql.DB, item *model.InventoryItem) (int64, error) {
	keywords, err := json.Marshal(item.SearchKeywords)
	if err != nil {
		return 0, fmt.Errorf("encoding search keywords: %w", err)
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO items (household_id, name, quantity, unit, category, location,
		     low_stock_threshold, notes, brand, size, expiration_date,
		     search_keywords, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.HouseholdID, item.Name, item.Quantity, item.Unit, item.Category,
		item.Location, item.LowStockThreshold, item.Notes, item.Brand, item.Size,
		item.ExpirationDate, string(keywords), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting item id: %w", err)
	}
	return id, nil
}

// itemUpdateColumns whitelists the columns a partial update may touch.
var itemUpdateColumns = map[string]bool{
	"name":                true,
	"quantity":            true,
	"unit":                true,
	"category":            true,
	"location":            true,
	"low_stock_threshold": true,
	"notes":               true,
	"brand":               true,
	"size":                true,
	"expiration_date":     true,
	"search_keywords":     true,
	"updated_at":          true,
}

// UpdateItemFields applies only the supplied fields to an item, leaving
// every other column untouched. A nil value clears the column to NULL.
// Field names outside the whitelist are rejected.
func UpdateItemFields(ctx context.Context, db *sql.DB, householdID, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+2)
	for _, col := range sortedKeys(fields) {
		if !itemUpdateColumns[col] {
			return fmt.Errorf("updating item: unknown field %q", col)
		}
		value := fields[col]
		if col == "search_keywords" {
			encoded, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("encoding search keywords: %w", err)
			}
			value = string(encoded)
		}
		sets = append(sets, col+" = ?")
		args = append(args, value)
	}
	args = append(args, householdID, id)

	result, err := db.ExecContext(ctx,
		`UPDATE items SET `+strings.Join(sets, ", ")+` WHERE household_id = ? AND id = ?`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("item %d not found", id)
	}
	return nil
}

// SetItemImage sets an item's image data.
func SetItemImage(ctx context.Context, db *sql.DB, householdID, id int64, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET image = ?, image_mime = ? WHERE household_id = ? AND id = ?`,
		image, mime, householdID, id,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	return nil
}

// GetItemImage returns an item's image data and MIME type.
func GetItemImage(ctx context.Context, db *sql.DB, householdID, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE household_id = ? AND id = ?`,
		householdID, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.InventoryItem, error) {
	item := &model.InventoryItem{}
	var location, notes, brand, size, imageMime sql.NullString
	var expiration sql.NullTime
	var keywords string

	err := row.Scan(&item.ID, &item.HouseholdID, &item.Name, &item.Quantity,
		&item.Unit, &item.Category, &location, &item.LowStockThreshold,
		&notes, &brand, &size, &expiration, &keywords, &imageMime,
		&item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning item: %w", err)
	}

	item.Location = nullableString(location)
	item.Notes = nullableString(notes)
	item.Brand = nullableString(brand)
	item.Size = nullableString(size)
	item.ImageMime = imageMime.String
	if expiration.Valid {
		t := expiration.Time
		item.ExpirationDate = &t
	}
	if err := json.Unmarshal([]byte(keywords), &item.SearchKeywords); err != nil {
		return nil, fmt.Errorf("decoding search keywords: %w", err)
	}
	return item, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic SET order keeps statements cacheable and logs readable.
	sort.Strings(keys)
	return keys
}
