package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

// Setting keys.
const (
	SettingExpiryWarnDays = "expiry_warn_days"
)

// DefaultExpiryWarnDays is the window used by the expiring-soon listing when
// a household has not configured one.
const DefaultExpiryWarnDays = 7

// GetSetting returns a household setting, or "" if unset.
func GetSetting(ctx context.Context, db *sql.DB, householdID int64, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE household_id = ? AND key = ?`,
		householdID, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting upserts a household setting.
func SetSetting(ctx context.Context, db *sql.DB, householdID int64, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO settings (household_id, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (household_id, key) DO UPDATE SET value = excluded.value`,
		householdID, key, value,
	)
	if err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}
	return nil
}

// GetExpiryWarnDays returns the household's expiring-soon window in days.
func GetExpiryWarnDays(ctx context.Context, db *sql.DB, householdID int64) (int, error) {
	value, err := GetSetting(ctx, db, householdID, SettingExpiryWarnDays)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return DefaultExpiryWarnDays, nil
	}

	days, err := strconv.Atoi(value)
	if err != nil || days <= 0 {
		return DefaultExpiryWarnDays, nil
	}
	return days, nil
}
