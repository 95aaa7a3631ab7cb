package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/studyclock/pkg/domain"
)

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, missing key returns empty string
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// GetSettingRecord retrieves the full setting row, nil if the key is missing
func (r *SettingRepository) GetSettingRecord(ctx context.Context, key string) (*domain.Setting, error) {
	var s domain.Setting
	err := r.db.GetContext(ctx, &s, "SELECT key, value, updated_at FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get setting record: %w", err)
	}
	return &s, nil
}

// SetSetting stores a setting value, retrying while the database is locked
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	var critical error
	err := retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, key, value)
		if isLockError(err) {
			return err // retry
		}
		critical = err
		return nil
	})
	if critical != nil {
		return fmt.Errorf("set setting: %w", critical)
	}
	if err != nil {
		return fmt.Errorf("set setting, retries exhausted: %w", err)
	}
	return nil
}

// DeleteSetting removes a setting, missing key is not an error
func (r *SettingRepository) DeleteSetting(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return nil
}
