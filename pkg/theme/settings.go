package theme

import (
	"context"
	"fmt"

	"github.com/umputun/studyclock/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is a durable key-value store for settings
type Store interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Settings holds the persisted UI settings
type Settings struct {
	Theme domain.Theme
}

// LoadSettings reads settings from the store. An unknown theme value is returned as error
// together with settings holding the light default.
func LoadSettings(ctx context.Context, store Store) (Settings, error) {
	value, err := store.GetSetting(ctx, domain.SettingTheme)
	if err != nil {
		return Settings{Theme: domain.ThemeLight}, fmt.Errorf("get theme setting: %w", err)
	}
	t, err := domain.ParseTheme(value)
	if err != nil {
		return Settings{Theme: t}, fmt.Errorf("parse theme setting: %w", err)
	}
	return Settings{Theme: t}, nil
}

// SaveSettings writes settings to the store
func SaveSettings(ctx context.Context, store Store, s Settings) error {
	if err := store.SetSetting(ctx, domain.SettingTheme, s.Theme.String()); err != nil {
		return fmt.Errorf("set theme setting: %w", err)
	}
	return nil
}
