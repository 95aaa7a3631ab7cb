package domain

import "time"

// Setting represents a key-value configuration setting
type Setting struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// setting keys
const (
	SettingTheme = "theme"
)
