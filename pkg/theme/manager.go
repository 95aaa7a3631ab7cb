// Package theme keeps the light/dark preference in a durable store and in sync with the applied appearance
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/studyclock/pkg/domain"
)

// Event is sent to listeners after the theme changed
type Event struct {
	Theme      domain.Theme
	Appearance domain.Appearance
	At         time.Time
}

// Listener receives theme change events, typically to refresh theme-dependent visuals
type Listener func(Event)

// Manager owns the current theme. Toggles are serialized, the store is written first
// so a failed write leaves the applied appearance untouched.
type Manager struct {
	store Store
	now   func() time.Time

	toggleMu   sync.Mutex // serializes Init and Toggle including store calls and listeners
	mu         sync.Mutex // guards appearance and listeners
	appearance domain.Appearance
	listeners  []Listener
}

// ManagerConfig holds configuration for Manager
type ManagerConfig struct {
	Store     Store
	Listeners []Listener
	Now       func() time.Time // defaults to time.Now
}

// NewManager creates a manager in the default light state. Call Init to apply the stored preference.
func NewManager(cfg ManagerConfig) *Manager {
	m := &Manager{
		store:      cfg.Store,
		now:        cfg.Now,
		appearance: domain.DefaultAppearance(),
		listeners:  append([]Listener(nil), cfg.Listeners...),
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

// Init reads the stored preference and applies dark if it is stored. Any other value,
// including no value at all, leaves the default light appearance untouched.
func (m *Manager) Init(ctx context.Context) (domain.Appearance, error) {
	m.toggleMu.Lock()
	defer m.toggleMu.Unlock()

	settings, err := LoadSettings(ctx, m.store)
	switch {
	case errors.Is(err, domain.ErrUnknownTheme):
		lgr.Printf("[WARN] ignoring stored theme, %v", err)
	case err != nil:
		return m.Current(), fmt.Errorf("init theme: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if settings.Theme == domain.ThemeDark {
		m.appearance = domain.Appearance{Dark: true, Glyph: domain.ThemeDark.Glyph()}
	}
	lgr.Printf("[DEBUG] theme initialized, %s", m.appearance.Theme())
	return m.appearance, nil
}

// Toggle flips the applied theme, persists the new value and notifies listeners.
// The decision is made from the applied attribute, not from the store.
// Listeners must not call Toggle.
func (m *Manager) Toggle(ctx context.Context) (domain.Appearance, error) {
	m.toggleMu.Lock()
	defer m.toggleMu.Unlock()

	current := m.Current()
	next := current.Theme().Toggle()
	if err := SaveSettings(ctx, m.store, Settings{Theme: next}); err != nil {
		return current, fmt.Errorf("toggle theme to %s: %w", next, err)
	}

	m.mu.Lock()
	m.appearance = domain.Appearance{Dark: next == domain.ThemeDark, Glyph: next.Glyph()}
	evt := Event{Theme: next, Appearance: m.appearance, At: m.now()}
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()

	lgr.Printf("[INFO] theme switched to %s", next)
	for _, l := range listeners {
		l(evt)
	}
	return evt.Appearance, nil
}

// Current returns the applied appearance
func (m *Manager) Current() domain.Appearance {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appearance
}

// Subscribe adds a listener called after every successful toggle
func (m *Manager) Subscribe(l Listener) {
	if l == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}
