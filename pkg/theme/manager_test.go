package theme

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/studyclock/pkg/domain"
	"github.com/umputun/studyclock/pkg/repository"
	"github.com/umputun/studyclock/pkg/theme/mocks"
)

// memStore returns a mock store backed by a map
func memStore(initial map[string]string) (*mocks.StoreMock, map[string]string) {
	var mu sync.Mutex
	data := map[string]string{}
	for k, v := range initial {
		data[k] = v
	}
	return &mocks.StoreMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			return data[key], nil
		},
		SetSettingFunc: func(ctx context.Context, key, value string) error {
			mu.Lock()
			defer mu.Unlock()
			data[key] = value
			return nil
		},
	}, data
}

func TestManager_Init(t *testing.T) {
	t.Run("no stored preference keeps default", func(t *testing.T) {
		store, _ := memStore(nil)
		m := NewManager(ManagerConfig{Store: store})

		app, err := m.Init(context.Background())
		require.NoError(t, err)
		assert.False(t, app.Dark)
		assert.Equal(t, domain.GlyphEnableDark, app.Glyph)
		assert.Equal(t, domain.DefaultAppearance(), m.Current())
		require.Len(t, store.GetSettingCalls(), 1)
		assert.Equal(t, domain.SettingTheme, store.GetSettingCalls()[0].Key)
		assert.Empty(t, store.SetSettingCalls(), "init never writes")
	})

	t.Run("stored dark applied", func(t *testing.T) {
		store, _ := memStore(map[string]string{domain.SettingTheme: "dark"})
		m := NewManager(ManagerConfig{Store: store})

		app, err := m.Init(context.Background())
		require.NoError(t, err)
		assert.True(t, app.Dark)
		assert.Equal(t, domain.GlyphEnableLight, app.Glyph)
		assert.Equal(t, app, m.Current())
	})

	t.Run("stored light keeps default", func(t *testing.T) {
		store, _ := memStore(map[string]string{domain.SettingTheme: "light"})
		m := NewManager(ManagerConfig{Store: store})

		app, err := m.Init(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultAppearance(), app)
	})

	t.Run("unknown stored value treated as light", func(t *testing.T) {
		store, _ := memStore(map[string]string{domain.SettingTheme: "sepia"})
		m := NewManager(ManagerConfig{Store: store})

		app, err := m.Init(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultAppearance(), app)
	})

	t.Run("store read error", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetSettingFunc: func(ctx context.Context, key string) (string, error) {
				return "", errors.New("disk gone")
			},
		}
		m := NewManager(ManagerConfig{Store: store})

		app, err := m.Init(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "init theme")
		assert.Contains(t, err.Error(), "disk gone")
		assert.Equal(t, domain.DefaultAppearance(), app)
	})
}

func TestManager_Toggle(t *testing.T) {
	t.Run("light to dark", func(t *testing.T) {
		store, data := memStore(nil)
		m := NewManager(ManagerConfig{Store: store})
		_, err := m.Init(context.Background())
		require.NoError(t, err)

		app, err := m.Toggle(context.Background())
		require.NoError(t, err)
		assert.True(t, app.Dark)
		assert.Equal(t, domain.GlyphEnableLight, app.Glyph)
		assert.Equal(t, "dark", data[domain.SettingTheme])
	})

	t.Run("twice returns to light", func(t *testing.T) {
		store, data := memStore(nil)
		m := NewManager(ManagerConfig{Store: store})
		_, err := m.Init(context.Background())
		require.NoError(t, err)

		_, err = m.Toggle(context.Background())
		require.NoError(t, err)
		app, err := m.Toggle(context.Background())
		require.NoError(t, err)

		assert.False(t, app.Dark)
		assert.Equal(t, domain.GlyphEnableDark, app.Glyph)
		assert.Equal(t, "light", data[domain.SettingTheme])
		assert.Equal(t, domain.ThemeLight, m.Current().Theme())
		assert.Len(t, store.SetSettingCalls(), 2)
	})

	t.Run("dark to light after init", func(t *testing.T) {
		store, data := memStore(map[string]string{domain.SettingTheme: "dark"})
		m := NewManager(ManagerConfig{Store: store})
		_, err := m.Init(context.Background())
		require.NoError(t, err)

		app, err := m.Toggle(context.Background())
		require.NoError(t, err)
		assert.False(t, app.Dark)
		assert.Equal(t, "light", data[domain.SettingTheme])
	})

	t.Run("store write error keeps state", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetSettingFunc: func(ctx context.Context, key string) (string, error) { return "", nil },
			SetSettingFunc: func(ctx context.Context, key, value string) error {
				return errors.New("read-only")
			},
		}
		var events int
		m := NewManager(ManagerConfig{Store: store, Listeners: []Listener{func(Event) { events++ }}})

		app, err := m.Toggle(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "toggle theme to dark")
		assert.Equal(t, domain.DefaultAppearance(), app)
		assert.Equal(t, domain.DefaultAppearance(), m.Current())
		assert.Zero(t, events, "listeners not called on failure")
	})
}

func TestManager_Listeners(t *testing.T) {
	store, _ := memStore(nil)
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	var got []Event
	m := NewManager(ManagerConfig{
		Store:     store,
		Now:       func() time.Time { return ts },
		Listeners: []Listener{func(e Event) { got = append(got, e) }},
	})

	var order []string
	m.Subscribe(func(e Event) { order = append(order, "second:"+e.Theme.String()) })
	m.Subscribe(nil) // ignored

	_, err := m.Toggle(context.Background())
	require.NoError(t, err)
	_, err = m.Toggle(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, Event{Theme: domain.ThemeDark, Appearance: domain.Appearance{Dark: true, Glyph: domain.GlyphEnableLight}, At: ts}, got[0])
	assert.Equal(t, domain.ThemeLight, got[1].Theme)
	assert.Equal(t, []string{"second:dark", "second:light"}, order)
}

func TestManager_ListenerCanReadCurrent(t *testing.T) {
	store, _ := memStore(nil)
	m := NewManager(ManagerConfig{Store: store})

	var seen domain.Appearance
	m.Subscribe(func(Event) { seen = m.Current() })

	app, err := m.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, app, seen)
}

func TestManager_ConcurrentToggles(t *testing.T) {
	store, data := memStore(nil)
	m := NewManager(ManagerConfig{Store: store})

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Toggle(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// even number of toggles from light ends on light, store and state agree
	assert.Equal(t, domain.ThemeLight, m.Current().Theme())
	assert.Equal(t, "light", data[domain.SettingTheme])
}

func TestManager_CurrentDuringSlowStore(t *testing.T) {
	entered, release := make(chan struct{}), make(chan struct{})
	store := &mocks.StoreMock{
		SetSettingFunc: func(ctx context.Context, key, value string) error {
			close(entered)
			<-release
			return nil
		},
	}
	m := NewManager(ManagerConfig{Store: store})

	done := make(chan domain.Appearance, 1)
	go func() {
		app, err := m.Toggle(context.Background())
		assert.NoError(t, err)
		done <- app
	}()
	<-entered

	// store write is in flight, readers are not blocked and still see light
	current := make(chan domain.Appearance, 1)
	go func() { current <- m.Current() }()
	select {
	case app := <-current:
		assert.False(t, app.Dark)
	case <-time.After(time.Second):
		t.Fatal("Current blocked by a pending store write")
	}

	close(release)
	app := <-done
	assert.True(t, app.Dark)
	assert.True(t, m.Current().Dark)
}

func TestManager_WithSQLiteStore(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	defer func() { assert.NoError(t, repos.Close()) }()

	m := NewManager(ManagerConfig{Store: repos.Setting})
	_, err = m.Init(ctx)
	require.NoError(t, err)
	_, err = m.Toggle(ctx)
	require.NoError(t, err)

	// a fresh manager on the same store picks up the persisted preference
	m2 := NewManager(ManagerConfig{Store: repos.Setting})
	app, err := m2.Init(ctx)
	require.NoError(t, err)
	assert.True(t, app.Dark)

	value, err := repos.Setting.GetSetting(ctx, domain.SettingTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
}
