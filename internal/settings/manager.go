// Package settings owns the in-memory display settings, persists every change
// through a Store and tells subscribers about it.
package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Paintersrp/activities/internal/activity"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Store is the persistent key-value side of the settings.
type Store interface {
	LoadSettings(ctx context.Context) (activity.DisplaySettings, bool, error)
	PersistSettings(ctx context.Context, s activity.DisplaySettings) error
}

// Listener is called after a change has been persisted.
type Listener func(ctx context.Context, s activity.DisplaySettings) error

type Manager struct {
	store  Store
	logger zerolog.Logger

	mu        sync.Mutex
	current   activity.DisplaySettings
	listeners map[int]Listener
	order     []int
	nextID    int
}

func NewManager(store Store, logger zerolog.Logger) *Manager {
	return &Manager{
		store:     store,
		logger:    logger.With().Str("component", "settings").Logger(),
		current:   activity.DefaultSettings(),
		listeners: make(map[int]Listener),
	}
}

// Load merges persisted values over the defaults. A missing or unreadable
// store is not an error; the defaults stay in place.
func (m *Manager) Load(ctx context.Context) activity.DisplaySettings {
	loaded, found, err := m.store.LoadSettings(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case err != nil:
		m.logger.Warn().Err(err).Msg("failed to load settings, using defaults")
		m.current = activity.DefaultSettings()
	case !found:
		m.current = activity.DefaultSettings()
	default:
		m.current = loaded.Normalize()
	}

	return m.current
}

func (m *Manager) Get() activity.DisplaySettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Set validates and persists the patched settings, then runs every listener.
// On a failed persist the previous settings are kept and no listener runs.
// Listener errors are joined; one failing listener does not stop the rest.
func (m *Manager) Set(ctx context.Context, patch activity.SettingsPatch) (activity.DisplaySettings, error) {
	if patch.Empty() {
		return m.Get(), activity.ErrEmptyPatch
	}

	m.mu.Lock()
	next := patch.Apply(m.current)
	if err := next.Validate(); err != nil {
		current := m.current
		m.mu.Unlock()
		return current, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	if err := m.store.PersistSettings(ctx, next); err != nil {
		current := m.current
		m.mu.Unlock()
		m.logger.Error().Err(err).Msg("failed to persist settings")
		return current, fmt.Errorf("failed to persist settings: %w", err)
	}

	m.current = next
	listeners := m.snapshotListeners()
	m.mu.Unlock()

	m.logger.Debug().
		Bool("show_extension", next.ShowExtension).
		Str("sort_mode", string(next.SortMode)).
		Int("listeners", len(listeners)).
		Msg("settings updated")

	var errs []error
	for _, fn := range listeners {
		if err := fn(ctx, next); err != nil {
			errs = append(errs, err)
		}
	}

	return next, errors.Join(errs...)
}

// Subscribe registers fn and returns a function that removes it again.
func (m *Manager) Subscribe(fn Listener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.order = append(m.order, id)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
		for i, v := range m.order {
			if v == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
}

func (m *Manager) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.listeners[id])
	}
	return out
}
