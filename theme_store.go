package uxsettings

import (
	"fmt"
	"slices"
	"sync"
)

// ThemeState is a point-in-time view of a ThemeStore.
type ThemeState struct {
	// Theme is the selected theme name; empty means follow the system.
	Theme      string `json:"theme" yaml:"theme"`
	Dark       bool   `json:"dark" yaml:"dark"`
	SystemDark bool   `json:"systemDark" yaml:"systemDark"`
}

// ThemeStore holds the selected theme for a component subtree. It is the only
// mutable value reachable from Settings; descendants observe it through
// Subscribe and never replace it.
type ThemeStore struct {
	mu          sync.RWMutex
	themes      Themes
	theme       string
	systemDark  bool
	subscribers map[uint64]func(ThemeState)
	nextID      uint64
}

// NewThemeStore creates a store seeded with the given name lists.
func NewThemeStore(themes Themes) *ThemeStore {
	return &ThemeStore{
		themes:      themes.clone(),
		subscribers: make(map[uint64]func(ThemeState)),
	}
}

// Themes returns the light/dark lists the store was seeded with.
func (s *ThemeStore) Themes() Themes {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.themes.clone()
}

// Theme returns the selected theme name, or "" when following the system.
func (s *ThemeStore) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Dark reports whether the effective theme is a dark one.
func (s *ThemeStore) Dark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkLocked()
}

// Snapshot returns the current state.
func (s *ThemeStore) Snapshot() ThemeState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// SetTheme selects a theme by name. An empty name resets to the system theme.
func (s *ThemeStore) SetTheme(name string) error {
	s.mu.Lock()
	if name != "" && !slices.Contains(s.themes.Light, name) && !slices.Contains(s.themes.Dark, name) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	if s.theme == name {
		s.mu.Unlock()
		return nil
	}
	s.theme = name
	state, subscribers := s.stateLocked(), s.subscribersLocked()
	s.mu.Unlock()

	notify(subscribers, state)
	return nil
}

// SetSystemDark records the platform color scheme preference.
func (s *ThemeStore) SetSystemDark(dark bool) {
	s.mu.Lock()
	if s.systemDark == dark {
		s.mu.Unlock()
		return
	}
	s.systemDark = dark
	state, subscribers := s.stateLocked(), s.subscribersLocked()
	s.mu.Unlock()

	notify(subscribers, state)
}

// Subscribe registers fn for state changes and calls it once with the
// current state. The returned function removes the subscription.
func (s *ThemeStore) Subscribe(fn func(ThemeState)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subscribers[id] = fn
	state := s.stateLocked()
	s.mu.Unlock()

	fn(state)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

func (s *ThemeStore) darkLocked() bool {
	if s.theme == "" {
		return s.systemDark
	}
	return slices.Contains(s.themes.Dark, s.theme)
}

func (s *ThemeStore) stateLocked() ThemeState {
	return ThemeState{
		Theme:      s.theme,
		Dark:       s.darkLocked(),
		SystemDark: s.systemDark,
	}
}

func (s *ThemeStore) subscribersLocked() []func(ThemeState) {
	if len(s.subscribers) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]func(ThemeState), 0, len(ids))
	for _, id := range ids {
		out = append(out, s.subscribers[id])
	}
	return out
}

func notify(subscribers []func(ThemeState), state ThemeState) {
	for _, fn := range subscribers {
		fn(state)
	}
}
