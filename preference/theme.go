package preference

import (
	"fmt"
	"strings"
	"sync"
)

// Theme is the color scheme of the page.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse accepts "light" or "dark", case-insensitively.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == Dark
}

// Class is the class set on the document root.
func (t Theme) Class() string {
	if t == Dark {
		return "dark"
	}
	return ""
}

// Store persists one theme value. Load reports false when nothing has been
// stored yet.
type Store interface {
	Load() (Theme, bool, error)
	Save(Theme) error
}

// Service resolves and toggles the theme, saving every change.
type Service struct {
	store  Store
	theme  Theme
	stored bool
}

// NewService creates a service backed by store. Call Resolve before use.
func NewService(store Store) *Service {
	return &Service{store: store, theme: Light}
}

// Resolve picks the stored theme, or the system preference when nothing is
// stored. A failing store falls back to the system preference and the
// error is returned alongside it.
func (s *Service) Resolve(systemDark bool) (Theme, error) {
	s.theme = Light
	if systemDark {
		s.theme = Dark
	}
	stored, ok, err := s.store.Load()
	if err != nil {
		return s.theme, fmt.Errorf("load theme: %w", err)
	}
	if ok {
		s.theme = stored
	}
	s.stored = ok
	return s.theme, nil
}

// Stored reports whether the theme came from the store rather than the
// system preference.
func (s *Service) Stored() bool {
	return s.stored
}

// Theme returns the current theme.
func (s *Service) Theme() Theme {
	return s.theme
}

// Toggle flips the theme and persists it.
func (s *Service) Toggle() (Theme, error) {
	return s.Set(s.theme.Toggle())
}

// Set changes the theme and persists it.
func (s *Service) Set(t Theme) (Theme, error) {
	s.theme = t
	if err := s.store.Save(t); err != nil {
		return t, fmt.Errorf("save theme: %w", err)
	}
	s.stored = true
	return t, nil
}

// MemoryStore keeps the theme in memory.
type MemoryStore struct {
	mu    sync.Mutex
	theme Theme
	set   bool
	saves int
}

// Load returns the stored theme.
func (m *MemoryStore) Load() (Theme, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme, m.set, nil
}

// Save stores the theme.
func (m *MemoryStore) Save(t Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme, m.set = t, true
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
