package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/Zachkp/wildsme/contact"
	"github.com/Zachkp/wildsme/preference"
)

// Shell holds the UI state of the page: the mobile menu, the theme, the
// highlighted navigation entry and the contact form.
type Shell struct {
	menuOpen bool
	active   string
	prefs    *preference.Service
	form     *contact.Form
}

// New creates a shell scrolled to the top.
func New(prefs *preference.Service, form *contact.Form) *Shell {
	return &Shell{active: Sections[0], prefs: prefs, form: form}
}

// ToggleMenu opens or closes the mobile menu.
func (s *Shell) ToggleMenu() bool {
	s.menuOpen = !s.menuOpen
	return s.menuOpen
}

// MenuOpen reports whether the mobile menu is open.
func (s *Shell) MenuOpen() bool {
	return s.menuOpen
}

// ScrollTo navigates to a section and closes the menu.
func (s *Shell) ScrollTo(section string) error {
	if !IsSection(section) {
		return fmt.Errorf("unknown section %q", section)
	}
	s.active = section
	s.menuOpen = false
	return nil
}

// OnScroll updates the highlighted section from the scroll position.
func (s *Shell) OnScroll(scrollY float64, sections []Bounds) string {
	s.active = ActiveSection(scrollY, sections, s.active)
	return s.active
}

// Active returns the highlighted section.
func (s *Shell) Active() string {
	return s.active
}

// Theme returns the current theme.
func (s *Shell) Theme() preference.Theme {
	return s.prefs.Theme()
}

// ToggleTheme flips and persists the theme.
func (s *Shell) ToggleTheme() (preference.Theme, error) {
	return s.prefs.Toggle()
}

// Form returns the contact form.
func (s *Shell) Form() *contact.Form {
	return s.form
}

// Submit sends the contact form.
func (s *Shell) Submit(ctx context.Context) error {
	return s.form.Submit(ctx)
}

// NavItem is one entry of the navigation bar.
type NavItem struct {
	ID     string
	Label  string
	Active bool
}

// View is the snapshot handed to the page templates.
type View struct {
	MenuOpen   bool
	Active     string
	Theme      preference.Theme
	ThemeClass string
	Nav        []NavItem
	Values     contact.Values
	Errors     contact.Errors
	Submitting bool
}

// View captures the current state for rendering.
func (s *Shell) View() View {
	nav := make([]NavItem, 0, len(Sections))
	for _, id := range Sections {
		nav = append(nav, NavItem{ID: id, Label: strings.ToUpper(id[:1]) + id[1:], Active: id == s.active})
	}
	theme := s.Theme()
	return View{
		MenuOpen:   s.menuOpen,
		Active:     s.active,
		Theme:      theme,
		ThemeClass: theme.Class(),
		Nav:        nav,
		Values:     s.form.Values(),
		Errors:     s.form.Errors(),
		Submitting: s.form.Submitting(),
	}
}
