package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Zachkp/wildsme/preference"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "site.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestThemeStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)
	store := s.Theme("visitor-1")

	if _, ok, err := store.Load(); err != nil || ok {
		t.Fatalf("Expected no stored theme, got ok=%v err=%v", ok, err)
	}
	if err := store.Save(preference.Dark); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := store.Save(preference.Light); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	theme, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("Expected a stored theme, got ok=%v err=%v", ok, err)
	}
	if theme != preference.Light {
		t.Errorf("Expected light, got %s", theme)
	}

	if _, ok, _ := s.Theme("visitor-2").Load(); ok {
		t.Error("Expected visitors to have separate preferences")
	}
}

func TestThemeStoreBacksService(t *testing.T) {
	s := openTestStore(t)
	svc := preference.NewService(s.Theme("v"))
	if theme, _ := svc.Resolve(true); theme != preference.Dark {
		t.Fatalf("Expected system dark, got %s", theme)
	}
	svc.Toggle()
	svc.Toggle()

	again := preference.NewService(s.Theme("v"))
	if theme, _ := again.Resolve(false); theme != preference.Dark {
		t.Errorf("Expected persisted dark to win over light system, got %s", theme)
	}

	counts, err := s.ThemeCounts()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if counts[preference.Dark] != 1 || counts[preference.Light] != 0 {
		t.Errorf("Unexpected theme counts %v", counts)
	}
}

func TestVisitsAndStats(t *testing.T) {
	s := openTestStore(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	visits := []struct {
		ip string
		at time.Time
	}{
		{"10.0.0.1", now.Add(-time.Hour)},
		{"10.0.0.1", now.Add(-2 * time.Hour)},
		{"10.0.0.2", now.AddDate(0, 0, -3)},
		{"10.0.0.3", now.AddDate(0, 0, -30)},
		{"10.0.0.4", now.AddDate(-2, 0, 0)},
	}
	for _, v := range visits {
		if err := s.RecordVisit(v.ip, "test-agent", "/", v.at); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	stats, err := s.Stats(now)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.TotalVisitors != 5 {
		t.Errorf("Expected 5 visits, got %d", stats.TotalVisitors)
	}
	if stats.UniqueVisitors != 4 {
		t.Errorf("Expected 4 unique visitors, got %d", stats.UniqueVisitors)
	}
	if stats.VisitorsToday != 2 {
		t.Errorf("Expected 2 visits today, got %d", stats.VisitorsToday)
	}
	if stats.VisitorsThisWeek != 3 {
		t.Errorf("Expected 3 visits this week, got %d", stats.VisitorsThisWeek)
	}
	if len(stats.RecentVisitors) != 5 || !stats.RecentVisitors[0].Timestamp.Equal(now.Add(-time.Hour)) {
		t.Errorf("Expected newest visit first, got %+v", stats.RecentVisitors)
	}
	for _, v := range stats.RecentVisitors {
		if v.HashedIP == "10.0.0.1" || len(v.HashedIP) != 16 {
			t.Errorf("Expected a 16 char hash, got %q", v.HashedIP)
		}
	}

	deleted, err := s.CleanupOldVisits(now)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 visit past retention, got %d", deleted)
	}
}

func TestHashIPIsStable(t *testing.T) {
	s := openTestStore(t)
	if s.HashIP("1.2.3.4") != s.HashIP("1.2.3.4") {
		t.Error("Expected the same hash for the same address")
	}
	if s.HashIP("1.2.3.4") == s.HashIP("1.2.3.5") {
		t.Error("Expected different hashes for different addresses")
	}
}
