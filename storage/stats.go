package storage

import (
	"fmt"
	"time"

	"github.com/Zachkp/wildsme/preference"
)

// AdminStats summarizes traffic and theme preferences for the dashboard.
type AdminStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	DarkThemes       int64           `json:"dark_themes"`
	LightThemes      int64           `json:"light_themes"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

// Stats computes the dashboard figures relative to now.
func (s *Store) Stats(now time.Time) (*AdminStats, error) {
	stats := &AdminStats{}
	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{formatTime(startOfDay)}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{formatTime(now.AddDate(0, 0, -7))}},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	themes, err := s.ThemeCounts()
	if err != nil {
		return nil, err
	}
	stats.DarkThemes = themes[preference.Dark]
	stats.LightThemes = themes[preference.Light]

	stats.RecentVisitors, err = s.RecentVisitors(50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
