// Package dashboard composes the home-screen summary from the live session,
// the scan history and the product catalog.
package dashboard

import (
	"fmt"
	"time"

	"github.com/glowlab/skinflow/internal/catalog"
	"github.com/glowlab/skinflow/internal/common"
	"github.com/glowlab/skinflow/internal/models"
)

// ProfileSource yields the current session profile, nil when logged out.
type ProfileSource interface {
	Current() *models.Profile
}

// HistorySource yields the scan history, newest first.
type HistorySource interface {
	All() []models.ScanRecord
}

// Summary is everything the dashboard screen shows at once.
type Summary struct {
	Greeting        string
	Name            string
	Title           string
	XP              int
	Streak          int
	Badges          []string
	RecentScan      *models.ScanRecord
	AllergyFlags    int
	Recommendations []models.Product
	Tip             string
}

// Builder assembles summaries. now is a seam for the greeting tests.
type Builder struct {
	profiles ProfileSource
	history  HistorySource
	catalog  *catalog.Catalog
	now      func() time.Time
}

func NewBuilder(profiles ProfileSource, history HistorySource, cat *catalog.Catalog) *Builder {
	return &Builder{
		profiles: profiles,
		history:  history,
		catalog:  cat,
		now:      time.Now,
	}
}

// Build returns the summary for the current session, or
// common.ErrNoActiveSession when nobody is logged in.
func (b *Builder) Build() (*Summary, error) {
	p := b.profiles.Current()
	if p == nil {
		return nil, common.ErrNoActiveSession
	}

	s := &Summary{
		Greeting:        greeting(b.now().Hour()),
		Name:            p.Name,
		Title:           p.Title,
		XP:              p.XP,
		Streak:          p.Streak,
		Badges:          badges(p),
		Recommendations: b.catalog.Recommendations(p, 3),
		Tip:             tip(p),
	}

	if records := b.history.All(); len(records) > 0 {
		recent := records[0]
		s.RecentScan = &recent
		if prod, err := b.catalog.Lookup(recent.ID); err == nil {
			s.AllergyFlags = catalog.FlagAllergies(prod, p.Allergies)
		}
	}
	return s, nil
}

func greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func badges(p *models.Profile) []string {
	var out []string
	if p.SkinType != "" {
		out = append(out, fmt.Sprintf("%s skin", p.SkinType))
	}
	if p.SkinTone != "" {
		out = append(out, fmt.Sprintf("%s tone", p.SkinTone))
	}
	if len(p.Goals) > 0 {
		out = append(out, fmt.Sprintf("%d goals set", len(p.Goals)))
	}
	if len(p.Allergies) > 0 {
		out = append(out, fmt.Sprintf("%d allergies noted", len(p.Allergies)))
	}
	return out
}

func tip(p *models.Profile) string {
	if p.Streak > 0 {
		return fmt.Sprintf("You're on a %d-day streak. Keep it up!", p.Streak)
	}
	return "Scan a product to start building your streak."
}
