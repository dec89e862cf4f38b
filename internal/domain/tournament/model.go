package tournament

import (
	"fmt"
	"strings"
	"time"
)

// Tournament is one event inside a season, hosted under a tournament type.
type Tournament struct {
	ID               int64
	SeasonID         int64
	TournamentTypeID int64
	Name             string
	Date             time.Time
	Location         string
	Format           string
	Description      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks field invariants. now bounds the tournament date.
func (t Tournament) Validate(now time.Time) error {
	if t.SeasonID <= 0 {
		return fmt.Errorf("tournament season id is required")
	}
	if t.TournamentTypeID <= 0 {
		return fmt.Errorf("tournament type id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("tournament date is required")
	}
	if dateOnly(t.Date).After(dateOnly(now)) {
		return fmt.Errorf("tournament date must not be in the future")
	}

	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Filter narrows tournament listings. Zero values mean no filter.
type Filter struct {
	SeasonID int64
}
