package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/season"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
)

type SeasonRepository struct {
	c conn
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	var out []season.Season
	r.c.read(func(d *dataset) {
		out = make([]season.Season, 0, len(d.seasons))
		for _, s := range d.seasons {
			out = append(out, s)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.After(out[j].StartDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *SeasonRepository) GetByID(_ context.Context, id int64) (season.Season, bool, error) {
	var (
		item   season.Season
		exists bool
	)
	r.c.read(func(d *dataset) {
		item, exists = d.seasons[id]
	})
	return item, exists, nil
}

func (r *SeasonRepository) Create(_ context.Context, s season.Season) (season.Season, error) {
	err := r.c.write(func(d *dataset) error {
		if err := checkSeason(d, s); err != nil {
			return err
		}

		now := r.c.now()
		s.ID = d.newID()
		s.CreatedAt, s.UpdatedAt = now, now
		d.seasons[s.ID] = s
		return nil
	})
	if err != nil {
		return season.Season{}, err
	}
	return s, nil
}

func (r *SeasonRepository) Update(_ context.Context, s season.Season) (season.Season, bool, error) {
	exists := false
	err := r.c.write(func(d *dataset) error {
		current, ok := d.seasons[s.ID]
		if !ok {
			return nil
		}
		if err := checkSeason(d, s); err != nil {
			return err
		}
		exists = true
		s.CreatedAt = current.CreatedAt
		s.UpdatedAt = r.c.now()
		d.seasons[s.ID] = s
		return nil
	})
	if err != nil || !exists {
		return season.Season{}, exists, err
	}
	return s, true, nil
}

func (r *SeasonRepository) Delete(_ context.Context, id int64) (bool, error) {
	deleted := false
	err := r.c.write(func(d *dataset) error {
		if _, ok := d.seasons[id]; !ok {
			return nil
		}
		for tournamentID, t := range d.tournaments {
			if t.SeasonID == id {
				d.cascadeTournament(tournamentID)
			}
		}
		delete(d.seasons, id)
		deleted = true
		return nil
	})
	return deleted, err
}

func checkSeason(d *dataset, s season.Season) error {
	for _, existing := range d.seasons {
		if existing.ID != s.ID && existing.Name == s.Name {
			return store.Unique("seasons_name_key", fmt.Sprintf("name=%s", s.Name))
		}
	}
	if s.EndDate != nil && s.EndDate.Before(s.StartDate) {
		return store.Check("valid_season_dates", "end_date before start_date")
	}
	return nil
}
