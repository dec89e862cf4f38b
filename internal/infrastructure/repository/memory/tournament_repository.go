package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournament"
)

type TournamentRepository struct {
	c conn
}

func (r *TournamentRepository) List(_ context.Context, filter tournament.Filter) ([]tournament.Tournament, error) {
	var out []tournament.Tournament
	r.c.read(func(d *dataset) {
		out = make([]tournament.Tournament, 0, len(d.tournaments))
		for _, t := range d.tournaments {
			if filter.SeasonID != 0 && t.SeasonID != filter.SeasonID {
				continue
			}
			out = append(out, t)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *TournamentRepository) GetByID(_ context.Context, id int64) (tournament.Tournament, bool, error) {
	var (
		item   tournament.Tournament
		exists bool
	)
	r.c.read(func(d *dataset) {
		item, exists = d.tournaments[id]
	})
	return item, exists, nil
}

func (r *TournamentRepository) Create(_ context.Context, t tournament.Tournament) (tournament.Tournament, error) {
	err := r.c.write(func(d *dataset) error {
		if err := checkTournamentRefs(d, t); err != nil {
			return err
		}
		now := r.c.now()
		t.ID = d.newID()
		t.CreatedAt, t.UpdatedAt = now, now
		d.tournaments[t.ID] = t
		return nil
	})
	if err != nil {
		return tournament.Tournament{}, err
	}
	return t, nil
}

func (r *TournamentRepository) Update(_ context.Context, t tournament.Tournament) (tournament.Tournament, bool, error) {
	exists := false
	err := r.c.write(func(d *dataset) error {
		current, ok := d.tournaments[t.ID]
		if !ok {
			return nil
		}
		if err := checkTournamentRefs(d, t); err != nil {
			return err
		}
		exists = true
		t.CreatedAt = current.CreatedAt
		t.UpdatedAt = r.c.now()
		d.tournaments[t.ID] = t
		return nil
	})
	if err != nil || !exists {
		return tournament.Tournament{}, exists, err
	}
	return t, true, nil
}

func (r *TournamentRepository) Delete(_ context.Context, id int64) (bool, error) {
	deleted := false
	err := r.c.write(func(d *dataset) error {
		if _, ok := d.tournaments[id]; !ok {
			return nil
		}
		d.cascadeTournament(id)
		deleted = true
		return nil
	})
	return deleted, err
}

func checkTournamentRefs(d *dataset, t tournament.Tournament) error {
	if _, ok := d.seasons[t.SeasonID]; !ok {
		return store.ForeignKey("tournaments_season_id_fkey", fmt.Sprintf("season_id=%d is not present", t.SeasonID))
	}
	if _, ok := d.types[t.TournamentTypeID]; !ok {
		return store.ForeignKey("tournaments_tournament_type_id_fkey", fmt.Sprintf("tournament_type_id=%d is not present", t.TournamentTypeID))
	}
	return nil
}
