package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
)

type TournamentTypeRepository struct {
	c conn
}

func (r *TournamentTypeRepository) List(_ context.Context) ([]tournamenttype.TournamentType, error) {
	var out []tournamenttype.TournamentType
	r.c.read(func(d *dataset) {
		out = make([]tournamenttype.TournamentType, 0, len(d.types))
		for _, t := range d.types {
			out = append(out, t)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *TournamentTypeRepository) GetByID(_ context.Context, id int64) (tournamenttype.TournamentType, bool, error) {
	var (
		item   tournamenttype.TournamentType
		exists bool
	)
	r.c.read(func(d *dataset) {
		item, exists = d.types[id]
	})
	return item, exists, nil
}

func (r *TournamentTypeRepository) GetByName(_ context.Context, name string) (tournamenttype.TournamentType, bool, error) {
	var (
		item   tournamenttype.TournamentType
		exists bool
	)
	r.c.read(func(d *dataset) {
		item, exists = findTypeByName(d, name)
	})
	return item, exists, nil
}

func (r *TournamentTypeRepository) Create(_ context.Context, t tournamenttype.TournamentType) (tournamenttype.TournamentType, error) {
	err := r.c.write(func(d *dataset) error {
		if err := checkTournamentType(d, t); err != nil {
			return err
		}
		t.ID = d.newID()
		d.types[t.ID] = t
		return nil
	})
	if err != nil {
		return tournamenttype.TournamentType{}, err
	}
	return t, nil
}

func (r *TournamentTypeRepository) Update(_ context.Context, t tournamenttype.TournamentType) (tournamenttype.TournamentType, bool, error) {
	exists := false
	err := r.c.write(func(d *dataset) error {
		if _, ok := d.types[t.ID]; !ok {
			return nil
		}
		if err := checkTournamentType(d, t); err != nil {
			return err
		}
		exists = true
		d.types[t.ID] = t
		return nil
	})
	if err != nil || !exists {
		return tournamenttype.TournamentType{}, exists, err
	}
	return t, true, nil
}

func (r *TournamentTypeRepository) Delete(_ context.Context, id int64) (bool, error) {
	deleted := false
	err := r.c.write(func(d *dataset) error {
		if _, ok := d.types[id]; !ok {
			return nil
		}
		for _, t := range d.tournaments {
			if t.TournamentTypeID == id {
				return store.ForeignKey("tournaments_tournament_type_id_fkey", fmt.Sprintf("tournament_type_id=%d is still referenced", id))
			}
		}
		delete(d.types, id)
		deleted = true
		return nil
	})
	return deleted, err
}

func findTypeByName(d *dataset, name string) (tournamenttype.TournamentType, bool) {
	for _, t := range d.types {
		if tournamenttype.SameName(t.Name, name) {
			return t, true
		}
	}
	return tournamenttype.TournamentType{}, false
}

func checkTournamentType(d *dataset, t tournamenttype.TournamentType) error {
	if existing, found := findTypeByName(d, t.Name); found && existing.ID != t.ID {
		return store.Unique("tournament_types_name_lower_key", fmt.Sprintf("name=%s", t.Name))
	}
	if t.PointsWin < 0 || t.PointsDraw < 0 {
		return store.Check("tournament_types_points_check", "points must be >= 0")
	}
	return nil
}
