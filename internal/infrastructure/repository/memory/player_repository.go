package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
)

type PlayerRepository struct {
	c conn
}

func (r *PlayerRepository) List(_ context.Context, activeOnly bool) ([]player.Player, error) {
	var out []player.Player
	r.c.read(func(d *dataset) {
		out = make([]player.Player, 0, len(d.players))
		for _, p := range d.players {
			if activeOnly && !p.Active {
				continue
			}
			out = append(out, p)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	var (
		item   player.Player
		exists bool
	)
	r.c.read(func(d *dataset) {
		item, exists = d.players[id]
	})
	return item, exists, nil
}

func (r *PlayerRepository) GetByName(_ context.Context, name string) (player.Player, bool, error) {
	var (
		item   player.Player
		exists bool
	)
	r.c.read(func(d *dataset) {
		item, exists = findPlayerByName(d, name)
	})
	return item, exists, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	err := r.c.write(func(d *dataset) error {
		var err error
		p, err = insertPlayer(d, p, r.c.now())
		return err
	})
	if err != nil {
		return player.Player{}, err
	}
	return p, nil
}

func (r *PlayerRepository) CreateIfAbsent(_ context.Context, p player.Player) (player.Player, bool, error) {
	created := false
	err := r.c.write(func(d *dataset) error {
		if existing, ok := findPlayerByName(d, p.Name); ok {
			p = existing
			return nil
		}
		var err error
		p, err = insertPlayer(d, p, r.c.now())
		created = err == nil
		return err
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return p, created, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) (player.Player, bool, error) {
	exists := false
	err := r.c.write(func(d *dataset) error {
		current, ok := d.players[p.ID]
		if !ok {
			return nil
		}
		if err := checkPlayerKeys(d, p); err != nil {
			return err
		}
		exists = true
		if p.RegistrationDate.IsZero() {
			p.RegistrationDate = current.RegistrationDate
		}
		p.CreatedAt = current.CreatedAt
		p.UpdatedAt = r.c.now()
		d.players[p.ID] = p
		return nil
	})
	if err != nil || !exists {
		return player.Player{}, exists, err
	}
	return p, true, nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) (bool, error) {
	deleted := false
	err := r.c.write(func(d *dataset) error {
		if _, ok := d.players[id]; !ok {
			return nil
		}
		for _, m := range d.matches {
			if m.Player1ID == id {
				return store.ForeignKey("matches_player1_id_fkey", fmt.Sprintf("player_id=%d is still referenced from matches", id))
			}
			if m.Player2ID == id {
				return store.ForeignKey("matches_player2_id_fkey", fmt.Sprintf("player_id=%d is still referenced from matches", id))
			}
		}
		for _, g := range d.games {
			if g.WinnerID == id {
				return store.ForeignKey("games_winner_id_fkey", fmt.Sprintf("player_id=%d is still referenced from games", id))
			}
		}
		delete(d.players, id)
		deleted = true
		return nil
	})
	return deleted, err
}

func insertPlayer(d *dataset, p player.Player, now time.Time) (player.Player, error) {
	if err := checkPlayerKeys(d, p); err != nil {
		return player.Player{}, err
	}
	if p.RegistrationDate.IsZero() {
		p.RegistrationDate = now
	}
	p.ID = d.newID()
	p.CreatedAt, p.UpdatedAt = now, now
	d.players[p.ID] = p
	return p, nil
}

func findPlayerByName(d *dataset, name string) (player.Player, bool) {
	for _, p := range d.players {
		if p.Name == name {
			return p, true
		}
	}
	return player.Player{}, false
}

// checkPlayerKeys enforces name and email uniqueness against every other player.
func checkPlayerKeys(d *dataset, p player.Player) error {
	for _, existing := range d.players {
		if existing.ID == p.ID {
			continue
		}
		if existing.Name == p.Name {
			return store.Unique("players_name_key", fmt.Sprintf("name=%s", p.Name))
		}
		if p.Email != "" && existing.Email == p.Email {
			return store.Unique("players_email_key", fmt.Sprintf("email=%s", p.Email))
		}
	}
	return nil
}
