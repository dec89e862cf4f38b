package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
)

type MatchRepository struct {
	c conn
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	var out []match.Match
	r.c.read(func(d *dataset) {
		for _, m := range d.matches {
			if filter.TournamentID != 0 && m.TournamentID != filter.TournamentID {
				continue
			}
			if filter.PlayerID != 0 && m.Player1ID != filter.PlayerID && m.Player2ID != filter.PlayerID {
				continue
			}
			out = append(out, withGames(d, m))
		}
	})
	sort.Slice(out, func(i, j int) bool {
		ri, rj := roundOrZero(out[i]), roundOrZero(out[j])
		if ri != rj {
			return ri < rj
		}
		return out[i].ID < out[j].ID
	})
	if out == nil {
		out = []match.Match{}
	}
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	var (
		item   match.Match
		exists bool
	)
	r.c.read(func(d *dataset) {
		item, exists = d.matches[id]
		if exists {
			item = withGames(d, item)
		}
	})
	return item, exists, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	err := r.c.write(func(d *dataset) error {
		if err := checkMatchRow(d, m); err != nil {
			return err
		}

		now := r.c.now()
		m.ID = d.newID()
		m.Games = nil
		if m.MatchDate.IsZero() {
			m.MatchDate = now
		}
		m.CreatedAt, m.UpdatedAt = now, now
		d.matches[m.ID] = m
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}
	return m, nil
}

// Update replaces the match row and returns it with its stored games.
func (r *MatchRepository) Update(_ context.Context, m match.Match) (match.Match, bool, error) {
	exists := false
	err := r.c.write(func(d *dataset) error {
		current, ok := d.matches[m.ID]
		if !ok {
			return nil
		}
		if err := checkMatchRow(d, m); err != nil {
			return err
		}
		exists = true
		m.Games = nil
		if m.MatchDate.IsZero() {
			m.MatchDate = current.MatchDate
		}
		m.CreatedAt = current.CreatedAt
		m.UpdatedAt = r.c.now()
		d.matches[m.ID] = m
		m = withGames(d, m)
		return nil
	})
	if err != nil || !exists {
		return match.Match{}, exists, err
	}
	return m, true, nil
}

func (r *MatchRepository) Delete(_ context.Context, id int64) (bool, error) {
	deleted := false
	err := r.c.write(func(d *dataset) error {
		if _, ok := d.matches[id]; !ok {
			return nil
		}
		d.cascadeMatch(id)
		deleted = true
		return nil
	})
	return deleted, err
}

func (r *MatchRepository) CreateGame(_ context.Context, g match.Game) (match.Game, error) {
	err := r.c.write(func(d *dataset) error {
		if err := checkGameRow(d, g); err != nil {
			return err
		}

		g.ID = d.newID()
		g.CreatedAt = r.c.now()
		d.games[g.ID] = g
		return nil
	})
	if err != nil {
		return match.Game{}, err
	}
	return g, nil
}

func (r *MatchRepository) UpdateGame(_ context.Context, g match.Game) (match.Game, bool, error) {
	exists := false
	err := r.c.write(func(d *dataset) error {
		current, ok := d.games[g.ID]
		if !ok {
			return nil
		}
		if err := checkGameRow(d, g); err != nil {
			return err
		}
		exists = true
		g.CreatedAt = current.CreatedAt
		d.games[g.ID] = g
		return nil
	})
	if err != nil || !exists {
		return match.Game{}, exists, err
	}
	return g, true, nil
}

func (r *MatchRepository) GetGame(_ context.Context, id int64) (match.Game, bool, error) {
	var (
		item   match.Game
		exists bool
	)
	r.c.read(func(d *dataset) {
		item, exists = d.games[id]
	})
	return item, exists, nil
}

func (r *MatchRepository) DeleteGame(_ context.Context, id int64) (bool, error) {
	deleted := false
	err := r.c.write(func(d *dataset) error {
		if _, ok := d.games[id]; !ok {
			return nil
		}
		delete(d.games, id)
		deleted = true
		return nil
	})
	return deleted, err
}

func checkMatchRow(d *dataset, m match.Match) error {
	if _, ok := d.tournaments[m.TournamentID]; !ok {
		return store.ForeignKey("matches_tournament_id_fkey", fmt.Sprintf("tournament_id=%d is not present", m.TournamentID))
	}
	refs := [...]struct {
		constraint string
		column     string
		id         int64
		present    bool
	}{
		{"matches_player1_id_fkey", "player1_id", m.Player1ID, hasKey(d.players, m.Player1ID)},
		{"matches_player2_id_fkey", "player2_id", m.Player2ID, hasKey(d.players, m.Player2ID)},
		{"matches_player1_deck_id_fkey", "player1_deck_id", m.Player1DeckID, hasKey(d.decks, m.Player1DeckID)},
		{"matches_player2_deck_id_fkey", "player2_deck_id", m.Player2DeckID, hasKey(d.decks, m.Player2DeckID)},
	}
	for _, ref := range refs {
		if !ref.present {
			return store.ForeignKey(ref.constraint, fmt.Sprintf("%s=%d is not present", ref.column, ref.id))
		}
	}
	if m.Player1ID == m.Player2ID {
		return store.Check("different_players", "player1_id equals player2_id")
	}
	if !m.Status.Valid() {
		return store.Check("valid_match_status", fmt.Sprintf("match_status=%s", m.Status))
	}
	if m.RoundNumber != nil && *m.RoundNumber < 1 {
		return store.Check("valid_round_number", "round_number must be > 0")
	}
	return nil
}

// checkGameRow applies the games table constraints. g.ID is excluded from the
// per-match game number uniqueness check.
func checkGameRow(d *dataset, g match.Game) error {
	if _, ok := d.matches[g.MatchID]; !ok {
		return store.ForeignKey("games_match_id_fkey", fmt.Sprintf("match_id=%d is not present", g.MatchID))
	}
	if _, ok := d.players[g.WinnerID]; !ok {
		return store.ForeignKey("games_winner_id_fkey", fmt.Sprintf("winner_id=%d is not present", g.WinnerID))
	}
	if g.GameNumber < match.MinGameNumber || g.GameNumber > match.MaxGameNumber {
		return store.Check("valid_game_number", fmt.Sprintf("game_number=%d", g.GameNumber))
	}
	if !g.Result.Valid() {
		return store.Check("valid_game_result", fmt.Sprintf("game_result=%s", g.Result))
	}
	if g.DurationMinutes != nil && *g.DurationMinutes <= 0 {
		return store.Check("valid_duration", "duration_minutes must be > 0")
	}
	for _, existing := range d.games {
		if existing.ID != g.ID && existing.MatchID == g.MatchID && existing.GameNumber == g.GameNumber {
			return store.Unique("unique_game_per_match", fmt.Sprintf("match_id=%d game_number=%d", g.MatchID, g.GameNumber))
		}
	}
	return nil
}

func withGames(d *dataset, m match.Match) match.Match {
	games := make([]match.Game, 0, match.MaxGames)
	for _, g := range d.games {
		if g.MatchID == m.ID {
			games = append(games, g)
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].GameNumber < games[j].GameNumber })
	m.Games = games
	return m
}

func roundOrZero(m match.Match) int {
	if m.RoundNumber == nil {
		return 0
	}
	return *m.RoundNumber
}

func hasKey[V any](m map[int64]V, id int64) bool {
	_, ok := m[id]
	return ok
}
