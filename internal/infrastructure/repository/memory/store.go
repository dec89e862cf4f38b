package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/season"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournament"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
)

type dataset struct {
	nextID      int64
	seasons     map[int64]season.Season
	types       map[int64]tournamenttype.TournamentType
	tournaments map[int64]tournament.Tournament
	players     map[int64]player.Player
	decks       map[int64]deck.Archetype
	matches     map[int64]match.Match
	games       map[int64]match.Game
}

func newDataset() *dataset {
	return &dataset{
		seasons:     map[int64]season.Season{},
		types:       map[int64]tournamenttype.TournamentType{},
		tournaments: map[int64]tournament.Tournament{},
		players:     map[int64]player.Player{},
		decks:       map[int64]deck.Archetype{},
		matches:     map[int64]match.Match{},
		games:       map[int64]match.Game{},
	}
}

func (d *dataset) clone() *dataset {
	return &dataset{
		nextID:      d.nextID,
		seasons:     maps.Clone(d.seasons),
		types:       maps.Clone(d.types),
		tournaments: maps.Clone(d.tournaments),
		players:     maps.Clone(d.players),
		decks:       maps.Clone(d.decks),
		matches:     maps.Clone(d.matches),
		games:       maps.Clone(d.games),
	}
}

func (d *dataset) newID() int64 {
	d.nextID++
	return d.nextID
}

// Store is an in-memory relational store. Writes apply to a private copy that
// replaces the shared state only on success, so a failed UnitOfWork leaves
// nothing behind. It enforces the same keys and constraints as the schema.
type Store struct {
	mu   sync.RWMutex
	data *dataset
	now  func() time.Time
}

func NewStore() *Store {
	return &Store{data: newDataset(), now: time.Now}
}

var _ store.UnitOfWork = (*Store)(nil)

// Do runs fn against a snapshot and publishes it when fn and ctx both succeed.
// Transactions are serialized.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos store.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(ctx, repositories(conn{store: s, tx: snapshot})); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.data = snapshot
	return nil
}

// Repositories returns autocommit repositories; each write is its own transaction.
func (s *Store) Repositories() store.Repositories {
	return repositories(conn{store: s})
}

func repositories(c conn) store.Repositories {
	return store.Repositories{
		Seasons:         &SeasonRepository{c: c},
		TournamentTypes: &TournamentTypeRepository{c: c},
		Tournaments:     &TournamentRepository{c: c},
		Players:         &PlayerRepository{c: c},
		Decks:           &DeckRepository{c: c},
		Matches:         &MatchRepository{c: c},
		Statistics:      &StatisticsRepository{c: c},
	}
}

// conn binds repositories either to an open transaction snapshot or, when tx
// is nil, to the shared state in autocommit mode.
type conn struct {
	store *Store
	tx    *dataset
}

func (c conn) read(fn func(d *dataset)) {
	if c.tx != nil {
		fn(c.tx)
		return
	}
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	fn(c.store.data)
}

func (c conn) write(fn func(d *dataset) error) error {
	if c.tx != nil {
		return fn(c.tx)
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	snapshot := c.store.data.clone()
	if err := fn(snapshot); err != nil {
		return err
	}
	c.store.data = snapshot
	return nil
}

func (c conn) now() time.Time {
	return c.store.now()
}

// cascadeTournament removes a tournament with its matches and games.
func (d *dataset) cascadeTournament(id int64) {
	for matchID, m := range d.matches {
		if m.TournamentID == id {
			d.cascadeMatch(matchID)
		}
	}
	delete(d.tournaments, id)
}

func (d *dataset) cascadeMatch(id int64) {
	for gameID, g := range d.games {
		if g.MatchID == id {
			delete(d.games, gameID)
		}
	}
	delete(d.matches, id)
}
