package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/season"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournament"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamentimport"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
)

var testNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

type testEnv struct {
	store    *memory.Store
	repos    store.Repositories
	season   season.Season
	importer *ImportService
	matches  *MatchService
	stats    *StatisticsService
}

// newTestEnv builds services over a fresh memory store holding one season and
// the given tournament types.
func newTestEnv(t *testing.T, types ...tournamenttype.TournamentType) testEnv {
	t.Helper()

	ctx := context.Background()
	s := memory.NewStore()
	repos := s.Repositories()
	for _, tt := range types {
		if _, err := repos.TournamentTypes.Create(ctx, tt); err != nil {
			t.Fatalf("create tournament type %s: %v", tt.Name, err)
		}
	}
	ss, err := repos.Seasons.Create(ctx, season.Season{Name: "Season 1", StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}

	logger := logging.NewNop()
	importer := NewImportService(s, NewIdentityResolver(logger), staticIDGenerator{id: "run-1"}, tournamenttype.DefaultName, nil, logger)
	importer.now = func() time.Time { return testNow }
	matches := NewMatchService(s, repos.Matches, 4, nil, logger)
	matches.now = func() time.Time { return testNow }

	return testEnv{
		store:    s,
		repos:    repos,
		season:   ss,
		importer: importer,
		matches:  matches,
		stats:    NewStatisticsService(repos.Seasons, repos.Players, repos.Decks, repos.Statistics),
	}
}

func lgsType(win, draw int) tournamenttype.TournamentType {
	return tournamenttype.TournamentType{Name: tournamenttype.DefaultName, PointsWin: win, PointsDraw: draw}
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func games(winners ...string) []tournamentimport.GameEntry {
	out := make([]tournamentimport.GameEntry, 0, len(winners))
	for i, w := range winners {
		out = append(out, tournamentimport.GameEntry{GameNumber: i + 1, WinnerName: w})
	}
	return out
}

func (e testEnv) payload(name string, matches ...tournamentimport.MatchEntry) tournamentimport.Payload {
	return tournamentimport.Payload{
		SeasonID: e.season.ID,
		Tournament: tournamentimport.TournamentSpec{
			Name: name,
			Date: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		Players: []tournamentimport.PlayerEntry{{Name: "Alice", Email: "alice@example.com"}},
		Decks: []tournamentimport.DeckEntry{
			{Name: "Mono Red", ColorIdentity: "R", ArchetypeType: "Aggro"},
			{Name: "Azorius Control", ColorIdentity: "WU", ArchetypeType: "Control"},
			{Name: "Golgari Midrange", ColorIdentity: "BG", ArchetypeType: "Midrange"},
		},
		Matches: matches,
	}
}

func matchEntry(p1, p2, d1, d2 string, winners ...string) tournamentimport.MatchEntry {
	return tournamentimport.MatchEntry{
		RoundNumber:     intPtr(1),
		Player1Name:     p1,
		Player2Name:     p2,
		Player1DeckName: d1,
		Player2DeckName: d2,
		Games:           games(winners...),
	}
}

type rowCounts struct {
	tournaments, players, decks, matches int
}

func countRows(t *testing.T, repos store.Repositories) rowCounts {
	t.Helper()

	ctx := context.Background()
	tournaments, err := repos.Tournaments.List(ctx, tournamentFilterAll)
	if err != nil {
		t.Fatalf("list tournaments: %v", err)
	}
	players, err := repos.Players.List(ctx, false)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	decks, err := repos.Decks.List(ctx)
	if err != nil {
		t.Fatalf("list decks: %v", err)
	}
	matches, err := repos.Matches.List(ctx, matchFilterAll)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	return rowCounts{tournaments: len(tournaments), players: len(players), decks: len(decks), matches: len(matches)}
}

var (
	tournamentFilterAll = tournament.Filter{}
	matchFilterAll      = match.Filter{}
)
