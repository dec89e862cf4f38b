package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/season"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/statistics"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournament"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
)

type fixture struct {
	store      *Store
	repos      store.Repositories
	tournament tournament.Tournament
	alice, bob player.Player
	red, blue  deck.Archetype
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctx := context.Background()
	s := NewSeededStore()
	repos := s.Repositories()

	lgs, exists, err := repos.TournamentTypes.GetByName(ctx, "lgs tournament")
	if err != nil || !exists {
		t.Fatalf("expected seeded default type, exists=%v err=%v", exists, err)
	}
	ss, err := repos.Seasons.Create(ctx, season.Season{Name: "Season 1", StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	tr, err := repos.Tournaments.Create(ctx, tournament.Tournament{SeasonID: ss.ID, TournamentTypeID: lgs.ID, Name: "FNM", Date: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("create tournament: %v", err)
	}

	f := fixture{store: s, repos: repos, tournament: tr}
	for _, name := range []string{"Alice", "Bob"} {
		p, err := repos.Players.Create(ctx, player.Player{Name: name, Active: true})
		if err != nil {
			t.Fatalf("create player: %v", err)
		}
		if name == "Alice" {
			f.alice = p
		} else {
			f.bob = p
		}
	}
	if f.red, err = repos.Decks.Create(ctx, deck.Archetype{Name: "Mono Red"}); err != nil {
		t.Fatalf("create deck: %v", err)
	}
	if f.blue, err = repos.Decks.Create(ctx, deck.Archetype{Name: "Mono Blue"}); err != nil {
		t.Fatalf("create deck: %v", err)
	}
	return f
}

func (f fixture) match(status match.Status) match.Match {
	return match.Match{
		TournamentID:  f.tournament.ID,
		Player1ID:     f.alice.ID,
		Player2ID:     f.bob.ID,
		Player1DeckID: f.red.ID,
		Player2DeckID: f.blue.ID,
		Status:        status,
	}
}

func TestStoreDo_RollsBackOnError(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := f.store.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		if _, err := repos.Players.Create(ctx, player.Player{Name: "Carol"}); err != nil {
			return err
		}
		if _, err := repos.Matches.Create(ctx, f.match(match.StatusCompleted)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if _, exists, _ := f.repos.Players.GetByName(ctx, "Carol"); exists {
		t.Fatalf("expected Carol to be rolled back")
	}
	matches, _ := f.repos.Matches.List(ctx, match.Filter{})
	if len(matches) != 0 {
		t.Fatalf("expected no matches after rollback, got %d", len(matches))
	}
}

func TestStoreDo_CommitsOnSuccess(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	err := f.store.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		_, err := repos.Players.Create(ctx, player.Player{Name: "Carol"})
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, exists, _ := f.repos.Players.GetByName(ctx, "Carol"); !exists {
		t.Fatalf("expected Carol to be committed")
	}
}

func TestStoreDo_CancelledContextRollsBack(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	err := f.store.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		if _, err := repos.Players.Create(ctx, player.Player{Name: "Carol"}); err != nil {
			return err
		}
		cancel()
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	if _, exists, _ := f.repos.Players.GetByName(context.Background(), "Carol"); exists {
		t.Fatalf("expected Carol to be rolled back")
	}
}

func TestConstraints(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.repos.Players.Create(ctx, player.Player{Name: "Alice"}); !errors.Is(err, store.ErrUniqueViolation) {
		t.Fatalf("expected unique violation on duplicate player name, got %v", err)
	}
	if _, err := f.repos.TournamentTypes.Create(ctx, f.typeNamed("LGS TOURNAMENT")); !errors.Is(err, store.ErrUniqueViolation) {
		t.Fatalf("expected case-insensitive unique violation, got %v", err)
	}

	same := f.match(match.StatusCompleted)
	same.Player2ID = same.Player1ID
	if _, err := f.repos.Matches.Create(ctx, same); !errors.Is(err, store.ErrCheckViolation) {
		t.Fatalf("expected check violation for same players, got %v", err)
	}

	missing := f.match(match.StatusCompleted)
	missing.Player2ID = 9999
	_, err := f.repos.Matches.Create(ctx, missing)
	if !errors.Is(err, store.ErrForeignKeyViolation) || store.ConstraintName(err) != "matches_player2_id_fkey" {
		t.Fatalf("expected player foreign key violation, got %v", err)
	}

	created, err := f.repos.Matches.Create(ctx, f.match(match.StatusCompleted))
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if _, err := f.repos.Matches.CreateGame(ctx, match.Game{MatchID: created.ID, GameNumber: 1, WinnerID: f.alice.ID, Result: match.ResultWin}); err != nil {
		t.Fatalf("create game: %v", err)
	}
	if _, err := f.repos.Matches.CreateGame(ctx, match.Game{MatchID: created.ID, GameNumber: 1, WinnerID: f.bob.ID, Result: match.ResultWin}); !errors.Is(err, store.ErrUniqueViolation) {
		t.Fatalf("expected unique game number violation, got %v", err)
	}
	if _, err := f.repos.Matches.CreateGame(ctx, match.Game{MatchID: created.ID, GameNumber: 4, WinnerID: f.bob.ID, Result: match.ResultWin}); !errors.Is(err, store.ErrCheckViolation) {
		t.Fatalf("expected game number check violation, got %v", err)
	}
}

func TestDelete_RestrictsAndCascades(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	created, err := f.repos.Matches.Create(ctx, f.match(match.StatusCompleted))
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if _, err := f.repos.Matches.CreateGame(ctx, match.Game{MatchID: created.ID, GameNumber: 1, WinnerID: f.alice.ID, Result: match.ResultWin}); err != nil {
		t.Fatalf("create game: %v", err)
	}

	if _, err := f.repos.Players.Delete(ctx, f.alice.ID); !errors.Is(err, store.ErrForeignKeyViolation) {
		t.Fatalf("expected restricted player delete, got %v", err)
	}
	if _, err := f.repos.Decks.Delete(ctx, f.red.ID); !errors.Is(err, store.ErrForeignKeyViolation) {
		t.Fatalf("expected restricted deck delete, got %v", err)
	}
	if _, err := f.repos.TournamentTypes.Delete(ctx, f.tournament.TournamentTypeID); !errors.Is(err, store.ErrForeignKeyViolation) {
		t.Fatalf("expected restricted type delete, got %v", err)
	}

	deleted, err := f.repos.Seasons.Delete(ctx, f.tournament.SeasonID)
	if err != nil || !deleted {
		t.Fatalf("expected season delete, deleted=%v err=%v", deleted, err)
	}
	if _, exists, _ := f.repos.Tournaments.GetByID(ctx, f.tournament.ID); exists {
		t.Fatalf("expected tournament to cascade")
	}
	if _, exists, _ := f.repos.Matches.GetByID(ctx, created.ID); exists {
		t.Fatalf("expected match to cascade")
	}
	if deleted, err := f.repos.Players.Delete(ctx, f.alice.ID); err != nil || !deleted {
		t.Fatalf("expected player delete after cascade, deleted=%v err=%v", deleted, err)
	}
}

func TestListMatchRecords_CountsWinGamesOfCompletedMatches(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	completed, _ := f.repos.Matches.Create(ctx, f.match(match.StatusCompleted))
	cancelled, _ := f.repos.Matches.Create(ctx, f.match(match.StatusCancelled))
	for _, g := range []match.Game{
		{MatchID: completed.ID, GameNumber: 1, WinnerID: f.alice.ID, Result: match.ResultWin},
		{MatchID: completed.ID, GameNumber: 2, WinnerID: f.bob.ID, Result: match.ResultDraw},
		{MatchID: completed.ID, GameNumber: 3, WinnerID: f.alice.ID, Result: match.ResultWin},
		{MatchID: cancelled.ID, GameNumber: 1, WinnerID: f.bob.ID, Result: match.ResultWin},
	} {
		if _, err := f.repos.Matches.CreateGame(ctx, g); err != nil {
			t.Fatalf("create game: %v", err)
		}
	}

	records, err := f.repos.Statistics.ListMatchRecords(ctx, statistics.Filter{PlayerID: f.bob.ID})
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected only the completed match, got %d", len(records))
	}
	r := records[0]
	if r.Player1GameWins != 2 || r.Player2GameWins != 0 {
		t.Fatalf("unexpected game wins: %d-%d", r.Player1GameWins, r.Player2GameWins)
	}
	if r.PointsWin != 3 || r.PointsDraw != 1 || r.SeasonName != "Season 1" {
		t.Fatalf("unexpected joined fields: %+v", r)
	}
}

func (f fixture) typeNamed(name string) tournamenttype.TournamentType {
	return tournamenttype.TournamentType{Name: name, PointsWin: 1}
}

func TestUpdate_EnforcesKeysAndReportsMissing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	renamed := f.alice
	renamed.Name = "Alicia"
	updated, exists, err := f.repos.Players.Update(ctx, renamed)
	if err != nil || !exists {
		t.Fatalf("expected player update, exists=%v err=%v", exists, err)
	}
	if updated.Name != "Alicia" || !updated.CreatedAt.Equal(f.alice.CreatedAt) {
		t.Fatalf("unexpected updated player: %+v", updated)
	}

	clash := f.bob
	clash.Name = "Alicia"
	if _, _, err := f.repos.Players.Update(ctx, clash); !errors.Is(err, store.ErrUniqueViolation) {
		t.Fatalf("expected unique violation on rename, got %v", err)
	}
	if _, exists, err := f.repos.Players.Update(ctx, player.Player{ID: 9999, Name: "Ghost"}); err != nil || exists {
		t.Fatalf("expected missing player, exists=%v err=%v", exists, err)
	}

	blue := f.blue
	blue.Name = "Mono Red"
	if _, _, err := f.repos.Decks.Update(ctx, blue); !errors.Is(err, store.ErrUniqueViolation) {
		t.Fatalf("expected unique violation on deck rename, got %v", err)
	}

	lgs, _, _ := f.repos.TournamentTypes.GetByID(ctx, f.tournament.TournamentTypeID)
	lgs.Name = "lgs TOURNAMENT"
	lgs.PointsWin = 5
	if got, exists, err := f.repos.TournamentTypes.Update(ctx, lgs); err != nil || !exists || got.PointsWin != 5 {
		t.Fatalf("expected own name to be reusable, got=%+v exists=%v err=%v", got, exists, err)
	}

	ss, _, _ := f.repos.Seasons.GetByID(ctx, f.tournament.SeasonID)
	before := ss.StartDate.AddDate(0, 0, -1)
	ss.EndDate = &before
	if _, _, err := f.repos.Seasons.Update(ctx, ss); !errors.Is(err, store.ErrCheckViolation) {
		t.Fatalf("expected season date check violation, got %v", err)
	}
}

func TestUpdateMatchAndGame(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	created, err := f.repos.Matches.Create(ctx, f.match(match.StatusCompleted))
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	first, err := f.repos.Matches.CreateGame(ctx, match.Game{MatchID: created.ID, GameNumber: 1, WinnerID: f.alice.ID, Result: match.ResultWin})
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	second, err := f.repos.Matches.CreateGame(ctx, match.Game{MatchID: created.ID, GameNumber: 2, WinnerID: f.alice.ID, Result: match.ResultWin})
	if err != nil {
		t.Fatalf("create game: %v", err)
	}

	swapped := created
	swapped.Player1DeckID, swapped.Player2DeckID = f.blue.ID, f.red.ID
	updated, exists, err := f.repos.Matches.Update(ctx, swapped)
	if err != nil || !exists {
		t.Fatalf("expected match update, exists=%v err=%v", exists, err)
	}
	if updated.Player1DeckID != f.blue.ID || len(updated.Games) != 2 {
		t.Fatalf("unexpected updated match: %+v", updated)
	}

	same := created
	same.Player2ID = same.Player1ID
	if _, _, err := f.repos.Matches.Update(ctx, same); !errors.Is(err, store.ErrCheckViolation) {
		t.Fatalf("expected check violation, got %v", err)
	}

	second.WinnerID = f.bob.ID
	if got, exists, err := f.repos.Matches.UpdateGame(ctx, second); err != nil || !exists || got.WinnerID != f.bob.ID {
		t.Fatalf("expected game update, got=%+v exists=%v err=%v", got, exists, err)
	}

	second.GameNumber = first.GameNumber
	if _, _, err := f.repos.Matches.UpdateGame(ctx, second); !errors.Is(err, store.ErrUniqueViolation) {
		t.Fatalf("expected unique game number violation, got %v", err)
	}
	second.GameNumber = 4
	if _, _, err := f.repos.Matches.UpdateGame(ctx, second); !errors.Is(err, store.ErrCheckViolation) {
		t.Fatalf("expected game number check violation, got %v", err)
	}
	if _, exists, err := f.repos.Matches.UpdateGame(ctx, match.Game{ID: 9999, MatchID: created.ID, GameNumber: 3, WinnerID: f.bob.ID, Result: match.ResultWin}); err != nil || exists {
		t.Fatalf("expected missing game, exists=%v err=%v", exists, err)
	}
}
