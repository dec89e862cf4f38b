package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamentimport"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
)

func TestImportService_ImportTournament_CreatesEverything(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, lgsType(3, 1))
	p := env.payload("Friday Night Magic",
		matchEntry("Alice", "Bob", "Mono Red", "Azorius Control", "Alice", "Bob", "Alice"),
		matchEntry("Carol", "Alice", "Golgari Midrange", "Mono Red", "Carol", "Carol"),
	)

	result, err := env.importer.ImportTournament(context.Background(), p)
	if err != nil {
		t.Fatalf("import tournament: %v", err)
	}
	if result.RunID != "run-1" {
		t.Fatalf("unexpected run id: %s", result.RunID)
	}
	if !result.TournamentCreated || result.TournamentName != "Friday Night Magic" {
		t.Fatalf("unexpected tournament result: %+v", result)
	}
	if result.PlayersCreated != 3 || result.DecksCreated != 3 {
		t.Fatalf("unexpected created counts: players=%d decks=%d", result.PlayersCreated, result.DecksCreated)
	}
	if result.MatchesCreated != 2 || result.GamesCreated != 5 {
		t.Fatalf("unexpected match counts: matches=%d games=%d", result.MatchesCreated, result.GamesCreated)
	}
	if got := ImportMessage(result); got != "Successfully imported tournament 'Friday Night Magic'" {
		t.Fatalf("unexpected message: %s", got)
	}

	alice, exists, err := env.repos.Players.GetByName(context.Background(), "Alice")
	if err != nil || !exists {
		t.Fatalf("get alice: exists=%v err=%v", exists, err)
	}
	if alice.Email != "alice@example.com" || !alice.Active {
		t.Fatalf("unexpected alice: %+v", alice)
	}
	control, exists, err := env.repos.Decks.GetByName(context.Background(), "Azorius Control")
	if err != nil || !exists {
		t.Fatalf("get deck: exists=%v err=%v", exists, err)
	}
	if control.ColorIdentity != "WU" || control.ArchetypeType != "Control" {
		t.Fatalf("unexpected deck attributes: %+v", control)
	}

	tournaments, err := env.repos.Tournaments.List(context.Background(), tournamentFilterAll)
	if err != nil {
		t.Fatalf("list tournaments: %v", err)
	}
	if len(tournaments) != 1 || tournaments[0].ID != result.TournamentID {
		t.Fatalf("unexpected tournaments: %+v", tournaments)
	}
}

func TestImportService_ImportTournament_ReusesExistingIdentities(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t, lgsType(3, 1))
	first, err := env.importer.ImportTournament(ctx, env.payload("Week 1",
		matchEntry("Alice", "Bob", "Mono Red", "Azorius Control", "Alice", "Alice"),
	))
	if err != nil {
		t.Fatalf("first import: %v", err)
	}
	alice, _, _ := env.repos.Players.GetByName(ctx, "Alice")

	second, err := env.importer.ImportTournament(ctx, env.payload("Week 1",
		matchEntry("Alice", "Bob", "Mono Red", "Azorius Control", "Bob", "Bob"),
	))
	if err != nil {
		t.Fatalf("second import: %v", err)
	}

	if second.PlayersCreated != 0 || second.DecksCreated != 0 {
		t.Fatalf("expected no new identities, got players=%d decks=%d", second.PlayersCreated, second.DecksCreated)
	}
	if second.TournamentID == first.TournamentID {
		t.Fatalf("expected a new tournament row, got same id %d", second.TournamentID)
	}
	again, _, _ := env.repos.Players.GetByName(ctx, "Alice")
	if again.ID != alice.ID {
		t.Fatalf("player id changed across imports: %d -> %d", alice.ID, again.ID)
	}

	counts := countRows(t, env.repos)
	if counts.tournaments != 2 || counts.players != 2 || counts.decks != 3 || counts.matches != 2 {
		t.Fatalf("unexpected row counts: %+v", counts)
	}
}

func TestImportService_ImportTournament_ExistingDeckNeedsNoDefinition(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t, lgsType(3, 1))
	if _, err := env.importer.ImportTournament(ctx, env.payload("Week 1",
		matchEntry("Alice", "Bob", "Mono Red", "Azorius Control", "Alice", "Alice"),
	)); err != nil {
		t.Fatalf("seed import: %v", err)
	}

	p := env.payload("Week 2", matchEntry("Alice", "Bob", "Mono Red", "Azorius Control", "Alice", "Alice"))
	p.Decks = nil
	if _, err := env.importer.ImportTournament(ctx, p); err != nil {
		t.Fatalf("import with known decks: %v", err)
	}
}

func TestImportService_ImportTournament_UndefinedDeckRollsBack(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, lgsType(3, 1))
	p := env.payload("Friday Night Magic",
		matchEntry("Alice", "Bob", "Mono Red", "Azorius Control", "Alice", "Alice"),
		matchEntry("Carol", "Dave", "Golgari Midrange", "Izzet Phoenix", "Dave", "Dave"),
	)

	_, err := env.importer.ImportTournament(context.Background(), p)
	if !errors.Is(err, ErrUndefinedDeckReference) {
		t.Fatalf("expected ErrUndefinedDeckReference, got %v", err)
	}
	if !errors.Is(err, ErrImportConsistency) {
		t.Fatalf("expected import consistency category, got %v", err)
	}

	counts := countRows(t, env.repos)
	if counts != (rowCounts{}) {
		t.Fatalf("expected no rows after rollback, got %+v", counts)
	}
}

func TestImportService_ImportTournament_RejectsSingleGameMatch(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, lgsType(3, 1))
	p := env.payload("Friday Night Magic", matchEntry("Alice", "Bob", "Mono Red", "Azorius Control", "Alice"))

	_, err := env.importer.ImportTournament(context.Background(), p)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(validationErr.Violations) == 0 || validationErr.Violations[0].Field != "games" {
		t.Fatalf("unexpected violations: %+v", validationErr.Violations)
	}
	if counts := countRows(t, env.repos); counts != (rowCounts{}) {
		t.Fatalf("expected no rows, got %+v", counts)
	}
}

func TestImportService_ImportTournament_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		types  []tournamenttype.TournamentType
		mutate func(p *tournamentimport.Payload)
		want   error
	}{
		{
			name:   "season not found",
			types:  []tournamenttype.TournamentType{lgsType(3, 1)},
			mutate: func(p *tournamentimport.Payload) { p.SeasonID = 9999 },
			want:   ErrSeasonNotFound,
		},
		{
			name:  "type id and name disagree",
			types: []tournamenttype.TournamentType{lgsType(3, 1), {Name: "Nationals", PointsWin: 12, PointsDraw: 4}},
			mutate: func(p *tournamentimport.Payload) {
				p.Tournament.TypeID = int64Ptr(1)
				p.Tournament.TypeName = "Nationals"
			},
			want: ErrTournamentTypeMismatch,
		},
		{
			name:   "unknown type name",
			types:  []tournamenttype.TournamentType{lgsType(3, 1)},
			mutate: func(p *tournamentimport.Payload) { p.Tournament.TypeName = "Grand Prix" },
			want:   ErrTournamentTypeNotFound,
		},
		{
			name:   "default type missing",
			types:  []tournamenttype.TournamentType{{Name: "Nationals", PointsWin: 12, PointsDraw: 4}},
			mutate: func(*tournamentimport.Payload) {},
			want:   ErrDefaultTournamentTypeMissing,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, tc.types...)
			p := env.payload("Friday Night Magic", matchEntry("Alice", "Bob", "Mono Red", "Azorius Control", "Alice", "Alice"))
			tc.mutate(&p)

			_, err := env.importer.ImportTournament(context.Background(), p)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if counts := countRows(t, env.repos); counts != (rowCounts{}) {
				t.Fatalf("expected no rows, got %+v", counts)
			}
		})
	}
}

func TestImportService_ImportTournament_PointsFollowTournamentType(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t, lgsType(5, 2), tournamenttype.TournamentType{Name: "Nationals", PointsWin: 12, PointsDraw: 4})

	local, err := env.importer.ImportTournament(ctx, env.payload("Local",
		matchEntry("Alice", "Bob", "Mono Red", "Azorius Control", "Alice", "Alice"),
	))
	if err != nil {
		t.Fatalf("import local: %v", err)
	}
	nationals := env.payload("Nationals Day 1",
		matchEntry("Alice", "Bob", "Mono Red", "Azorius Control", "Alice", "Bob"),
	)
	nationals.Tournament.TypeName = "nationals"
	if _, err := env.importer.ImportTournament(ctx, nationals); err != nil {
		t.Fatalf("import nationals: %v", err)
	}

	standings, err := env.stats.GetSeasonStandings(ctx, &env.season.ID)
	if err != nil {
		t.Fatalf("season standings: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("unexpected standings count: %d", len(standings))
	}
	if standings[0].PlayerName != "Alice" || standings[0].Points != 9 {
		t.Fatalf("unexpected leader: %+v", standings[0])
	}
	if standings[0].Wins != 1 || standings[0].Draws != 1 || standings[0].Losses != 0 {
		t.Fatalf("unexpected leader record: %+v", standings[0])
	}
	if standings[1].PlayerName != "Bob" || standings[1].Points != 4 {
		t.Fatalf("unexpected runner up: %+v", standings[1])
	}

	tournaments := NewTournamentService(env.repos.Seasons, env.repos.TournamentTypes, env.repos.Tournaments, "", logging.NewNop())
	tournaments.now = func() time.Time { return testNow }
	if _, err := tournaments.Update(ctx, local.TournamentID, TournamentInput{
		Name:     "Local",
		Date:     nationals.Tournament.Date,
		TypeName: "Nationals",
	}); err != nil {
		t.Fatalf("retype tournament: %v", err)
	}

	standings, err = env.stats.GetSeasonStandings(ctx, &env.season.ID)
	if err != nil {
		t.Fatalf("season standings after retype: %v", err)
	}
	if standings[0].Points != 16 || standings[1].Points != 4 {
		t.Fatalf("unexpected points after retype: alice=%d bob=%d", standings[0].Points, standings[1].Points)
	}
}

func TestImportService_ImportTournament_PaddedNamesNameTheSamePlayer(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, lgsType(3, 1))
	p := env.payload("Friday Night Magic", matchEntry("Alice", "Alice ", "Mono Red", "Azorius Control", "Alice", "Alice "))

	_, err := env.importer.ImportTournament(context.Background(), p)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validationErr.Violations) != 1 || validationErr.Violations[0].Field != "player2_name" {
		t.Fatalf("unexpected violations: %+v", validationErr.Violations)
	}
	if counts := countRows(t, env.repos); counts != (rowCounts{}) {
		t.Fatalf("expected no rows, got %+v", counts)
	}
}

func TestImportService_ImportTournament_TrimsPaddedWinner(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, lgsType(3, 1))
	p := env.payload("Friday Night Magic", matchEntry(" Alice", "Bob", "Mono Red", "Azorius Control", "Alice ", "Bob", "Alice"))

	result, err := env.importer.ImportTournament(context.Background(), p)
	if err != nil {
		t.Fatalf("import tournament: %v", err)
	}
	if result.PlayersCreated != 2 || result.GamesCreated != 3 {
		t.Fatalf("unexpected counts: %+v", result)
	}
}

func TestBuildImportUnits_ReportsUnresolvedNames(t *testing.T) {
	t.Parallel()

	players := map[string]int64{"Alice": 1, "Bob": 2}
	decks := map[string]int64{"Mono Red": 10, "Azorius Control": 11}

	units, err := buildImportUnits(7, []tournamentimport.MatchEntry{
		matchEntry("Alice ", "Bob", "Mono Red", " Azorius Control", "Alice", "Bob"),
	}, players, decks, testNow)
	if err != nil {
		t.Fatalf("build units: %v", err)
	}
	if len(units) != 1 || units[0].Player1ID != 1 || units[0].Player2DeckID != 11 || units[0].Games[1].WinnerID != 2 {
		t.Fatalf("unexpected units: %+v", units)
	}

	_, err = buildImportUnits(7, []tournamentimport.MatchEntry{
		matchEntry("Alice", "Bob", "Mono Red", "Azorius Control", "Alice", "Carol"),
	}, players, decks, testNow)
	if !errors.Is(err, ErrUnknownGameWinner) || !errors.Is(err, ErrImportConsistency) {
		t.Fatalf("expected ErrUnknownGameWinner, got %v", err)
	}

	_, err = buildImportUnits(7, []tournamentimport.MatchEntry{
		matchEntry("Alice", "Dave", "Mono Red", "Azorius Control", "Alice", "Alice"),
	}, players, decks, testNow)
	if !errors.Is(err, ErrUnresolvedReference) {
		t.Fatalf("expected ErrUnresolvedReference, got %v", err)
	}
}
