package statistics

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
)

func floatPtr(v float64) *float64 { return &v }

func record(matchID, tournamentID int64, p1, p2 int64, d1, d2 int64, w1, w2 int) MatchRecord {
	names := map[int64]string{1: "Alice", 2: "Bob", 3: "Carol"}
	decks := map[int64]string{10: "Mono Red", 20: "Azorius Control", 30: "Golgari Midrange"}
	return MatchRecord{
		MatchID:         matchID,
		TournamentID:    tournamentID,
		SeasonID:        1,
		SeasonName:      "Season 1",
		PointsWin:       3,
		PointsDraw:      1,
		Player1ID:       p1,
		Player1Name:     names[p1],
		Player2ID:       p2,
		Player2Name:     names[p2],
		Player1DeckID:   d1,
		Player1DeckName: decks[d1],
		Player2DeckID:   d2,
		Player2DeckName: decks[d2],
		Player1GameWins: w1,
		Player2GameWins: w2,
	}
}

func TestDecide(t *testing.T) {
	t.Parallel()

	cases := []struct {
		own, opp int
		want     Outcome
	}{
		{2, 1, OutcomeWin},
		{2, 0, OutcomeWin},
		{1, 1, OutcomeDraw},
		{0, 0, OutcomeDraw},
		{1, 2, OutcomeLoss},
	}
	for _, tc := range cases {
		if got := Decide(tc.own, tc.opp); got != tc.want {
			t.Fatalf("Decide(%d, %d) = %s, want %s", tc.own, tc.opp, got, tc.want)
		}
	}
}

func TestPlayers(t *testing.T) {
	t.Parallel()

	records := []MatchRecord{
		record(1, 100, 1, 2, 10, 20, 2, 1),
		record(2, 100, 1, 3, 30, 10, 1, 1),
		record(3, 101, 2, 3, 20, 10, 0, 2),
	}
	roster := []player.Player{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}, {ID: 3, Name: "Carol"}, {ID: 4, Name: "Dave"}}

	got := Players(records, roster)
	want := []PlayerStat{
		{PlayerID: 1, PlayerName: "Alice", TotalMatches: 2, MatchesWon: 1, MatchesDrawn: 1, WinRatePercentage: floatPtr(50), DecksPlayed: 2, TournamentsPlayed: 1},
		{PlayerID: 3, PlayerName: "Carol", TotalMatches: 2, MatchesWon: 1, MatchesDrawn: 1, WinRatePercentage: floatPtr(50), DecksPlayed: 1, TournamentsPlayed: 2},
		{PlayerID: 2, PlayerName: "Bob", TotalMatches: 2, MatchesLost: 2, WinRatePercentage: floatPtr(0), DecksPlayed: 1, TournamentsPlayed: 2},
		{PlayerID: 4, PlayerName: "Dave"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected player stats (-want +got):\n%s", diff)
	}
}

func TestDecks_CountsEachSideAndRoundsRates(t *testing.T) {
	t.Parallel()

	records := []MatchRecord{
		record(1, 100, 1, 2, 10, 20, 2, 0),
		record(2, 100, 1, 3, 10, 20, 0, 2),
		record(3, 101, 2, 3, 20, 20, 2, 1),
	}
	roster := []deck.Archetype{
		{ID: 10, Name: "Mono Red", ColorIdentity: "R", ArchetypeType: "Aggro"},
		{ID: 20, Name: "Azorius Control", ColorIdentity: "WU", ArchetypeType: "Control"},
	}

	got := Decks(records, roster)
	want := []DeckStat{
		{DeckID: 20, DeckName: "Azorius Control", ColorIdentity: "WU", ArchetypeType: "Control", TotalMatches: 4, MatchesWon: 2, MatchesLost: 2, WinRatePercentage: floatPtr(50), UniquePlayers: 2, TournamentsPlayed: 2},
		{DeckID: 10, DeckName: "Mono Red", ColorIdentity: "R", ArchetypeType: "Aggro", TotalMatches: 2, MatchesWon: 1, MatchesLost: 1, WinRatePercentage: floatPtr(50), UniquePlayers: 1, TournamentsPlayed: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected deck stats (-want +got):\n%s", diff)
	}

	thirds := Decks([]MatchRecord{
		record(1, 100, 1, 2, 10, 20, 2, 0),
		record(2, 100, 1, 2, 10, 20, 0, 2),
		record(3, 100, 1, 2, 10, 20, 0, 2),
	}, roster[:1])
	if thirds[0].WinRatePercentage == nil || *thirds[0].WinRatePercentage != 33.33 {
		t.Fatalf("expected 33.33 win rate, got %v", thirds[0].WinRatePercentage)
	}
}

func TestMatchups(t *testing.T) {
	t.Parallel()

	records := []MatchRecord{
		record(1, 100, 1, 2, 20, 10, 2, 1),
		record(2, 100, 1, 3, 10, 20, 1, 1),
		record(3, 100, 2, 3, 10, 20, 2, 0),
		record(4, 100, 2, 3, 10, 10, 2, 0),
	}

	got := Matchups(records)
	want := []Matchup{{
		DeckAID:                10,
		DeckAName:              "Mono Red",
		DeckBID:                20,
		DeckBName:              "Azorius Control",
		TotalMatches:           3,
		DeckAWins:              1,
		Draws:                  1,
		DeckALosses:            1,
		DeckAWinRatePercentage: floatPtr(33.33),
		DeckBWinRatePercentage: floatPtr(33.33),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected matchups (-want +got):\n%s", diff)
	}

	reversed := SelectMatchups(got, 20, 10)
	if len(reversed) != 1 || reversed[0].DeckAID != 20 || reversed[0].DeckAWins != 1 || reversed[0].DeckALosses != 1 {
		t.Fatalf("unexpected reversed matchup: %+v", reversed)
	}
}

func TestMatchups_NoDrawsDeriveComplement(t *testing.T) {
	t.Parallel()

	got := Matchups([]MatchRecord{
		record(1, 100, 1, 2, 10, 20, 2, 1),
		record(2, 100, 1, 2, 10, 20, 2, 0),
		record(3, 100, 1, 2, 10, 20, 0, 2),
	})
	if len(got) != 1 {
		t.Fatalf("expected one matchup, got %d", len(got))
	}
	if *got[0].DeckAWinRatePercentage != 66.67 || *got[0].DeckBWinRatePercentage != 33.33 {
		t.Fatalf("unexpected rates: a=%v b=%v", *got[0].DeckAWinRatePercentage, *got[0].DeckBWinRatePercentage)
	}
}

func TestMatchups_SymmetricUnderSwap(t *testing.T) {
	t.Parallel()

	faker := gofakeit.New(42)
	deckIDs := []int64{10, 20, 30}
	records := make([]MatchRecord, 0, 200)
	for i := 0; i < 200; i++ {
		d1 := deckIDs[faker.IntRange(0, 2)]
		d2 := deckIDs[faker.IntRange(0, 2)]
		w1 := faker.IntRange(0, 2)
		w2 := faker.IntRange(0, 3-w1)
		records = append(records, record(int64(i+1), 100, 1, 2, d1, d2, w1, w2))
	}

	all := Matchups(records)
	for _, a := range deckIDs {
		for _, b := range deckIDs {
			if a == b {
				continue
			}
			ab := SelectMatchups(all, a, b)
			ba := SelectMatchups(all, b, a)
			if len(ab) != len(ba) {
				t.Fatalf("pair (%d,%d): %d rows vs %d rows", a, b, len(ab), len(ba))
			}
			if len(ab) == 0 {
				continue
			}
			if ab[0].TotalMatches != ba[0].TotalMatches || ab[0].Draws != ba[0].Draws {
				t.Fatalf("pair (%d,%d): totals differ %+v vs %+v", a, b, ab[0], ba[0])
			}
			if ab[0].DeckAWins != ba[0].DeckALosses || ab[0].DeckALosses != ba[0].DeckAWins {
				t.Fatalf("pair (%d,%d): wins/losses not swapped %+v vs %+v", a, b, ab[0], ba[0])
			}
		}
	}
}

func TestStandings_WeightsPointsByTournamentType(t *testing.T) {
	t.Parallel()

	lgs := record(1, 100, 1, 2, 10, 20, 2, 1)
	lgs.PointsWin, lgs.PointsDraw = 5, 2
	nationals := record(2, 101, 1, 3, 10, 30, 1, 1)
	nationals.PointsWin, nationals.PointsDraw = 12, 4

	got := Standings([]MatchRecord{lgs, nationals})
	want := []Standing{
		{SeasonID: 1, SeasonName: "Season 1", PlayerID: 1, PlayerName: "Alice", MatchesPlayed: 2, Wins: 1, Draws: 1, Points: 9},
		{SeasonID: 1, SeasonName: "Season 1", PlayerID: 3, PlayerName: "Carol", MatchesPlayed: 1, Draws: 1, Points: 4},
		{SeasonID: 1, SeasonName: "Season 1", PlayerID: 2, PlayerName: "Bob", MatchesPlayed: 1, Losses: 1, Points: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected standings (-want +got):\n%s", diff)
	}
}

func TestStandings_TieBreaksByWinsThenName(t *testing.T) {
	t.Parallel()

	a := record(1, 100, 1, 2, 10, 20, 2, 0)
	a.PointsWin, a.PointsDraw = 2, 1
	b := record(2, 100, 3, 2, 10, 20, 1, 1)
	b.PointsWin, b.PointsDraw = 2, 2
	c := record(3, 100, 2, 1, 10, 20, 1, 1)
	c.PointsWin, c.PointsDraw = 0, 0

	got := Standings([]MatchRecord{a, b, c})
	order := make([]string, 0, len(got))
	for _, s := range got {
		order = append(order, s.PlayerName)
	}
	if diff := cmp.Diff([]string{"Alice", "Bob", "Carol"}, order); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}
