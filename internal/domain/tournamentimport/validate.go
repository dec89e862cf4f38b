package tournamentimport

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
)

const (
	MinImportGames = 2
	MaxImportGames = match.MaxGames
)

// Violation is one structural problem found in a payload. MatchIndex and
// GameIndex are -1 when the violation is not tied to a match or game.
type Violation struct {
	MatchIndex int
	GameIndex  int
	Field      string
	Reason     string
}

// Path locates the offending field, e.g. matches[1].games[0].winner_name.
func (v Violation) Path() string {
	switch {
	case v.MatchIndex >= 0 && v.GameIndex >= 0:
		return fmt.Sprintf("matches[%d].games[%d].%s", v.MatchIndex, v.GameIndex, v.Field)
	case v.MatchIndex >= 0:
		return fmt.Sprintf("matches[%d].%s", v.MatchIndex, v.Field)
	default:
		return v.Field
	}
}

func (v Violation) String() string {
	return v.Path() + ": " + v.Reason
}

// Validate checks the structural invariants of p without any I/O. The
// per-match checks run in order: game count, winner attribution, round number.
func Validate(p Payload) []Violation {
	var out []Violation
	top := func(field, reason string) {
		out = append(out, Violation{MatchIndex: -1, GameIndex: -1, Field: field, Reason: reason})
	}

	if p.SeasonID <= 0 {
		top("season_id", "must be a positive id")
	}
	if strings.TrimSpace(p.Tournament.Name) == "" {
		top("tournament.name", "is required")
	}
	if p.Tournament.Date.IsZero() {
		top("tournament.tournament_date", "is required")
	}
	if p.Tournament.TypeID != nil && *p.Tournament.TypeID <= 0 {
		top("tournament.tournament_type_id", "must be a positive id")
	}
	if len(p.Matches) == 0 {
		top("matches", "must contain at least one match")
	}
	for _, i := range duplicates(p.Players, func(e PlayerEntry) string { return e.Name }) {
		top(fmt.Sprintf("players[%d].name", i), fmt.Sprintf("duplicate player %q", p.Players[i].Name))
	}
	for _, i := range duplicates(p.Decks, func(e DeckEntry) string { return e.Name }) {
		top(fmt.Sprintf("decks[%d].name", i), fmt.Sprintf("duplicate deck %q", p.Decks[i].Name))
	}

	for mi, m := range p.Matches {
		out = append(out, validateMatch(mi, m)...)
	}

	return out
}

func validateMatch(mi int, m MatchEntry) []Violation {
	var out []Violation
	add := func(gi int, field, reason string) {
		out = append(out, Violation{MatchIndex: mi, GameIndex: gi, Field: field, Reason: reason})
	}

	if n := len(m.Games); n < MinImportGames || n > MaxImportGames {
		add(-1, "games", fmt.Sprintf("must contain %d-%d games, got %d", MinImportGames, MaxImportGames, n))
	}
	player1, player2 := strings.TrimSpace(m.Player1Name), strings.TrimSpace(m.Player2Name)
	for gi, g := range m.Games {
		if winner := strings.TrimSpace(g.WinnerName); winner != player1 && winner != player2 {
			add(gi, "winner_name", fmt.Sprintf("%q is not a participant of the match", g.WinnerName))
		}
	}
	if m.RoundNumber != nil && *m.RoundNumber < 1 {
		add(-1, "round_number", "must be >= 1")
	}

	required := [...]struct{ field, value string }{
		{"player1_name", m.Player1Name},
		{"player2_name", m.Player2Name},
		{"player1_deck_name", m.Player1DeckName},
		{"player2_deck_name", m.Player2DeckName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			add(-1, r.field, "is required")
		}
	}
	if player1 != "" && player1 == player2 {
		add(-1, "player2_name", "must differ from player1_name")
	}

	seen := make(map[int]struct{}, len(m.Games))
	for gi, g := range m.Games {
		if g.GameNumber < match.MinGameNumber || g.GameNumber > match.MaxGameNumber {
			add(gi, "game_number", fmt.Sprintf("must be between %d and %d", match.MinGameNumber, match.MaxGameNumber))
		}
		if _, dup := seen[g.GameNumber]; dup {
			add(gi, "game_number", fmt.Sprintf("%d is duplicated", g.GameNumber))
		}
		seen[g.GameNumber] = struct{}{}
		if !g.ResultOrDefault().Valid() {
			add(gi, "game_result", fmt.Sprintf("%q is invalid", g.Result))
		}
		if g.DurationMinutes != nil && *g.DurationMinutes <= 0 {
			add(gi, "duration_minutes", "must be > 0")
		}
	}

	return out
}

// duplicates returns the indexes of entries whose trimmed name was already seen.
func duplicates[T any](entries []T, name func(T) string) []int {
	var out []int
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		n := strings.TrimSpace(name(e))
		if _, ok := seen[n]; ok {
			out = append(out, i)
			continue
		}
		seen[n] = struct{}{}
	}
	return out
}
