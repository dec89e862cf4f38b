package tournamentimport

import (
	"strings"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
)

// Payload is a bulk description of one tournament keyed by display names.
type Payload struct {
	SeasonID   int64
	Tournament TournamentSpec
	Players    []PlayerEntry
	Decks      []DeckEntry
	Matches    []MatchEntry
}

// TournamentSpec describes the tournament to create. TypeID and TypeName are
// both optional; when neither is set the configured default type applies.
type TournamentSpec struct {
	Name        string
	Date        time.Time
	Location    string
	Format      string
	Description string
	TypeID      *int64
	TypeName    string
}

type PlayerEntry struct {
	Name  string
	Email string
}

type DeckEntry struct {
	Name          string
	ColorIdentity string
	ArchetypeType string
	Description   string
}

type MatchEntry struct {
	RoundNumber     *int
	Player1Name     string
	Player2Name     string
	Player1DeckName string
	Player2DeckName string
	Notes           string
	Games           []GameEntry
}

// GameEntry records one game. An empty Result means WIN.
type GameEntry struct {
	GameNumber      int
	WinnerName      string
	Result          match.GameResult
	DurationMinutes *int
}

func (g GameEntry) ResultOrDefault() match.GameResult {
	if g.Result == "" {
		return match.ResultWin
	}
	return g.Result
}

// Result summarizes a committed import.
type Result struct {
	RunID             string
	TournamentID      int64
	TournamentName    string
	TournamentCreated bool
	PlayersCreated    int
	DecksCreated      int
	MatchesCreated    int
	GamesCreated      int
}

// PlayerNames returns every distinct player name the payload references, in
// first-seen order: explicit entries, then match participants, then winners.
func (p Payload) PlayerNames() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(p.Players))
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, e := range p.Players {
		add(e.Name)
	}
	for _, m := range p.Matches {
		add(m.Player1Name)
		add(m.Player2Name)
	}
	for _, m := range p.Matches {
		for _, g := range m.Games {
			add(g.WinnerName)
		}
	}

	return out
}

// DeckNames returns every distinct deck name the payload references, in
// first-seen order: explicit entries, then match references.
func (p Payload) DeckNames() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(p.Decks))
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, e := range p.Decks {
		add(e.Name)
	}
	for _, m := range p.Matches {
		add(m.Player1DeckName)
		add(m.Player2DeckName)
	}

	return out
}

// GameCount is the number of games across all matches.
func (p Payload) GameCount() int {
	n := 0
	for _, m := range p.Matches {
		n += len(m.Games)
	}
	return n
}
