package match

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

type GameResult string

const (
	ResultWin  GameResult = "WIN"
	ResultDraw GameResult = "DRAW"
)

func (r GameResult) Valid() bool {
	return r == ResultWin || r == ResultDraw
}

const (
	MinGameNumber = 1
	MaxGameNumber = 3
	MaxGames      = 3
)

// Match is one best-of-three pairing inside a tournament.
type Match struct {
	ID            int64
	TournamentID  int64
	Player1ID     int64
	Player2ID     int64
	Player1DeckID int64
	Player2DeckID int64
	RoundNumber   *int
	Status        Status
	MatchDate     time.Time
	Notes         string
	Games         []Game
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Game is one game of a match. WinnerID references any player; it is not
// restricted to the match participants at this level.
type Game struct {
	ID              int64
	MatchID         int64
	GameNumber      int
	WinnerID        int64
	Result          GameResult
	DurationMinutes *int
	Notes           string
	CreatedAt       time.Time
}

// Validate checks the invariants of a match together with its games.
func (m Match) Validate() error {
	if err := m.ValidateRow(); err != nil {
		return err
	}
	if len(m.Games) < 1 || len(m.Games) > MaxGames {
		return fmt.Errorf("match must have between 1 and %d games, got %d", MaxGames, len(m.Games))
	}

	seen := make(map[int]struct{}, len(m.Games))
	for _, g := range m.Games {
		if err := g.Validate(); err != nil {
			return err
		}
		if _, dup := seen[g.GameNumber]; dup {
			return fmt.Errorf("game number %d is duplicated", g.GameNumber)
		}
		seen[g.GameNumber] = struct{}{}
	}

	return nil
}

// ValidateRow checks the match row alone, ignoring Games.
func (m Match) ValidateRow() error {
	if m.TournamentID <= 0 {
		return fmt.Errorf("match tournament id is required")
	}
	if m.Player1ID <= 0 || m.Player2ID <= 0 {
		return fmt.Errorf("match player ids are required")
	}
	if m.Player1ID == m.Player2ID {
		return fmt.Errorf("match players must differ")
	}
	if m.Player1DeckID <= 0 || m.Player2DeckID <= 0 {
		return fmt.Errorf("match deck ids are required")
	}
	if m.RoundNumber != nil && *m.RoundNumber < 1 {
		return fmt.Errorf("match round number must be >= 1")
	}
	if !m.Status.Valid() {
		return fmt.Errorf("match status %q is invalid", m.Status)
	}

	return nil
}

func (g Game) Validate() error {
	if g.GameNumber < MinGameNumber || g.GameNumber > MaxGameNumber {
		return fmt.Errorf("game number must be between %d and %d", MinGameNumber, MaxGameNumber)
	}
	if g.WinnerID <= 0 {
		return fmt.Errorf("game %d winner id is required", g.GameNumber)
	}
	if !g.Result.Valid() {
		return fmt.Errorf("game %d result %q is invalid", g.GameNumber, g.Result)
	}
	if g.DurationMinutes != nil && *g.DurationMinutes <= 0 {
		return fmt.Errorf("game %d duration must be > 0", g.GameNumber)
	}

	return nil
}

// Filter narrows match listings. Zero values mean no filter.
type Filter struct {
	TournamentID int64
	PlayerID     int64
}
