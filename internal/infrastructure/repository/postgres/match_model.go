package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
)

type matchTableModel struct {
	ID            int64     `db:"id"`
	TournamentID  int64     `db:"tournament_id"`
	Player1ID     int64     `db:"player1_id"`
	Player2ID     int64     `db:"player2_id"`
	Player1DeckID int64     `db:"player1_deck_id"`
	Player2DeckID int64     `db:"player2_deck_id"`
	RoundNumber   *int      `db:"round_number"`
	Status        string    `db:"match_status"`
	MatchDate     time.Time `db:"match_date"`
	Notes         string    `db:"notes"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type matchInsertModel struct {
	TournamentID  int64          `db:"tournament_id"`
	Player1ID     int64          `db:"player1_id"`
	Player2ID     int64          `db:"player2_id"`
	Player1DeckID int64          `db:"player1_deck_id"`
	Player2DeckID int64          `db:"player2_deck_id"`
	RoundNumber   *int           `db:"round_number"`
	Status        string         `db:"match_status"`
	MatchDate     time.Time      `db:"match_date"`
	Notes         sql.NullString `db:"notes"`
}

type gameTableModel struct {
	ID              int64     `db:"id"`
	MatchID         int64     `db:"match_id"`
	GameNumber      int       `db:"game_number"`
	WinnerID        int64     `db:"winner_id"`
	Result          string    `db:"game_result"`
	DurationMinutes *int      `db:"duration_minutes"`
	Notes           string    `db:"notes"`
	CreatedAt       time.Time `db:"created_at"`
}

type gameInsertModel struct {
	MatchID         int64          `db:"match_id"`
	GameNumber      int            `db:"game_number"`
	WinnerID        int64          `db:"winner_id"`
	Result          string         `db:"game_result"`
	DurationMinutes *int           `db:"duration_minutes"`
	Notes           sql.NullString `db:"notes"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:            m.ID,
		TournamentID:  m.TournamentID,
		Player1ID:     m.Player1ID,
		Player2ID:     m.Player2ID,
		Player1DeckID: m.Player1DeckID,
		Player2DeckID: m.Player2DeckID,
		RoundNumber:   m.RoundNumber,
		Status:        match.Status(m.Status),
		MatchDate:     m.MatchDate,
		Notes:         m.Notes,
		Games:         []match.Game{},
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (m gameTableModel) toDomain() match.Game {
	return match.Game{
		ID:              m.ID,
		MatchID:         m.MatchID,
		GameNumber:      m.GameNumber,
		WinnerID:        m.WinnerID,
		Result:          match.GameResult(m.Result),
		DurationMinutes: m.DurationMinutes,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
	}
}
