package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/statistics"
	qb "github.com/riskibarqy/mtg-tournament-tracker/internal/platform/querybuilder"
)

type StatisticsRepository struct {
	db sqlx.ExtContext
}

type matchRecordRow struct {
	MatchID         int64  `db:"match_id"`
	TournamentID    int64  `db:"tournament_id"`
	SeasonID        int64  `db:"season_id"`
	SeasonName      string `db:"season_name"`
	PointsWin       int    `db:"points_win"`
	PointsDraw      int    `db:"points_draw"`
	Player1ID       int64  `db:"player1_id"`
	Player1Name     string `db:"player1_name"`
	Player2ID       int64  `db:"player2_id"`
	Player2Name     string `db:"player2_name"`
	Player1DeckID   int64  `db:"player1_deck_id"`
	Player1DeckName string `db:"player1_deck_name"`
	Player2DeckID   int64  `db:"player2_deck_id"`
	Player2DeckName string `db:"player2_deck_name"`
	Player1GameWins int    `db:"player1_game_wins"`
	Player2GameWins int    `db:"player2_game_wins"`
}

const matchRecordSource = `matches m
JOIN tournaments t ON t.id = m.tournament_id
JOIN seasons s ON s.id = t.season_id
JOIN tournament_types tt ON tt.id = t.tournament_type_id
JOIN players p1 ON p1.id = m.player1_id
JOIN players p2 ON p2.id = m.player2_id
JOIN deck_archetypes d1 ON d1.id = m.player1_deck_id
JOIN deck_archetypes d2 ON d2.id = m.player2_deck_id
LEFT JOIN games g ON g.match_id = m.id`

var matchRecordColumns = []string{
	"m.id AS match_id",
	"t.id AS tournament_id",
	"t.season_id",
	"s.name AS season_name",
	"tt.points_win",
	"tt.points_draw",
	"m.player1_id",
	"p1.name AS player1_name",
	"m.player2_id",
	"p2.name AS player2_name",
	"m.player1_deck_id",
	"d1.name AS player1_deck_name",
	"m.player2_deck_id",
	"d2.name AS player2_deck_name",
	"COUNT(g.id) FILTER (WHERE g.game_result = 'WIN' AND g.winner_id = m.player1_id) AS player1_game_wins",
	"COUNT(g.id) FILTER (WHERE g.game_result = 'WIN' AND g.winner_id = m.player2_id) AS player2_game_wins",
}

func NewStatisticsRepository(db sqlx.ExtContext) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

func (r *StatisticsRepository) ListMatchRecords(ctx context.Context, filter statistics.Filter) ([]statistics.MatchRecord, error) {
	conditions := []qb.Condition{qb.EqLiteral("m.match_status", string(match.StatusCompleted))}
	if filter.SeasonID != 0 {
		conditions = append(conditions, qb.Eq("t.season_id", filter.SeasonID))
	}
	if filter.PlayerID != 0 {
		conditions = append(conditions, qb.Expr("(m.player1_id = ? OR m.player2_id = ?)", filter.PlayerID, filter.PlayerID))
	}
	if filter.DeckID != 0 {
		conditions = append(conditions, qb.Expr("(m.player1_deck_id = ? OR m.player2_deck_id = ?)", filter.DeckID, filter.DeckID))
	}

	query, args, err := qb.Select(matchRecordColumns...).From(matchRecordSource).
		Where(conditions...).
		GroupBy("m.id", "t.id", "s.id", "tt.id", "p1.id", "p2.id", "d1.id", "d2.id").
		OrderBy("m.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match records query: %w", err)
	}

	var rows []matchRecordRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match records: %w", classifyError(err))
	}

	out := make([]statistics.MatchRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, statistics.MatchRecord(row))
	}
	return out, nil
}
