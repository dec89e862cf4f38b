package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	qb "github.com/riskibarqy/mtg-tournament-tracker/internal/platform/querybuilder"
)

type MatchRepository struct {
	db sqlx.ExtContext
}

var matchSelectColumns = []string{
	"id",
	"tournament_id",
	"player1_id",
	"player2_id",
	"player1_deck_id",
	"player2_deck_id",
	"round_number",
	"match_status",
	"match_date",
	"COALESCE(notes, '') AS notes",
	"created_at",
	"updated_at",
}

var gameSelectColumns = []string{
	"id",
	"match_id",
	"game_number",
	"winner_id",
	"game_result",
	"duration_minutes",
	"COALESCE(notes, '') AS notes",
	"created_at",
}

func NewMatchRepository(db sqlx.ExtContext) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	builder := qb.Select(matchSelectColumns...).From("matches")
	if filter.TournamentID != 0 {
		builder = builder.Where(qb.Eq("tournament_id", filter.TournamentID))
	}
	if filter.PlayerID != 0 {
		builder = builder.Where(qb.Expr("(player1_id = ? OR player2_id = ?)", filter.PlayerID, filter.PlayerID))
	}
	query, args, err := builder.OrderBy("COALESCE(round_number, 0)", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", classifyError(err))
	}

	out := make([]match.Match, 0, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
		ids = append(ids, row.ID)
	}
	if err := r.attachGames(ctx, out, ids); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", classifyError(err))
	}

	out := []match.Match{row.toDomain()}
	if err := r.attachGames(ctx, out, []int64{row.ID}); err != nil {
		return match.Match{}, false, err
	}
	return out[0], true, nil
}

func (r *MatchRepository) attachGames(ctx context.Context, matches []match.Match, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := qb.Select(gameSelectColumns...).From("games").
		Where(qb.In("match_id", int64SliceToAny(ids))).
		OrderBy("match_id", "game_number").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build select games query: %w", err)
	}

	var rows []gameTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return fmt.Errorf("select games: %w", classifyError(err))
	}

	byMatch := make(map[int64][]match.Game, len(ids))
	for _, row := range rows {
		byMatch[row.MatchID] = append(byMatch[row.MatchID], row.toDomain())
	}
	for i := range matches {
		if games, ok := byMatch[matches[i].ID]; ok {
			matches[i].Games = games
		}
	}
	return nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	query, args, err := qb.InsertModel("matches", matchInsertModel{
		TournamentID:  m.TournamentID,
		Player1ID:     m.Player1ID,
		Player2ID:     m.Player2ID,
		Player1DeckID: m.Player1DeckID,
		Player2DeckID: m.Player2DeckID,
		RoundNumber:   m.RoundNumber,
		Status:        string(m.Status),
		MatchDate:     m.MatchDate,
		Notes:         nullString(m.Notes),
	}, returning(matchSelectColumns))
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", classifyError(err))
	}
	return row.toDomain(), nil
}

// Update replaces the match row and returns it with its stored games. A zero
// MatchDate keeps the stored date.
func (r *MatchRepository) Update(ctx context.Context, m match.Match) (match.Match, bool, error) {
	builder := qb.Update("matches").
		Set("tournament_id", m.TournamentID).
		Set("player1_id", m.Player1ID).
		Set("player2_id", m.Player2ID).
		Set("player1_deck_id", m.Player1DeckID).
		Set("player2_deck_id", m.Player2DeckID).
		Set("round_number", m.RoundNumber).
		Set("match_status", string(m.Status)).
		Set("notes", nullString(m.Notes))
	if !m.MatchDate.IsZero() {
		builder = builder.Set("match_date", m.MatchDate)
	}
	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", m.ID)).
		Suffix(returning(matchSelectColumns)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build update match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("update match: %w", classifyError(err))
	}

	out := []match.Match{row.toDomain()}
	if err := r.attachGames(ctx, out, []int64{row.ID}); err != nil {
		return match.Match{}, false, err
	}
	return out[0], true, nil
}

// Delete cascades to the match's games.
func (r *MatchRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete match query: %w", err)
	}

	deleted, err := execDelete(ctx, r.db, query, args)
	if err != nil {
		return false, fmt.Errorf("delete match: %w", err)
	}
	return deleted, nil
}

func (r *MatchRepository) CreateGame(ctx context.Context, g match.Game) (match.Game, error) {
	query, args, err := qb.InsertModel("games", gameInsertModel{
		MatchID:         g.MatchID,
		GameNumber:      g.GameNumber,
		WinnerID:        g.WinnerID,
		Result:          string(g.Result),
		DurationMinutes: g.DurationMinutes,
		Notes:           nullString(g.Notes),
	}, returning(gameSelectColumns))
	if err != nil {
		return match.Game{}, fmt.Errorf("build insert game query: %w", err)
	}

	var row gameTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return match.Game{}, fmt.Errorf("insert game: %w", classifyError(err))
	}
	return row.toDomain(), nil
}

func (r *MatchRepository) GetGame(ctx context.Context, id int64) (match.Game, bool, error) {
	query, args, err := qb.Select(gameSelectColumns...).From("games").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Game{}, false, fmt.Errorf("build select game query: %w", err)
	}

	var row gameTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Game{}, false, nil
		}
		return match.Game{}, false, fmt.Errorf("get game: %w", classifyError(err))
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) UpdateGame(ctx context.Context, g match.Game) (match.Game, bool, error) {
	query, args, err := qb.Update("games").
		Set("game_number", g.GameNumber).
		Set("winner_id", g.WinnerID).
		Set("game_result", string(g.Result)).
		Set("duration_minutes", g.DurationMinutes).
		Set("notes", nullString(g.Notes)).
		Where(qb.Eq("id", g.ID), qb.Eq("match_id", g.MatchID)).
		Suffix(returning(gameSelectColumns)).
		ToSQL()
	if err != nil {
		return match.Game{}, false, fmt.Errorf("build update game query: %w", err)
	}

	var row gameTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Game{}, false, nil
		}
		return match.Game{}, false, fmt.Errorf("update game: %w", classifyError(err))
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) DeleteGame(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("games").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete game query: %w", err)
	}

	deleted, err := execDelete(ctx, r.db, query, args)
	if err != nil {
		return false, fmt.Errorf("delete game: %w", err)
	}
	return deleted, nil
}
