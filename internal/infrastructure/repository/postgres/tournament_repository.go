package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournament"
	qb "github.com/riskibarqy/mtg-tournament-tracker/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db sqlx.ExtContext
}

var tournamentSelectColumns = []string{
	"id",
	"season_id",
	"tournament_type_id",
	"name",
	"tournament_date",
	"COALESCE(location, '') AS location",
	"COALESCE(format, '') AS format",
	"COALESCE(description, '') AS description",
	"created_at",
	"updated_at",
}

func NewTournamentRepository(db sqlx.ExtContext) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) List(ctx context.Context, filter tournament.Filter) ([]tournament.Tournament, error) {
	builder := qb.Select(tournamentSelectColumns...).From("tournaments")
	if filter.SeasonID != 0 {
		builder = builder.Where(qb.Eq("season_id", filter.SeasonID))
	}
	query, args, err := builder.OrderBy("tournament_date DESC", "id DESC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournaments: %w", classifyError(err))
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, id int64) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select(tournamentSelectColumns...).From("tournaments").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build select tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament: %w", classifyError(err))
	}
	return row.toDomain(), true, nil
}

func (r *TournamentRepository) Create(ctx context.Context, t tournament.Tournament) (tournament.Tournament, error) {
	query, args, err := qb.InsertModel("tournaments", tournamentInsertModel{
		SeasonID:         t.SeasonID,
		TournamentTypeID: t.TournamentTypeID,
		Name:             t.Name,
		Date:             t.Date,
		Location:         nullString(t.Location),
		Format:           nullString(t.Format),
		Description:      nullString(t.Description),
	}, returning(tournamentSelectColumns))
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("build insert tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return tournament.Tournament{}, fmt.Errorf("insert tournament: %w", classifyError(err))
	}
	return row.toDomain(), nil
}

func (r *TournamentRepository) Update(ctx context.Context, t tournament.Tournament) (tournament.Tournament, bool, error) {
	query, args, err := qb.Update("tournaments").
		Set("season_id", t.SeasonID).
		Set("tournament_type_id", t.TournamentTypeID).
		Set("name", t.Name).
		Set("tournament_date", t.Date).
		Set("location", nullString(t.Location)).
		Set("format", nullString(t.Format)).
		Set("description", nullString(t.Description)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", t.ID)).
		Suffix(returning(tournamentSelectColumns)).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build update tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("update tournament: %w", classifyError(err))
	}
	return row.toDomain(), true, nil
}

// Delete cascades to the tournament's matches and games.
func (r *TournamentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("tournaments").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete tournament query: %w", err)
	}

	deleted, err := execDelete(ctx, r.db, query, args)
	if err != nil {
		return false, fmt.Errorf("delete tournament: %w", err)
	}
	return deleted, nil
}
