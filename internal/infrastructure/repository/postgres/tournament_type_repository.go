package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
	qb "github.com/riskibarqy/mtg-tournament-tracker/internal/platform/querybuilder"
)

type TournamentTypeRepository struct {
	db sqlx.ExtContext
}

var tournamentTypeSelectColumns = []string{
	"id",
	"name",
	"points_win",
	"points_draw",
	"COALESCE(description, '') AS description",
}

func NewTournamentTypeRepository(db sqlx.ExtContext) *TournamentTypeRepository {
	return &TournamentTypeRepository{db: db}
}

func (r *TournamentTypeRepository) List(ctx context.Context) ([]tournamenttype.TournamentType, error) {
	query, args, err := qb.Select(tournamentTypeSelectColumns...).From("tournament_types").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournament types query: %w", err)
	}

	var rows []tournamentTypeTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournament types: %w", classifyError(err))
	}

	out := make([]tournamenttype.TournamentType, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TournamentTypeRepository) GetByID(ctx context.Context, id int64) (tournamenttype.TournamentType, bool, error) {
	return r.getOne(ctx, "get tournament type", qb.Eq("id", id))
}

func (r *TournamentTypeRepository) GetByName(ctx context.Context, name string) (tournamenttype.TournamentType, bool, error) {
	return r.getOne(ctx, "get tournament type by name", qb.Expr("LOWER(name) = LOWER(?)", name))
}

func (r *TournamentTypeRepository) getOne(ctx context.Context, op string, cond qb.Condition) (tournamenttype.TournamentType, bool, error) {
	query, args, err := qb.Select(tournamentTypeSelectColumns...).From("tournament_types").
		Where(cond).
		ToSQL()
	if err != nil {
		return tournamenttype.TournamentType{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row tournamentTypeTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournamenttype.TournamentType{}, false, nil
		}
		return tournamenttype.TournamentType{}, false, fmt.Errorf("%s: %w", op, classifyError(err))
	}
	return row.toDomain(), true, nil
}

func (r *TournamentTypeRepository) Create(ctx context.Context, t tournamenttype.TournamentType) (tournamenttype.TournamentType, error) {
	query, args, err := qb.InsertModel("tournament_types", tournamentTypeInsertModel{
		Name:        t.Name,
		PointsWin:   t.PointsWin,
		PointsDraw:  t.PointsDraw,
		Description: nullString(t.Description),
	}, returning(tournamentTypeSelectColumns))
	if err != nil {
		return tournamenttype.TournamentType{}, fmt.Errorf("build insert tournament type query: %w", err)
	}

	var row tournamentTypeTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return tournamenttype.TournamentType{}, fmt.Errorf("insert tournament type: %w", classifyError(err))
	}
	return row.toDomain(), nil
}

func (r *TournamentTypeRepository) Update(ctx context.Context, t tournamenttype.TournamentType) (tournamenttype.TournamentType, bool, error) {
	query, args, err := qb.Update("tournament_types").
		Set("name", t.Name).
		Set("points_win", t.PointsWin).
		Set("points_draw", t.PointsDraw).
		Set("description", nullString(t.Description)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", t.ID)).
		Suffix(returning(tournamentTypeSelectColumns)).
		ToSQL()
	if err != nil {
		return tournamenttype.TournamentType{}, false, fmt.Errorf("build update tournament type query: %w", err)
	}

	var row tournamentTypeTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournamenttype.TournamentType{}, false, nil
		}
		return tournamenttype.TournamentType{}, false, fmt.Errorf("update tournament type: %w", classifyError(err))
	}
	return row.toDomain(), true, nil
}

func (r *TournamentTypeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("tournament_types").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete tournament type query: %w", err)
	}

	deleted, err := execDelete(ctx, r.db, query, args)
	if err != nil {
		return false, fmt.Errorf("delete tournament type: %w", err)
	}
	return deleted, nil
}
