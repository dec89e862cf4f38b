package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/season"
	qb "github.com/riskibarqy/mtg-tournament-tracker/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db sqlx.ExtContext
}

var seasonSelectColumns = []string{
	"id",
	"name",
	"start_date",
	"end_date",
	"COALESCE(description, '') AS description",
	"created_at",
	"updated_at",
}

func NewSeasonRepository(db sqlx.ExtContext) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select(seasonSelectColumns...).From("seasons").
		OrderBy("start_date DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", classifyError(err))
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (season.Season, bool, error) {
	query, args, err := qb.Select(seasonSelectColumns...).From("seasons").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season query: %w", err)
	}

	var row seasonTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season: %w", classifyError(err))
	}
	return row.toDomain(), true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, s season.Season) (season.Season, error) {
	query, args, err := qb.InsertModel("seasons", seasonInsertModel{
		Name:        s.Name,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		Description: nullString(s.Description),
	}, returning(seasonSelectColumns))
	if err != nil {
		return season.Season{}, fmt.Errorf("build insert season query: %w", err)
	}

	var row seasonTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return season.Season{}, fmt.Errorf("insert season: %w", classifyError(err))
	}
	return row.toDomain(), nil
}

func (r *SeasonRepository) Update(ctx context.Context, s season.Season) (season.Season, bool, error) {
	query, args, err := qb.Update("seasons").
		Set("name", s.Name).
		Set("start_date", s.StartDate).
		Set("end_date", s.EndDate).
		Set("description", nullString(s.Description)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", s.ID)).
		Suffix(returning(seasonSelectColumns)).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build update season query: %w", err)
	}

	var row seasonTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("update season: %w", classifyError(err))
	}
	return row.toDomain(), true, nil
}

// Delete cascades to the season's tournaments, their matches and games.
func (r *SeasonRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("seasons").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete season query: %w", err)
	}

	deleted, err := execDelete(ctx, r.db, query, args)
	if err != nil {
		return false, fmt.Errorf("delete season: %w", err)
	}
	return deleted, nil
}
