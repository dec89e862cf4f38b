package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
	qb "github.com/riskibarqy/mtg-tournament-tracker/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db sqlx.ExtContext
}

var playerSelectColumns = []string{
	"id",
	"name",
	"COALESCE(email, '') AS email",
	"active",
	"registration_date",
	"COALESCE(notes, '') AS notes",
	"created_at",
	"updated_at",
}

func NewPlayerRepository(db sqlx.ExtContext) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, activeOnly bool) ([]player.Player, error) {
	builder := qb.Select(playerSelectColumns...).From("players")
	if activeOnly {
		builder = builder.Where(qb.Eq("active", true))
	}
	query, args, err := builder.OrderBy("name", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", classifyError(err))
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	return r.getOne(ctx, "get player", qb.Eq("id", id))
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (player.Player, bool, error) {
	return r.getOne(ctx, "get player by name", qb.Eq("name", name))
}

func (r *PlayerRepository) getOne(ctx context.Context, op string, cond qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(cond).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("%s: %w", op, classifyError(err))
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", newPlayerInsertModel(p), returning(playerSelectColumns))
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", classifyError(err))
	}
	return row.toDomain(), nil
}

// CreateIfAbsent inserts p or, when players_name_key already holds p.Name,
// reads the stored row. A name collision never raises an error.
func (r *PlayerRepository) CreateIfAbsent(ctx context.Context, p player.Player) (player.Player, bool, error) {
	query, args, err := qb.InsertModel("players", newPlayerInsertModel(p),
		"ON CONFLICT (name) DO NOTHING "+returning(playerSelectColumns))
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build insert player if absent query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if !isNotFound(err) {
			return player.Player{}, false, fmt.Errorf("insert player if absent: %w", classifyError(err))
		}
		stored, exists, err := r.GetByName(ctx, p.Name)
		if err != nil {
			return player.Player{}, false, err
		}
		if !exists {
			return player.Player{}, false, fmt.Errorf("insert player if absent: conflicting row for name %q vanished", p.Name)
		}
		return stored, false, nil
	}
	return row.toDomain(), true, nil
}

// Update keeps the stored registration date when p carries none.
func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (player.Player, bool, error) {
	builder := qb.Update("players").
		Set("name", p.Name).
		Set("email", nullString(p.Email)).
		Set("active", p.Active).
		Set("notes", nullString(p.Notes))
	if !p.RegistrationDate.IsZero() {
		builder = builder.Set("registration_date", p.RegistrationDate)
	}
	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", p.ID)).
		Suffix(returning(playerSelectColumns)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build update player query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("update player: %w", classifyError(err))
	}
	return row.toDomain(), true, nil
}

// Delete fails with a foreign key violation while matches or games reference the player.
func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("players").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}

	deleted, err := execDelete(ctx, r.db, query, args)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}
	return deleted, nil
}
