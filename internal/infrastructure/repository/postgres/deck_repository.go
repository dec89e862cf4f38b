package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
	qb "github.com/riskibarqy/mtg-tournament-tracker/internal/platform/querybuilder"
)

type DeckRepository struct {
	db sqlx.ExtContext
}

var deckSelectColumns = []string{
	"id",
	"name",
	"COALESCE(color_identity, '') AS color_identity",
	"COALESCE(archetype_type, '') AS archetype_type",
	"COALESCE(description, '') AS description",
	"created_at",
	"updated_at",
}

func NewDeckRepository(db sqlx.ExtContext) *DeckRepository {
	return &DeckRepository{db: db}
}

func (r *DeckRepository) List(ctx context.Context) ([]deck.Archetype, error) {
	query, args, err := qb.Select(deckSelectColumns...).From("deck_archetypes").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select decks query: %w", err)
	}

	var rows []deckTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select decks: %w", classifyError(err))
	}

	out := make([]deck.Archetype, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *DeckRepository) GetByID(ctx context.Context, id int64) (deck.Archetype, bool, error) {
	return r.getOne(ctx, "get deck", qb.Eq("id", id))
}

func (r *DeckRepository) GetByName(ctx context.Context, name string) (deck.Archetype, bool, error) {
	return r.getOne(ctx, "get deck by name", qb.Eq("name", name))
}

func (r *DeckRepository) getOne(ctx context.Context, op string, cond qb.Condition) (deck.Archetype, bool, error) {
	query, args, err := qb.Select(deckSelectColumns...).From("deck_archetypes").
		Where(cond).
		ToSQL()
	if err != nil {
		return deck.Archetype{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row deckTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return deck.Archetype{}, false, nil
		}
		return deck.Archetype{}, false, fmt.Errorf("%s: %w", op, classifyError(err))
	}
	return row.toDomain(), true, nil
}

func (r *DeckRepository) Create(ctx context.Context, a deck.Archetype) (deck.Archetype, error) {
	query, args, err := qb.InsertModel("deck_archetypes", newDeckInsertModel(a), returning(deckSelectColumns))
	if err != nil {
		return deck.Archetype{}, fmt.Errorf("build insert deck query: %w", err)
	}

	var row deckTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return deck.Archetype{}, fmt.Errorf("insert deck: %w", classifyError(err))
	}
	return row.toDomain(), nil
}

func (r *DeckRepository) CreateIfAbsent(ctx context.Context, a deck.Archetype) (deck.Archetype, bool, error) {
	query, args, err := qb.InsertModel("deck_archetypes", newDeckInsertModel(a),
		"ON CONFLICT (name) DO NOTHING "+returning(deckSelectColumns))
	if err != nil {
		return deck.Archetype{}, false, fmt.Errorf("build insert deck if absent query: %w", err)
	}

	var row deckTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if !isNotFound(err) {
			return deck.Archetype{}, false, fmt.Errorf("insert deck if absent: %w", classifyError(err))
		}
		stored, exists, err := r.GetByName(ctx, a.Name)
		if err != nil {
			return deck.Archetype{}, false, err
		}
		if !exists {
			return deck.Archetype{}, false, fmt.Errorf("insert deck if absent: conflicting row for name %q vanished", a.Name)
		}
		return stored, false, nil
	}
	return row.toDomain(), true, nil
}

func (r *DeckRepository) Update(ctx context.Context, a deck.Archetype) (deck.Archetype, bool, error) {
	model := newDeckInsertModel(a)
	query, args, err := qb.Update("deck_archetypes").
		Set("name", model.Name).
		Set("color_identity", model.ColorIdentity).
		Set("archetype_type", model.ArchetypeType).
		Set("description", model.Description).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", a.ID)).
		Suffix(returning(deckSelectColumns)).
		ToSQL()
	if err != nil {
		return deck.Archetype{}, false, fmt.Errorf("build update deck query: %w", err)
	}

	var row deckTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return deck.Archetype{}, false, nil
		}
		return deck.Archetype{}, false, fmt.Errorf("update deck: %w", classifyError(err))
	}
	return row.toDomain(), true, nil
}

func (r *DeckRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("deck_archetypes").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete deck query: %w", err)
	}

	deleted, err := execDelete(ctx, r.db, query, args)
	if err != nil {
		return false, fmt.Errorf("delete deck: %w", err)
	}
	return deleted, nil
}
