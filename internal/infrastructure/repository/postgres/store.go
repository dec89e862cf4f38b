package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
)

// Store hands out repositories bound either to the pool or to one transaction.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Repositories returns repositories that run each statement in autocommit mode.
func (s *Store) Repositories() store.Repositories {
	return repositories(s.db)
}

func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos store.Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", classifyError(err))
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, repositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", classifyError(err))
	}
	return nil
}

func repositories(db sqlx.ExtContext) store.Repositories {
	return store.Repositories{
		Seasons:         NewSeasonRepository(db),
		TournamentTypes: NewTournamentTypeRepository(db),
		Tournaments:     NewTournamentRepository(db),
		Players:         NewPlayerRepository(db),
		Decks:           NewDeckRepository(db),
		Matches:         NewMatchRepository(db),
		Statistics:      NewStatisticsRepository(db),
	}
}

func execDelete(ctx context.Context, db sqlx.ExtContext, query string, args []any) (bool, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, classifyError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read rows affected: %w", err)
	}
	return affected > 0, nil
}
