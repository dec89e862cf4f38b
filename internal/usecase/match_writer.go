package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
)

// txPolicy selects the transaction scope used when writing match units.
type txPolicy int

const (
	// policyAllOrNothing writes every unit inside the caller's transaction and
	// stops at the first failure.
	policyAllOrNothing txPolicy = iota + 1
	// policyPerUnit commits each unit in its own transaction and records
	// failures per unit.
	policyPerUnit
)

type unitOutcome struct {
	index int
	match match.Match
	err   error
}

type matchWriter struct {
	uow     store.UnitOfWork
	workers int
}

// write stores units under policy. repos is only used by policyAllOrNothing
// and must belong to the enclosing transaction. Outcomes are ordered by index.
func (w *matchWriter) write(ctx context.Context, policy txPolicy, repos store.Repositories, units []match.Match) ([]unitOutcome, error) {
	switch policy {
	case policyAllOrNothing:
		out := make([]unitOutcome, 0, len(units))
		for i, unit := range units {
			created, err := recordMatch(ctx, repos.Matches, unit)
			if err != nil {
				return nil, fmt.Errorf("match %d: %w", i, err)
			}
			out = append(out, unitOutcome{index: i, match: created})
		}
		return out, nil
	case policyPerUnit:
		return w.writeIsolated(ctx, units)
	default:
		return nil, fmt.Errorf("unknown transaction policy %d", policy)
	}
}

func (w *matchWriter) writeIsolated(ctx context.Context, units []match.Match) ([]unitOutcome, error) {
	workers := w.workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(units) {
		workers = len(units)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan unitOutcome, len(units))
	var wg sync.WaitGroup
	for i, unit := range units {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results <- w.writeOne(ctx, i, unit)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit match unit to worker pool: %w", err)
		}
	}

	wg.Wait()
	close(results)

	out := make([]unitOutcome, 0, len(units))
	for r := range results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].index < out[j].index
	})

	return out, nil
}

func (w *matchWriter) writeOne(ctx context.Context, index int, unit match.Match) unitOutcome {
	if err := unit.Validate(); err != nil {
		return unitOutcome{index: index, err: fmt.Errorf("%w: %v", ErrInvalidInput, err)}
	}
	if err := ctx.Err(); err != nil {
		return unitOutcome{index: index, err: err}
	}

	var created match.Match
	err := w.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		var err error
		created, err = recordMatch(ctx, repos.Matches, unit)
		return err
	})
	if err != nil {
		return unitOutcome{index: index, err: err}
	}
	return unitOutcome{index: index, match: created}
}

// recordMatch creates the match row and then each of its games.
func recordMatch(ctx context.Context, repo match.Repository, m match.Match) (match.Match, error) {
	games := m.Games
	m.Games = nil

	created, err := repo.Create(ctx, m)
	if err != nil {
		return match.Match{}, storageFailure("create match", err, false)
	}

	created.Games = make([]match.Game, 0, len(games))
	for _, g := range games {
		g.MatchID = created.ID
		storedGame, err := repo.CreateGame(ctx, g)
		if err != nil {
			return match.Match{}, storageFailure(fmt.Sprintf("create game %d", g.GameNumber), err, false)
		}
		created.Games = append(created.Games, storedGame)
	}

	return created, nil
}
