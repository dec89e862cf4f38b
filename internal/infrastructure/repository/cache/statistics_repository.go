package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/statistics"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/resilience"
)

// StatisticsRepository coalesces identical concurrent match record reads and
// stops querying storage while it keeps failing. Results are never cached so
// standings always reflect committed writes.
type StatisticsRepository struct {
	next    statistics.Repository
	flight  resilience.Group[[]statistics.MatchRecord]
	breaker *resilience.CircuitBreaker
}

func NewStatisticsRepository(next statistics.Repository, breaker *resilience.CircuitBreaker) *StatisticsRepository {
	return &StatisticsRepository{next: next, breaker: breaker}
}

func (r *StatisticsRepository) ListMatchRecords(ctx context.Context, filter statistics.Filter) ([]statistics.MatchRecord, error) {
	key := fmt.Sprintf("season:%d:player:%d:deck:%d", filter.SeasonID, filter.PlayerID, filter.DeckID)

	records, _, err := r.flight.Do(key, func() ([]statistics.MatchRecord, error) {
		var out []statistics.MatchRecord
		err := r.breaker.Execute(func() error {
			var err error
			out, err = r.next.ListMatchRecords(ctx, filter)
			return err
		}, isStorageOutage)
		return out, err
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return nil, fmt.Errorf("%w: statistics: %w", store.ErrTransient, err)
	}
	if err != nil {
		return nil, err
	}

	return append([]statistics.MatchRecord(nil), records...), nil
}

func isStorageOutage(err error) bool {
	return errors.Is(err, store.ErrTransient) || errors.Is(err, context.DeadlineExceeded)
}
