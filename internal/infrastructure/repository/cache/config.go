// Package cache wraps repositories with in-process caching and request
// coalescing.
package cache

import (
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/resilience"
)

type Config struct {
	Enabled      bool
	TTL          time.Duration
	StatsCircuit resilience.CircuitBreakerConfig
}

// Wrap decorates the read-heavy repositories of repos; the rest pass through.
// Repositories bound to a transaction must not be wrapped.
func Wrap(repos store.Repositories, cfg Config) store.Repositories {
	if cfg.Enabled {
		repos.TournamentTypes = NewTournamentTypeRepository(repos.TournamentTypes, cfg.TTL)
	}
	repos.Statistics = NewStatisticsRepository(repos.Statistics, resilience.NewCircuitBreaker(cfg.StatsCircuit))
	return repos
}
