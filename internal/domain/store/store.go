package store

import (
	"context"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/season"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/statistics"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournament"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
)

// Repositories bundles every repository bound to the same connection or transaction.
type Repositories struct {
	Seasons         season.Repository
	TournamentTypes tournamenttype.Repository
	Tournaments     tournament.Repository
	Players         player.Repository
	Decks           deck.Repository
	Matches         match.Repository
	Statistics      statistics.Repository
}

// UnitOfWork runs fn inside one transaction. The transaction commits when fn
// returns nil and rolls back otherwise; fn's error is returned unchanged.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
