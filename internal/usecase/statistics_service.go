package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/season"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/statistics"
	"github.com/sourcegraph/conc/pool"
)

// SeasonOverview bundles the season-scoped aggregations.
type SeasonOverview struct {
	Season    season.Season
	Standings []statistics.Standing
	Decks     []statistics.DeckStat
	Matchups  []statistics.Matchup
}

// StatisticsService recomputes standings from committed matches on every call.
type StatisticsService struct {
	seasonRepo season.Repository
	playerRepo player.Repository
	deckRepo   deck.Repository
	statsRepo  statistics.Repository
}

func NewStatisticsService(
	seasonRepo season.Repository,
	playerRepo player.Repository,
	deckRepo deck.Repository,
	statsRepo statistics.Repository,
) *StatisticsService {
	return &StatisticsService{
		seasonRepo: seasonRepo,
		playerRepo: playerRepo,
		deckRepo:   deckRepo,
		statsRepo:  statsRepo,
	}
}

// GetPlayerStatistics returns every player's record, or only playerID's when set.
func (s *StatisticsService) GetPlayerStatistics(ctx context.Context, playerID *int64) ([]statistics.PlayerStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.GetPlayerStatistics")
	defer span.End()

	var roster []player.Player
	filter := statistics.Filter{}
	if playerID != nil {
		item, exists, err := s.playerRepo.GetByID(ctx, *playerID)
		if err != nil {
			return nil, storageFailure("get player", err, false)
		}
		if !exists {
			return nil, fmt.Errorf("%w: id=%d", ErrPlayerNotFound, *playerID)
		}
		roster = []player.Player{item}
		filter.PlayerID = item.ID
	} else {
		items, err := s.playerRepo.List(ctx, false)
		if err != nil {
			return nil, storageFailure("list players", err, false)
		}
		roster = items
	}

	records, err := s.statsRepo.ListMatchRecords(ctx, filter)
	if err != nil {
		return nil, storageFailure("list match records", err, false)
	}
	return statistics.Players(records, roster), nil
}

// GetDeckStatistics returns every deck's record, or only deckID's when set.
func (s *StatisticsService) GetDeckStatistics(ctx context.Context, deckID *int64) ([]statistics.DeckStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.GetDeckStatistics")
	defer span.End()

	var roster []deck.Archetype
	filter := statistics.Filter{}
	if deckID != nil {
		item, exists, err := s.deckRepo.GetByID(ctx, *deckID)
		if err != nil {
			return nil, storageFailure("get deck", err, false)
		}
		if !exists {
			return nil, fmt.Errorf("%w: id=%d", ErrDeckNotFound, *deckID)
		}
		roster = []deck.Archetype{item}
		filter.DeckID = item.ID
	} else {
		items, err := s.deckRepo.List(ctx)
		if err != nil {
			return nil, storageFailure("list decks", err, false)
		}
		roster = items
	}

	records, err := s.statsRepo.ListMatchRecords(ctx, filter)
	if err != nil {
		return nil, storageFailure("list match records", err, false)
	}
	return statistics.Decks(records, roster), nil
}

// GetDeckMatchups lists head-to-head rows. With deckAID set every row is seen
// from deck A's side; with both set only that pair is returned.
func (s *StatisticsService) GetDeckMatchups(ctx context.Context, deckAID, deckBID *int64) ([]statistics.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.GetDeckMatchups")
	defer span.End()

	var a, b int64
	for _, id := range []*int64{deckAID, deckBID} {
		if id == nil {
			continue
		}
		_, exists, err := s.deckRepo.GetByID(ctx, *id)
		if err != nil {
			return nil, storageFailure("get deck", err, false)
		}
		if !exists {
			return nil, fmt.Errorf("%w: id=%d", ErrDeckNotFound, *id)
		}
	}
	if deckAID != nil {
		a = *deckAID
	}
	if deckBID != nil {
		b = *deckBID
	}

	filter := statistics.Filter{DeckID: a}
	if a == 0 {
		filter.DeckID = b
	}
	records, err := s.statsRepo.ListMatchRecords(ctx, filter)
	if err != nil {
		return nil, storageFailure("list match records", err, false)
	}
	return statistics.SelectMatchups(statistics.Matchups(records), a, b), nil
}

// GetSeasonStandings ranks players per season, or within seasonID when set.
func (s *StatisticsService) GetSeasonStandings(ctx context.Context, seasonID *int64) ([]statistics.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.GetSeasonStandings")
	defer span.End()

	filter := statistics.Filter{}
	if seasonID != nil {
		if err := requireSeason(ctx, s.seasonRepo, *seasonID); err != nil {
			return nil, err
		}
		filter.SeasonID = *seasonID
	}

	records, err := s.statsRepo.ListMatchRecords(ctx, filter)
	if err != nil {
		return nil, storageFailure("list match records", err, false)
	}
	return statistics.Standings(records), nil
}

// GetSeasonOverview loads the season, its records and the deck roster
// concurrently and derives standings, deck stats and matchups from them.
func (s *StatisticsService) GetSeasonOverview(ctx context.Context, seasonID int64) (SeasonOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.GetSeasonOverview")
	defer span.End()

	var (
		item    season.Season
		exists  bool
		records []statistics.MatchRecord
		decks   []deck.Archetype
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		item, exists, err = s.seasonRepo.GetByID(ctx, seasonID)
		return storageFailure("get season", err, false)
	})
	p.Go(func(ctx context.Context) error {
		var err error
		records, err = s.statsRepo.ListMatchRecords(ctx, statistics.Filter{SeasonID: seasonID})
		return storageFailure("list match records", err, false)
	})
	p.Go(func(ctx context.Context) error {
		var err error
		decks, err = s.deckRepo.List(ctx)
		return storageFailure("list decks", err, false)
	})
	if err := p.Wait(); err != nil {
		recordSpanError(span, err)
		return SeasonOverview{}, err
	}
	if !exists {
		return SeasonOverview{}, fmt.Errorf("%w: id=%d", ErrSeasonNotFound, seasonID)
	}

	used := make(map[int64]struct{})
	for _, r := range records {
		used[r.Player1DeckID] = struct{}{}
		used[r.Player2DeckID] = struct{}{}
	}
	seasonDecks := make([]deck.Archetype, 0, len(used))
	for _, d := range decks {
		if _, ok := used[d.ID]; ok {
			seasonDecks = append(seasonDecks, d)
		}
	}

	return SeasonOverview{
		Season:    item,
		Standings: statistics.Standings(records),
		Decks:     statistics.Decks(records, seasonDecks),
		Matchups:  statistics.Matchups(records),
	}, nil
}
