package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/metrics"
	"go.opentelemetry.io/otel/attribute"
)

// BatchError describes one rejected batch unit.
type BatchError struct {
	Index           int
	OffendingFields map[string]any
	Message         string
}

type BatchResult struct {
	SuccessCount    int
	FailedCount     int
	CreatedMatchIDs []int64
	Errors          []BatchError
}

type MatchService struct {
	uow     store.UnitOfWork
	repo    match.Repository
	writer  *matchWriter
	metrics *metrics.Metrics
	logger  *logging.Logger
	now     func() time.Time
}

func NewMatchService(uow store.UnitOfWork, repo match.Repository, maxWorkers int, m *metrics.Metrics, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	return &MatchService{
		uow:     uow,
		repo:    repo,
		writer:  &matchWriter{uow: uow, workers: maxWorkers},
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// BatchCreateMatches commits every unit independently. A failing unit is
// rolled back alone and reported in Errors; the others still commit.
func (s *MatchService) BatchCreateMatches(ctx context.Context, units []match.Match) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.BatchCreateMatches", attribute.Int("units", len(units)))
	defer span.End()

	if len(units) == 0 {
		return BatchResult{}, fmt.Errorf("%w: matches must contain at least one unit", ErrInvalidInput)
	}
	for i := range units {
		s.applyDefaults(&units[i])
	}

	outcomes, err := s.writer.write(ctx, policyPerUnit, store.Repositories{}, units)
	if err != nil {
		recordSpanError(span, err)
		return BatchResult{}, err
	}

	result := BatchResult{
		CreatedMatchIDs: make([]int64, 0, len(outcomes)),
		Errors:          make([]BatchError, 0),
	}
	for _, o := range outcomes {
		if o.err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, BatchError{
				Index:           o.index,
				OffendingFields: offendingFields(units[o.index], o.err),
				Message:         o.err.Error(),
			})
			s.logger.WarnContext(ctx, "batch match unit failed", "index", o.index, "error", o.err)
			continue
		}
		result.SuccessCount++
		result.CreatedMatchIDs = append(result.CreatedMatchIDs, o.match.ID)
	}

	s.metrics.AddBatchUnits(result.SuccessCount, result.FailedCount)
	s.logger.InfoContext(ctx, "batch match create finished", "success_count", result.SuccessCount, "failed_count", result.FailedCount)
	return result, nil
}

// CreateMatch records one match with its games atomically.
func (s *MatchService) CreateMatch(ctx context.Context, m match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	s.applyDefaults(&m)
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created match.Match
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		outcomes, err := s.writer.write(ctx, policyAllOrNothing, repos, []match.Match{m})
		if err != nil {
			return err
		}
		created = outcomes[0].match
		return nil
	})
	if err != nil {
		recordSpanError(span, err)
		return match.Match{}, err
	}

	return created, nil
}

func (s *MatchService) Get(ctx context.Context, id int64) (match.Match, error) {
	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, storageFailure("get match", err, false)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: id=%d", ErrMatchNotFound, id)
	}
	return item, nil
}

func (s *MatchService) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storageFailure("list matches", err, false)
	}
	return items, nil
}

func (s *MatchService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storageFailure("delete match", err, true)
	}
	if !deleted {
		return fmt.Errorf("%w: id=%d", ErrMatchNotFound, id)
	}
	return nil
}

// UpdateMatch corrects the match row. Games are kept; a zero MatchDate keeps
// the stored date.
func (s *MatchService) UpdateMatch(ctx context.Context, id int64, m match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatch", attribute.Int64("match_id", id))
	defer span.End()

	m.ID = id
	m.Games = nil
	if m.Status == "" {
		m.Status = match.StatusCompleted
	}
	if err := m.ValidateRow(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, exists, err := s.repo.Update(ctx, m)
	if err != nil {
		err = storageFailure("update match", err, false)
		recordSpanError(span, err)
		return match.Match{}, err
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: id=%d", ErrMatchNotFound, id)
	}

	s.logger.InfoContext(ctx, "match updated", "match_id", id, "status", updated.Status)
	return updated, nil
}

// ListGames returns the games of a match ordered by game number.
func (s *MatchService) ListGames(ctx context.Context, matchID int64) ([]match.Game, error) {
	m, err := s.Get(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.Games == nil {
		return []match.Game{}, nil
	}
	return m.Games, nil
}

// AddGame appends a game to an existing match.
func (s *MatchService) AddGame(ctx context.Context, matchID int64, g match.Game) (match.Game, error) {
	if g.Result == "" {
		g.Result = match.ResultWin
	}
	if err := g.Validate(); err != nil {
		return match.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created match.Game
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		current, exists, err := repos.Matches.GetByID(ctx, matchID)
		if err != nil {
			return storageFailure("get match", err, false)
		}
		if !exists {
			return fmt.Errorf("%w: id=%d", ErrMatchNotFound, matchID)
		}
		if len(current.Games) >= match.MaxGames {
			return fmt.Errorf("%w: match %d already has %d games", ErrConflict, matchID, len(current.Games))
		}

		g.MatchID = matchID
		created, err = repos.Matches.CreateGame(ctx, g)
		return storageFailure("create game", err, false)
	})
	if err != nil {
		return match.Game{}, err
	}
	return created, nil
}

// UpdateGame corrects a game of match matchID. The game number stays unique
// within the match and inside 1..3.
func (s *MatchService) UpdateGame(ctx context.Context, matchID, gameID int64, g match.Game) (match.Game, error) {
	if g.Result == "" {
		g.Result = match.ResultWin
	}
	if err := g.Validate(); err != nil {
		return match.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var updated match.Game
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		current, exists, err := repos.Matches.GetGame(ctx, gameID)
		if err != nil {
			return storageFailure("get game", err, false)
		}
		if !exists {
			return fmt.Errorf("%w: id=%d", ErrGameNotFound, gameID)
		}
		if current.MatchID != matchID {
			return fmt.Errorf("%w: game %d does not belong to match %d", ErrInvalidInput, gameID, matchID)
		}

		g.ID = gameID
		g.MatchID = matchID
		updated, exists, err = repos.Matches.UpdateGame(ctx, g)
		if err != nil {
			return storageFailure("update game", err, false)
		}
		if !exists {
			return fmt.Errorf("%w: id=%d", ErrGameNotFound, gameID)
		}
		return nil
	})
	if err != nil {
		return match.Game{}, err
	}

	s.logger.InfoContext(ctx, "game updated", "match_id", matchID, "game_id", gameID, "winner_id", updated.WinnerID)
	return updated, nil
}

// DeleteGame removes a game unless it is the last one of its match.
func (s *MatchService) DeleteGame(ctx context.Context, gameID int64) error {
	return s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		g, exists, err := repos.Matches.GetGame(ctx, gameID)
		if err != nil {
			return storageFailure("get game", err, false)
		}
		if !exists {
			return fmt.Errorf("%w: id=%d", ErrGameNotFound, gameID)
		}
		parent, exists, err := repos.Matches.GetByID(ctx, g.MatchID)
		if err != nil {
			return storageFailure("get match", err, false)
		}
		if exists && len(parent.Games) <= 1 {
			return fmt.Errorf("%w: game %d is the only game of match %d", ErrConflict, gameID, g.MatchID)
		}

		if _, err := repos.Matches.DeleteGame(ctx, gameID); err != nil {
			return storageFailure("delete game", err, true)
		}
		return nil
	})
}

func (s *MatchService) applyDefaults(m *match.Match) {
	if m.Status == "" {
		m.Status = match.StatusCompleted
	}
	if m.MatchDate.IsZero() {
		m.MatchDate = s.now()
	}
	for i := range m.Games {
		if m.Games[i].Result == "" {
			m.Games[i].Result = match.ResultWin
		}
	}
}

func offendingFields(m match.Match, err error) map[string]any {
	fields := map[string]any{
		"tournament_id":   m.TournamentID,
		"player1_id":      m.Player1ID,
		"player2_id":      m.Player2ID,
		"player1_deck_id": m.Player1DeckID,
		"player2_deck_id": m.Player2DeckID,
	}
	if constraint := store.ConstraintName(err); constraint != "" {
		fields["constraint"] = constraint
	}
	return fields
}
