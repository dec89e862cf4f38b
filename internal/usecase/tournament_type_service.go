package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
)

type TournamentTypeService struct {
	repo   tournamenttype.Repository
	logger *logging.Logger
}

func NewTournamentTypeService(repo tournamenttype.Repository, logger *logging.Logger) *TournamentTypeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TournamentTypeService{repo: repo, logger: logger}
}

func (s *TournamentTypeService) Create(ctx context.Context, item tournamenttype.TournamentType) (tournamenttype.TournamentType, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	if err := item.Validate(); err != nil {
		return tournamenttype.TournamentType{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return tournamenttype.TournamentType{}, storageFailure("create tournament type", err, false)
	}

	s.logger.InfoContext(ctx, "tournament type created", "tournament_type_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *TournamentTypeService) Get(ctx context.Context, id int64) (tournamenttype.TournamentType, error) {
	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return tournamenttype.TournamentType{}, storageFailure("get tournament type", err, false)
	}
	if !exists {
		return tournamenttype.TournamentType{}, fmt.Errorf("%w: id=%d", ErrTournamentTypeNotFound, id)
	}
	return item, nil
}

func (s *TournamentTypeService) List(ctx context.Context) ([]tournamenttype.TournamentType, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageFailure("list tournament types", err, false)
	}
	return items, nil
}

// Update changes the points weighting of every tournament hosted under the
// type, past ones included.
func (s *TournamentTypeService) Update(ctx context.Context, id int64, item tournamenttype.TournamentType) (tournamenttype.TournamentType, error) {
	item.ID = id
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	if err := item.Validate(); err != nil {
		return tournamenttype.TournamentType{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, exists, err := s.repo.Update(ctx, item)
	if err != nil {
		return tournamenttype.TournamentType{}, storageFailure("update tournament type", err, false)
	}
	if !exists {
		return tournamenttype.TournamentType{}, fmt.Errorf("%w: id=%d", ErrTournamentTypeNotFound, id)
	}

	s.logger.InfoContext(ctx, "tournament type updated", "tournament_type_id", id, "points_win", updated.PointsWin, "points_draw", updated.PointsDraw)
	return updated, nil
}

// Delete is rejected while any tournament still uses the type.
func (s *TournamentTypeService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storageFailure("delete tournament type", err, true)
	}
	if !deleted {
		return fmt.Errorf("%w: id=%d", ErrTournamentTypeNotFound, id)
	}
	return nil
}
