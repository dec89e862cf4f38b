package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/season"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
)

type SeasonService struct {
	repo   season.Repository
	logger *logging.Logger
}

func NewSeasonService(repo season.Repository, logger *logging.Logger) *SeasonService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SeasonService{repo: repo, logger: logger}
}

func (s *SeasonService) Create(ctx context.Context, item season.Season) (season.Season, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return season.Season{}, storageFailure("create season", err, false)
	}

	s.logger.InfoContext(ctx, "season created", "season_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *SeasonService) Get(ctx context.Context, id int64) (season.Season, error) {
	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return season.Season{}, storageFailure("get season", err, false)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: id=%d", ErrSeasonNotFound, id)
	}
	return item, nil
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageFailure("list seasons", err, false)
	}
	return items, nil
}

// Update replaces the mutable fields of season id.
func (s *SeasonService) Update(ctx context.Context, id int64, item season.Season) (season.Season, error) {
	item.ID = id
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, exists, err := s.repo.Update(ctx, item)
	if err != nil {
		return season.Season{}, storageFailure("update season", err, false)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: id=%d", ErrSeasonNotFound, id)
	}

	s.logger.InfoContext(ctx, "season updated", "season_id", id)
	return updated, nil
}

// Delete removes a season and cascades to its tournaments.
func (s *SeasonService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storageFailure("delete season", err, true)
	}
	if !deleted {
		return fmt.Errorf("%w: id=%d", ErrSeasonNotFound, id)
	}

	s.logger.InfoContext(ctx, "season deleted", "season_id", id)
	return nil
}
