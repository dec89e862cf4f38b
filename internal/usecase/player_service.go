package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
)

type PlayerService struct {
	repo   player.Repository
	logger *logging.Logger
	now    func() time.Time
}

func NewPlayerService(repo player.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{repo: repo, logger: logger, now: time.Now}
}

func (s *PlayerService) Create(ctx context.Context, item player.Player) (player.Player, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Email = strings.TrimSpace(item.Email)
	if item.RegistrationDate.IsZero() {
		item.RegistrationDate = s.now()
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return player.Player{}, storageFailure("create player", err, false)
	}
	return created, nil
}

func (s *PlayerService) Get(ctx context.Context, id int64) (player.Player, error) {
	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, storageFailure("get player", err, false)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: id=%d", ErrPlayerNotFound, id)
	}
	return item, nil
}

func (s *PlayerService) List(ctx context.Context, activeOnly bool) ([]player.Player, error) {
	items, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, storageFailure("list players", err, false)
	}
	return items, nil
}

// Update replaces the player's fields. A zero RegistrationDate keeps the stored one.
func (s *PlayerService) Update(ctx context.Context, id int64, item player.Player) (player.Player, error) {
	item.ID = id
	item.Name = strings.TrimSpace(item.Name)
	item.Email = strings.TrimSpace(item.Email)
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, exists, err := s.repo.Update(ctx, item)
	if err != nil {
		return player.Player{}, storageFailure("update player", err, false)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: id=%d", ErrPlayerNotFound, id)
	}
	return updated, nil
}

// Delete is rejected while the player appears in any match.
func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storageFailure("delete player", err, true)
	}
	if !deleted {
		return fmt.Errorf("%w: id=%d", ErrPlayerNotFound, id)
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", id)
	return nil
}
