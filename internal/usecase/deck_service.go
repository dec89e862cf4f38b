package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
)

type DeckService struct {
	repo   deck.Repository
	logger *logging.Logger
}

func NewDeckService(repo deck.Repository, logger *logging.Logger) *DeckService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DeckService{repo: repo, logger: logger}
}

func (s *DeckService) Create(ctx context.Context, item deck.Archetype) (deck.Archetype, error) {
	item.Name = strings.TrimSpace(item.Name)
	item = item.WithDefaults()
	if err := item.Validate(); err != nil {
		return deck.Archetype{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return deck.Archetype{}, storageFailure("create deck", err, false)
	}
	return created, nil
}

func (s *DeckService) Get(ctx context.Context, id int64) (deck.Archetype, error) {
	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return deck.Archetype{}, storageFailure("get deck", err, false)
	}
	if !exists {
		return deck.Archetype{}, fmt.Errorf("%w: id=%d", ErrDeckNotFound, id)
	}
	return item, nil
}

func (s *DeckService) List(ctx context.Context) ([]deck.Archetype, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageFailure("list decks", err, false)
	}
	return items, nil
}

func (s *DeckService) Update(ctx context.Context, id int64, item deck.Archetype) (deck.Archetype, error) {
	item.ID = id
	item.Name = strings.TrimSpace(item.Name)
	item = item.WithDefaults()
	if err := item.Validate(); err != nil {
		return deck.Archetype{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, exists, err := s.repo.Update(ctx, item)
	if err != nil {
		return deck.Archetype{}, storageFailure("update deck", err, false)
	}
	if !exists {
		return deck.Archetype{}, fmt.Errorf("%w: id=%d", ErrDeckNotFound, id)
	}
	return updated, nil
}

// Delete is rejected while the deck appears in any match.
func (s *DeckService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storageFailure("delete deck", err, true)
	}
	if !deleted {
		return fmt.Errorf("%w: id=%d", ErrDeckNotFound, id)
	}

	s.logger.InfoContext(ctx, "deck deleted", "deck_id", id)
	return nil
}
