package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
)

// IdentityResolver maps display names to entity ids. A name already stored
// resolves to its existing row and the supplied defaults are ignored; an
// unseen name is inserted exactly once.
type IdentityResolver struct {
	logger *logging.Logger
}

func NewIdentityResolver(logger *logging.Logger) *IdentityResolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &IdentityResolver{logger: logger}
}

// ResolvePlayer returns the id of the player named name, creating it from
// defaults when absent.
func (r *IdentityResolver) ResolvePlayer(ctx context.Context, repo player.Repository, name string, defaults player.Player) (int64, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	defaults.Name = name
	defaults.Active = true
	id, created, err := resolveOrCreate(ctx, name,
		repo.GetByName,
		func(ctx context.Context) (player.Player, bool, error) {
			return repo.CreateIfAbsent(ctx, defaults)
		},
		func(p player.Player) int64 { return p.ID },
	)
	if err != nil {
		return 0, false, storageFailure(fmt.Sprintf("resolve player %q", name), err, false)
	}

	r.logger.DebugContext(ctx, "player resolved", "name", name, "player_id", id, "created", created)
	return id, created, nil
}

// ResolveDeck returns the id of the deck named name. With nil defaults the
// deck must already exist, otherwise ErrUndefinedDeckReference is returned.
func (r *IdentityResolver) ResolveDeck(ctx context.Context, repo deck.Repository, name string, defaults *deck.Archetype) (int64, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false, fmt.Errorf("%w: deck name is required", ErrInvalidInput)
	}

	create := func(ctx context.Context) (deck.Archetype, bool, error) {
		if defaults == nil {
			return deck.Archetype{}, false, fmt.Errorf("%w: deck %q is used by a match but not defined", ErrUndefinedDeckReference, name)
		}
		d := defaults.WithDefaults()
		d.Name = name
		return repo.CreateIfAbsent(ctx, d)
	}

	id, created, err := resolveOrCreate(ctx, name, repo.GetByName, create, func(d deck.Archetype) int64 { return d.ID })
	if err != nil {
		return 0, false, storageFailure(fmt.Sprintf("resolve deck %q", name), err, false)
	}

	r.logger.DebugContext(ctx, "deck resolved", "name", name, "deck_id", id, "created", created)
	return id, created, nil
}

func resolveOrCreate[T any](
	ctx context.Context,
	name string,
	lookup func(ctx context.Context, name string) (T, bool, error),
	create func(ctx context.Context) (T, bool, error),
	idOf func(T) int64,
) (int64, bool, error) {
	existing, exists, err := lookup(ctx, name)
	if err != nil {
		return 0, false, fmt.Errorf("lookup: %w", err)
	}
	if exists {
		return idOf(existing), false, nil
	}

	stored, created, err := create(ctx)
	if err != nil {
		return 0, false, err
	}
	return idOf(stored), created, nil
}
