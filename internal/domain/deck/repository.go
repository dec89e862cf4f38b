package deck

import "context"

type Repository interface {
	List(ctx context.Context) ([]Archetype, error)
	GetByID(ctx context.Context, id int64) (Archetype, bool, error)
	GetByName(ctx context.Context, name string) (Archetype, bool, error)
	Create(ctx context.Context, a Archetype) (Archetype, error)
	Update(ctx context.Context, a Archetype) (Archetype, bool, error)
	// CreateIfAbsent behaves like player.Repository.CreateIfAbsent keyed by deck name.
	CreateIfAbsent(ctx context.Context, a Archetype) (stored Archetype, created bool, err error)
	Delete(ctx context.Context, id int64) (bool, error)
}
