package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	GetByName(ctx context.Context, name string) (Player, bool, error)
	Create(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) (Player, bool, error)
	// CreateIfAbsent inserts p unless a player with the same name exists, in
	// which case the stored player is returned untouched and created is false.
	CreateIfAbsent(ctx context.Context, p Player) (stored Player, created bool, err error)
	Delete(ctx context.Context, id int64) (bool, error)
}
