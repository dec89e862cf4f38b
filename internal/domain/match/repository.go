package match

import "context"

// Repository persists matches and their games. Create and Update touch the
// match row only; games are written separately.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	Create(ctx context.Context, m Match) (Match, error)
	Update(ctx context.Context, m Match) (Match, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CreateGame(ctx context.Context, g Game) (Game, error)
	GetGame(ctx context.Context, id int64) (Game, bool, error)
	UpdateGame(ctx context.Context, g Game) (Game, bool, error)
	DeleteGame(ctx context.Context, id int64) (bool, error)
}
