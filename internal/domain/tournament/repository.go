package tournament

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Tournament, error)
	GetByID(ctx context.Context, id int64) (Tournament, bool, error)
	Create(ctx context.Context, t Tournament) (Tournament, error)
	Update(ctx context.Context, t Tournament) (Tournament, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
