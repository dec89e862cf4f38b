package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Season, error)
	GetByID(ctx context.Context, id int64) (Season, bool, error)
	Create(ctx context.Context, s Season) (Season, error)
	Update(ctx context.Context, s Season) (Season, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
