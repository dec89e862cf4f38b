package tournamenttype

import "context"

type Repository interface {
	List(ctx context.Context) ([]TournamentType, error)
	GetByID(ctx context.Context, id int64) (TournamentType, bool, error)
	// GetByName matches case-insensitively.
	GetByName(ctx context.Context, name string) (TournamentType, bool, error)
	Create(ctx context.Context, t TournamentType) (TournamentType, error)
	Update(ctx context.Context, t TournamentType) (TournamentType, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
