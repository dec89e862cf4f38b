package cache

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
	basecache "github.com/riskibarqy/mtg-tournament-tracker/internal/platform/cache"
)

const tournamentTypePrefix = "tournament_type:"

type cachedTournamentType struct {
	value  tournamenttype.TournamentType
	exists bool
}

// TournamentTypeRepository caches the tournament type catalog. Writes through
// it drop every cached entry.
type TournamentTypeRepository struct {
	next  tournamenttype.Repository
	list  *basecache.Store[[]tournamenttype.TournamentType]
	items *basecache.Store[cachedTournamentType]
}

func NewTournamentTypeRepository(next tournamenttype.Repository, ttl time.Duration) *TournamentTypeRepository {
	return &TournamentTypeRepository{
		next:  next,
		list:  basecache.NewStore[[]tournamenttype.TournamentType](ttl),
		items: basecache.NewStore[cachedTournamentType](ttl),
	}
}

func (r *TournamentTypeRepository) List(ctx context.Context) ([]tournamenttype.TournamentType, error) {
	items, err := r.list.GetOrLoad(ctx, tournamentTypePrefix+"list", func(ctx context.Context) ([]tournamenttype.TournamentType, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]tournamenttype.TournamentType(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]tournamenttype.TournamentType(nil), items...), nil
}

func (r *TournamentTypeRepository) GetByID(ctx context.Context, id int64) (tournamenttype.TournamentType, bool, error) {
	key := tournamentTypePrefix + "id:" + strconv.FormatInt(id, 10)
	return r.get(ctx, key, func(ctx context.Context) (tournamenttype.TournamentType, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *TournamentTypeRepository) GetByName(ctx context.Context, name string) (tournamenttype.TournamentType, bool, error) {
	key := tournamentTypePrefix + "name:" + strings.ToLower(strings.TrimSpace(name))
	return r.get(ctx, key, func(ctx context.Context) (tournamenttype.TournamentType, bool, error) {
		return r.next.GetByName(ctx, name)
	})
}

func (r *TournamentTypeRepository) Create(ctx context.Context, t tournamenttype.TournamentType) (tournamenttype.TournamentType, error) {
	created, err := r.next.Create(ctx, t)
	if err != nil {
		return tournamenttype.TournamentType{}, err
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *TournamentTypeRepository) Update(ctx context.Context, t tournamenttype.TournamentType) (tournamenttype.TournamentType, bool, error) {
	updated, exists, err := r.next.Update(ctx, t)
	if err != nil {
		return tournamenttype.TournamentType{}, false, err
	}
	r.invalidate(ctx)
	return updated, exists, nil
}

func (r *TournamentTypeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.invalidate(ctx)
	return deleted, nil
}

func (r *TournamentTypeRepository) get(ctx context.Context, key string, load func(context.Context) (tournamenttype.TournamentType, bool, error)) (tournamenttype.TournamentType, bool, error) {
	cached, err := r.items.GetOrLoad(ctx, key, func(ctx context.Context) (cachedTournamentType, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return cachedTournamentType{}, err
		}
		return cachedTournamentType{value: item, exists: exists}, nil
	})
	if err != nil {
		return tournamenttype.TournamentType{}, false, err
	}

	return cached.value, cached.exists, nil
}

func (r *TournamentTypeRepository) invalidate(ctx context.Context) {
	r.list.DeletePrefix(ctx, tournamentTypePrefix)
	r.items.DeletePrefix(ctx, tournamentTypePrefix)
}
