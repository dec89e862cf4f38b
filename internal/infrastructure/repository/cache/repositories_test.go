package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/statistics"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
	statisticsmock "github.com/riskibarqy/mtg-tournament-tracker/internal/mocks/domain/statistics"
	tournamenttypemock "github.com/riskibarqy/mtg-tournament-tracker/internal/mocks/domain/tournamenttype"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/resilience"
	"github.com/stretchr/testify/mock"
)

func TestTournamentTypeRepository_CachesReadsUntilWrite(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	lgs := tournamenttype.TournamentType{ID: 1, Name: "LGS Tournament", PointsWin: 3, PointsDraw: 1}
	next := tournamenttypemock.NewRepository(t)
	next.On("GetByName", mock.Anything, "lgs tournament").Return(lgs, true, nil).Twice()
	next.On("Create", mock.Anything, mock.AnythingOfType("tournamenttype.TournamentType")).
		Return(tournamenttype.TournamentType{ID: 4, Name: "Grand Prix", PointsWin: 3, PointsDraw: 1}, nil).Once()

	repo := NewTournamentTypeRepository(next, time.Minute)

	for i := 0; i < 3; i++ {
		got, exists, err := repo.GetByName(ctx, "lgs tournament")
		if err != nil || !exists || got.ID != 1 {
			t.Fatalf("unexpected lookup: %+v exists=%t err=%v", got, exists, err)
		}
	}

	if _, err := repo.Create(ctx, tournamenttype.TournamentType{Name: "Grand Prix", PointsWin: 3, PointsDraw: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, _, err := repo.GetByName(ctx, "lgs tournament"); err != nil {
		t.Fatalf("lookup after create: %v", err)
	}
}

func TestTournamentTypeRepository_UpdateDropsCachedPoints(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	before := tournamenttype.TournamentType{ID: 1, Name: "LGS Tournament", PointsWin: 3, PointsDraw: 1}
	after := tournamenttype.TournamentType{ID: 1, Name: "LGS Tournament", PointsWin: 5, PointsDraw: 2}
	next := tournamenttypemock.NewRepository(t)
	next.On("GetByID", mock.Anything, int64(1)).Return(before, true, nil).Once()
	next.On("Update", mock.Anything, after).Return(after, true, nil).Once()
	next.On("GetByID", mock.Anything, int64(1)).Return(after, true, nil).Once()

	repo := NewTournamentTypeRepository(next, time.Minute)
	if got, _, err := repo.GetByID(ctx, 1); err != nil || got.PointsWin != 3 {
		t.Fatalf("unexpected first lookup: %+v err=%v", got, err)
	}
	if got, _, err := repo.GetByID(ctx, 1); err != nil || got.PointsWin != 3 {
		t.Fatalf("expected cached lookup: %+v err=%v", got, err)
	}
	if _, exists, err := repo.Update(ctx, after); err != nil || !exists {
		t.Fatalf("update: exists=%t err=%v", exists, err)
	}
	if got, _, err := repo.GetByID(ctx, 1); err != nil || got.PointsWin != 5 || got.PointsDraw != 2 {
		t.Fatalf("expected fresh points after update: %+v err=%v", got, err)
	}
}

func TestTournamentTypeRepository_CachesMisses(t *testing.T) {
	t.Parallel()

	next := tournamenttypemock.NewRepository(t)
	next.On("GetByID", mock.Anything, int64(99)).Return(tournamenttype.TournamentType{}, false, nil).Once()

	repo := NewTournamentTypeRepository(next, time.Minute)
	for i := 0; i < 2; i++ {
		if _, exists, err := repo.GetByID(t.Context(), 99); err != nil || exists {
			t.Fatalf("expected cached miss, exists=%t err=%v", exists, err)
		}
	}
}

func TestStatisticsRepository_OpensBreakerOnStorageOutage(t *testing.T) {
	t.Parallel()

	outage := errors.Join(store.ErrTransient, errors.New("connection refused"))
	next := statisticsmock.NewRepository(t)
	next.On("ListMatchRecords", mock.Anything, statistics.Filter{SeasonID: 1}).Return(nil, outage).Twice()

	repo := NewStatisticsRepository(next, resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Hour,
		HalfOpenMaxReq:   1,
	}))

	for i := 0; i < 2; i++ {
		if _, err := repo.ListMatchRecords(t.Context(), statistics.Filter{SeasonID: 1}); !errors.Is(err, store.ErrTransient) {
			t.Fatalf("expected transient error, got %v", err)
		}
	}

	_, err := repo.ListMatchRecords(t.Context(), statistics.Filter{SeasonID: 1})
	if !errors.Is(err, resilience.ErrCircuitOpen) || !errors.Is(err, store.ErrTransient) {
		t.Fatalf("expected open circuit reported as transient, got %v", err)
	}
}

func TestStatisticsRepository_PassesResultsThrough(t *testing.T) {
	t.Parallel()

	records := []statistics.MatchRecord{{MatchID: 1, SeasonID: 2}}
	next := statisticsmock.NewRepository(t)
	next.On("ListMatchRecords", mock.Anything, statistics.Filter{SeasonID: 2}).Return(records, nil).Twice()

	repo := NewStatisticsRepository(next, resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig()))
	for i := 0; i < 2; i++ {
		got, err := repo.ListMatchRecords(t.Context(), statistics.Filter{SeasonID: 2})
		if err != nil || len(got) != 1 || got[0].MatchID != 1 {
			t.Fatalf("unexpected records %+v, err=%v", got, err)
		}
	}
}
