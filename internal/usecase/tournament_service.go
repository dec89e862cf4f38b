package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/season"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournament"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
)

// TournamentInput creates or replaces a tournament. TypeID and TypeName are
// optional; see resolveTournamentType.
type TournamentInput struct {
	SeasonID    int64
	Name        string
	Date        time.Time
	Location    string
	Format      string
	Description string
	TypeID      *int64
	TypeName    string
}

type TournamentService struct {
	seasonRepo      season.Repository
	typeRepo        tournamenttype.Repository
	tournamentRepo  tournament.Repository
	defaultTypeName string
	logger          *logging.Logger
	now             func() time.Time
}

func NewTournamentService(
	seasonRepo season.Repository,
	typeRepo tournamenttype.Repository,
	tournamentRepo tournament.Repository,
	defaultTypeName string,
	logger *logging.Logger,
) *TournamentService {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(defaultTypeName) == "" {
		defaultTypeName = tournamenttype.DefaultName
	}

	return &TournamentService{
		seasonRepo:      seasonRepo,
		typeRepo:        typeRepo,
		tournamentRepo:  tournamentRepo,
		defaultTypeName: defaultTypeName,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *TournamentService) Create(ctx context.Context, input TournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Create")
	defer span.End()

	if err := requireSeason(ctx, s.seasonRepo, input.SeasonID); err != nil {
		return tournament.Tournament{}, err
	}
	tt, err := resolveTournamentType(ctx, s.typeRepo, input.TypeID, input.TypeName, s.defaultTypeName)
	if err != nil {
		return tournament.Tournament{}, err
	}

	item := input.toTournament(tt.ID)
	if err := item.Validate(s.now()); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.tournamentRepo.Create(ctx, item)
	if err != nil {
		return tournament.Tournament{}, storageFailure("create tournament", err, false)
	}

	s.logger.InfoContext(ctx, "tournament created", "tournament_id", created.ID, "season_id", created.SeasonID, "tournament_type_id", created.TournamentTypeID)
	return created, nil
}

// Update replaces the mutable fields of a tournament, including its type.
func (s *TournamentService) Update(ctx context.Context, id int64, input TournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Update")
	defer span.End()

	current, err := s.Get(ctx, id)
	if err != nil {
		return tournament.Tournament{}, err
	}
	if input.SeasonID == 0 {
		input.SeasonID = current.SeasonID
	}
	if err := requireSeason(ctx, s.seasonRepo, input.SeasonID); err != nil {
		return tournament.Tournament{}, err
	}

	typeID := current.TournamentTypeID
	if input.TypeID != nil || strings.TrimSpace(input.TypeName) != "" {
		tt, err := resolveTournamentType(ctx, s.typeRepo, input.TypeID, input.TypeName, s.defaultTypeName)
		if err != nil {
			return tournament.Tournament{}, err
		}
		typeID = tt.ID
	}

	item := input.toTournament(typeID)
	item.ID = current.ID
	if err := item.Validate(s.now()); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, exists, err := s.tournamentRepo.Update(ctx, item)
	if err != nil {
		return tournament.Tournament{}, storageFailure("update tournament", err, false)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: id=%d", ErrTournamentNotFound, id)
	}

	return updated, nil
}

func (s *TournamentService) Get(ctx context.Context, id int64) (tournament.Tournament, error) {
	item, exists, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return tournament.Tournament{}, storageFailure("get tournament", err, false)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: id=%d", ErrTournamentNotFound, id)
	}
	return item, nil
}

func (s *TournamentService) List(ctx context.Context, filter tournament.Filter) ([]tournament.Tournament, error) {
	items, err := s.tournamentRepo.List(ctx, filter)
	if err != nil {
		return nil, storageFailure("list tournaments", err, false)
	}
	return items, nil
}

// Delete removes a tournament together with its matches and games.
func (s *TournamentService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.tournamentRepo.Delete(ctx, id)
	if err != nil {
		return storageFailure("delete tournament", err, true)
	}
	if !deleted {
		return fmt.Errorf("%w: id=%d", ErrTournamentNotFound, id)
	}

	s.logger.InfoContext(ctx, "tournament deleted", "tournament_id", id)
	return nil
}

func (in TournamentInput) toTournament(typeID int64) tournament.Tournament {
	return tournament.Tournament{
		SeasonID:         in.SeasonID,
		TournamentTypeID: typeID,
		Name:             strings.TrimSpace(in.Name),
		Date:             in.Date,
		Location:         strings.TrimSpace(in.Location),
		Format:           strings.TrimSpace(in.Format),
		Description:      strings.TrimSpace(in.Description),
	}
}

func requireSeason(ctx context.Context, repo season.Repository, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	_, exists, err := repo.GetByID(ctx, id)
	if err != nil {
		return storageFailure("get season", err, false)
	}
	if !exists {
		return fmt.Errorf("%w: id=%d", ErrSeasonNotFound, id)
	}
	return nil
}

// resolveTournamentType picks the type for a tournament: an explicit id must
// exist, an explicit name must exist, both must agree, and with neither the
// configured default applies. A missing default is a deployment fault.
func resolveTournamentType(ctx context.Context, repo tournamenttype.Repository, typeID *int64, typeName, defaultName string) (tournamenttype.TournamentType, error) {
	typeName = strings.TrimSpace(typeName)

	var byID *tournamenttype.TournamentType
	if typeID != nil {
		item, exists, err := repo.GetByID(ctx, *typeID)
		if err != nil {
			return tournamenttype.TournamentType{}, storageFailure("get tournament type", err, false)
		}
		if !exists {
			return tournamenttype.TournamentType{}, fmt.Errorf("%w: id=%d", ErrTournamentTypeNotFound, *typeID)
		}
		byID = &item
	}

	if typeName != "" {
		item, exists, err := repo.GetByName(ctx, typeName)
		if err != nil {
			return tournamenttype.TournamentType{}, storageFailure("get tournament type by name", err, false)
		}
		if !exists {
			return tournamenttype.TournamentType{}, fmt.Errorf("%w: name=%q", ErrTournamentTypeNotFound, typeName)
		}
		if byID != nil && byID.ID != item.ID {
			return tournamenttype.TournamentType{}, fmt.Errorf("%w: id=%d name=%q", ErrTournamentTypeMismatch, byID.ID, typeName)
		}
		return item, nil
	}
	if byID != nil {
		return *byID, nil
	}

	item, exists, err := repo.GetByName(ctx, defaultName)
	if err != nil {
		return tournamenttype.TournamentType{}, storageFailure("get default tournament type", err, false)
	}
	if !exists {
		return tournamenttype.TournamentType{}, fmt.Errorf("%w: name=%q", ErrDefaultTournamentTypeMissing, defaultName)
	}
	return item, nil
}
