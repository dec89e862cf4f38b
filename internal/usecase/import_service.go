package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournament"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamentimport"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
	idgen "github.com/riskibarqy/mtg-tournament-tracker/internal/platform/id"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/metrics"
	"go.opentelemetry.io/otel/attribute"
)

// ImportService ingests a whole tournament in one all-or-nothing transaction.
type ImportService struct {
	uow             store.UnitOfWork
	resolver        *IdentityResolver
	writer          *matchWriter
	idGen           idgen.Generator
	defaultTypeName string
	metrics         *metrics.Metrics
	logger          *logging.Logger
	now             func() time.Time
}

func NewImportService(
	uow store.UnitOfWork,
	resolver *IdentityResolver,
	idGen idgen.Generator,
	defaultTypeName string,
	m *metrics.Metrics,
	logger *logging.Logger,
) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	if resolver == nil {
		resolver = NewIdentityResolver(logger)
	}
	if idGen == nil {
		idGen = idgen.NewRandomGenerator()
	}
	if strings.TrimSpace(defaultTypeName) == "" {
		defaultTypeName = tournamenttype.DefaultName
	}

	return &ImportService{
		uow:             uow,
		resolver:        resolver,
		writer:          &matchWriter{uow: uow, workers: 1},
		idGen:           idGen,
		defaultTypeName: defaultTypeName,
		metrics:         m,
		logger:          logger,
		now:             time.Now,
	}
}

// ImportMessage renders the human summary of a committed import.
func ImportMessage(r tournamentimport.Result) string {
	return fmt.Sprintf("Successfully imported tournament '%s'", r.TournamentName)
}

// ImportTournament validates p and writes the tournament, its players, decks,
// matches and games. Any failure leaves no row behind.
func (s *ImportService) ImportTournament(ctx context.Context, p tournamentimport.Payload) (tournamentimport.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportTournament",
		attribute.Int64("season_id", p.SeasonID),
		attribute.Int("matches", len(p.Matches)),
	)
	defer span.End()

	if violations := tournamentimport.Validate(p); len(violations) > 0 {
		err := &ValidationError{Violations: violations}
		recordSpanError(span, err)
		return tournamentimport.Result{}, err
	}

	runID, err := s.idGen.NewID()
	if err != nil {
		return tournamentimport.Result{}, fmt.Errorf("generate import run id: %w", err)
	}
	logger := s.logger.With("run_id", runID, "season_id", p.SeasonID, "tournament", p.Tournament.Name)
	logger.InfoContext(ctx, "tournament import started", "matches", len(p.Matches), "games", p.GameCount())

	start := s.now()
	var result tournamentimport.Result
	err = s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		var err error
		result, err = s.importInTx(ctx, logger, repos, p)
		return err
	})
	elapsed := s.now().Sub(start)
	if err != nil {
		recordSpanError(span, err)
		s.metrics.ObserveImport(metrics.ResultFailed, elapsed)
		logger.WarnContext(ctx, "tournament import rolled back", "error", err)
		return tournamentimport.Result{}, crerr.WithDetailf(
			crerr.Wrapf(err, "import tournament %q", p.Tournament.Name),
			"import run %s rolled back", runID,
		)
	}

	result.RunID = runID
	s.metrics.ObserveImport(metrics.ResultSuccess, elapsed)
	logger.InfoContext(ctx, "tournament import committed",
		"tournament_id", result.TournamentID,
		"players_created", result.PlayersCreated,
		"decks_created", result.DecksCreated,
		"matches_created", result.MatchesCreated,
		"games_created", result.GamesCreated,
		"duration_ms", elapsed.Milliseconds(),
	)
	return result, nil
}

func (s *ImportService) importInTx(ctx context.Context, logger *logging.Logger, repos store.Repositories, p tournamentimport.Payload) (tournamentimport.Result, error) {
	if err := requireSeason(ctx, repos.Seasons, p.SeasonID); err != nil {
		return tournamentimport.Result{}, err
	}

	tt, err := resolveTournamentType(ctx, repos.TournamentTypes, p.Tournament.TypeID, p.Tournament.TypeName, s.defaultTypeName)
	if err != nil {
		return tournamentimport.Result{}, err
	}

	item := tournament.Tournament{
		SeasonID:         p.SeasonID,
		TournamentTypeID: tt.ID,
		Name:             strings.TrimSpace(p.Tournament.Name),
		Date:             p.Tournament.Date,
		Location:         strings.TrimSpace(p.Tournament.Location),
		Format:           strings.TrimSpace(p.Tournament.Format),
		Description:      strings.TrimSpace(p.Tournament.Description),
	}
	if err := item.Validate(s.now()); err != nil {
		return tournamentimport.Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	created, err := repos.Tournaments.Create(ctx, item)
	if err != nil {
		return tournamentimport.Result{}, storageFailure("create tournament", err, false)
	}

	playerIDs, playersCreated, err := s.resolvePlayers(ctx, repos.Players, p)
	if err != nil {
		return tournamentimport.Result{}, err
	}
	logger.DebugContext(ctx, "players resolved", "players", len(playerIDs), "created", playersCreated)

	deckIDs, decksCreated, err := s.resolveDecks(ctx, repos.Decks, p)
	if err != nil {
		return tournamentimport.Result{}, err
	}
	logger.DebugContext(ctx, "decks resolved", "decks", len(deckIDs), "created", decksCreated)

	units, err := buildImportUnits(created.ID, p.Matches, playerIDs, deckIDs, s.now())
	if err != nil {
		return tournamentimport.Result{}, err
	}
	outcomes, err := s.writer.write(ctx, policyAllOrNothing, repos, units)
	if err != nil {
		return tournamentimport.Result{}, err
	}

	result := tournamentimport.Result{
		TournamentID:      created.ID,
		TournamentName:    created.Name,
		TournamentCreated: true,
		PlayersCreated:    playersCreated,
		DecksCreated:      decksCreated,
		MatchesCreated:    len(outcomes),
	}
	for _, o := range outcomes {
		result.GamesCreated += len(o.match.Games)
	}
	return result, nil
}

func (s *ImportService) resolvePlayers(ctx context.Context, repo player.Repository, p tournamentimport.Payload) (map[string]int64, int, error) {
	explicit := make(map[string]tournamentimport.PlayerEntry, len(p.Players))
	for _, e := range p.Players {
		explicit[strings.TrimSpace(e.Name)] = e
	}

	names := p.PlayerNames()
	ids := make(map[string]int64, len(names))
	created := 0
	for _, name := range names {
		defaults := player.Player{RegistrationDate: s.now()}
		if e, ok := explicit[name]; ok {
			defaults.Email = strings.TrimSpace(e.Email)
		}
		id, isNew, err := s.resolver.ResolvePlayer(ctx, repo, name, defaults)
		if err != nil {
			return nil, 0, err
		}
		ids[name] = id
		if isNew {
			created++
		}
	}
	return ids, created, nil
}

func (s *ImportService) resolveDecks(ctx context.Context, repo deck.Repository, p tournamentimport.Payload) (map[string]int64, int, error) {
	explicit := make(map[string]tournamentimport.DeckEntry, len(p.Decks))
	for _, e := range p.Decks {
		explicit[strings.TrimSpace(e.Name)] = e
	}

	names := p.DeckNames()
	ids := make(map[string]int64, len(names))
	created := 0
	for _, name := range names {
		var defaults *deck.Archetype
		if e, ok := explicit[name]; ok {
			defaults = &deck.Archetype{
				ColorIdentity: strings.TrimSpace(e.ColorIdentity),
				ArchetypeType: strings.TrimSpace(e.ArchetypeType),
				Description:   strings.TrimSpace(e.Description),
			}
		}
		id, isNew, err := s.resolver.ResolveDeck(ctx, repo, name, defaults)
		if err != nil {
			return nil, 0, err
		}
		ids[name] = id
		if isNew {
			created++
		}
	}
	return ids, created, nil
}

// buildImportUnits turns name-keyed match entries into id-keyed matches with
// status COMPLETED. Names are looked up trimmed. It does not rely on
// tournamentimport.Validate having run: a participant, deck or winner missing
// from the resolved maps is reported as a consistency error.
func buildImportUnits(tournamentID int64, entries []tournamentimport.MatchEntry, playerIDs, deckIDs map[string]int64, now time.Time) ([]match.Match, error) {
	units := make([]match.Match, 0, len(entries))
	for i, e := range entries {
		p1, ok1 := playerIDs[strings.TrimSpace(e.Player1Name)]
		p2, ok2 := playerIDs[strings.TrimSpace(e.Player2Name)]
		d1, ok3 := deckIDs[strings.TrimSpace(e.Player1DeckName)]
		d2, ok4 := deckIDs[strings.TrimSpace(e.Player2DeckName)]
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return nil, fmt.Errorf("%w: match %d participants or decks were not resolved", ErrUnresolvedReference, i)
		}

		unit := match.Match{
			TournamentID:  tournamentID,
			Player1ID:     p1,
			Player2ID:     p2,
			Player1DeckID: d1,
			Player2DeckID: d2,
			RoundNumber:   e.RoundNumber,
			Status:        match.StatusCompleted,
			MatchDate:     now,
			Notes:         strings.TrimSpace(e.Notes),
			Games:         make([]match.Game, 0, len(e.Games)),
		}
		for _, g := range e.Games {
			winner, ok := playerIDs[strings.TrimSpace(g.WinnerName)]
			if !ok {
				return nil, fmt.Errorf("%w: match %d game %d winner %q", ErrUnknownGameWinner, i, g.GameNumber, g.WinnerName)
			}
			unit.Games = append(unit.Games, match.Game{
				GameNumber:      g.GameNumber,
				WinnerID:        winner,
				Result:          g.ResultOrDefault(),
				DurationMinutes: g.DurationMinutes,
			})
		}
		units = append(units, unit)
	}
	return units, nil
}
