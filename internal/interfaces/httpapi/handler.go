package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/platform/logging"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/usecase"
)

const dateLayout = "2006-01-02"

type Handler struct {
	importService         *usecase.ImportService
	matchService          *usecase.MatchService
	statisticsService     *usecase.StatisticsService
	seasonService         *usecase.SeasonService
	tournamentTypeService *usecase.TournamentTypeService
	tournamentService     *usecase.TournamentService
	playerService         *usecase.PlayerService
	deckService           *usecase.DeckService
	logger                *logging.Logger
	validator             *validator.Validate
}

// Services groups the usecases the HTTP adapter exposes.
type Services struct {
	Import         *usecase.ImportService
	Matches        *usecase.MatchService
	Statistics     *usecase.StatisticsService
	Seasons        *usecase.SeasonService
	TournamentType *usecase.TournamentTypeService
	Tournaments    *usecase.TournamentService
	Players        *usecase.PlayerService
	Decks          *usecase.DeckService
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		importService:         services.Import,
		matchService:          services.Matches,
		statisticsService:     services.Statistics,
		seasonService:         services.Seasons,
		tournamentTypeService: services.TournamentType,
		tournamentService:     services.Tournaments,
		playerService:         services.Players,
		deckService:           services.Decks,
		logger:                logger,
		validator:             validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body into dst and validates it.
func (h *Handler) decodeRequest(ctx context.Context, body io.Reader, dst any) error {
	decoder := jsoniter.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}

func optionalQueryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: query parameter %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", usecase.ErrInvalidInput, field, err)
	}
	return t, nil
}

func parseOptionalDate(field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := parseDate(field, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptionalDate(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format(dateLayout)
}
