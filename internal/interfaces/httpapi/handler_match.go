package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/usecase"
)

type gameRequest struct {
	GameNumber      int    `json:"game_number" validate:"required,min=1,max=3"`
	WinnerID        int64  `json:"winner_id" validate:"required,gt=0"`
	GameResult      string `json:"game_result,omitempty" validate:"omitempty,oneof=WIN DRAW"`
	DurationMinutes *int   `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
	Notes           string `json:"notes,omitempty"`
}

type matchRequest struct {
	TournamentID  int64         `json:"tournament_id" validate:"required,gt=0"`
	Player1ID     int64         `json:"player1_id" validate:"required,gt=0"`
	Player2ID     int64         `json:"player2_id" validate:"required,gt=0"`
	Player1DeckID int64         `json:"player1_deck_id" validate:"required,gt=0"`
	Player2DeckID int64         `json:"player2_deck_id" validate:"required,gt=0"`
	RoundNumber   *int          `json:"round_number,omitempty" validate:"omitempty,min=1"`
	MatchStatus   string        `json:"match_status,omitempty" validate:"omitempty,oneof=IN_PROGRESS COMPLETED CANCELLED"`
	MatchDate     string        `json:"match_date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes         string        `json:"notes,omitempty"`
	Games         []gameRequest `json:"games" validate:"required,min=1,max=3,dive"`
}

// matchUpdateRequest corrects a match row; its games are edited one by one.
type matchUpdateRequest struct {
	TournamentID  int64  `json:"tournament_id" validate:"required,gt=0"`
	Player1ID     int64  `json:"player1_id" validate:"required,gt=0"`
	Player2ID     int64  `json:"player2_id" validate:"required,gt=0"`
	Player1DeckID int64  `json:"player1_deck_id" validate:"required,gt=0"`
	Player2DeckID int64  `json:"player2_deck_id" validate:"required,gt=0"`
	RoundNumber   *int   `json:"round_number,omitempty" validate:"omitempty,min=1"`
	MatchStatus   string `json:"match_status,omitempty" validate:"omitempty,oneof=IN_PROGRESS COMPLETED CANCELLED"`
	MatchDate     string `json:"match_date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes         string `json:"notes,omitempty"`
}

// Units of a batch are validated one by one by the match service so a bad
// unit fails alone.
type batchMatchRequest struct {
	Matches []batchUnitRequest `json:"matches" validate:"required,min=1"`
}

type batchUnitRequest struct {
	TournamentID  int64         `json:"tournament_id"`
	Player1ID     int64         `json:"player1_id"`
	Player2ID     int64         `json:"player2_id"`
	Player1DeckID int64         `json:"player1_deck_id"`
	Player2DeckID int64         `json:"player2_deck_id"`
	RoundNumber   *int          `json:"round_number,omitempty"`
	MatchStatus   string        `json:"match_status,omitempty"`
	MatchDate     *time.Time    `json:"match_date,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	Games         []gameRequest `json:"games"`
}

func (g gameRequest) toGame() match.Game {
	return match.Game{
		GameNumber:      g.GameNumber,
		WinnerID:        g.WinnerID,
		Result:          match.GameResult(strings.ToUpper(g.GameResult)),
		DurationMinutes: g.DurationMinutes,
		Notes:           g.Notes,
	}
}

func toGames(items []gameRequest) []match.Game {
	out := make([]match.Game, 0, len(items))
	for _, g := range items {
		out = append(out, g.toGame())
	}
	return out
}

func (m matchRequest) toMatch() (match.Match, error) {
	out := match.Match{
		TournamentID:  m.TournamentID,
		Player1ID:     m.Player1ID,
		Player2ID:     m.Player2ID,
		Player1DeckID: m.Player1DeckID,
		Player2DeckID: m.Player2DeckID,
		RoundNumber:   m.RoundNumber,
		Status:        match.Status(m.MatchStatus),
		Notes:         m.Notes,
		Games:         toGames(m.Games),
	}
	if m.MatchDate != "" {
		t, err := time.Parse(time.RFC3339, m.MatchDate)
		if err != nil {
			return match.Match{}, fmt.Errorf("%w: match_date: %v", usecase.ErrInvalidInput, err)
		}
		out.MatchDate = t
	}
	return out, nil
}

func (m matchUpdateRequest) toMatch() (match.Match, error) {
	return matchRequest{
		TournamentID:  m.TournamentID,
		Player1ID:     m.Player1ID,
		Player2ID:     m.Player2ID,
		Player1DeckID: m.Player1DeckID,
		Player2DeckID: m.Player2DeckID,
		RoundNumber:   m.RoundNumber,
		MatchStatus:   m.MatchStatus,
		MatchDate:     m.MatchDate,
		Notes:         m.Notes,
	}.toMatch()
}

func (u batchUnitRequest) toMatch() match.Match {
	out := match.Match{
		TournamentID:  u.TournamentID,
		Player1ID:     u.Player1ID,
		Player2ID:     u.Player2ID,
		Player1DeckID: u.Player1DeckID,
		Player2DeckID: u.Player2DeckID,
		RoundNumber:   u.RoundNumber,
		Status:        match.Status(strings.ToUpper(u.MatchStatus)),
		Notes:         u.Notes,
		Games:         toGames(u.Games),
	}
	if u.MatchDate != nil {
		out.MatchDate = *u.MatchDate
	}
	return out
}

func (h *Handler) BatchCreateMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BatchCreateMatches")
	defer span.End()

	var req batchMatchRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	units := make([]match.Match, 0, len(req.Matches))
	for _, u := range req.Matches {
		units = append(units, u.toMatch())
	}

	result, err := h.matchService.BatchCreateMatches(ctx, units)
	if err != nil {
		h.logger.ErrorContext(ctx, "batch create matches failed", "units", len(units), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, batchResultToDTO(result))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	m, err := req.toMatch()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.CreateMatch(ctx, m)
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "tournament_id", req.TournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

// UpdateMatch corrects the match row. An omitted match_date keeps the stored one.
func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req matchUpdateRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	m, err := req.toMatch()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.UpdateMatch(ctx, id, m)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	tournamentID, err := optionalQueryID(r, "tournament_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := optionalQueryID(r, "player_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.List(ctx, match.Filter{TournamentID: tournamentID, PlayerID: playerID})
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.matchService.Delete(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}

func (h *Handler) AddGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddGame")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req gameRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.AddGame(ctx, matchID, req.toGame())
	if err != nil {
		h.logger.WarnContext(ctx, "add game failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(created))
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.ListGames(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]gameDTO, 0, len(items))
	for _, item := range items {
		out = append(out, gameToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGame")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req gameRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.UpdateGame(ctx, matchID, gameID, req.toGame())
	if err != nil {
		h.logger.WarnContext(ctx, "update game failed", "match_id", matchID, "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(updated))
}

func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGame")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.matchService.DeleteGame(ctx, gameID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}
