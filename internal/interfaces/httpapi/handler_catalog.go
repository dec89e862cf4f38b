package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/season"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
)

type createSeasonRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description string `json:"description,omitempty"`
}

type createTournamentTypeRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	PointsWin   *int   `json:"points_win" validate:"required,gte=0"`
	PointsDraw  *int   `json:"points_draw" validate:"required,gte=0"`
	Description string `json:"description,omitempty"`
}

type createPlayerRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Email  string `json:"email,omitempty" validate:"omitempty,email,max=150"`
	Active *bool  `json:"active,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

type createDeckRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	ColorIdentity string `json:"color_identity,omitempty" validate:"max=10"`
	ArchetypeType string `json:"archetype_type,omitempty" validate:"max=50"`
	Description   string `json:"description,omitempty"`
}

func (req createSeasonRequest) toSeason() (season.Season, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return season.Season{}, err
	}
	end, err := parseOptionalDate("end_date", req.EndDate)
	if err != nil {
		return season.Season{}, err
	}
	return season.Season{
		Name:        req.Name,
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
	}, nil
}

func (req createTournamentTypeRequest) toTournamentType() tournamenttype.TournamentType {
	return tournamenttype.TournamentType{
		Name:        req.Name,
		PointsWin:   *req.PointsWin,
		PointsDraw:  *req.PointsDraw,
		Description: req.Description,
	}
}

// An omitted active flag means active.
func (req createPlayerRequest) toPlayer() player.Player {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return player.Player{
		Name:   req.Name,
		Email:  req.Email,
		Active: active,
		Notes:  req.Notes,
	}
}

func (req createDeckRequest) toDeck() deck.Archetype {
	return deck.Archetype{
		Name:          req.Name,
		ColorIdentity: req.ColorIdentity,
		ArchetypeType: req.ArchetypeType,
		Description:   req.Description,
	}
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	var req createSeasonRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := req.toSeason()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.seasonService.Create(ctx, item)
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(created))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	items, err := h.seasonService.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]seasonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	id, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.seasonService.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

// UpdateSeason replaces every field of the season.
func (h *Handler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeason")
	defer span.End()

	id, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req createSeasonRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := req.toSeason()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.seasonService.Update(ctx, id, item)
	if err != nil {
		h.logger.WarnContext(ctx, "update season failed", "season_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(updated))
}

func (h *Handler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSeason")
	defer span.End()

	id, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.seasonService.Delete(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}

func (h *Handler) CreateTournamentType(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTournamentType")
	defer span.End()

	var req createTournamentTypeRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.tournamentTypeService.Create(ctx, req.toTournamentType())
	if err != nil {
		h.logger.WarnContext(ctx, "create tournament type failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tournamentTypeToDTO(created))
}

func (h *Handler) ListTournamentTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournamentTypes")
	defer span.End()

	items, err := h.tournamentTypeService.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]tournamentTypeDTO, 0, len(items))
	for _, item := range items {
		out = append(out, tournamentTypeToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTournamentType(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournamentType")
	defer span.End()

	id, err := pathID(r, "typeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.tournamentTypeService.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentTypeToDTO(item))
}

// UpdateTournamentType replaces every field of the tournament type.
func (h *Handler) UpdateTournamentType(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTournamentType")
	defer span.End()

	id, err := pathID(r, "typeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req createTournamentTypeRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item := req.toTournamentType()

	updated, err := h.tournamentTypeService.Update(ctx, id, item)
	if err != nil {
		h.logger.WarnContext(ctx, "update tournament type failed", "tournament_type_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentTypeToDTO(updated))
}

func (h *Handler) DeleteTournamentType(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTournamentType")
	defer span.End()

	id, err := pathID(r, "typeID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.tournamentTypeService.Delete(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, req.toPlayer())
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	activeOnly, _ := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get("active_only")))
	items, err := h.playerService.List(ctx, activeOnly)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.playerService.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

// UpdatePlayer replaces every field of the player.
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item := req.toPlayer()

	updated, err := h.playerService.Update(ctx, id, item)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.playerService.Delete(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}

func (h *Handler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDeck")
	defer span.End()

	var req createDeckRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.deckService.Create(ctx, req.toDeck())
	if err != nil {
		h.logger.WarnContext(ctx, "create deck failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, deckToDTO(created))
}

func (h *Handler) ListDecks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDecks")
	defer span.End()

	items, err := h.deckService.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]deckDTO, 0, len(items))
	for _, item := range items {
		out = append(out, deckToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDeck")
	defer span.End()

	id, err := pathID(r, "deckID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.deckService.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deckToDTO(item))
}

// UpdateDeck replaces every field of the deck.
func (h *Handler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateDeck")
	defer span.End()

	id, err := pathID(r, "deckID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req createDeckRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item := req.toDeck()

	updated, err := h.deckService.Update(ctx, id, item)
	if err != nil {
		h.logger.WarnContext(ctx, "update deck failed", "deck_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deckToDTO(updated))
}

func (h *Handler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteDeck")
	defer span.End()

	id, err := pathID(r, "deckID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.deckService.Delete(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}
