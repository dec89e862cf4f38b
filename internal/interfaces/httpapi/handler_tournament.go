package httpapi

import (
	"net/http"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournament"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/usecase"
)

// Omitting both type fields selects the default type on create and keeps the
// current type on update.
type tournamentRequest struct {
	SeasonID           int64  `json:"season_id" validate:"omitempty,gt=0"`
	Name               string `json:"name" validate:"required,max=150"`
	TournamentDate     string `json:"tournament_date" validate:"required,datetime=2006-01-02"`
	Location           string `json:"location,omitempty" validate:"max=200"`
	Format             string `json:"format,omitempty" validate:"max=50"`
	Description        string `json:"description,omitempty"`
	TournamentTypeID   *int64 `json:"tournament_type_id,omitempty" validate:"omitempty,gt=0"`
	TournamentTypeName string `json:"tournament_type_name,omitempty" validate:"max=100"`
}

func (req tournamentRequest) toInput() (usecase.TournamentInput, error) {
	date, err := parseDate("tournament_date", req.TournamentDate)
	if err != nil {
		return usecase.TournamentInput{}, err
	}
	return usecase.TournamentInput{
		SeasonID:    req.SeasonID,
		Name:        req.Name,
		Date:        date,
		Location:    req.Location,
		Format:      req.Format,
		Description: req.Description,
		TypeID:      req.TournamentTypeID,
		TypeName:    req.TournamentTypeName,
	}, nil
}

func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTournament")
	defer span.End()

	var req tournamentRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.tournamentService.Create(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create tournament failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tournamentToDTO(created))
}

func (h *Handler) UpdateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTournament")
	defer span.End()

	id, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req tournamentRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.tournamentService.Update(ctx, id, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update tournament failed", "tournament_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(updated))
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	seasonID, err := optionalQueryID(r, "season_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.tournamentService.List(ctx, tournament.Filter{SeasonID: seasonID})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]tournamentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, tournamentToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournament")
	defer span.End()

	id, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.tournamentService.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(item))
}

func (h *Handler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTournament")
	defer span.End()

	id, err := pathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.tournamentService.Delete(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}
