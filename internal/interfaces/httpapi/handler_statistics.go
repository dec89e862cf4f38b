package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/usecase"
)

func (h *Handler) ListPlayerStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerStatistics")
	defer span.End()

	items, err := h.statisticsService.GetPlayerStatistics(ctx, nil)
	if err != nil {
		h.logger.ErrorContext(ctx, "player statistics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatsToDTO(items))
}

func (h *Handler) GetPlayerStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStatistics")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statisticsService.GetPlayerStatistics(ctx, &playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if len(items) == 0 {
		writeError(ctx, w, fmt.Errorf("%w: id=%d", usecase.ErrPlayerNotFound, playerID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatsToDTO(items)[0])
}

func (h *Handler) ListDeckStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDeckStatistics")
	defer span.End()

	items, err := h.statisticsService.GetDeckStatistics(ctx, nil)
	if err != nil {
		h.logger.ErrorContext(ctx, "deck statistics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deckStatsToDTO(items))
}

func (h *Handler) GetDeckStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDeckStatistics")
	defer span.End()

	deckID, err := pathID(r, "deckID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statisticsService.GetDeckStatistics(ctx, &deckID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if len(items) == 0 {
		writeError(ctx, w, fmt.Errorf("%w: id=%d", usecase.ErrDeckNotFound, deckID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deckStatsToDTO(items)[0])
}

func (h *Handler) ListDeckMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDeckMatchups")
	defer span.End()

	items, err := h.statisticsService.GetDeckMatchups(ctx, nil, nil)
	if err != nil {
		h.logger.ErrorContext(ctx, "deck matchups failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchupsToDTO(items))
}

// GetDeckMatchup returns the matchup of deck A against deck B, or a zeroed
// record when the two decks never met.
func (h *Handler) GetDeckMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDeckMatchup")
	defer span.End()

	deckAID, err := pathID(r, "deckAID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	deckBID, err := pathID(r, "deckBID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statisticsService.GetDeckMatchups(ctx, &deckAID, &deckBID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if len(items) == 0 {
		writeSuccess(ctx, w, http.StatusOK, matchupDTO{DeckAID: deckAID, DeckBID: deckBID})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchupsToDTO(items)[0])
}

func (h *Handler) ListSeasonStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonStandings")
	defer span.End()

	items, err := h.statisticsService.GetSeasonStandings(ctx, nil)
	if err != nil {
		h.logger.ErrorContext(ctx, "season standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(items))
}

func (h *Handler) GetSeasonStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonStandings")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statisticsService.GetSeasonStandings(ctx, &seasonID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(items))
}

func (h *Handler) GetSeasonOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonOverview")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.statisticsService.GetSeasonOverview(ctx, seasonID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonOverviewDTO{
		Season:    seasonToDTO(overview.Season),
		Standings: standingsToDTO(overview.Standings),
		Decks:     deckStatsToDTO(overview.Decks),
		Matchups:  matchupsToDTO(overview.Matchups),
	})
}
