package httpapi

import (
	"net/http"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/interfaces/importfile"
)

func (h *Handler) ImportTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportTournament")
	defer span.End()

	var doc importfile.Document
	if err := h.decodeRequest(ctx, r.Body, &doc); err != nil {
		writeError(ctx, w, err)
		return
	}
	payload, err := doc.ToPayload()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.importService.ImportTournament(ctx, payload)
	if err != nil {
		h.logger.WarnContext(ctx, "import tournament failed", "tournament", doc.Tournament.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, importfile.FromResult(result))
}
