package http

import (
	"encoding/json"
	"net/http"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/utils"
	"github.com/salamaline/salama/models"
)

// generateSummary produces a user-reviewable conversation summary. Unlike
// handoff there is no degraded fallback here: the user asked for the
// summary and gets the gateway error instead of silently generic text.
func (h *Handler) generateSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.generateSummary").Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	summary, err := h.services.SummaryService.Summarize(r.Context(), req.Messages, req.Language)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, map[string]any{"success": true, "summary": summary}, http.StatusOK)
}
