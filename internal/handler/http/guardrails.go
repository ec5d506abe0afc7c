package http

import (
	"encoding/json"
	"net/http"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/utils"
	"github.com/salamaline/salama/models"
)

func (h *Handler) checkGuardrails(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.GuardrailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.checkGuardrails").Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if req.Response == "" {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Response is required"}, http.StatusBadRequest)
		return
	}

	result := h.services.GuardrailService.Check(req.Response, req.Language, req.HasUrgencyConsent)

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}
