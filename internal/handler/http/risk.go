package http

import (
	"encoding/json"
	"net/http"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/utils"
	"github.com/salamaline/salama/models"
)

func (h *Handler) assessRisk(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RiskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.assessRisk").Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	assessment := h.services.RiskService.Assess(req.Content, req.Messages)

	_, _ = utils.WriteJSON(w, assessment, http.StatusOK)
}
