// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/utils"
	"github.com/salamaline/salama/models"
)

func (h *Handler) handoff(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.HandoffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.handoff").Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	switch req.Action {
	case "initiate":
		pkg, err := h.services.HandoffService.Initiate(r.Context(), req.CaseID, req.Urgency)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, map[string]any{
			"success": true,
			"handoff": pkg,
			"message": "Handoff prepared. Partner will receive summary only.",
		}, http.StatusOK)

	case "list_partners":
		_, _ = utils.WriteJSON(w, map[string]any{
			"partners": h.services.HandoffService.ListPartners(),
		}, http.StatusOK)

	default:
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid action"}, http.StatusBadRequest)
	}
}
