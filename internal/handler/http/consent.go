// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/service"
	"github.com/salamaline/salama/internal/utils"
	"github.com/salamaline/salama/models"
)

func (h *Handler) consent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ConsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.consent").Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	switch req.Action {
	case "get":
		flags, err := h.services.ConsentService.Get(r.Context(), req.CaseID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, map[string]any{"consent": flags}, http.StatusOK)

	case "update":
		if req.CaseID == "" || req.Flag == "" {
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "case_id and flag are required"}, http.StatusBadRequest)
			return
		}

		flags, err := h.services.ConsentService.Update(r.Context(), req.CaseID, req.Flag, req.Value)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, map[string]any{"success": true, "consent": flags}, http.StatusOK)

	case "check":
		if req.RequiredAction == "" {
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "required_action is required"}, http.StatusBadRequest)
			return
		}

		result, err := h.services.ConsentService.Check(r.Context(), req.CaseID, req.RequiredAction)
		if errors.Is(err, service.ErrUnknownAction) {
			// Unknown actions are denied, not rejected: the caller learns
			// "not allowed" rather than guessing at the action vocabulary.
			_, _ = utils.WriteJSON(w, models.ConsentCheckResult{}, http.StatusOK)
			return
		}
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, result, http.StatusOK)

	default:
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid action"}, http.StatusBadRequest)
	}
}
