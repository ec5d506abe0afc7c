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

// cases dispatches the action-based case endpoint: create, load, update,
// delete, export. One endpoint, one request shape, matching the web client.
func (h *Handler) cases(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.cases").Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	switch req.Action {
	case "create":
		caseID, err := h.services.CaseService.Create(r.Context(), req.PIN, req.Messages, req.Language, req.Context)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		log.Info().Str("case_id", caseID).Msg("case created")
		_, _ = utils.WriteJSON(w, map[string]any{"success": true, "caseId": caseID}, http.StatusOK)

	case "load":
		loaded, err := h.services.CaseService.Load(r.Context(), req.CaseID, req.PIN)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, map[string]any{
			"success":  true,
			"messages": loaded.Messages,
			"language": loaded.Language,
			"context":  loaded.Context,
		}, http.StatusOK)

	case "update":
		if err := h.services.CaseService.Update(r.Context(), req.CaseID, req.PIN, req.Messages, req.Language, req.Context); err != nil {
			h.writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, map[string]any{"success": true}, http.StatusOK)

	case "delete":
		if err := h.services.CaseService.Delete(r.Context(), req.CaseID, req.PIN); err != nil {
			h.writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, map[string]any{"success": true, "message": "Case deleted permanently"}, http.StatusOK)

	case "export":
		export, err := h.services.CaseService.Export(r.Context(), req.CaseID, req.PIN)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, map[string]any{"success": true, "summary": export}, http.StatusOK)

	default:
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid action"}, http.StatusBadRequest)
	}
}
