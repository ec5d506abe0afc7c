// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/utils"
	"github.com/salamaline/salama/models"
)

func (h *Handler) retention(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RetentionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.retention").Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	switch req.Action {
	case "cleanup":
		deleted, err := h.services.RetentionService.Cleanup(r.Context(), req.RetentionDays)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		days := req.RetentionDays
		if days <= 0 {
			days = h.services.RetentionService.Config().DefaultRetentionDays
		}
		message := "No expired cases found"
		if deleted > 0 {
			message = fmt.Sprintf("Deleted %d cases older than %d days", deleted, days)
		}

		_, _ = utils.WriteJSON(w, map[string]any{
			"success":       true,
			"deleted_count": deleted,
			"message":       message,
		}, http.StatusOK)

	case "get_expiring":
		expiring, err := h.services.RetentionService.GetExpiring(r.Context(), req.RetentionDays)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, map[string]any{
			"success":        true,
			"expiring_cases": expiring,
		}, http.StatusOK)

	case "extend":
		if req.CaseID == "" {
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Case ID required"}, http.StatusBadRequest)
			return
		}

		if err := h.services.RetentionService.Extend(r.Context(), req.CaseID); err != nil {
			h.writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, map[string]any{"success": true, "message": "Retention extended"}, http.StatusOK)

	case "get_config":
		_, _ = utils.WriteJSON(w, map[string]any{
			"success": true,
			"config":  h.services.RetentionService.Config(),
		}, http.StatusOK)

	default:
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid action"}, http.StatusBadRequest)
	}
}
