// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package http

import (
	"errors"
	"net/http"

	"github.com/salamaline/salama/internal/adapter"
	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/service"
	"github.com/salamaline/salama/internal/store"
	"github.com/salamaline/salama/internal/utils"
	"github.com/salamaline/salama/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidPINFormat:    http.StatusBadRequest,
	service.ErrUnknownAction:       http.StatusBadRequest,
	service.ErrUnknownConsentFlag:  http.StatusBadRequest,
	service.ErrInvalidUrgency:      http.StatusBadRequest,

	service.ErrPINRequired: http.StatusUnauthorized,
	service.ErrInvalidPIN:  http.StatusUnauthorized,

	service.ErrConsentDenied: http.StatusForbidden,

	store.ErrCaseNotFound: http.StatusNotFound,

	adapter.ErrSummarizerRateLimited: http.StatusTooManyRequests,
	adapter.ErrSummarizerUnpaid:      http.StatusPaymentRequired,
	adapter.ErrSummarizerUnavailable: http.StatusBadGateway,

	service.ErrCaseIDGenerationFailed: http.StatusInternalServerError,
	store.ErrExecutingQuery:           http.StatusInternalServerError,
	store.ErrScanningRow:              http.StatusInternalServerError,
	store.ErrScanningRows:             http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps a service error onto the uniform error body. 5xx errors
// get a generic message so internals never leak to the client; the real
// error goes to the request log.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	response := models.ErrorResponse{Error: err.Error()}
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		response.Error = "Processing error"
	}

	if errors.Is(err, service.ErrPINRequired) {
		response.RequiresPIN = true
	}

	var consentErr *service.ConsentRequiredError
	if errors.As(err, &consentErr) {
		response.Error = "Consent required for handoff"
		response.RequiresConsent = consentErr.Flags
	}

	_, _ = utils.WriteJSON(w, response, status)
}
