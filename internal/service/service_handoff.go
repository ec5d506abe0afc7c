// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package service

import (
	"context"
	"time"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/store"
	"github.com/salamaline/salama/internal/utils"
	"github.com/salamaline/salama/models"
)

// Degraded summaries used when no summary can be generated. A handoff with
// a generic summary is still more useful to the partner than no handoff.
const (
	summaryNoMessages  = "User seeking support. Details to be shared directly with counselor."
	summaryUnavailable = "User seeking support. Please engage with care."
)

const handoffMethodSecureAPI = "secure_api"

type handoffService struct {
	caseRepository store.CaseRepository
	consentService ConsentService
	summarizer     Summarizer

	logger *logger.Logger
}

func NewHandoffService(caseRepository store.CaseRepository, consentService ConsentService, summarizer Summarizer, logger *logger.Logger) HandoffService {
	return &handoffService{
		caseRepository: caseRepository,
		consentService: consentService,
		summarizer:     summarizer,
		logger:         logger,
	}
}

// Initiate builds the minimal disclosure package for a partner. Consent is
// checked before anything else: without allow_escalation or partner_handoff
// the summarizer is never called and no conversation content leaves the
// store.
func (s *handoffService) Initiate(ctx context.Context, caseID string, urgency models.Urgency) (models.HandoffPackage, error) {
	caseID = NormalizeCaseID(caseID)
	if caseID == "" {
		return models.HandoffPackage{}, ErrInvalidDataProvided
	}

	if urgency == "" {
		urgency = models.UrgencyMedium
	}
	if !urgency.Valid() {
		return models.HandoffPackage{}, ErrInvalidUrgency
	}

	handoffCase, err := s.caseRepository.GetCase(ctx, caseID)
	if err != nil {
		return models.HandoffPackage{}, err
	}

	// Either flag satisfies the gate: escalation consent already covers
	// involving an external counselor.
	if !handoffCase.Consent.AllowEscalation && !handoffCase.Consent.PartnerHandoff {
		return models.HandoffPackage{}, &ConsentRequiredError{
			Flags: []models.ConsentFlag{models.FlagAllowEscalation, models.FlagPartnerHandoff},
		}
	}

	summary := s.generateSummary(ctx, handoffCase.Messages, handoffCase.Language)

	reference, err := utils.GenerateHandoffReference()
	if err != nil {
		return models.HandoffPackage{}, err
	}

	record := models.HandoffRecord{
		Reference:   reference,
		InitiatedAt: time.Now().UTC(),
		Urgency:     urgency,
		Status:      "pending",
	}
	if err := s.caseRepository.AppendHandoffRecord(ctx, caseID, record); err != nil {
		return models.HandoffPackage{}, err
	}

	// Reference and urgency only; the summary is never logged.
	s.logger.Info().Str("reference", reference).Str("urgency", string(urgency)).Msg("handoff initiated")

	return models.HandoffPackage{
		Summary:       summary,
		Language:      handoffCase.Language,
		Urgency:       urgency,
		CaseReference: reference,
		Method:        handoffMethodSecureAPI,
	}, nil
}

// generateSummary asks the external summarizer for a short synopsis and
// degrades to fixed text when it cannot deliver. Handoff must not fail
// because the summarizer is down.
func (s *handoffService) generateSummary(ctx context.Context, messages []models.Message, language string) string {
	if len(messages) == 0 {
		return summaryNoMessages
	}

	summary, err := s.summarizer.Summarize(ctx, messages, language)
	if err != nil {
		s.logger.Warn().Err(err).Msg("summary generation failed, using degraded summary")
		return summaryUnavailable
	}

	return summary
}

// ListPartners returns the support partner directory. Static for now; a
// partner registry table can replace this without changing the interface.
func (s *handoffService) ListPartners() []models.Partner {
	return []models.Partner{
		{
			ID:        "healthcare_kenya",
			Name:      "Healthcare Assistance Kenya",
			Type:      "healthcare",
			Available: true,
		},
		{
			ID:        "legal_aid_kenya",
			Name:      "Federation of Women Lawyers Kenya",
			Type:      "legal",
			Available: true,
		},
		{
			ID:        "counseling_kenya",
			Name:      "Kenya Red Cross Counseling",
			Type:      "counseling",
			Available: true,
		},
	}
}
