// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package service

import (
	"context"
	"time"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/store"
	"github.com/salamaline/salama/models"
)

// actionConsentMap resolves a side-effecting action to the consent flag
// that gates it. An action absent from this table is always denied —
// default-deny extends to actions nobody thought of yet.
var actionConsentMap = map[string]models.ConsentFlag{
	"save_conversation":         models.FlagStoreConversation,
	"share_with_partner":        models.FlagShareSummary,
	"escalate_to_counselor":     models.FlagAllowEscalation,
	"provide_emergency_contact": models.FlagEmergencyContact,
	"handoff_to_partner":        models.FlagPartnerHandoff,
}

type consentService struct {
	caseRepository store.CaseRepository

	logger *logger.Logger
}

func NewConsentService(caseRepository store.CaseRepository, logger *logger.Logger) ConsentService {
	return &consentService{
		caseRepository: caseRepository,
		logger:         logger,
	}
}

func (s *consentService) Get(ctx context.Context, caseID string) (models.ConsentFlags, error) {
	caseID = NormalizeCaseID(caseID)
	if caseID == "" {
		// No case yet: the conversation has not been saved. Everything
		// defaults to denied.
		return models.ConsentFlags{}, nil
	}

	loaded, err := s.caseRepository.GetCase(ctx, caseID)
	if err != nil {
		return models.ConsentFlags{}, err
	}

	return loaded.Consent, nil
}

// Update flips one consent flag. The flag write and its audit entry land in
// a single statement, so no failure mode records one without the other.
func (s *consentService) Update(ctx context.Context, caseID string, flag models.ConsentFlag, value bool) (models.ConsentFlags, error) {
	caseID = NormalizeCaseID(caseID)
	if caseID == "" {
		return models.ConsentFlags{}, ErrInvalidDataProvided
	}

	current, err := s.Get(ctx, caseID)
	if err != nil {
		return models.ConsentFlags{}, err
	}

	previous, known := current.Value(flag)
	if !known {
		return models.ConsentFlags{}, ErrUnknownConsentFlag
	}

	updated, err := s.caseRepository.UpdateConsentFlag(ctx, caseID, models.ConsentAuditEntry{
		Flag:          flag,
		PreviousValue: previous,
		NewValue:      value,
		Timestamp:     time.Now().UTC(),
	})
	if err != nil {
		return models.ConsentFlags{}, err
	}

	s.logger.Info().Str("case_id", caseID).Str("flag", string(flag)).Bool("value", value).Msg("consent flag updated")

	return updated, nil
}

func (s *consentService) Check(ctx context.Context, caseID, action string) (models.ConsentCheckResult, error) {
	flag, known := actionConsentMap[action]
	if !known {
		return models.ConsentCheckResult{}, ErrUnknownAction
	}

	flags, err := s.Get(ctx, caseID)
	if err != nil {
		return models.ConsentCheckResult{}, err
	}

	value, _ := flags.Value(flag)

	return models.ConsentCheckResult{
		Allowed:      value,
		RequiredFlag: flag,
		CurrentValue: value,
	}, nil
}
