// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/store"
	"github.com/salamaline/salama/internal/utils"
	"github.com/salamaline/salama/models"
)

// maxCaseIDAttempts bounds the create-retry loop. The ID space is 32^6, so
// exhausting ten attempts means something is wrong beyond bad luck.
const maxCaseIDAttempts = 10

type caseService struct {
	caseRepository store.CaseRepository

	logger *logger.Logger
}

func NewCaseService(caseRepository store.CaseRepository, logger *logger.Logger) CaseService {
	return &caseService{
		caseRepository: caseRepository,
		logger:         logger,
	}
}

// Create persists a new case and returns its ID. A non-empty pin must be
// exactly four digits and is stored only as an Argon2id digest. Uniqueness
// of the generated ID is delegated to the primary-key constraint: on
// collision the service draws a fresh ID and retries.
func (s *caseService) Create(ctx context.Context, pin string, messages []models.Message, language, caseContext string) (string, error) {
	newCase := models.Case{
		Messages: messages,
		Language: normalizeLanguage(language),
		Context:  normalizeContext(caseContext),
	}

	if pin != "" {
		if err := validatePINFormat(pin); err != nil {
			return "", err
		}

		hash, salt, err := hashPIN(pin)
		if err != nil {
			return "", err
		}
		newCase.PINHash = hash
		newCase.PINSalt = salt
	}

	for attempt := 1; attempt <= maxCaseIDAttempts; attempt++ {
		caseID, err := utils.GenerateCaseID()
		if err != nil {
			return "", err
		}
		newCase.CaseID = caseID

		_, err = s.caseRepository.CreateCase(ctx, newCase)
		if err == nil {
			return caseID, nil
		}
		if !errors.Is(err, store.ErrCaseIDTaken) {
			return "", err
		}

		s.logger.Warn().Int("attempt", attempt).Msg("case id collision, retrying")
	}

	return "", ErrCaseIDGenerationFailed
}

// Load returns the case after PIN verification and refreshes its retention
// clock.
func (s *caseService) Load(ctx context.Context, caseID, pin string) (models.Case, error) {
	loaded, err := s.loadVerified(ctx, caseID, pin)
	if err != nil {
		return models.Case{}, err
	}

	if err := s.caseRepository.TouchCase(ctx, loaded.CaseID); err != nil {
		// The user still gets their case; the retention clock just did not
		// move this time.
		s.logger.Warn().Err(err).Msg("failed to refresh case retention clock")
	}

	return loaded, nil
}

// Update replaces the conversation history of an existing case.
func (s *caseService) Update(ctx context.Context, caseID, pin string, messages []models.Message, language, caseContext string) error {
	verified, err := s.loadVerified(ctx, caseID, pin)
	if err != nil {
		return err
	}

	if language == "" {
		language = verified.Language
	}
	if caseContext == "" {
		caseContext = verified.Context
	}

	return s.caseRepository.UpdateCase(ctx, verified.CaseID, messages, normalizeLanguage(language), normalizeContext(caseContext))
}

// Delete removes the case and everything attached to it. Gone means gone:
// messages, consent state, audit trail, handoff history.
func (s *caseService) Delete(ctx context.Context, caseID, pin string) error {
	verified, err := s.loadVerified(ctx, caseID, pin)
	if err != nil {
		return err
	}

	return s.caseRepository.DeleteCase(ctx, verified.CaseID)
}

// Export returns the full history plus metadata for client-side formatting.
// Export is read-only and does not refresh the retention clock.
func (s *caseService) Export(ctx context.Context, caseID, pin string) (models.CaseExport, error) {
	verified, err := s.loadVerified(ctx, caseID, pin)
	if err != nil {
		return models.CaseExport{}, err
	}

	return models.CaseExport{
		CaseID:       verified.CaseID,
		CreatedAt:    verified.CreatedAt.Format(time.RFC3339),
		Language:     verified.Language,
		Context:      verified.Context,
		MessageCount: len(verified.Messages),
		Messages:     verified.Messages,
	}, nil
}

// loadVerified is the single PIN gate: every operation on an existing case
// goes through it. Missing PIN and wrong PIN are distinct errors so clients
// can prompt instead of failing.
func (s *caseService) loadVerified(ctx context.Context, caseID, pin string) (models.Case, error) {
	caseID = NormalizeCaseID(caseID)
	if caseID == "" {
		return models.Case{}, ErrInvalidDataProvided
	}

	loaded, err := s.caseRepository.GetCase(ctx, caseID)
	if err != nil {
		return models.Case{}, err
	}

	if loaded.HasPIN() {
		if pin == "" {
			return models.Case{}, ErrPINRequired
		}
		if !matchPIN(pin, loaded.PINHash, loaded.PINSalt) {
			return models.Case{}, ErrInvalidPIN
		}
	}

	return loaded, nil
}

// NormalizeCaseID uppercases and trims a user-supplied case ID. IDs are
// generated uppercase; normalizing here makes lookups case-insensitive.
func NormalizeCaseID(caseID string) string {
	return strings.ToUpper(strings.TrimSpace(caseID))
}

func normalizeLanguage(language string) string {
	switch language {
	case models.LanguageEnglish, models.LanguageSwahili, models.LanguageSheng:
		return language
	default:
		return models.LanguageEnglish
	}
}

func normalizeContext(caseContext string) string {
	switch caseContext {
	case models.ContextGeneral, models.ContextObserver:
		return caseContext
	default:
		return models.ContextGeneral
	}
}
