// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package service

import (
	"context"
	"sort"
	"time"

	"github.com/salamaline/salama/internal/config"
	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/store"
	"github.com/salamaline/salama/models"
)

const hoursPerDay = 24 * time.Hour

type retentionService struct {
	caseRepository store.CaseRepository
	cfg            config.Retention

	logger *logger.Logger
}

func NewRetentionService(caseRepository store.CaseRepository, cfg config.Retention, logger *logger.Logger) RetentionService {
	return &retentionService{
		caseRepository: caseRepository,
		cfg:            cfg,
		logger:         logger,
	}
}

// Cleanup deletes every case whose retention clock is older than the
// window. A second sweep over the same window deletes nothing.
func (s *retentionService) Cleanup(ctx context.Context, retentionDays int) (int, error) {
	days := s.days(retentionDays)
	cutoff := time.Now().AddDate(0, 0, -days)

	deleted, err := s.caseRepository.DeleteExpiredCases(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if len(deleted) > 0 {
		s.logger.Info().Int("deleted", len(deleted)).Int("retention_days", days).Msg("retention sweep deleted expired cases")
	}

	return len(deleted), nil
}

// GetExpiring reports cases inside the warning window: still alive, but
// due for deletion within WarningDays. Read-only.
func (s *retentionService) GetExpiring(ctx context.Context, retentionDays int) ([]models.ExpiringCase, error) {
	days := s.days(retentionDays)

	expirationDate := time.Now().AddDate(0, 0, -days)
	warningDate := time.Now().AddDate(0, 0, -(days - s.cfg.WarningDays))

	accessed, err := s.caseRepository.GetCasesAccessedBetween(ctx, expirationDate, warningDate)
	if err != nil {
		return nil, err
	}

	expiring := make([]models.ExpiringCase, 0, len(accessed))
	for caseID, lastAccessedAt := range accessed {
		remaining := time.Until(lastAccessedAt.Add(time.Duration(days) * hoursPerDay))
		expiring = append(expiring, models.ExpiringCase{
			CaseID:        caseID,
			ExpiresInDays: int((remaining + hoursPerDay - 1) / hoursPerDay),
		})
	}

	sort.Slice(expiring, func(i, j int) bool {
		return expiring[i].CaseID < expiring[j].CaseID
	})

	return expiring, nil
}

// Extend refreshes the retention clock for a case. No PIN challenge:
// keeping a case alive is low-risk and a prompt here would discourage
// legitimate continued use.
func (s *retentionService) Extend(ctx context.Context, caseID string) error {
	caseID = NormalizeCaseID(caseID)
	if caseID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.caseRepository.TouchCase(ctx, caseID); err != nil {
		return err
	}

	s.logger.Info().Str("case_id", caseID).Msg("retention extended")

	return nil
}

func (s *retentionService) Config() RetentionConfig {
	return RetentionConfig{
		DefaultRetentionDays: s.cfg.Days,
		WarningDaysBefore:    s.cfg.WarningDays,
	}
}

func (s *retentionService) days(retentionDays int) int {
	if retentionDays > 0 {
		return retentionDays
	}

	return s.cfg.Days
}
