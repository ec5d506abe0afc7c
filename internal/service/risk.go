// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package service

import (
	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/models"
)

// historyWindow is how many trailing history messages are re-examined for
// repeated patterns.
const historyWindow = 5

type riskService struct {
	logger *logger.Logger
}

func NewRiskService(logger *logger.Logger) RiskService {
	return &riskService{logger: logger}
}

// Assess classifies the current message and the recent history. It is
// purely advisory: the result adjusts what options are offered to the user
// and never triggers any action on its own.
//
// Any internal panic degrades to a low-risk assessment instead of failing
// the caller: a broken detector must not break the conversation.
func (s *riskService) Assess(content string, history []models.Message) (assessment models.RiskAssessment) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Any("panic", r).Msg("risk assessment panicked, returning safe default")
			assessment = models.RiskAssessment{Signals: []string{}, RiskLevel: models.RiskLow}
		}
	}()

	if content == "" && len(history) == 0 {
		return models.RiskAssessment{Signals: []string{}, RiskLevel: models.RiskLow}
	}

	assessment = assessMessage(content)

	if len(history) > 0 {
		assessment = escalateOnHistory(assessment, history)
	}

	// Non-identifying: level and signal count only, never the content.
	s.logger.Info().
		Str("risk_level", string(assessment.RiskLevel)).
		Int("signals", len(assessment.Signals)).
		Msg("risk assessment")

	return assessment
}

// assessMessage classifies a single message: any high match makes the
// message high; two or more medium matches also make it high; one medium
// match makes it medium; everything else stays low.
func assessMessage(content string) models.RiskAssessment {
	signals := make([]string, 0, 4)
	highCount := 0
	mediumCount := 0

	for _, pattern := range highRiskPatterns {
		if pattern.MatchString(content) {
			signals = append(signals, models.SignalImmediateDanger)
			highCount++
		}
	}

	for _, pattern := range mediumRiskPatterns {
		if pattern.MatchString(content) {
			signals = append(signals, models.SignalControlOrFear)
			mediumCount++
		}
	}

	for _, pattern := range lowRiskPatterns {
		if pattern.MatchString(content) {
			signals = append(signals, models.SignalConcern)
		}
	}

	riskLevel := models.RiskLow
	switch {
	case highCount > 0:
		riskLevel = models.RiskHigh
	case mediumCount >= 2:
		riskLevel = models.RiskHigh
	case mediumCount > 0:
		riskLevel = models.RiskMedium
	}

	return models.RiskAssessment{
		RiskLevel:            riskLevel,
		Signals:              dedupSignals(signals),
		RecommendSafetyCheck: riskLevel != models.RiskLow,
		RecommendResources:   riskLevel == models.RiskHigh,
	}
}

// escalateOnHistory re-classifies the trailing history and escalates the
// current assessment when risk keeps recurring: a single frightening
// message may be an outlier, a pattern of them is not.
func escalateOnHistory(assessment models.RiskAssessment, history []models.Message) models.RiskAssessment {
	recent := history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	cumulativeHigh := 0
	cumulativeMedium := 0
	for _, msg := range recent {
		if msg.Role != models.RoleUser {
			continue
		}
		switch assessMessage(msg.Content).RiskLevel {
		case models.RiskHigh:
			cumulativeHigh++
		case models.RiskMedium:
			cumulativeMedium++
		}
	}

	if cumulativeHigh >= 2 && assessment.RiskLevel != models.RiskHigh {
		assessment.RiskLevel = models.RiskHigh
		assessment.Signals = append(assessment.Signals, models.SignalRepeatedHighRisk)
		assessment.RecommendResources = true
		assessment.RecommendSafetyCheck = true
	} else if cumulativeMedium >= 3 && assessment.RiskLevel == models.RiskLow {
		assessment.RiskLevel = models.RiskMedium
		assessment.Signals = append(assessment.Signals, models.SignalRepeatedConcern)
		assessment.RecommendSafetyCheck = true
	}

	return assessment
}

func dedupSignals(signals []string) []string {
	seen := make(map[string]bool, len(signals))
	out := make([]string, 0, len(signals))
	for _, signal := range signals {
		if seen[signal] {
			continue
		}
		seen[signal] = true
		out = append(out, signal)
	}

	return out
}
