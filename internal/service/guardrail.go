// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package service

import (
	"regexp"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/models"
)

type guardrailService struct {
	logger *logger.Logger
}

func NewGuardrailService(logger *logger.Logger) GuardrailService {
	return &guardrailService{logger: logger}
}

// Check runs the generated response through the four policy checks. An
// unsafe response is replaced wholesale by a canned language-appropriate
// fallback — never edited in place.
//
// The filter fails open: if the check itself panics, the original text
// passes through. Blocking the conversation on an internal error would be
// worse than the risk the filter guards against.
func (s *guardrailService) Check(responseText, language string, urgencyConsented bool) (result models.GuardrailResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Any("panic", r).Msg("guardrail check panicked, passing response through")
			result = models.GuardrailResult{Safe: true, Violations: []string{}}
		}
	}()

	violations := make([]string, 0, 4)

	if matchesAny(legalAdvicePatterns, responseText) {
		violations = append(violations, models.ViolationLegalAdvice)
	}
	if matchesAny(medicalAdvicePatterns, responseText) {
		violations = append(violations, models.ViolationMedicalAdvice)
	}
	if matchesAny(victimBlamingPatterns, responseText) {
		violations = append(violations, models.ViolationVictimBlaming)
	}
	// Urgent phrasing is only a violation while the user has not consented
	// to urgency-framed guidance.
	if !urgencyConsented && matchesAny(urgencyPatterns, responseText) {
		violations = append(violations, models.ViolationUrgency)
	}

	if len(violations) == 0 {
		return models.GuardrailResult{Safe: true, Violations: []string{}}
	}

	fallback := selectFallback(violations, fallbacksFor(language))

	// Tags only; the violating text itself is never logged.
	s.logger.Info().Strs("violations", violations).Msg("guardrail violations detected")

	return models.GuardrailResult{
		Safe:             false,
		Violations:       violations,
		FallbackResponse: &fallback,
	}
}

func matchesAny(patterns []*regexp.Regexp, text string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(text) {
			return true
		}
	}

	return false
}

// selectFallback picks one reply when several categories fired. Victim
// blaming takes precedence: undoing harm done to the user matters more
// than redirecting advice.
func selectFallback(violations []string, fallbacks fallbackSet) string {
	has := func(tag string) bool {
		for _, v := range violations {
			if v == tag {
				return true
			}
		}
		return false
	}

	switch {
	case has(models.ViolationVictimBlaming):
		return fallbacks.VictimBlaming
	case has(models.ViolationLegalAdvice):
		return fallbacks.Legal
	case has(models.ViolationMedicalAdvice):
		return fallbacks.Medical
	case has(models.ViolationUrgency):
		return fallbacks.Urgency
	default:
		return fallbacks.General
	}
}
