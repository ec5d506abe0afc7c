package service

import (
	"context"

	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/models"
)

type summaryService struct {
	summarizer Summarizer

	logger *logger.Logger
}

func NewSummaryService(summarizer Summarizer, logger *logger.Logger) SummaryService {
	return &summaryService{
		summarizer: summarizer,
		logger:     logger,
	}
}

// Summarize generates a user-reviewable synopsis of a conversation. Unlike
// handoff, this path surfaces summarizer failures to the caller: the user
// asked for a summary explicitly and deserves to know it failed.
func (s *summaryService) Summarize(ctx context.Context, messages []models.Message, language string) (string, error) {
	if len(messages) == 0 {
		return "", ErrInvalidDataProvided
	}

	return s.summarizer.Summarize(ctx, messages, language)
}
