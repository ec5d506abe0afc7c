// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

// Package adapter provides clients for the external collaborators of the
// salama control plane.
//
// The only collaborator today is the text-summarization gateway used by
// partner handoff and conversation export. The gateway is treated as
// opaque: one call in, one summary (or error) out. No retries happen at
// this layer — each caller decides whether a failed summary is fatal
// (user-requested export) or survivable (handoff degrades to fixed text).
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/salamaline/salama/internal/config"
	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/models"
)

// maxSummaryRunes bounds the returned summary regardless of how much the
// gateway produces. A handoff package must stay small.
const maxSummaryRunes = 600

// summaryPrompts are the per-language system prompts. The prompt asks for a
// short, non-identifying synopsis; the gateway never learns the case ID.
var summaryPrompts = map[string]string{
	"en":    "Create a brief, 2-3 sentence summary for a counselor. Focus on the main concern without identifying details. Be compassionate and professional.",
	"sw":    "Tengeneza muhtasari mfupi wa sentensi 2-3 kwa mshauri. Zingatia wasiwasi mkuu bila maelezo ya utambulisho.",
	"sheng": "Create a brief summary for a counselor. Focus on main concern without identifying info.",
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Summarizer is the HTTP client for the summarization gateway.
type Summarizer struct {
	client *resty.Client
	model  string
	apiKey string

	logger *logger.Logger
}

func NewSummarizer(cfg config.Summarizer, logger *logger.Logger) *Summarizer {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Summarizer{
		client: client,
		model:  cfg.Model,
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// Summarize asks the gateway for a short synopsis of the conversation in
// the conversation's language. Exactly one request is made; 429 and 402
// map to distinct sentinel errors so handlers can report them precisely.
func (s *Summarizer) Summarize(ctx context.Context, messages []models.Message, language string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("%w: no API key configured", ErrSummarizerUnavailable)
	}

	prompt, ok := summaryPrompts[language]
	if !ok {
		prompt = summaryPrompts["en"]
	}

	body := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt},
			{Role: "user", Content: "Summarize this conversation for handoff:\n" + transcript(messages)},
		},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetBody(body).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummarizerUnavailable, err)
	}
	if err = mapGatewayError(resp); err != nil {
		return "", err
	}

	var completion chatCompletionResponse
	if err = json.Unmarshal(resp.Body(), &completion); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrSummarizerUnavailable, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrSummarizerUnavailable)
	}

	summary := strings.TrimSpace(completion.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("%w: empty completion", ErrSummarizerUnavailable)
	}

	return truncateRunes(summary, maxSummaryRunes), nil
}

func mapGatewayError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch code {
	case http.StatusTooManyRequests:
		return ErrSummarizerRateLimited
	case http.StatusPaymentRequired:
		return ErrSummarizerUnpaid
	default:
		return fmt.Errorf("%w: http %d", ErrSummarizerUnavailable, code)
	}
}

func transcript(messages []models.Message) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, string(msg.Role)+": "+msg.Content)
	}

	return strings.Join(lines, "\n")
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
