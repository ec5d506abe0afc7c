package adapter

import "errors"

var (
	// ErrSummarizerRateLimited maps HTTP 429 from the summarization gateway.
	ErrSummarizerRateLimited = errors.New("summarizer rate limited")

	// ErrSummarizerUnpaid maps HTTP 402: the gateway account is out of
	// credits.
	ErrSummarizerUnpaid = errors.New("summarizer credits exhausted")

	// ErrSummarizerUnavailable covers every other transport or gateway
	// failure.
	ErrSummarizerUnavailable = errors.New("summarizer unavailable")
)
