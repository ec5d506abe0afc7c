package service

import (
	"context"

	"github.com/salamaline/salama/models"
)

// CaseService is the PIN-gated persistence surface for cases. Every
// operation that touches a PIN-protected case runs the exact same
// verify-then-act sequence; there is no path that bypasses PIN verification
// when a hash is present. A case without a PIN is accessible to anyone
// holding the case ID — a deliberate low-friction tradeoff, not a security
// boundary.
type CaseService interface {
	Create(ctx context.Context, pin string, messages []models.Message, language, caseContext string) (string, error)
	Load(ctx context.Context, caseID, pin string) (models.Case, error)
	Update(ctx context.Context, caseID, pin string, messages []models.Message, language, caseContext string) error
	Delete(ctx context.Context, caseID, pin string) error
	Export(ctx context.Context, caseID, pin string) (models.CaseExport, error)
}

// ConsentService manages the per-case permission flags and gates every
// side-effecting action elsewhere in the system.
type ConsentService interface {
	// Get returns the current flag set; a missing case is "not found",
	// never "denied". An empty caseID yields the all-false default set.
	Get(ctx context.Context, caseID string) (models.ConsentFlags, error)

	// Update flips one flag and records the audit entry atomically.
	Update(ctx context.Context, caseID string, flag models.ConsentFlag, value bool) (models.ConsentFlags, error)

	// Check resolves an action to its required flag and reports whether it
	// is currently allowed. Unknown actions are always denied.
	Check(ctx context.Context, caseID, action string) (models.ConsentCheckResult, error)
}

// RiskService classifies inbound messages. Purely advisory: it has no side
// effects and must never block the caller, degrading to a low-risk
// assessment on internal failure.
type RiskService interface {
	Assess(content string, history []models.Message) models.RiskAssessment
}

// GuardrailService checks generated assistant responses against safety
// policy before they reach the user. Fails open: on internal error the
// original text passes through rather than blocking the conversation.
type GuardrailService interface {
	Check(responseText, language string, urgencyConsented bool) models.GuardrailResult
}

// RetentionService enforces the case time-to-live.
type RetentionService interface {
	// Cleanup deletes every case not accessed within the window. Passing
	// retentionDays <= 0 applies the configured default. Idempotent.
	Cleanup(ctx context.Context, retentionDays int) (int, error)

	// GetExpiring reports cases inside the warning window with their
	// days-until-expiry.
	GetExpiring(ctx context.Context, retentionDays int) ([]models.ExpiringCase, error)

	// Extend refreshes the retention clock without a PIN challenge:
	// extension is low-risk, and a PIN prompt here would discourage
	// legitimate continued use.
	Extend(ctx context.Context, caseID string) error

	// Config returns the deployment retention policy.
	Config() RetentionConfig
}

// RetentionConfig is the deployment retention policy surfaced by the
// retention endpoint's get_config action.
type RetentionConfig struct {
	DefaultRetentionDays int `json:"default_retention_days"`
	WarningDaysBefore    int `json:"warning_days_before"`
}

// HandoffService composes consent, the case store, and the external
// summarizer into the partner-handoff flow.
type HandoffService interface {
	// Initiate builds the minimal disclosure package for a partner. It
	// requires allow_escalation OR partner_handoff consent; without either
	// it returns a [ConsentRequiredError] naming both flags and never
	// calls the summarizer.
	Initiate(ctx context.Context, caseID string, urgency models.Urgency) (models.HandoffPackage, error)

	// ListPartners returns the available support partner directory.
	ListPartners() []models.Partner
}

// SummaryService produces a user-reviewable summary of a conversation via
// the external summarization collaborator.
type SummaryService interface {
	Summarize(ctx context.Context, messages []models.Message, language string) (string, error)
}

// AppInfoService exposes build/version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Summarizer is the boundary to the external summarization collaborator.
// Implemented by the adapter package; treated as opaque here. Failures are
// surfaced to the caller untouched — no retries at this layer.
type Summarizer interface {
	Summarize(ctx context.Context, messages []models.Message, language string) (string, error)
}
